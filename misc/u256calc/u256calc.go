package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
	num "github.com/num256/go-num256"
)

// u256calc applies a single U256 operation to hex operands and prints the
// result in canonical hex. It doubles as a quick way to check what the
// library does with an awkward input.

type config struct {
	Verbose bool  `short:"v" long:"verbose" description:"log operands at debug level and dump their limbs"`
	Seed    int64 `long:"seed" description:"seed for the rand op (0 == current nanotime)"`
}

type usageError string

func (e usageError) Error() string { return string(e) }

func usageErrorf(format string, args ...any) error {
	return usageError(fmt.Sprintf(format, args...))
}

var binaryOps = map[string]func(a, b num.U256) num.U256{
	"add":    num.U256.Add,
	"sub":    num.U256.Sub,
	"and":    num.U256.And,
	"or":     num.U256.Or,
	"xor":    num.U256.Xor,
	"andnot": num.U256.AndNot,
}

var shiftOps = map[string]func(a num.U256, n uint) num.U256{
	"lsh": num.U256.Lsh,
	"rsh": num.U256.Rsh,
}

var spewer = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <op> <a> [b]\n\n" +
		"Ops: add sub and or xor andnot cmp | not bitlen hex | lsh rsh | rand"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log := slog.NewBackend(os.Stderr).Logger("CALC")
	log.SetLevel(slog.LevelInfo)
	if cfg.Verbose {
		log.SetLevel(slog.LevelDebug)
	}

	if err := run(&cfg, log, args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var uerr usageError
		if errors.As(err, &uerr) {
			parser.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg *config, log slog.Logger, args []string, out io.Writer) error {
	if len(args) == 0 {
		return usageErrorf("missing op")
	}
	op, operands := args[0], args[1:]

	if fn, ok := binaryOps[op]; ok {
		vals, err := parseOperands(log, op, operands, 2)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, fn(vals[0], vals[1]))
		return err
	}

	if fn, ok := shiftOps[op]; ok {
		if len(operands) != 2 {
			return usageErrorf("%s: expected <a> <n>, found %d operand(s)", op, len(operands))
		}
		vals, err := parseOperands(log, op, operands[:1], 1)
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(operands[1], 10, 0)
		if err != nil {
			return fmt.Errorf("%s: shift amount %q: %w", op, operands[1], err)
		}
		log.Debugf("%s: shift by %d", op, n)
		_, err = fmt.Fprintln(out, fn(vals[0], uint(n)))
		return err
	}

	switch op {
	case "not", "hex", "bitlen":
		vals, err := parseOperands(log, op, operands, 1)
		if err != nil {
			return err
		}
		switch op {
		case "not":
			_, err = fmt.Fprintln(out, vals[0].Not())
		case "hex":
			_, err = fmt.Fprintln(out, vals[0])
		case "bitlen":
			_, err = fmt.Fprintln(out, vals[0].BitLen())
		}
		return err

	case "cmp":
		vals, err := parseOperands(log, op, operands, 2)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, vals[0].Cmp(vals[1]))
		return err

	case "rand":
		if len(operands) != 0 {
			return usageErrorf("rand: expected no operands, found %d", len(operands))
		}
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Debugf("rand: seed %d", seed)
		v := num.RandU256(rand.New(rand.NewSource(seed)))
		dump(log, op, 0, v)
		_, err := fmt.Fprintln(out, v)
		return err

	default:
		return usageErrorf("unknown op %q", op)
	}
}

func parseOperands(log slog.Logger, op string, operands []string, want int) ([]num.U256, error) {
	if len(operands) != want {
		return nil, usageErrorf("%s: expected %d operand(s), found %d", op, want, len(operands))
	}
	vals := make([]num.U256, len(operands))
	for i, s := range operands {
		v, err := num.U256FromHex(s)
		if err != nil {
			return nil, fmt.Errorf("%s: operand %d: %w", op, i, err)
		}
		dump(log, op, i, v)
		vals[i] = v
	}
	return vals, nil
}

func dump(log slog.Logger, op string, i int, v num.U256) {
	if log.Level() > slog.LevelDebug {
		return
	}
	log.Debugf("%s: operand %d = %s (%d bits)\n%s", op, i, v, v.BitLen(), spewer.Sdump(v))
}
