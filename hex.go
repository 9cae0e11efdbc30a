package num

import (
	"errors"
	"fmt"
)

// Reasons a hex literal can be rejected. They are wrapped in a *HexError;
// use errors.Is to test for them.
var (
	ErrEmptyHex      = errors.New("empty string")
	ErrMissingPrefix = errors.New("missing 0x prefix")
	ErrNoDigits      = errors.New("no digits after prefix")
	ErrTooWide       = errors.New("more than 64 digits")
	ErrInvalidDigit  = errors.New("invalid hex digit")
)

// HexError records a failed hex parse.
type HexError struct {
	Input string
	Pos   int // Byte offset in Input at which the problem was found
	Err   error
}

func (e *HexError) Error() string {
	return fmt.Sprintf("num: u256 hex %q invalid at offset %d: %v", e.Input, e.Pos, e.Err)
}

func (e *HexError) Unwrap() error { return e.Err }

// U256FromHex parses a hex literal: a "0x" or "0X" prefix followed by 1 to 64
// hex digits of either case. Leading zeros are permitted but count towards
// the 64 digit limit.
func U256FromHex(s string) (out U256, err error) {
	if len(s) == 0 {
		return out, &HexError{Input: s, Err: ErrEmptyHex}
	}
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return out, &HexError{Input: s, Err: ErrMissingPrefix}
	}
	if len(s) == 2 {
		return out, &HexError{Input: s, Pos: 2, Err: ErrNoDigits}
	}
	if len(s)-2 > maxHexDigits {
		return out, &HexError{Input: s, Pos: 2, Err: ErrTooWide}
	}

	// Digits are consumed in 32-digit groups from the right; the first
	// group fills lo, whatever remains fills hi.
	end := len(s)
	for _, limb := range [...]*U128{&out.lo, &out.hi} {
		start := end - limbHexDigits
		if start < 2 {
			start = 2
		}
		for i := start; i < end; i++ {
			nib := hexNibbles[s[i]]
			if nib == badNibble {
				return U256{}, &HexError{Input: s, Pos: i, Err: ErrInvalidDigit}
			}
			limb.hi = (limb.hi << 4) | (limb.lo >> 60)
			limb.lo = (limb.lo << 4) | uint64(nib)
		}
		end = start
	}
	return out, nil
}

// MustU256FromHex is like U256FromHex but panics if s is malformed. It is
// intended for literals.
func MustU256FromHex(s string) U256 {
	u, err := U256FromHex(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Hex returns the canonical form of u: lower-case, "0x" prefixed, with no
// leading zeros. Zero is "0x0".
func (u U256) Hex() string {
	var buf [2 + maxHexDigits]byte
	return string(u.appendHex(buf[:0], "0x", hexLower))
}

func (u U256) String() string { return u.Hex() }

func (u U256) appendHex(dst []byte, prefix string, digits string) []byte {
	dst = append(dst, prefix...)

	nibbles := (u.BitLen() + 3) / 4
	if nibbles == 0 {
		nibbles = 1
	}

	// Start at the most significant non-zero digit; if it sits in lo, hi
	// is never visited.
	for i := uint(nibbles); i > 0; i-- {
		pos := i - 1
		limb := u.lo
		if pos >= limbHexDigits {
			limb = u.hi
			pos -= limbHexDigits
		}
		dst = append(dst, digits[limb.nibble(pos)])
	}
	return dst
}

// Format implements fmt.Formatter. %v and %s print the canonical form, %x and
// %X print the digits alone unless the '#' flag asks for a prefix. Other
// flags and widths are ignored.
func (u U256) Format(s fmt.State, c rune) {
	var buf [2 + maxHexDigits]byte
	var out []byte

	switch c {
	case 'v', 's':
		out = u.appendHex(buf[:0], "0x", hexLower)
	case 'x':
		prefix := ""
		if s.Flag('#') {
			prefix = "0x"
		}
		out = u.appendHex(buf[:0], prefix, hexLower)
	case 'X':
		prefix := ""
		if s.Flag('#') {
			prefix = "0X"
		}
		out = u.appendHex(buf[:0], prefix, hexUpper)
	default:
		fmt.Fprintf(s, "%%!%c(num.U256=%s)", c, u.Hex())
		return
	}
	_, _ = s.Write(out)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := U256FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare hex literal. A JSON null leaves u
// unchanged.
func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := U256FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
