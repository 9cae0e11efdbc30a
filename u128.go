package num

import (
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer. It is the limb type U256 is built
// from, but is usable on its own. All arithmetic wraps.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'; negative values give zero.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	wide, ok := U256FromBigInt(v)
	if !ok || !wide.IsU128() {
		return MaxU128, false
	}
	return wide.lo, true
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// String returns u in lower-case hex with a "0x" prefix and no leading zeros.
func (u U128) String() string { return U256{lo: u}.Hex() }

// IntoBigInt sets b to u, reusing b's storage where it can.
func (u U128) IntoBigInt(b *big.Int) { U256{lo: u}.IntoBigInt(b) }

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsUint64 truncates the U128 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U128) AsUint64() uint64 {
	return u.lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Add(n U128) (v U128) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u U128) Inc() U128 { return u.Add(oneU128) }
func (u U128) Dec() U128 { return u.Sub(oneU128) }

// addCarry returns u + n + carry and the carry out of bit 127. carry must be
// 0 or 1; the carry out is always 0 or 1.
func (u U128) addCarry(n, carry U128) (sum, carryOut U128) {
	sum = u.Add(n).Add(carry)
	// ((u & n) | ((u | n) &^ sum)) >> 127
	carryOut = u.And(n).Or(u.Or(n).AndNot(sum)).Rsh(127)
	return sum, carryOut
}

// subBorrow returns u - n - borrow and the borrow out of bit 127. borrow must
// be 0 or 1; the borrow out is always 0 or 1.
func (u U128) subBorrow(n, borrow U128) (diff, borrowOut U128) {
	diff = u.Sub(n).Sub(borrow)
	// ((^u & n) | (^(u ^ n) & diff)) >> 127
	borrowOut = u.Not().And(n).Or(u.Xor(n).Not().And(diff)).Rsh(127)
	return diff, borrowOut
}

func (u U128) Cmp(n U128) int {
	switch {
	case u.hi != n.hi:
		if u.hi > n.hi {
			return 1
		}
		return -1
	case u.lo > n.lo:
		return 1
	case u.lo < n.lo:
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool { return u == n }

// GreaterThan and friends decide on hi alone unless the hi words match.
func (u U128) GreaterThan(n U128) bool      { return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo) }
func (u U128) GreaterOrEqualTo(n U128) bool { return !u.LessThan(n) }
func (u U128) LessThan(n U128) bool         { return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo) }
func (u U128) LessOrEqualTo(n U128) bool    { return !u.GreaterThan(n) }

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

// Lsh shifts u left by n bits. Shifting by 128 or more yields zero.
func (u U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return U128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
	case n < 128:
		return U128{hi: u.lo << (n - 64)}
	}
	return U128{}
}

// Rsh shifts u right by n bits. Shifting by 128 or more yields zero.
func (u U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return u
	case n < 64:
		return U128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
	case n < 128:
		return U128{lo: u.hi >> (n - 64)}
	}
	return U128{}
}

// BitLen returns the number of bits required to represent u. The result is
// 0 for 0.
func (u U128) BitLen() (n int) {
	x := u.lo
	if u.hi != 0 { // u >= 1<<64
		x = u.hi
		n = 64
	}
	if x >= 1<<32 {
		x >>= 32
		n += 32
	}
	if x >= 1<<16 {
		x >>= 16
		n += 16
	}
	if x >= 1<<8 {
		x >>= 8
		n += 8
	}
	return n + int(len8tab[x])
}

// nibble returns the i'th 4-bit digit of u, counting from the least
// significant. i must be < 32.
func (u U128) nibble(i uint) byte {
	if i >= 16 {
		return byte(u.hi>>((i-16)*4)) & 0xf
	}
	return byte(u.lo>>(i*4)) & 0xf
}
