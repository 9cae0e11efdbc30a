package num

import (
	"math/big"
)

// U256 is an unsigned 256-bit integer made of two U128 limbs. Its value is
// hi * 2^128 + lo. All arithmetic is modulo 2^256; nothing overflows or
// fails.
type U256 struct {
	hi, lo U128
}

func U256FromRaw(hi, lo U128) U256 { return U256{hi: hi, lo: lo} }
func U256From128(in U128) U256     { return U256{lo: in} }
func U256From64(in uint64) U256    { return U256{lo: U128{lo: in}} }

// U256FromBigInt creates a U256 from a big.Int. Overflow truncates to MaxU256
// and sets accurate to 'false'.
func U256FromBigInt(v *big.Int) (out U256, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()
	if len(words) > 256/intSize {
		return MaxU256, false
	}

	var limbs [4]uint64
	switch intSize {
	case 64:
		for i, w := range words {
			limbs[i] = uint64(w)
		}
	case 32:
		for i, w := range words {
			limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
	default:
		panic("num: unsupported bit size")
	}

	out.lo = U128{hi: limbs[1], lo: limbs[0]}
	out.hi = U128{hi: limbs[3], lo: limbs[2]}
	return out, true
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: RandU128(source), lo: RandU128(source)}
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns the two 128-bit limbs of u. See U256FromRaw() for the
// counterpart.
func (u U256) Raw() (hi, lo U128) { return u.hi, u.lo }

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo.lo)
		bits[1] = big.Word(u.lo.hi)
		bits[2] = big.Word(u.hi.lo)
		bits[3] = big.Word(u.hi.hi)
		b.SetBits(bits)

	default:
		var w big.Int
		b.SetUint64(u.hi.hi)
		for _, word := range [...]uint64{u.hi.lo, u.lo.hi, u.lo.lo} {
			b.Lsh(b, 64)
			b.Or(b, w.SetUint64(word))
		}
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsU128 truncates the U256 to its low limb. See IsU128() if you want to
// check before you convert.
func (u U256) AsU128() U128 { return u.lo }

// IsU128 reports whether u can be represented as a U128.
func (u U256) IsU128() bool { return u.hi == zeroU128 }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.lo.lo }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == zeroU128 && u.lo.hi == 0 }

// Add returns u + n, wrapping at 2^256.
func (u U256) Add(n U256) (v U256) {
	var carry U128
	v.lo, carry = u.lo.addCarry(n.lo, zeroU128)
	v.hi, _ = u.hi.addCarry(n.hi, carry)
	return v
}

// Sub returns u - n, wrapping below zero.
func (u U256) Sub(n U256) (v U256) {
	var borrow U128
	v.lo, borrow = u.lo.subBorrow(n.lo, zeroU128)
	v.hi, _ = u.hi.subBorrow(n.hi, borrow)
	return v
}

func (u U256) Inc() U256 { return u.Add(oneU256) }
func (u U256) Dec() U256 { return u.Sub(oneU256) }

func (u U256) And(n U256) U256 {
	u.hi = u.hi.And(n.hi)
	u.lo = u.lo.And(n.lo)
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi.AndNot(n.hi)
	u.lo = u.lo.AndNot(n.lo)
	return u
}

// Not returns the bitwise complement of u, equivalent to u.Xor(MaxU256).
func (u U256) Not() U256 {
	u.hi = u.hi.Not()
	u.lo = u.lo.Not()
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi.Or(n.hi)
	u.lo = u.lo.Or(n.lo)
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi.Xor(n.hi)
	u.lo = u.lo.Xor(n.lo)
	return u
}

// Lsh returns u shifted left by n bits, filling with zeros. Shifting by 256
// or more yields zero.
func (u U256) Lsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 128 {
		// The top n bits of lo move into the bottom of hi.
		return U256{
			hi: u.hi.Lsh(n).Or(u.lo.Rsh(128 - n)),
			lo: u.lo.Lsh(n),
		}

	} else if n == 128 {
		return U256{hi: u.lo}

	} else if n < 256 {
		return U256{hi: u.lo.Lsh(n - 128)}

	} else {
		return U256{}
	}
}

// Rsh returns u shifted right by n bits, filling with zeros. Shifting by 256
// or more yields zero.
func (u U256) Rsh(n uint) (v U256) {
	if n == 0 {
		return u

	} else if n < 128 {
		return U256{
			hi: u.hi.Rsh(n),
			lo: u.lo.Rsh(n).Or(u.hi.Lsh(128 - n)),
		}

	} else if n == 128 {
		return U256{lo: u.hi}

	} else if n < 256 {
		return U256{lo: u.hi.Rsh(n - 128)}

	} else {
		return U256{}
	}
}

// BitLen returns the number of bits required to represent u. The result is
// 0 for 0.
func (u U256) BitLen() int {
	if u.hi != zeroU128 {
		return u.hi.BitLen() + 128
	}
	return u.lo.BitLen()
}

func (u U256) Cmp(n U256) int {
	if c := u.hi.Cmp(n.hi); c != 0 {
		return c
	}
	return u.lo.Cmp(n.lo)
}

func (u U256) Equal(v U256) bool { return u.hi.Equal(v.hi) && u.lo.Equal(v.lo) }

func (u U256) GreaterThan(v U256) bool {
	return u.hi.GreaterThan(v.hi) || (u.hi.Equal(v.hi) && u.lo.GreaterThan(v.lo))
}

func (u U256) LessThan(v U256) bool {
	return u.hi.LessThan(v.hi) || (u.hi.Equal(v.hi) && u.lo.LessThan(v.lo))
}

func (u U256) GreaterOrEqualTo(v U256) bool { return !u.LessThan(v) }
func (u U256) LessOrEqualTo(v U256) bool    { return !u.GreaterThan(v) }
