package num

// RandSource supplies the random bits for RandU128 and RandU256. *rand.Rand
// from math/rand satisfies it.
type RandSource interface {
	Uint64() uint64
}

func LargerU256(a, b U256) U256 {
	if a.Cmp(b) < 0 {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if a.Cmp(b) > 0 {
		return b
	}
	return a
}
