package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)

	// maxHexDigits is the most hex digits a U256 literal may carry after
	// its prefix.
	maxHexDigits = 64

	// limbHexDigits is the number of hex digits held in each U128 limb.
	limbHexDigits = 32
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}
	MaxU256 = U256{hi: MaxU128, lo: MaxU128}

	zeroU128 U128
	zeroU256 U256

	oneU128 = U128{lo: 1}
	oneU256 = U256{lo: oneU128}

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	// maxBigU256 is (1 << 256) - 1, used to mask big.Int results to 256 bits:
	maxBigU256, _ = new(big.Int).SetString("0x"+
		"ffffffffffffffffffffffffffffffff"+
		"ffffffffffffffffffffffffffffffff", 0)

	// wrapBigU256 is 1 << 256, used to simulate over/underflow:
	wrapBigU256 = new(big.Int).Lsh(big.NewInt(1), 256)
)
