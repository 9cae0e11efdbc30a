/*
Package num provides a fixed-width unsigned 256-bit integer (U256), built
from two unsigned 128-bit limbs (U128).

U256 and U128 are value types; all operations return new values. Arithmetic
wraps silently modulo 2^256 (or 2^128 for U128): there is no overflow
reporting, no signed arithmetic, and no multiplication or division.

Simple example:

	a := MustU256FromHex("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	fmt.Println(a.Add(U256From64(1)))
	// Output: 0x0

U256 can be created from a variety of sources:

	U256FromRaw(hi, lo U128) U256
	U256From128(v U128) U256
	U256From64(v uint64) U256
	U256FromHex(s string) (out U256, err error)
	MustU256FromHex(s string) U256
	U256FromBigInt(v *big.Int) (out U256, accurate bool)
	RandU256(source RandSource) U256

The only text representation is hexadecimal. U256FromHex accepts "0x" or
"0X" followed by 1 to 64 digits of either case; output is always the
canonical lower-case form with no leading zeros, so parsing the output of
Hex() gives back the same value.

U256 supports the following formatting and marshalling interfaces:

	- fmt.Formatter (%v, %s, %x, %X, with '#' for a prefix on %x/%X)
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
