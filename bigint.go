package asn1ber

/*
bigint.go implements the signed, minimal two's-complement byte
encoding that backs the ASN.1 INTEGER variant (see value.go) and is
also exposed directly to callers, per spec.md §4.2 and §6.

This is a deliberate rewrite, not a port, of go-asn1plus's
int.go encodeIntegerContent/decodeIntegerContent pair: the teacher's
version is already correct for both signs, and spec.md §9 flags a
known bug in the original KeetaNet source's legacy
NodeASN1BigIntToBuffer for negative values. BigIntToBuffer below is
the corrected algorithm; no trace of the legacy bug is reproduced.
*/

import "math/big"

/*
BigIntToBuffer returns the minimal two's-complement big-endian byte
encoding of n, with the MSB of the first byte carrying the sign: a
positive value never has a leading byte of 0x80 or greater without a
0x00 pad, and a negative value never has a leading byte of 0x7F or
less without an 0xFF pad. Zero encodes as a single 0x00 byte.
*/
func BigIntToBuffer(n *big.Int) []byte {
	if n.Sign() == 0 {
		return []byte{0x00}
	}

	if n.Sign() > 0 {
		b := n.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(n)
	nBytes := (abs.BitLen() + 7) / 8
	if nBytes == 0 {
		nBytes = 1
	}

	// Two's complement requires the top bit of the chosen width to be
	// available for the sign; if n can't fit in nBytes signed, grow by one.
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*nBytes-1))
	min.Neg(min)
	if n.Cmp(min) < 0 {
		nBytes++
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*nBytes))
	twosComplement := new(big.Int).Add(mod, n)

	b := twosComplement.Bytes()
	if len(b) < nBytes {
		pad := make([]byte, nBytes-len(b))
		b = append(pad, b...)
	}
	if b[0]&0x80 == 0 {
		b = append([]byte{0xFF}, b...)
	}
	return b
}

/*
BufferToBigInt is the exact inverse of [BigIntToBuffer]: it
interprets buf as a signed, big-endian two's-complement integer. An
empty buf decodes as zero.
*/
func BufferToBigInt(buf []byte) *big.Int {
	if len(buf) == 0 {
		return big.NewInt(0)
	}

	v := new(big.Int).SetBytes(buf)
	if buf[0]&0x80 != 0 {
		modulus := new(big.Int).Lsh(big.NewInt(1), uint(len(buf)*8))
		v.Sub(v, modulus)
	}
	return v
}

// IntegerToBigInt widens a native signed integer to arbitrary precision.
func IntegerToBigInt(n int64) *big.Int { return big.NewInt(n) }

/*
StringToBigInt parses a base-10 string into an arbitrary-precision
integer, failing if s is not a valid decimal integer literal.
*/
func StringToBigInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, primitiveErrorf("invalid base-10 integer literal: ", s)
	}
	return n, nil
}
