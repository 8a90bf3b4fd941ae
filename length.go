package asn1ber

/*
length.go implements the BER length octet(s): short form for lengths
under 128, long form (0x80+n length octets) otherwise. Indefinite
length (a lone 0x80 with no following length octets) is rejected on
decode and never emitted on encode, per spec.md §4.1.
*/

/*
encodeLength appends the BER length encoding of n to dst and returns
the result. n must be non-negative; the long form uses the minimal
number of big-endian length octets (1 <= count <= 127).
*/
func encodeLength(dst []byte, n int) []byte {
	if n < 0x80 {
		return append(dst, byte(n))
	}

	var octets []byte
	for v := n; v > 0; v >>= 8 {
		octets = append([]byte{byte(v & 0xff)}, octets...)
	}

	dst = append(dst, 0x80|byte(len(octets)))
	return append(dst, octets...)
}

/*
decodeLength parses a BER length field starting at offset, returning
the decoded length, the number of octets consumed, and an error. A
length field consisting solely of 0x80 (indefinite length) is
rejected: this system supports definite-length encoding only.
*/
func decodeLength(data []byte, offset int) (length, consumed int, err error) {
	if offset >= len(data) {
		return 0, 0, errTruncated(offset)
	}

	first := data[offset]
	if first < 0x80 {
		return int(first), 1, nil
	}

	if first == 0x80 {
		return 0, 0, codecErrorf("indefinite length not supported at offset ", offset)
	}

	n := int(first & 0x7F)
	if n > 4 {
		return 0, 0, wrapSentinel(ErrLengthOverflow, " (", n, " length octets) at offset ", offset)
	}
	if offset+1+n > len(data) {
		return 0, 0, errTruncated(offset)
	}

	var v int
	for i := 0; i < n; i++ {
		v = v<<8 | int(data[offset+1+i])
	}
	if v < 0 {
		return 0, 0, wrapSentinel(ErrLengthOverflow, " at offset ", offset)
	}

	return v, 1 + n, nil
}
