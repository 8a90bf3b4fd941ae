package asn1ber

/*
encode.go implements the BER encoder: EncodeValue dispatches on AsnValue.Kind,
selects the tag/class/constructed bits for that kind, and recurses
for the constructed kinds (Sequence, Set, and Explicit ContextTag).
No indefinite-length form is ever produced (spec.md §3).
*/

import (
	"strconv"
)

/*
EncodeValue serializes v to definite-length BER. It is the core of
the public [Encode] entry point; most callers should use [Encode]
instead, which also runs the host-value adapter.
*/
func EncodeValue(v AsnValue) ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return encodeTLV(classUniversal, tagBoolean, false, encodeBoolContent(v.Bool))
	case KindInteger:
		if v.Int == nil {
			return nil, primitiveErrorf("Integer AsnValue has nil *big.Int")
		}
		return encodeTLV(classUniversal, tagInteger, false, BigIntToBuffer(v.Int))
	case KindBitString:
		content, err := encodeBitStringContent(v.BitStringBytes, v.BitStringUnused)
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagBitString, false, content)
	case KindOctetString:
		return encodeTLV(classUniversal, tagOctetString, false, v.Bytes)
	case KindNull:
		return encodeTLV(classUniversal, tagNull, false, nil)
	case KindOID:
		content, err := encodeOID(v.OID)
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagOID, false, content)
	case KindUTF8String:
		return encodeTLV(classUniversal, tagUTF8String, false, []byte(v.Str))
	case KindPrintableString:
		content, err := encodeRestrictedString(v.Str, isPrintableChar, "PrintableString")
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagPrintableString, false, content)
	case KindIA5String:
		content, err := encodeRestrictedString(v.Str, isIA5Char, "Ia5String")
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagIA5String, false, content)
	case KindUTCTime:
		content, err := encodeUTCTime(v.Time)
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagUTCTime, false, content)
	case KindGeneralizedTime:
		return encodeTLV(classUniversal, tagGeneralizedTime, false, encodeGeneralizedTime(v.Time))
	case KindSequence:
		content, err := encodeItems(v.Items)
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagSequence, true, content)
	case KindSet:
		content, err := encodeItems(v.Items)
		if err != nil {
			return nil, err
		}
		return encodeTLV(classUniversal, tagSet, true, content)
	case KindContextTag:
		return encodeContextTag(v.ContextTag)
	default:
		return nil, codecErrorf("unsupported AsnValue kind: ", int(v.Kind))
	}
}

func encodeTLV(class, tag int, constructed bool, content []byte) ([]byte, error) {
	id, err := encodeIdentifier(identifier{class: class, constructed: constructed, number: tag})
	if err != nil {
		return nil, err
	}

	bufPtr := getBuf()
	b := append(*bufPtr, id)
	b = encodeLength(b, len(content))
	b = append(b, content...)

	out := append([]byte(nil), b...)
	putBuf(bufPtr)
	return out, nil
}

func encodeBoolContent(b bool) []byte {
	if b {
		return []byte{0xFF}
	}
	return []byte{0x00}
}

func encodeBitStringContent(payload []byte, unusedBits int) ([]byte, error) {
	if unusedBits < 0 || unusedBits > 7 {
		return nil, primitiveErrorf("BitString unused-bit count out of range (0-7): ", unusedBits)
	}
	content := make([]byte, 0, len(payload)+1)
	content = append(content, byte(unusedBits))
	content = append(content, payload...)
	return content, nil
}

func encodeItems(items []AsnValue) ([]byte, error) {
	var content []byte
	for i, item := range items {
		enc, err := EncodeValue(item)
		if err != nil {
			return nil, wrapSentinel(err, " (element ", i, ")")
		}
		content = append(content, enc...)
	}
	return content, nil
}

func encodeContextTag(ct *ContextTagValue) ([]byte, error) {
	if ct == nil {
		return nil, codecErrorf("ContextTag AsnValue has nil ContextTagValue")
	}
	if ct.Number < 0 || ct.Number > 30 {
		return nil, tlvErrorf("context tag number out of range (0-30): ", ct.Number)
	}

	switch ct.Kind {
	case Explicit:
		if ct.Inner == nil {
			return nil, codecErrorf("explicit ContextTag has nil Inner value")
		}
		inner, err := EncodeValue(*ct.Inner)
		if err != nil {
			return nil, err
		}
		return encodeTLV(classContextSpecific, ct.Number, true, inner)
	case Implicit:
		return encodeTLV(classContextSpecific, ct.Number, false, ct.Raw)
	default:
		return nil, codecErrorf("unknown ContextTag kind: ", int(ct.Kind))
	}
}

func isPrintableChar(r rune) bool {
	switch {
	case 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		return true
	}
	switch r {
	case ' ', '\'', '(', ')', '+', ',', '-', '.', '/', ':', '=', '?':
		return true
	}
	return false
}

func isIA5Char(r rune) bool { return r <= 127 }

func encodeRestrictedString(s string, allowed func(rune) bool, label string) ([]byte, error) {
	for _, r := range s {
		if !allowed(r) {
			return nil, wrapSentinel(ErrStringCharsetViolation, " in ", label, ": ", strconv.QuoteRune(r))
		}
	}
	return []byte(s), nil
}
