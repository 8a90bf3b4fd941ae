package asn1ber

/*
api.go is the package's public entry point: Encode and Decode run the
host-value adapter (adapt.go) on top of the TLV codec (encode.go,
decode.go), so callers work with ordinary Go values and the six
tagged-object types instead of AsnValue directly.
*/

// EncodeOption configures a single [Encode] call.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	allowUndefined bool
}

/*
AllowUndefined controls how [Encode] treats [Undefined] values. With
allow false (the default), an Undefined anywhere in the input fails
with [ErrUndefinedRejected]. With allow true, a top-level Undefined
encodes to no bytes, and an Undefined inside a []any is elided from
the resulting Sequence rather than appearing as Null.
*/
func AllowUndefined(allow bool) EncodeOption {
	return func(o *encodeOptions) { o.allowUndefined = allow }
}

/*
Encode adapts host to an AsnValue (spec.md §4.7) and serializes it to
definite-length BER. host may be a bool, any native integer type,
*big.Int, []byte, nil, time.Time, string, []any, or one of the tagged
object types OID, Set, BitString, Context, String, Date.
*/
func Encode(host any, opts ...EncodeOption) ([]byte, error) {
	var o encodeOptions
	for _, opt := range opts {
		opt(&o)
	}

	v, present, err := toAsnValue(host, o.allowUndefined, "$")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, nil
	}
	return EncodeValue(v)
}

/*
Decode parses a single BER object from data and adapts it back to a
host value: booleans, *big.Int integers, plain strings, plain
time.Time timestamps, []any sequences, and tagged objects (OID, Set,
BitString, Context) wherever the BER shape has no lossless plain-Go
representation.
*/
func Decode(data []byte) (any, error) {
	v, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return fromAsnValue(v)
}

// DecodeString is [Decode] over base64-encoded input.
func DecodeString(s string) (any, error) {
	data, err := FromBase64(s)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
