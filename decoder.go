package asn1ber

/*
decoder.go implements Decoder, the façade spec.md §4.5/§6 calls
for: a handle that owns a parsed AsnValue and exposes typed
accessors (IntoBool, IntoInteger, ...) instead of forcing every
caller to pattern-match on Kind directly. Each accessor fails with
[ErrTypeMismatch] when the root variant does not match, and every
accessor is a pure read of already-parsed data, so a Decoder may be
shared across goroutines (spec.md §5). Parsing is not lazy: the
constructors decode the whole object up front, and the handle keeps
only the resulting AsnValue, not the original bytes.
*/

import (
	"math/big"
	"time"
)

// Decoder owns a single parsed AsnValue and offers typed accessors over it.
type Decoder struct {
	value AsnValue
}

// NewDecoder parses data as a single BER object and returns a handle over it.
func NewDecoder(data []byte) (*Decoder, error) {
	v, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return &Decoder{value: v}, nil
}

// NewDecoderFromBase64 is [NewDecoder] over base64-decoded input.
func NewDecoderFromBase64(s string) (*Decoder, error) {
	data, err := FromBase64(s)
	if err != nil {
		return nil, err
	}
	return NewDecoder(data)
}

// NewDecoderFromHex is [NewDecoder] over hex-decoded input, an
// ergonomic constructor carried over from the original KeetaNet
// source's from_hex (see SPEC_FULL.md §10).
func NewDecoderFromHex(s string) (*Decoder, error) {
	data, err := hexDecode(s)
	if err != nil {
		return nil, codecErrorf("invalid hex input: ", err.Error())
	}
	return NewDecoder(data)
}

func newDecoderFromValue(v AsnValue) *Decoder { return &Decoder{value: v} }

// Value returns the parsed AsnValue the receiver wraps.
func (d *Decoder) Value() AsnValue { return d.value }

func (d *Decoder) IntoBool() (bool, error) {
	if d.value.Kind != KindBool {
		return false, errTypeMismatch("Bool", d.value.Kind.String())
	}
	return d.value.Bool, nil
}

/*
IntoInteger widens the decoded INTEGER to a host int64, failing with
[ErrIntegerOverflow] if the value does not fit.
*/
func (d *Decoder) IntoInteger() (int64, error) {
	if d.value.Kind != KindInteger {
		return 0, errTypeMismatch("Integer", d.value.Kind.String())
	}
	if !d.value.Int.IsInt64() {
		return 0, ErrIntegerOverflow
	}
	return d.value.Int.Int64(), nil
}

// IntoBigInt returns the decoded INTEGER at full precision.
func (d *Decoder) IntoBigInt() (*big.Int, error) {
	if d.value.Kind != KindInteger {
		return nil, errTypeMismatch("Integer", d.value.Kind.String())
	}
	return d.value.Int, nil
}

// IntoString returns the decoded string content, for any of the
// three string kinds this package models.
func (d *Decoder) IntoString() (string, error) {
	switch d.value.Kind {
	case KindUTF8String, KindPrintableString, KindIA5String:
		return d.value.Str, nil
	default:
		return "", errTypeMismatch("String", d.value.Kind.String())
	}
}

// IntoDate returns the decoded timestamp, for either temporal kind.
func (d *Decoder) IntoDate() (time.Time, error) {
	switch d.value.Kind {
	case KindUTCTime, KindGeneralizedTime:
		return d.value.Time, nil
	default:
		return time.Time{}, errTypeMismatch("Date", d.value.Kind.String())
	}
}

// IntoBuffer returns the decoded OCTET STRING payload.
func (d *Decoder) IntoBuffer() ([]byte, error) {
	if d.value.Kind != KindOctetString {
		return nil, errTypeMismatch("OctetString", d.value.Kind.String())
	}
	return d.value.Bytes, nil
}

// IntoOID returns the decoded OBJECT IDENTIFIER's symbolic name (if
// registered) or dotted form.
func (d *Decoder) IntoOID() (string, error) {
	if d.value.Kind != KindOID {
		return "", errTypeMismatch("Oid", d.value.Kind.String())
	}
	return d.value.OID, nil
}

// SetResult is the decoded shape of a KeetaNet SET: an OID paired
// with a single string value.
type SetResult struct {
	Name  string
	Value string
}

// IntoSet returns the decoded SET, which must carry the
// OID-then-string shape validated at decode time.
func (d *Decoder) IntoSet() (SetResult, error) {
	if d.value.Kind != KindSet {
		return SetResult{}, errTypeMismatch("Set", d.value.Kind.String())
	}
	seq := d.value.Items[0].Items
	return SetResult{Name: seq[0].OID, Value: seq[1].Str}, nil
}

// BitStringResult is the decoded payload of a BIT STRING.
type BitStringResult struct {
	Bytes      []byte
	UnusedBits int
}

func (d *Decoder) IntoBitString() (BitStringResult, error) {
	if d.value.Kind != KindBitString {
		return BitStringResult{}, errTypeMismatch("BitString", d.value.Kind.String())
	}
	return BitStringResult{Bytes: d.value.BitStringBytes, UnusedBits: d.value.BitStringUnused}, nil
}

// IntoContextTag returns the decoded ContextTag. For an Explicit tag,
// Inner is a ready-made Decoder over the boxed child value.
func (d *Decoder) IntoContextTag() (number int, kind TagKind, raw []byte, inner *Decoder, err error) {
	if d.value.Kind != KindContextTag {
		return 0, 0, nil, nil, errTypeMismatch("ContextTag", d.value.Kind.String())
	}
	ct := d.value.ContextTag
	if ct.Kind == Explicit {
		inner = newDecoderFromValue(*ct.Inner)
	}
	return ct.Number, ct.Kind, ct.Raw, inner, nil
}

/*
IntoArray converts the already-parsed SEQUENCE into a slice of host
values using the adapter (adapt.go), taking the place of the original
KeetaNet source's ASN1Iterator over a sequence (see SPEC_FULL.md §10).
Every element is converted in this one call; nothing is deferred.
*/
func (d *Decoder) IntoArray() ([]any, error) {
	if d.value.Kind != KindSequence {
		return nil, errTypeMismatch("Sequence", d.value.Kind.String())
	}

	out := make([]any, len(d.value.Items))
	for i, item := range d.value.Items {
		host, err := fromAsnValue(item)
		if err != nil {
			return nil, err
		}
		out[i] = host
	}
	return out, nil
}
