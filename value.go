package asn1ber

/*
value.go defines AsnValue, the tagged sum type at the center of this
package: every BER shape this codec understands is one Kind of
AsnValue, carrying only the fields relevant to that kind. Dynamic-
type dispatch that a reflection-heavy codec would otherwise need is
replaced by a plain switch over Kind, in both the encoder (encode.go)
and the decoder (decode.go).
*/

import (
	"math/big"
	"time"
)

// Kind discriminates the variant an AsnValue carries.
type Kind int

const (
	KindBool Kind = iota
	KindInteger
	KindBitString
	KindOctetString
	KindNull
	KindOID
	KindUTF8String
	KindPrintableString
	KindIA5String
	KindUTCTime
	KindGeneralizedTime
	KindSequence
	KindSet
	KindContextTag
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindBitString:
		return "BitString"
	case KindOctetString:
		return "OctetString"
	case KindNull:
		return "Null"
	case KindOID:
		return "Oid"
	case KindUTF8String:
		return "Utf8String"
	case KindPrintableString:
		return "PrintableString"
	case KindIA5String:
		return "Ia5String"
	case KindUTCTime:
		return "UtcTime"
	case KindGeneralizedTime:
		return "GeneralizedTime"
	case KindSequence:
		return "Sequence"
	case KindSet:
		return "Set"
	case KindContextTag:
		return "ContextTag"
	default:
		return "Unknown"
	}
}

// TagKind distinguishes implicit from explicit context tagging.
type TagKind int

const (
	Explicit TagKind = iota
	Implicit
)

/*
ContextTagValue carries the payload of a ContextTag AsnValue: a
context-specific tag number (0-30), whether it is Implicit or
Explicit, and either raw opaque bytes (Implicit) or a boxed child
AsnValue (Explicit). See spec.md §3 and §9 ("Context tags carrying
arbitrary payloads ... modeled as an enum over {opaque bytes, boxed
child value}").
*/
type ContextTagValue struct {
	Number int
	Kind   TagKind
	Raw    []byte    // valid when Kind == Implicit
	Inner  *AsnValue // valid when Kind == Explicit
}

/*
AsnValue is the tagged sum type enumerating every BER shape this
package supports. Exactly one set of fields is meaningful for a
given Kind; the zero value of every other field is ignored by
[Encode] and by the adapter. Values are immutable once constructed:
nothing in this package mutates an AsnValue after it is produced by
[DecodeValue] or by the host adapter.
*/
type AsnValue struct {
	Kind Kind

	Bool bool

	// Int backs KindInteger; always non-nil for that Kind.
	Int *big.Int

	// BitStringBytes/BitStringUnused back KindBitString.
	BitStringBytes  []byte
	BitStringUnused int

	// Bytes backs KindOctetString.
	Bytes []byte

	// OID backs KindOID: either a registered symbolic name or a
	// dotted-decimal string.
	OID string

	// Str backs KindUTF8String, KindPrintableString, KindIA5String.
	Str string

	// Time backs KindUTCTime and KindGeneralizedTime.
	Time time.Time

	// Items backs KindSequence and KindSet.
	Items []AsnValue

	// ContextTag backs KindContextTag.
	ContextTag *ContextTagValue
}

// BoolValue returns an AsnValue of KindBool.
func BoolValue(b bool) AsnValue { return AsnValue{Kind: KindBool, Bool: b} }

// IntegerValue returns an AsnValue of KindInteger.
func IntegerValue(n *big.Int) AsnValue { return AsnValue{Kind: KindInteger, Int: n} }

// BitStringValue returns an AsnValue of KindBitString. unusedBits must be 0-7.
func BitStringValue(payload []byte, unusedBits int) AsnValue {
	return AsnValue{Kind: KindBitString, BitStringBytes: payload, BitStringUnused: unusedBits}
}

// OctetStringValue returns an AsnValue of KindOctetString.
func OctetStringValue(payload []byte) AsnValue {
	return AsnValue{Kind: KindOctetString, Bytes: payload}
}

// NullValue returns an AsnValue of KindNull.
func NullValue() AsnValue { return AsnValue{Kind: KindNull} }

// OIDValue returns an AsnValue of KindOID, naming either a symbolic
// table entry or a dotted OID.
func OIDValue(nameOrDotted string) AsnValue { return AsnValue{Kind: KindOID, OID: nameOrDotted} }

// UTF8StringValue returns an AsnValue of KindUTF8String.
func UTF8StringValue(s string) AsnValue { return AsnValue{Kind: KindUTF8String, Str: s} }

// PrintableStringValue returns an AsnValue of KindPrintableString.
func PrintableStringValue(s string) AsnValue { return AsnValue{Kind: KindPrintableString, Str: s} }

// IA5StringValue returns an AsnValue of KindIA5String.
func IA5StringValue(s string) AsnValue { return AsnValue{Kind: KindIA5String, Str: s} }

// UTCTimeValue returns an AsnValue of KindUTCTime.
func UTCTimeValue(t time.Time) AsnValue { return AsnValue{Kind: KindUTCTime, Time: t} }

// GeneralizedTimeValue returns an AsnValue of KindGeneralizedTime.
func GeneralizedTimeValue(t time.Time) AsnValue { return AsnValue{Kind: KindGeneralizedTime, Time: t} }

// SequenceValue returns an AsnValue of KindSequence.
func SequenceValue(items []AsnValue) AsnValue { return AsnValue{Kind: KindSequence, Items: items} }

// SetValue returns an AsnValue of KindSet.
func SetValue(items []AsnValue) AsnValue { return AsnValue{Kind: KindSet, Items: items} }

// ContextTagValueOf returns an AsnValue of KindContextTag.
func ContextTagValueOf(ctv ContextTagValue) AsnValue {
	return AsnValue{Kind: KindContextTag, ContextTag: &ctv}
}
