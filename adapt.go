package asn1ber

/*
adapt.go implements the host-value adapter (spec.md §4.7): the
translation between ordinary Go values and AsnValue, including
canonical-form inference for the ambiguous host shapes (a plain
string picks the narrowest legal string tag; a plain time.Time
picks UTCTime or GeneralizedTime by representable range).

Shapes with no natural Go equivalent are modeled as small tagged
struct types -- OID, Set, BitString, Context, String, Date -- one per
discriminator spec.md §6 names. This is the sum-type-by-pattern-
match go-asn1plus's design notes call for, re-expressed without
reflection: toAsnValue is one type switch in, fromAsnValue is one
Kind switch out.
*/

import (
	"math/big"
	"time"
)

// OID is the host-facing tagged object for an OBJECT IDENTIFIER,
// type discriminator "oid".
type OID struct{ Name string }

// Set is the host-facing tagged object for the one SET shape
// KeetaNet uses, type discriminator "set".
type Set struct {
	OID   OID
	Value string
}

// BitString is the host-facing tagged object for a BIT STRING, type
// discriminator "bitstring". UnusedBits defaults to 0.
type BitString struct {
	Value      []byte
	UnusedBits int
}

// Context is the host-facing tagged object for a context-specific
// tag, type discriminator "context". Kind defaults to Explicit.
// When Kind is Implicit, Contains may be a []byte (used as-is) or a
// primitive (bool, integer, string, time.Time) whose content octets
// only become the opaque payload.
type Context struct {
	Value    int
	Kind     TagKind
	Contains any
}

// StringKind selects which restricted string tag a String tagged
// object forces.
type StringKind int

const (
	StringPrintable StringKind = iota
	StringIA5
	StringUTF8
)

// String is the host-facing tagged object that bypasses string
// inference, type discriminator "string".
type String struct {
	Kind  StringKind
	Value string
}

// DateKind selects which temporal tag a Date tagged object forces.
type DateKind int

const (
	DateDefault DateKind = iota
	DateUTC
	DateGeneral
)

// Date is the host-facing tagged object that bypasses timestamp
// inference, type discriminator "date". DateDefault applies the
// normal inference rule.
type Date struct {
	Kind DateKind
	Date time.Time
}

// undefinedType is the sentinel host value representing a JS-style
// "undefined", distinct from nil (which maps to Null).
type undefinedType struct{}

// Undefined is the sentinel host value for the undefined-vs-null
// distinction described in spec.md §4.7/§7.
var Undefined = undefinedType{}

/*
toAsnValue converts a host value to an AsnValue. present is false
only when host is [Undefined] and allowUndefined is true, signalling
that the caller (an array, or the top-level entry point) should
elide this value entirely rather than encode it.
*/
func toAsnValue(host any, allowUndefined bool, path string) (v AsnValue, present bool, err error) {
	present = true

	switch hv := host.(type) {
	case nil:
		v = NullValue()

	case undefinedType:
		if !allowUndefined {
			err = wrapSentinel(ErrUndefinedRejected, " at ", path)
			return
		}
		present = false

	case bool:
		v = BoolValue(hv)

	case int:
		v = IntegerValue(big.NewInt(int64(hv)))
	case int8:
		v = IntegerValue(big.NewInt(int64(hv)))
	case int16:
		v = IntegerValue(big.NewInt(int64(hv)))
	case int32:
		v = IntegerValue(big.NewInt(int64(hv)))
	case int64:
		v = IntegerValue(big.NewInt(hv))
	case uint:
		v = IntegerValue(new(big.Int).SetUint64(uint64(hv)))
	case uint8:
		v = IntegerValue(big.NewInt(int64(hv)))
	case uint16:
		v = IntegerValue(big.NewInt(int64(hv)))
	case uint32:
		v = IntegerValue(big.NewInt(int64(hv)))
	case uint64:
		v = IntegerValue(new(big.Int).SetUint64(hv))
	case *big.Int:
		v = IntegerValue(hv)

	case []byte:
		v = OctetStringValue(hv)

	case time.Time:
		v = adaptTimestamp(hv)

	case string:
		v = adaptString(hv)

	case []any:
		var items []AsnValue
		for i, elem := range hv {
			elemPath := path + "[" + itoa(i) + "]"
			ev, ok, ierr := toAsnValue(elem, allowUndefined, elemPath)
			if ierr != nil {
				err = ierr
				return
			}
			if ok {
				items = append(items, ev)
			}
		}
		v = SequenceValue(items)

	case OID:
		v = OIDValue(hv.Name)

	case Set:
		strVal := adaptString(hv.Value)
		v = SetValue([]AsnValue{SequenceValue([]AsnValue{OIDValue(hv.OID.Name), strVal})})

	case BitString:
		v = BitStringValue(hv.Value, hv.UnusedBits)

	case Context:
		v, err = adaptContext(hv, path)

	case String:
		v, err = adaptStringTag(hv, path)

	case Date:
		v, err = adaptDateTag(hv, path)

	default:
		err = errUnsupportedHostType(path)
	}

	return
}

// adaptString implements spec.md §4.7's string-narrowing rule.
func adaptString(s string) AsnValue {
	allPrintable := true
	allASCII := true
	for _, r := range s {
		if !isPrintableChar(r) {
			allPrintable = false
		}
		if !isIA5Char(r) {
			allASCII = false
			break
		}
	}

	switch {
	case allPrintable:
		return PrintableStringValue(s)
	case allASCII:
		return IA5StringValue(s)
	default:
		return UTF8StringValue(s)
	}
}

// adaptTimestamp implements spec.md §4.7's timestamp canonical-form rule.
func adaptTimestamp(t time.Time) AsnValue {
	if UTCTimeRepresentable(t) {
		return UTCTimeValue(t)
	}
	return GeneralizedTimeValue(truncateToMillis(t))
}

func truncateToMillis(t time.Time) time.Time {
	u := t.UTC()
	ms := u.Nanosecond() / 1_000_000
	return time.Date(u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), ms*1_000_000, time.UTC)
}

func adaptStringTag(s String, path string) (AsnValue, error) {
	switch s.Kind {
	case StringPrintable:
		return PrintableStringValue(s.Value), nil
	case StringIA5:
		return IA5StringValue(s.Value), nil
	case StringUTF8:
		return UTF8StringValue(s.Value), nil
	default:
		return AsnValue{}, wrapSentinel(ErrUnknownTaggedType, ": String kind at ", path)
	}
}

func adaptDateTag(d Date, path string) (AsnValue, error) {
	switch d.Kind {
	case DateUTC:
		return UTCTimeValue(d.Date), nil
	case DateGeneral:
		return GeneralizedTimeValue(truncateToMillis(d.Date)), nil
	case DateDefault:
		return adaptTimestamp(d.Date), nil
	default:
		return AsnValue{}, wrapSentinel(ErrUnknownTaggedType, ": Date kind at ", path)
	}
}

func adaptContext(c Context, path string) (AsnValue, error) {
	if c.Value < 0 || c.Value > 30 {
		return AsnValue{}, tlvErrorf("context tag number out of range (0-30) at ", path)
	}

	if c.Kind == Explicit {
		if c.Contains == nil {
			return AsnValue{}, adapterErrorf("explicit Context at ", path, " has nil Contains")
		}
		inner, present, err := toAsnValue(c.Contains, false, path+".contains")
		if err != nil {
			return AsnValue{}, err
		}
		if !present {
			return AsnValue{}, adapterErrorf("explicit Context at ", path, " cannot contain an elided value")
		}
		return ContextTagValueOf(ContextTagValue{Number: c.Value, Kind: Explicit, Inner: &inner}), nil
	}

	raw, err := implicitContentOctets(c.Contains, path)
	if err != nil {
		return AsnValue{}, err
	}
	return ContextTagValueOf(ContextTagValue{Number: c.Value, Kind: Implicit, Raw: raw}), nil
}

/*
implicitContentOctets extracts the opaque payload for an Implicit
Context: a []byte is used as-is, and a primitive value is adapted,
encoded, and stripped of its own tag/length header, leaving only its
content octets, per spec.md §4.7.
*/
func implicitContentOctets(contains any, path string) ([]byte, error) {
	if raw, ok := contains.([]byte); ok {
		return raw, nil
	}

	inner, present, err := toAsnValue(contains, false, path+".contains")
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, adapterErrorf("implicit Context at ", path, " cannot contain an elided value")
	}

	full, err := EncodeValue(inner)
	if err != nil {
		return nil, err
	}

	_, idLen, err := decodeIdentifier(full, 0)
	if err != nil {
		return nil, err
	}
	_, lenLen, err := decodeLength(full, idLen)
	if err != nil {
		return nil, err
	}
	return full[idLen+lenLen:], nil
}

// fromAsnValue is the inverse of toAsnValue: it converts a decoded
// AsnValue back to the host-value surface described in spec.md §4.7.
func fromAsnValue(v AsnValue) (any, error) {
	switch v.Kind {
	case KindBool:
		return v.Bool, nil
	case KindInteger:
		return v.Int, nil
	case KindBitString:
		return BitString{Value: v.BitStringBytes, UnusedBits: v.BitStringUnused}, nil
	case KindOctetString:
		return v.Bytes, nil
	case KindNull:
		return nil, nil
	case KindOID:
		return OID{Name: v.OID}, nil
	case KindUTF8String, KindPrintableString, KindIA5String:
		return v.Str, nil
	case KindUTCTime, KindGeneralizedTime:
		return v.Time, nil
	case KindSequence:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			host, err := fromAsnValue(item)
			if err != nil {
				return nil, err
			}
			out[i] = host
		}
		return out, nil
	case KindSet:
		seq := v.Items[0].Items
		return Set{OID: OID{Name: seq[0].OID}, Value: seq[1].Str}, nil
	case KindContextTag:
		return fromContextTag(v.ContextTag)
	default:
		return nil, codecErrorf("unsupported AsnValue kind during adaptation: ", int(v.Kind))
	}
}

func fromContextTag(ct *ContextTagValue) (any, error) {
	out := Context{Value: ct.Number, Kind: ct.Kind}
	if ct.Kind == Explicit {
		inner, err := fromAsnValue(*ct.Inner)
		if err != nil {
			return nil, err
		}
		out.Contains = inner
	} else {
		out.Contains = ct.Raw
	}
	return out, nil
}
