package asn1ber

/*
errors.go contains the error taxonomy shared by every component of
this package: a handful of typed wrappers (mirroring the category
wrappers in go-asn1plus's err.go), and the sentinel/parameterized
constructors built on top of them.
*/

import "errors"

var mkerr func(string) error = errors.New

/*
types which implement the error interface, each tagging its message
with the subsystem that raised it.
*/
type (
	codecErr    struct{ e error }
	primitiveErr struct{ e error }
	adapterErr  struct{ e error }
	tlvErr      struct{ e error }
	oidErr      struct{ e error }
)

func (r codecErr) Error() string     { return "CODEC ERROR: " + r.e.Error() }
func (r primitiveErr) Error() string { return "PRIMITIVE ERROR: " + r.e.Error() }
func (r adapterErr) Error() string   { return "ADAPTER ERROR: " + r.e.Error() }
func (r tlvErr) Error() string       { return "TLV ERROR: " + r.e.Error() }
func (r oidErr) Error() string       { return "OID ERROR: " + r.e.Error() }

func (r codecErr) Unwrap() error     { return r.e }
func (r primitiveErr) Unwrap() error { return r.e }
func (r adapterErr) Unwrap() error   { return r.e }
func (r tlvErr) Unwrap() error       { return r.e }
func (r oidErr) Unwrap() error       { return r.e }

func codecErrorf(m ...any) error     { return codecErr{mkerrf(m...)} }
func primitiveErrorf(m ...any) error { return primitiveErr{mkerrf(m...)} }
func adapterErrorf(m ...any) error   { return adapterErr{mkerrf(m...)} }
func tlvErrorf(m ...any) error       { return tlvErr{mkerrf(m...)} }
func oidErrorf(m ...any) error       { return oidErr{mkerrf(m...)} }

/*
Error kinds named explicitly by the specification (§4.6, §7). Each is
a sentinel that callers can compare against with [errors.Is]; the
wrapped message carries the offset or tagged-object path where
available.
*/
var (
	ErrTruncatedInput       = codecErr{mkerr("truncated input")}
	ErrLengthOverflow       = codecErr{mkerr("length overflow")}
	ErrTrailingBytes        = codecErr{mkerr("trailing bytes after top-level object")}
	ErrUnknownTag           = codecErr{mkerr("unknown or unsupported tag")}
	ErrIntegerOverflow      = primitiveErr{mkerr("integer overflow")}
	ErrOidMalformed         = oidErr{mkerr("malformed OID encoding")}
	ErrOidUnknownName       = oidErr{mkerr("unknown symbolic OID name")}
	ErrStringCharsetViolation = primitiveErr{mkerr("character outside the declared charset")}
	ErrDateOutOfRange       = primitiveErr{mkerr("date out of representable range")}
	ErrSetShapeUnsupported  = codecErr{mkerr("SET shape not supported")}
	ErrTypeMismatch         = adapterErr{mkerr("decoded type does not match requested accessor")}
	ErrUndefinedRejected    = adapterErr{mkerr("undefined value rejected (allowUndefined not set)")}
	ErrUnknownTaggedType    = adapterErr{mkerr("unknown tagged-object type discriminator")}
	ErrDepthExceeded        = codecErr{mkerr("maximum recursion depth exceeded")}
	ErrUnsupportedHostType  = adapterErr{mkerr("host value matches no adapter rule")}
)

/*
sentinelErr wraps a named sentinel together with call-site detail,
keeping the sentinel reachable through Unwrap so errors.Is/errors.As
against the exported Err* vars works across every parameterized
constructor in this package, per the doc comment above.
*/
type sentinelErr struct {
	sentinel error
	detail   string
}

func (s *sentinelErr) Error() string { return s.sentinel.Error() + s.detail }
func (s *sentinelErr) Unwrap() error { return s.sentinel }

// wrapSentinel attaches detail (built the way [mkerrf] builds a
// message) to sentinel without losing the sentinel's identity.
func wrapSentinel(sentinel error, parts ...any) error {
	return &sentinelErr{sentinel: sentinel, detail: joinParts(parts...)}
}

func errTruncated(offset int) error {
	return wrapSentinel(ErrTruncatedInput, " at offset ", offset)
}

func errTrailingBytes(offset int) error {
	return wrapSentinel(ErrTrailingBytes, " at offset ", offset)
}

func errUnknownTag(class, tag int, offset int) error {
	return wrapSentinel(ErrUnknownTag, " (class=", class, " tag=", tag, ") at offset ", offset)
}

func errTypeMismatch(want, got string) error {
	return wrapSentinel(ErrTypeMismatch, ": want ", want, ", got ", got)
}

func errUnsupportedHostType(path string) error {
	if path == "" {
		return ErrUnsupportedHostType
	}
	return wrapSentinel(ErrUnsupportedHostType, " at ", path)
}
