package asn1ber

/*
alias.go collects the small set of standard library aliases used
throughout this package, following the pattern go-asn1plus's
common.go uses to keep call sites short and greppable.
*/

import (
	"strconv"
	"strings"
)

var (
	itoa func(int) string      = strconv.Itoa
	join func([]string, string) string = strings.Join
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
joinParts concatenates its arguments into a single string. It accepts
strings, ints, and errors (unwrapped to their message) so call sites
can mix literal text with dynamic values without manual formatting.
*/
func joinParts(parts ...any) string {
	if len(parts) == 0 {
		return ""
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case byte:
			b.WriteString(itoa(int(v)))
		default:
			b.WriteString("<unsupported>")
		}
	}

	return b.String()
}

/*
mkerrf concatenates its arguments into a single error message,
mirroring go-asn1plus's err.go helper of the same name. The resulting
error carries no sentinel identity; use [wrapSentinel] instead when a
call site needs the result to satisfy errors.Is/errors.As against a
named sentinel.
*/
func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}
	return mkerr(joinParts(parts...))
}
