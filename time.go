package asn1ber

/*
time.go implements the two ASN.1 temporal syntaxes this package
supports: UTCTime (second precision, two-digit year, range
1950-2049) and GeneralizedTime (millisecond precision, four-digit
year, always emitted with an explicit "Z" and millisecond component
per spec.md §4.4). Decode is more permissive than encode, per
spec.md §9: GeneralizedTime content both with and without a
millisecond component is accepted on decode even though encode
always emits the millisecond form.
*/

import (
	"time"
)

const (
	utcTimeLayout  = "060102150405" // YYMMDDhhmmss, "Z" appended separately
	genTimeLayout  = "20060102150405.000"
	genTimeLayoutNoMillis = "20060102150405"
)

/*
UTCTimeRepresentable reports whether t has zero sub-second precision
and a year within the UTCTime range (1950-2049), the canonical-form
test the adapter (adapt.go) uses to choose between UTCTime and
GeneralizedTime.
*/
func UTCTimeRepresentable(t time.Time) bool {
	year := t.UTC().Year()
	return t.UTC().Nanosecond() == 0 && 1950 <= year && year <= 2049
}

func encodeUTCTime(t time.Time) ([]byte, error) {
	u := t.UTC()
	year := u.Year()
	if year < 1950 || year > 2049 {
		return nil, wrapSentinel(ErrDateOutOfRange, ": UTCTime year out of range (1950-2049): ", year)
	}

	return []byte(u.Format(utcTimeLayout) + "Z"), nil
}

func encodeGeneralizedTime(t time.Time) []byte {
	u := t.UTC()
	return []byte(u.Format(genTimeLayout) + "Z")
}

func decodeUTCTime(content []byte) (time.Time, error) {
	s := string(content)
	if len(s) != 13 || s[12] != 'Z' {
		return time.Time{}, wrapSentinel(ErrDateOutOfRange, ": malformed UTCTime: ", s)
	}

	t, err := time.Parse(utcTimeLayout, s[:12])
	if err != nil {
		return time.Time{}, wrapSentinel(ErrDateOutOfRange, ": malformed UTCTime: ", s)
	}

	year := t.Year()
	// time.Parse's "06" component maps 69-99 to 1969-1999 and 00-68 to
	// 2000-2068; remap two-digit years 50-68 (parsed as 2050-2068) into
	// the 1950-1968 part of the UTCTime range.
	if year >= 2050 {
		year -= 100
	}

	return time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

func decodeGeneralizedTime(content []byte) (time.Time, error) {
	s := string(content)
	if len(s) == 0 || s[len(s)-1] != 'Z' {
		return time.Time{}, wrapSentinel(ErrDateOutOfRange, ": malformed GeneralizedTime: ", s)
	}
	body := s[:len(s)-1]

	if t, err := time.Parse(genTimeLayout, body); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(genTimeLayoutNoMillis, body); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, wrapSentinel(ErrDateOutOfRange, ": malformed GeneralizedTime: ", s)
}
