package asn1ber

import (
	"math/big"
	"testing"
	"time"
)

func TestToAsnValue_stringNarrowing(t *testing.T) {
	for idx, tc := range []struct {
		s    string
		want Kind
	}{
		{"test", KindPrintableString},
		{"Test_", KindIA5String},
		{"Tesᄳ", KindUTF8String},
	} {
		v, present, err := toAsnValue(tc.s, false, "$")
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if !present {
			t.Fatalf("%s[%d]: expected present", t.Name(), idx)
		}
		if v.Kind != tc.want {
			t.Errorf("%s[%d] want %s, got %s", t.Name(), idx, tc.want, v.Kind)
		}
	}
}

func TestToAsnValue_timestampCanonicalization(t *testing.T) {
	utc := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	v, _, err := toAsnValue(utc, false, "$")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if v.Kind != KindUTCTime {
		t.Errorf("%s: want UtcTime, got %s", t.Name(), v.Kind)
	}

	withNanos := time.Date(2020, 5, 1, 0, 0, 0, 123_000_000, time.UTC)
	v, _, err = toAsnValue(withNanos, false, "$")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if v.Kind != KindGeneralizedTime {
		t.Errorf("%s: want GeneralizedTime, got %s", t.Name(), v.Kind)
	}

	tooOld := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	v, _, err = toAsnValue(tooOld, false, "$")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if v.Kind != KindGeneralizedTime {
		t.Errorf("%s: want GeneralizedTime, got %s", t.Name(), v.Kind)
	}
}

func TestToAsnValue_nativeIntegers(t *testing.T) {
	for idx, h := range []any{
		int(42), int8(42), int16(42), int32(42), int64(42),
		uint(42), uint8(42), uint16(42), uint32(42), uint64(42),
		big.NewInt(42),
	} {
		v, _, err := toAsnValue(h, false, "$")
		if err != nil {
			t.Fatalf("%s[%d] failed: %v", t.Name(), idx, err)
		}
		if v.Kind != KindInteger || v.Int.Int64() != 42 {
			t.Errorf("%s[%d]: want Integer 42, got %s %v", t.Name(), idx, v.Kind, v.Int)
		}
	}
}

func TestToAsnValue_nilAndUndefined(t *testing.T) {
	v, present, err := toAsnValue(nil, false, "$")
	if err != nil || !present || v.Kind != KindNull {
		t.Fatalf("%s: nil case failed: v=%+v present=%t err=%v", t.Name(), v, present, err)
	}

	if _, _, err = toAsnValue(Undefined, false, "$"); err == nil {
		t.Errorf("%s: expected UndefinedRejected error", t.Name())
	}

	_, present, err = toAsnValue(Undefined, true, "$")
	if err != nil {
		t.Fatalf("%s: allowUndefined failed: %v", t.Name(), err)
	}
	if present {
		t.Errorf("%s: expected elided value when allowUndefined is set", t.Name())
	}
}

func TestToAsnValue_sequenceElidesUndefined(t *testing.T) {
	v, present, err := toAsnValue([]any{1, Undefined, 2}, true, "$")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if !present {
		t.Fatalf("%s: expected top-level sequence to be present", t.Name())
	}
	if len(v.Items) != 2 {
		t.Errorf("%s: want 2 items after eliding undefined, got %d", t.Name(), len(v.Items))
	}
}

func TestToAsnValue_taggedObjects(t *testing.T) {
	v, _, err := toAsnValue(OID{Name: "ed25519"}, false, "$")
	if err != nil || v.Kind != KindOID || v.OID != "ed25519" {
		t.Errorf("%s: OID case failed: v=%+v err=%v", t.Name(), v, err)
	}

	v, _, err = toAsnValue(Set{OID: OID{Name: "commonName"}, Value: "test"}, false, "$")
	if err != nil {
		t.Fatalf("%s: Set case failed: %v", t.Name(), err)
	}
	if v.Kind != KindSet {
		t.Errorf("%s: want Set, got %s", t.Name(), v.Kind)
	}

	v, _, err = toAsnValue(BitString{Value: []byte{0xB5}, UnusedBits: 3}, false, "$")
	if err != nil || v.Kind != KindBitString || v.BitStringUnused != 3 {
		t.Errorf("%s: BitString case failed: v=%+v err=%v", t.Name(), v, err)
	}

	v, _, err = toAsnValue(String{Kind: StringIA5, Value: "anything"}, false, "$")
	if err != nil || v.Kind != KindIA5String {
		t.Errorf("%s: String tag case failed: v=%+v err=%v", t.Name(), v, err)
	}

	v, _, err = toAsnValue(Date{Kind: DateUTC, Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}, false, "$")
	if err != nil || v.Kind != KindUTCTime {
		t.Errorf("%s: Date tag case failed: v=%+v err=%v", t.Name(), v, err)
	}
}

func TestToAsnValue_explicitContext(t *testing.T) {
	v, _, err := toAsnValue(Context{Value: 3, Kind: Explicit, Contains: int64(42)}, false, "$")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	enc, err := EncodeValue(v)
	if err != nil {
		t.Fatalf("%s: encode failed: %v", t.Name(), err)
	}
	want := []byte{0xA3, 0x03, 0x02, 0x01, 0x2A}
	if string(enc) != string(want) {
		t.Errorf("%s: want % X, got % X", t.Name(), want, enc)
	}
}

func TestToAsnValue_implicitContextFromPrimitive(t *testing.T) {
	v, _, err := toAsnValue(Context{Value: 1, Kind: Implicit, Contains: int64(42)}, false, "$")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	enc, err := EncodeValue(v)
	if err != nil {
		t.Fatalf("%s: encode failed: %v", t.Name(), err)
	}
	want := []byte{0x81, 0x01, 0x2A}
	if string(enc) != string(want) {
		t.Errorf("%s: want % X, got % X", t.Name(), want, enc)
	}
}

func TestToAsnValue_unsupportedHostType(t *testing.T) {
	if _, _, err := toAsnValue(struct{ X int }{X: 1}, false, "$"); err == nil {
		t.Errorf("%s: expected UnsupportedHostType error", t.Name())
	}
}

func TestFromAsnValue_inverse(t *testing.T) {
	host, err := fromAsnValue(BitStringValue([]byte{0xB5}, 3))
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	bs, ok := host.(BitString)
	if !ok || bs.UnusedBits != 3 {
		t.Errorf("%s: want BitString{UnusedBits:3}, got %+v", t.Name(), host)
	}

	host, err = fromAsnValue(OIDValue("account"))
	if err != nil || host.(OID).Name != "account" {
		t.Errorf("%s: Oid case failed: host=%+v err=%v", t.Name(), host, err)
	}
}
