package asn1ber

import "testing"

func TestEncodeOID_sha256(t *testing.T) {
	got, err := encodeOID("sha256")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	want := []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}
	if string(got) != string(want) {
		t.Errorf("%s: want % X, got % X", t.Name(), want, got)
	}
}

func TestEncodeOID_unknownName(t *testing.T) {
	if _, err := encodeOID("not-a-registered-name"); err == nil {
		t.Errorf("%s: expected OidUnknownName error", t.Name())
	}
}

func TestEncodeOID_dottedFallback(t *testing.T) {
	got, err := encodeOID("1.2.840.10045.3.1.7")
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	name, err := decodeOID(got)
	if err != nil {
		t.Fatalf("%s: decode failed: %v", t.Name(), err)
	}
	if name != "1.2.840.10045.3.1.7" {
		t.Errorf("%s: want dotted form back, got %q", t.Name(), name)
	}
}

func TestOIDSymmetry(t *testing.T) {
	for _, name := range OIDNames() {
		enc, err := encodeOID(name)
		if err != nil {
			t.Fatalf("%s(%s): encode failed: %v", t.Name(), name, err)
		}
		got, err := decodeOID(enc)
		if err != nil {
			t.Fatalf("%s(%s): decode failed: %v", t.Name(), name, err)
		}
		if got != name {
			t.Errorf("%s(%s): round trip mismatch, got %q", t.Name(), name, got)
		}
	}
}

func TestOIDNames_sorted(t *testing.T) {
	names := OIDNames()
	if len(names) != len(oidTable) {
		t.Fatalf("%s: want %d names, got %d", t.Name(), len(oidTable), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("%s: names not sorted at index %d: %q >= %q", t.Name(), i, names[i-1], names[i])
		}
	}
}

func TestDecodeOID_malformed(t *testing.T) {
	if _, err := decodeOID(nil); err == nil {
		t.Errorf("%s: expected error on empty content", t.Name())
	}
	if _, err := decodeOID([]byte{0x81}); err == nil {
		t.Errorf("%s: expected error on truncated base-128 group", t.Name())
	}
}
