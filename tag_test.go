package asn1ber

import "testing"

func TestEncodeIdentifier(t *testing.T) {
	for idx, tc := range []struct {
		id      identifier
		want    byte
		wantErr bool
	}{
		{identifier{class: classUniversal, constructed: false, number: tagBoolean}, 0x01, false},
		{identifier{class: classUniversal, constructed: true, number: tagSequence}, 0x30, false},
		{identifier{class: classUniversal, constructed: true, number: tagSet}, 0x31, false},
		{identifier{class: classContextSpecific, constructed: true, number: 3}, 0xA3, false},
		{identifier{class: classContextSpecific, constructed: false, number: 0}, 0x80, false},
		{identifier{class: classUniversal, number: 31}, 0, true},
		{identifier{class: 4, number: 1}, 0, true},
	} {
		got, err := encodeIdentifier(tc.id)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s[%d] expected error, got none", t.Name(), idx)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s[%d] unexpected error: %v", t.Name(), idx, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s[%d] want 0x%02X, got 0x%02X", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDecodeIdentifier(t *testing.T) {
	id, n, err := decodeIdentifier([]byte{0x30}, 0)
	if err != nil {
		t.Fatalf("%s failed: %v", t.Name(), err)
	}
	if n != 1 || id.class != classUniversal || !id.constructed || id.number != tagSequence {
		t.Errorf("%s: unexpected identifier: %+v", t.Name(), id)
	}

	if _, _, err = decodeIdentifier([]byte{0x1F}, 0); err == nil {
		t.Errorf("%s: expected error on high-tag-number form", t.Name())
	}

	if _, _, err = decodeIdentifier(nil, 0); err == nil {
		t.Errorf("%s: expected error on empty input", t.Name())
	}
}
