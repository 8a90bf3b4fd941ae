package asn1ber

import "testing"

func TestEncodeLength(t *testing.T) {
	for idx, tc := range []struct {
		n    int
		want []byte
	}{
		{0, []byte{0x00}},
		{4, []byte{0x04}},
		{127, []byte{0x7F}},
		{128, []byte{0x81, 0x80}},
		{256, []byte{0x82, 0x01, 0x00}},
	} {
		got := encodeLength(nil, tc.n)
		if string(got) != string(tc.want) {
			t.Errorf("%s[%d] want % X, got % X", t.Name(), idx, tc.want, got)
		}
	}
}

func TestDecodeLength(t *testing.T) {
	for idx, tc := range []struct {
		data       []byte
		wantLen    int
		wantOffset int
		wantErr    bool
	}{
		{[]byte{0x04}, 4, 1, false},
		{[]byte{0x81, 0x80}, 128, 2, false},
		{[]byte{0x82, 0x01, 0x00}, 256, 3, false},
		{[]byte{0x80}, 0, 0, true},
		{[]byte{0x85, 0, 0, 0, 0, 0}, 0, 0, true},
		{nil, 0, 0, true},
	} {
		n, consumed, err := decodeLength(tc.data, 0)
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
		if n != tc.wantLen || consumed != tc.wantOffset {
			t.Errorf("%s[%d] want (%d,%d), got (%d,%d)", t.Name(), idx, tc.wantLen, tc.wantOffset, n, consumed)
		}
	}
}

func TestLengthRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 127, 128, 255, 65535, 1 << 20} {
		enc := encodeLength(nil, n)
		got, consumed, err := decodeLength(enc, 0)
		if err != nil {
			t.Fatalf("%s(%d) failed: %v", t.Name(), n, err)
		}
		if got != n || consumed != len(enc) {
			t.Errorf("%s(%d): want (%d,%d), got (%d,%d)", t.Name(), n, n, len(enc), got, consumed)
		}
	}
}
