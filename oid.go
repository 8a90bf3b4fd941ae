package asn1ber

/*
oid.go implements the OBJECT IDENTIFIER codec (tag 6) and the
process-wide symbolic-name alias table KeetaNet uses in place of
raw dotted OIDs. Grounded on go-asn1plus's oid.go for the general
shape of an OID codec, and on the symbolic table baked into the
original KeetaNet source's objects.rs (a phf::Map<&str, &[u32]> in
the Rust original, reproduced here as two plain maps per spec.md
§3 -- "a process-wide immutable map, both directions must be
consulted").
*/

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// oidTable is the symbolic-name -> dotted-OID alias table required by
// spec.md §3. It is populated once at package init and never mutated
// afterward, so concurrent readers need no coordination (spec.md §5).
var oidTable = map[string]string{
	"sha256":            "2.16.840.1.101.3.4.2.1",
	"sha3-256":          "2.16.840.1.101.3.4.2.8",
	"sha3-256WithEcDSA": "2.16.840.1.101.3.4.3.10",
	"sha256WithEcDSA":   "1.2.840.10045.4.3.2",
	"ecdsa":             "1.2.840.10045.2.1",
	"ed25519":           "1.3.101.112",
	"secp256k1":         "1.3.132.0.10",
	"account":           "2.23.42.2.7.11",
	"serialNumber":      "2.5.4.5",
	"member":            "2.5.4.31",
	"commonName":        "2.5.4.3",
	"hash":              "1.3.6.1.4.1.8301.3.2.2.1.1",
	"hashData":          "2.16.840.1.101.3.3.1.3",
}

// reverse lookup, built once from oidTable.
var oidTableReverse = func() map[string]string {
	rev := make(map[string]string, len(oidTable))
	for name, dotted := range oidTable {
		rev[dotted] = name
	}
	return rev
}()

/*
OIDNames returns the symbolic names registered in the alias table,
sorted for deterministic output.
*/
func OIDNames() []string {
	names := maps.Keys(oidTable)
	sort.Strings(names)
	return names
}

func resolveOIDDotted(nameOrDotted string) (string, error) {
	if dotted, ok := oidTable[nameOrDotted]; ok {
		return dotted, nil
	}
	if strings.Contains(nameOrDotted, ".") {
		return nameOrDotted, nil
	}
	return "", wrapSentinel(ErrOidUnknownName, ": ", nameOrDotted)
}

func resolveOIDSymbolic(dotted string) string {
	if name, ok := oidTableReverse[dotted]; ok {
		return name
	}
	return dotted
}

func parseDottedOID(s string) ([]uint64, error) {
	parts := strings.Split(s, ".")
	arcs := make([]uint64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, wrapSentinel(ErrOidMalformed, ": bad arc ", p)
		}
		arcs = append(arcs, v)
	}
	return arcs, nil
}

/*
encodeOID returns the base-128 content octets of the OBJECT
IDENTIFIER named by nameOrDotted, per spec.md §4.3: the symbolic
table is consulted first, and a name absent from the table but
containing a '.' is treated as an already-dotted OID.
*/
func encodeOID(nameOrDotted string) ([]byte, error) {
	dotted, err := resolveOIDDotted(nameOrDotted)
	if err != nil {
		return nil, err
	}

	arcs, err := parseDottedOID(dotted)
	if err != nil {
		return nil, err
	}
	if len(arcs) < 2 {
		return nil, oidErrorf("OBJECT IDENTIFIER requires at least two arcs: ", dotted)
	}
	if arcs[0] > 2 {
		return nil, oidErrorf("first arc must be 0, 1, or 2: ", dotted)
	}
	if arcs[0] < 2 && arcs[1] >= 40 {
		return nil, oidErrorf("second arc must be < 40 when first arc is 0 or 1: ", dotted)
	}

	out := encodeBase128(40*arcs[0] + arcs[1])
	for _, arc := range arcs[2:] {
		out = append(out, encodeBase128(arc)...)
	}
	return out, nil
}

// encodeBase128 returns the base-128 big-endian encoding of v, with
// the continuation bit (0x80) set on every octet but the last.
func encodeBase128(v uint64) []byte {
	if v == 0 {
		return []byte{0x00}
	}

	var out []byte
	for v > 0 {
		out = append([]byte{byte(v & 0x7F)}, out...)
		v >>= 7
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] |= 0x80
	}
	return out
}

func decodeBase128(data []byte) (v uint64, consumed int, err error) {
	for {
		if consumed >= len(data) {
			return 0, 0, ErrOidMalformed
		}
		b := data[consumed]
		v = v<<7 | uint64(b&0x7F)
		consumed++
		if b&0x80 == 0 {
			return v, consumed, nil
		}
	}
}

/*
decodeOID parses the content octets of an OBJECT IDENTIFIER and
returns its symbolic name if one is registered, or its dotted form
otherwise, per spec.md §4.3.
*/
func decodeOID(content []byte) (string, error) {
	if len(content) == 0 {
		return "", ErrOidMalformed
	}

	first, consumed, err := decodeBase128(content)
	if err != nil {
		return "", ErrOidMalformed
	}
	var arc0, arc1 uint64
	if first >= 80 {
		arc0, arc1 = 2, first-80
	} else {
		arc0, arc1 = first/40, first%40
	}

	arcs := []uint64{arc0, arc1}

	rest := content[consumed:]
	for len(rest) > 0 {
		v, consumed, err := decodeBase128(rest)
		if err != nil {
			return "", ErrOidMalformed
		}
		arcs = append(arcs, v)
		rest = rest[consumed:]
	}

	parts := make([]string, len(arcs))
	for i, a := range arcs {
		parts[i] = strconv.FormatUint(a, 10)
	}
	dotted := join(parts, ".")

	return resolveOIDSymbolic(dotted), nil
}
