/*
Package asn1ber implements a bidirectional codec between ordinary Go
values and ASN.1 BER (Basic Encoding Rules), of the flavor used by the
KeetaNet node: arbitrary-precision signed integers, booleans, several
restricted and unrestricted string character sets, UTCTime and
GeneralizedTime, octet strings, bit strings, object identifiers (with
a symbolic-name alias table), sets, sequences, and context-specific
tags (implicit and explicit).

Application code describes ASN.1 structures as ordinary Go values --
bools, strings, []byte, *big.Int, time.Time, []any, and a handful of
tagged helper types for the shapes that have no natural Go
equivalent (OID, BitString, Context, Set, String, Date) -- and gets
byte-exact BER on the wire, and vice versa.

Only definite-length BER is supported; DER/CER canonicalization,
schema-driven (ASN.1 module) validation, and streaming/push-parser
operation are out of scope. See [Encode] and [Decode] for the two
primary entry points, and [NewDecoder] for the typed-accessor façade
over a tree that is parsed in full when the handle is built.
*/
package asn1ber
