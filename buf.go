package asn1ber

/*
buf.go implements a small sync.Pool for the scratch byte slices the
encoder allocates while building TLV content, the same pattern
go-asn1plus's pdu.go uses for its own BER/CER packet writers. Pooling
matters here because encoding a deeply nested SEQUENCE produces one
scratch buffer per recursive call.
*/

import "sync"

var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 64)
		return &b
	},
}

func getBuf() *[]byte { return bufPool.Get().(*[]byte) }

func putBuf(p *[]byte) {
	*p = (*p)[:0]
	bufPool.Put(p)
}
