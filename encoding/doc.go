// Package encoding stores many packed values in one contiguous payload.
//
// A packed sequence is the plain concatenation of packed values:
//
//	values:  5        64          16448
//	payload: 05 | 40 00 | 80 00 00
//
// No delimiter or length prefix is needed because the first byte of each value
// announces its length. This is the form in which packed integers are embedded
// inside larger records; the frame package builds on it to add a header,
// compression and a checksum.
//
// # Encoding
//
//	enc := encoding.NewPackedEncoder()
//	defer enc.Finish()
//
//	if err := enc.WriteSlice([]int64{5, 64, 16448}); err != nil {
//	    return err
//	}
//	payload := bytes.Clone(enc.Bytes())
//
// # Decoding
//
//	dec := encoding.NewPackedDecoder()
//	for v, err := range dec.All(payload) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(v)
//	}
//
// At gives random access by index; it walks the sequence, so it is O(n).
//
// # Thread Safety
//
// PackedEncoder is not safe for concurrent use. PackedDecoder is stateless.
package encoding
