// Package frame stores a list of packed integers as one self-describing frame.
//
// # Layout
//
//	+-------+-------+---------------+-------------+---------+--------------+---------+------------+
//	| 'P'   | 'U'   | version|flags | compression | count   | payload size | payload | [checksum] |
//	| 1 B   | 1 B   | 1 B           | 1 B         | packed  | packed       | N B     | 8 B        |
//	+-------+-------+---------------+-------------+---------+--------------+---------+------------+
//
//   - version is the high nibble of byte 2, flags the low nibble
//   - FlagChecksum marks the presence of the xxHash64 trailer, computed over
//     the uncompressed payload and written big-endian
//   - count and payload size are themselves packed values, so small frames
//     have a 6-byte header
//   - the payload is a packed sequence (see the encoding package), optionally
//     compressed with one of the codecs in the compress package
//
// # Usage
//
//	enc, err := frame.NewEncoder(frame.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	if err := enc.WriteSlice(values); err != nil {
//	    return err
//	}
//	data, err := enc.Finish()
//
//	dec, err := frame.NewDecoder(data)
//	if err != nil {
//	    return err
//	}
//	for v := range dec.All() {
//	    fmt.Println(v)
//	}
//
// A frame holds at most 1,077,936,127 values and its stored payload at most as
// many bytes, the range of a packed value.
package frame
