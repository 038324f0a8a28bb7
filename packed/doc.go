// Package packed implements a self-describing variable-length encoding for
// unsigned integers in the range 0 to 1,077,936,127.
//
// A packed value occupies 1 to 4 bytes. The two most significant bits of the
// first byte hold the band index, which is the encoded length minus one, so a
// reader knows how many bytes to fetch after looking at a single byte. The
// remaining 6 bits of the first byte and all bits of the following bytes hold
// the value minus the band bias, most significant byte first.
//
// # Bands
//
//	Band | Tag | Bias     | Length | Range
//	-----|-----|----------|--------|----------------------------
//	0    | 00  | 0        | 1      | 0 .. 63
//	1    | 01  | 0x40     | 2      | 64 .. 16,447
//	2    | 10  | 0x4000   | 3      | 16,448 .. 4,210,687
//	3    | 11  | 0x400000 | 4      | 4,210,688 .. 1,077,936,127
//
// Encode always picks the shortest band, so each value has one canonical
// encoding. The bias of a band is the capacity of the previous band alone, not
// the sum of all shorter bands, so 3- and 4-byte sequences with a small offset
// (for example 0x80 0x00 0x00, which decodes to 16,384) are never produced by
// Encode. Decode accepts them and returns the in-range value they denote. The
// largest 4-byte sequence 0xFF 0xFF 0xFF 0xFF decodes to exactly MaxValue.
//
// # Usage
//
//	data, err := packed.Encode(16447) // [0x7F 0xFF]
//	if err != nil {
//	    return err
//	}
//
//	value, err := packed.Decode(data) // 16447
//
// Embedding inside a larger record:
//
//	buf = append(buf, header...)
//	buf, _ = packed.AppendEncode(buf, 4210688)
//	...
//	value, err := packed.DecodeAt(buf, len(header))
//
// # Errors
//
// Out-of-range values, length mismatches and truncated buffers are reported as
// errors wrapping the sentinels in the errs package. Zero is a valid decoded
// value, so no sentinel value is ever returned in place of an error.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package packed
