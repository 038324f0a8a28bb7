// Package compress provides the payload codecs a frame can apply to its packed
// value sequence.
//
// Packed integers are already a compact encoding, so compression is optional
// and off by default. It pays off for long sequences with repetition, for
// example counters that revisit the same small values.
//
// Supported algorithms:
//   - None (format.CompressionNone): payload stored verbatim
//   - Zstd (format.CompressionZstd): best ratio, pure Go by default, libzstd with -tags gozstd
//   - S2 (format.CompressionS2): fast with a good ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	...
//	original, err := codec.Decompress(compressed)
//
// Use Measure to compare algorithms on a representative payload before picking one.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
package compress
