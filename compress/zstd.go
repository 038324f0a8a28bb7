package compress

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in
// codecs. Long runs of small values (mostly single-byte packed values) compress
// particularly well.
//
// The implementation is selected at build time: the pure Go klauspost/compress
// encoder by default, or the cgo gozstd binding when built with
// `-tags gozstd` and cgo enabled. Both produce standard zstd frames, so either
// side can read what the other wrote.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
