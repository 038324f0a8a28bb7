package packed

// Band boundaries. A value is stored in the shortest band whose range holds it.
const (
	TwoByteBase   = 0x40       // first value stored in 2 bytes (64)
	ThreeByteBase = 0x4040     // first value stored in 3 bytes (16,448)
	FourByteBase  = 0x404000   // first value stored in 4 bytes (4,210,688)
	Limit         = 0x40400000 // exclusive upper bound (1,077,936,128)

	MaxValue  = Limit - 1 // largest packable value (1,077,936,127)
	MaxLength = 4         // longest encoding in bytes
)

// Band biases subtracted from a value before its offset is written. The bias of
// band n is the capacity of band n-1 alone, so some short offsets in bands 3 and
// 4 are never produced by Encode.
const (
	twoByteBias   = 0x40
	threeByteBias = 0x4000
	fourByteBias  = 0x400000
)

// First-byte layout.
const (
	Tag1 = 0x00 // 1-byte value, bits 7-6 = 00
	Tag2 = 0x40 // 2-byte value, bits 7-6 = 01
	Tag3 = 0x80 // 3-byte value, bits 7-6 = 10
	Tag4 = 0xC0 // 4-byte value, bits 7-6 = 11

	TagMask    = 0xC0 // Mask for the band tag (bits 7-6)
	OffsetMask = 0x3F // Mask for the high offset bits in byte 0 (bits 5-0)
	tagShift   = 6
)

// bandBias maps band index (length - 1) to the bias of that band.
var bandBias = [MaxLength]int64{0, twoByteBias, threeByteBias, fourByteBias}

// bandTag maps band index to the tag bits stored in byte 0.
var bandTag = [MaxLength]byte{Tag1, Tag2, Tag3, Tag4}
