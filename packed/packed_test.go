package packed

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/packuint/errs"
)

func TestConstants(t *testing.T) {
	require.Equal(t, 64, TwoByteBase)
	require.Equal(t, 16448, ThreeByteBase)
	require.Equal(t, 4210688, FourByteBase)
	require.Equal(t, 1077936128, Limit)
	require.Equal(t, 1077936127, MaxValue)
}

func TestEncode_BandBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 63, []byte{0x3F}},
		{"two byte min", 64, []byte{0x40, 0x00}},
		{"two byte max", 16447, []byte{0x7F, 0xFF}},
		{"three byte min", 16448, []byte{0x80, 0x00, 0x40}},
		{"three byte max", 4210687, []byte{0xBF, 0xFF, 0xFF}},
		{"four byte min", 4210688, []byte{0xC0, 0x00, 0x40, 0x00}},
		{"four byte max", 1077936127, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"two byte mid", 64 + 0x1234, []byte{0x52, 0x34}},
		{"three byte mid", 0x4000 + 0x123456, []byte{0x92, 0x34, 0x56}},
		{"four byte mid", 0x400000 + 0x01020304, []byte{0xC1, 0x02, 0x03, 0x04}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			decoded, err := Decode(got)
			require.NoError(t, err)
			require.Equal(t, tt.value, decoded)
		})
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		want  error
	}{
		{"minus one", -1, errs.ErrNegativeValue},
		{"very negative", -1 << 40, errs.ErrNegativeValue},
		{"limit", Limit, errs.ErrValueTooLarge},
		{"limit literal", 1077936128, errs.ErrValueTooLarge},
		{"far above limit", 1 << 40, errs.ErrValueTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.value)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
			require.Nil(t, got)
		})
	}
}

func TestAppendEncode(t *testing.T) {
	prefix := []byte{0xAA, 0xBB}

	buf, err := AppendEncode(prefix, 16448)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xBB, 0x80, 0x00, 0x00}, buf)

	t.Run("error leaves dst unchanged", func(t *testing.T) {
		dst := []byte{0x01}
		out, err := AppendEncode(dst, -5)
		require.ErrorIs(t, err, errs.ErrNegativeValue)
		require.Equal(t, []byte{0x01}, out)
	})
}

func TestEncodedLength(t *testing.T) {
	lengths := map[int64]int{
		0: 1, 63: 1,
		64: 2, 16447: 2,
		16448: 3, 4210687: 3,
		4210688: 4, MaxValue: 4,
	}
	for value, want := range lengths {
		got, err := EncodedLength(value)
		require.NoError(t, err)
		assert.Equal(t, want, got, "value %d", value)
	}

	_, err := EncodedLength(-1)
	require.ErrorIs(t, err, errs.ErrNegativeValue)
	_, err = EncodedLength(Limit)
	require.ErrorIs(t, err, errs.ErrValueTooLarge)
}

func TestExpectedLength(t *testing.T) {
	for b := 0; b < 256; b++ {
		want := b/64 + 1
		require.Equal(t, want, ExpectedLength(byte(b)), "byte 0x%02x", b)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Decode(nil)
		require.ErrorIs(t, err, errs.ErrEmptyInput)
		_, err = Decode([]byte{})
		require.ErrorIs(t, err, errs.ErrEmptyInput)
	})

	tests := []struct {
		name string
		data []byte
	}{
		{"two byte tag, one byte", []byte{0x40}},
		{"one byte tag, two bytes", []byte{0x00, 0x00}},
		{"three byte tag, two bytes", []byte{0x80, 0x00}},
		{"four byte tag, five bytes", []byte{0xC0, 0x00, 0x00, 0x00, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrLengthMismatch)
			require.Zero(t, value)
		})
	}
}

func TestDecode_StaysInRange(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int64
	}{
		{"one byte max", []byte{0x3F}, 63},
		{"two byte max", []byte{0x7F, 0xFF}, 16447},
		{"three byte max", []byte{0xBF, 0xFF, 0xFF}, 4210687},
		{"four byte max", []byte{0xFF, 0xFF, 0xFF, 0xFF}, MaxValue},
		{"three byte short offset", []byte{0x80, 0x00, 0x00}, 0x4000},
		{"four byte short offset", []byte{0xC0, 0x00, 0x00, 0x00}, 0x400000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.LessOrEqual(t, got, int64(MaxValue))
		})
	}
}

func TestEncode_UsesShortestBand(t *testing.T) {
	// values a longer band could also denote with a short offset
	lengths := map[int64]int{
		0x4000:   2,
		0x403F:   2,
		0x400000: 3,
		0x403FFF: 3,
	}
	for v, want := range lengths {
		p, err := Encode(v)
		require.NoError(t, err)
		require.Len(t, p, want, "value %d", v)

		got, err := Decode(p)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestDecodeAt(t *testing.T) {
	t.Run("buffer too short", func(t *testing.T) {
		_, err := DecodeAt([]byte{0x40}, 0)
		require.ErrorIs(t, err, errs.ErrBufferTooShort)
		require.False(t, errors.Is(err, errs.ErrLengthMismatch))
	})

	t.Run("start past end", func(t *testing.T) {
		_, err := DecodeAt([]byte{0x00, 0x01}, 2)
		require.ErrorIs(t, err, errs.ErrBufferTooShort)
		_, err = DecodeAt(nil, 0)
		require.ErrorIs(t, err, errs.ErrBufferTooShort)
	})

	t.Run("negative start", func(t *testing.T) {
		_, err := DecodeAt([]byte{0x00}, -1)
		require.ErrorIs(t, err, errs.ErrInvalidIndex)
	})

	t.Run("trailing bytes ignored", func(t *testing.T) {
		value, err := DecodeAt([]byte{0xFF, 0x7F, 0xFF, 0x99, 0x99}, 1)
		require.NoError(t, err)
		require.Equal(t, int64(16447), value)
	})

	t.Run("value ends exactly at buffer end", func(t *testing.T) {
		value, err := DecodeAt([]byte{0x00, 0xC0, 0x00, 0x40, 0x01}, 1)
		require.NoError(t, err)
		require.Equal(t, int64(FourByteBase+1), value)
	})
}

func TestDecodeAt_MatchesDecode(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := append(boundaryValues(), randomValues(rng, 200)...)

	for _, v := range values {
		p, err := Encode(v)
		require.NoError(t, err)

		for _, padLen := range []int{0, 1, 3, 7} {
			buf := make([]byte, 0, padLen*2+len(p))
			for i := 0; i < padLen; i++ {
				buf = append(buf, byte(rng.Intn(256)))
			}
			start := len(buf)
			buf = append(buf, p...)
			for i := 0; i < padLen; i++ {
				buf = append(buf, byte(rng.Intn(256)))
			}

			want, err := Decode(p)
			require.NoError(t, err)
			got, err := DecodeAt(buf, start)
			require.NoError(t, err)
			require.Equal(t, want, got, "value %d pad %d", v, padLen)
		}
	}
}

func TestDecodeNext(t *testing.T) {
	var buf []byte
	values := []int64{0, 63, 64, 16447, 16448, 4210687, 4210688, MaxValue}
	for _, v := range values {
		var err error
		buf, err = AppendEncode(buf, v)
		require.NoError(t, err)
	}

	decoded := make([]int64, 0, len(values))
	for len(buf) > 0 {
		v, n, err := DecodeNext(buf)
		require.NoError(t, err)
		decoded = append(decoded, v)
		buf = buf[n:]
	}
	require.Equal(t, values, decoded)

	_, _, err := DecodeNext(nil)
	require.ErrorIs(t, err, errs.ErrEmptyInput)
	_, _, err = DecodeNext([]byte{0x80, 0x01})
	require.ErrorIs(t, err, errs.ErrBufferTooShort)
}

func TestRoundTrip(t *testing.T) {
	check := func(t *testing.T, v int64) {
		t.Helper()
		p, err := Encode(v)
		require.NoError(t, err)
		require.Equal(t, ExpectedLength(p[0]), len(p), "value %d", v)

		got, err := Decode(p)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	t.Run("band edges", func(t *testing.T) {
		for _, v := range boundaryValues() {
			check(t, v)
		}
	})

	t.Run("first two bands exhaustive", func(t *testing.T) {
		for v := int64(0); v < ThreeByteBase; v++ {
			check(t, v)
		}
	})

	t.Run("strided full range", func(t *testing.T) {
		for v := int64(0); v <= MaxValue; v += 65521 {
			check(t, v)
		}
	})

	t.Run("random", func(t *testing.T) {
		for _, v := range randomValues(rand.New(rand.NewSource(7)), 10000) {
			check(t, v)
		}
	})
}

func TestEncode_Concurrent(t *testing.T) {
	done := make(chan struct{})
	for g := 0; g < 8; g++ {
		go func(seed int64) {
			defer func() { done <- struct{}{} }()
			rng := rand.New(rand.NewSource(seed))
			for _, v := range randomValues(rng, 1000) {
				p, err := Encode(v)
				assert.NoError(t, err)
				got, err := Decode(p)
				assert.NoError(t, err)
				assert.Equal(t, v, got)
			}
		}(int64(g))
	}
	for g := 0; g < 8; g++ {
		<-done
	}
}

func boundaryValues() []int64 {
	var values []int64
	for _, edge := range []int64{0, TwoByteBase, ThreeByteBase, FourByteBase, Limit} {
		for d := int64(-2); d <= 2; d++ {
			v := edge + d
			if v >= 0 && v <= MaxValue {
				values = append(values, v)
			}
		}
	}

	return values
}

func randomValues(rng *rand.Rand, n int) []int64 {
	values := make([]int64, n)
	for i := range values {
		values[i] = rng.Int63n(Limit)
	}

	return values
}
