package codec

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width[int8]())
	assert.Equal(t, 1, Width[uint8]())
	assert.Equal(t, 1, Width[bool]())
	assert.Equal(t, 2, Width[int16]())
	assert.Equal(t, 2, Width[uint16]())
	assert.Equal(t, 4, Width[int32]())
	assert.Equal(t, 4, Width[uint32]())
	assert.Equal(t, 4, Width[float32]())
	assert.Equal(t, 8, Width[int64]())
	assert.Equal(t, 8, Width[uint64]())
	assert.Equal(t, 8, Width[float64]())
}

func TestMarshal_LittleEndianLayout(t *testing.T) {
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, Marshal([]int32{0x0201}))
	assert.Equal(t, []byte{0xff, 0xff}, Marshal([]int16{-1}))
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, Marshal([]float32{1}))
	assert.Equal(t, []byte{1, 0, 1}, Marshal([]bool{true, false, true}))
}

func roundTrip[T Fixed](t *testing.T, src []T) {
	t.Helper()
	s := EncodeElements(src)
	dst := make([]T, len(src))
	require.NoError(t, DecodeElements(s, dst))
	assert.Equal(t, Marshal(src), Marshal(dst))
}

func TestElements_RoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	const n = 257
	i8 := make([]int8, n)
	i16 := make([]int16, n)
	i32 := make([]int32, n)
	i64 := make([]int64, n)
	u8 := make([]uint8, n)
	u16 := make([]uint16, n)
	u32 := make([]uint32, n)
	u64 := make([]uint64, n)
	f32 := make([]float32, n)
	f64 := make([]float64, n)
	b := make([]bool, n)
	for i := 0; i < n; i++ {
		x := r.Uint64()
		i8[i], i16[i], i32[i], i64[i] = int8(x), int16(x), int32(x), int64(x)
		u8[i], u16[i], u32[i], u64[i] = uint8(x), uint16(x), uint32(x), x
		f32[i] = math.Float32frombits(uint32(x))
		f64[i] = math.Float64frombits(x)
		b[i] = x&1 == 1
	}
	roundTrip(t, i8)
	roundTrip(t, i16)
	roundTrip(t, i32)
	roundTrip(t, i64)
	roundTrip(t, u8)
	roundTrip(t, u16)
	roundTrip(t, u32)
	roundTrip(t, u64)
	roundTrip(t, f32)
	roundTrip(t, f64)
	roundTrip(t, b)
}

func TestUnmarshal_LengthMismatch(t *testing.T) {
	dst := make([]int32, 3)
	err := Unmarshal(make([]byte, 11), dst)
	var le *LengthError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 12, le.Want)
	assert.Equal(t, 11, le.Got)
}
