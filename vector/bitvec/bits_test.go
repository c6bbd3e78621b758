package bitvec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitsGetBits(t *testing.T) {
	assert.Equal(t, []uint64{0x0f}, New([]uint64{0xff}, 4).GetBits())
}

func TestBitsTrueCount(t *testing.T) {
	assert.EqualValues(t, 0, Zero.TrueCount())
	assert.EqualValues(t, 1, New([]uint64{0xff}, 1).TrueCount())
	assert.EqualValues(t, 8, New([]uint64{0xff}, 64).TrueCount())
	assert.EqualValues(t, 8, New([]uint64{0xff, 0xff << 56}, 65).TrueCount())
	assert.EqualValues(t, 16, New([]uint64{0xff, 0xff << 56}, 128).TrueCount())
}

func TestBitsAppend(t *testing.T) {
	var b Bits
	b.Append(true)
	b.Append(false)
	b.AppendN(true, 70)
	b.AppendN(false, 3)
	assert.EqualValues(t, 75, b.Len())
	assert.EqualValues(t, 71, b.TrueCount())
	assert.True(t, b.IsSet(0))
	assert.False(t, b.IsSet(1))
	assert.True(t, b.IsSet(71))
	assert.False(t, b.IsSet(72))
	assert.False(t, b.IsSet(1000))
}

func TestBitsAppendRange(t *testing.T) {
	src := NewFalse(100)
	src.Set(3)
	src.Set(64)
	var b Bits
	b.AppendN(true, 2)
	b.AppendRange(src, 2, 63)
	assert.EqualValues(t, 65, b.Len())
	assert.Equal(t, "1101"+strings.Repeat("0", 60)+"1", b.String())
}

func TestBitsAppendOverwritesStaleBits(t *testing.T) {
	b := NewTrue(10)
	b.length = 2
	b.AppendN(false, 5)
	assert.EqualValues(t, 2, b.TrueCount())
	assert.False(t, b.IsSet(4))
}

func TestBitsOr(t *testing.T) {
	a := NewFalse(3)
	a.Set(0)
	b := NewFalse(3)
	b.Set(2)
	assert.Equal(t, "101", Or(a, b).String())
	assert.Equal(t, "100", Or(a, Zero).String())
}
