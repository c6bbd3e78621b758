package bitvec

import (
	"math/bits"
	"strings"
)

// Bits is a growable bit vector.  The zero value is an empty vector ready
// for appends.
type Bits struct {
	bits   []uint64
	length uint32
}

var Zero Bits

func New(bits []uint64, length uint32) Bits {
	return Bits{length: length, bits: bits}
}

func NewFalse(length uint32) Bits {
	return Bits{length: length, bits: make([]uint64, words(length))}
}

func NewTrue(n uint32) Bits {
	b := NewFalse(n)
	for i := range b.bits {
		b.bits[i] = ^uint64(0)
	}
	return b
}

func words(n uint32) int {
	return int((n + 63) / 64)
}

func (b Bits) IsZero() bool {
	return b.length == 0
}

// GetBits returns b's underlying storage with unused bits cleared.
// GetBits may modify the underlying storage.
func (b Bits) GetBits() []uint64 {
	if unusedBits := 64 - (b.length % 64); unusedBits < 64 && len(b.bits) > 0 {
		mask := ^uint64(0) >> unusedBits
		b.bits[len(b.bits)-1] &= mask
	}
	return b.bits
}

func (b Bits) IsSet(slot uint32) bool {
	// Nulls are often empty so check length before indexing.
	return slot < b.length && b.IsSetDirect(slot)
}

func (b Bits) IsSetDirect(slot uint32) bool {
	return (b.bits[slot>>6] & (1 << (slot & 0x3f))) != 0
}

// Set causes the bit at position slot to become true, where slot must be
// smaller than the length of the bit vector.
func (b Bits) Set(slot uint32) {
	b.bits[slot>>6] |= (1 << (slot & 0x3f))
}

func (b Bits) Clear(slot uint32) {
	b.bits[slot>>6] &^= (1 << (slot & 0x3f))
}

func (b *Bits) Len() uint32 {
	if b == nil {
		return 0
	}
	return b.length
}

// Append grows b by one bit.
func (b *Bits) Append(v bool) {
	b.grow(b.length + 1)
	slot := b.length
	b.length++
	if v {
		b.Set(slot)
	} else {
		b.Clear(slot)
	}
}

// AppendN grows b by n copies of v.
func (b *Bits) AppendN(v bool, n uint32) {
	if n == 0 {
		return
	}
	start := b.length
	b.grow(start + n)
	b.length = start + n
	for slot := start; slot < b.length; slot++ {
		if v {
			b.Set(slot)
		} else {
			b.Clear(slot)
		}
	}
}

// AppendRange appends n bits of src starting at offset from.
func (b *Bits) AppendRange(src Bits, from, n uint32) {
	start := b.length
	b.grow(start + n)
	b.length = start + n
	for k := range n {
		if src.IsSet(from + k) {
			b.Set(start + k)
		} else {
			b.Clear(start + k)
		}
	}
}

func (b *Bits) grow(n uint32) {
	if need := words(n); need > len(b.bits) {
		if need <= cap(b.bits) {
			b.bits = b.bits[:need]
		} else {
			b.bits = append(b.bits, make([]uint64, need-len(b.bits))...)
		}
	}
}

func (b Bits) Pick(index []uint32) Bits {
	if b.IsZero() || len(index) == 0 {
		return Zero
	}
	out := NewFalse(uint32(len(index)))
	for k, slot := range index {
		if b.IsSet(slot) {
			out.Set(uint32(k))
		}
	}
	return out
}

func (b Bits) TrueCount() uint32 {
	if b.IsZero() {
		return 0
	}
	var n uint32
	for _, bs := range b.GetBits() {
		n += uint32(bits.OnesCount64(bs))
	}
	return n
}

// Any returns true if any bit is set.
func (b Bits) Any() bool {
	for _, bs := range b.GetBits() {
		if bs != 0 {
			return true
		}
	}
	return false
}

// helpful to have around for debugging
func (b Bits) String() string {
	if b.IsZero() {
		return "empty"
	}
	var s strings.Builder
	for k := range b.Len() {
		if b.IsSet(k) {
			s.WriteByte('1')
		} else {
			s.WriteByte('0')
		}
	}
	return s.String()
}

func Or(a, b Bits) Bits {
	if b.IsZero() {
		return a
	}
	if a.IsZero() {
		return b
	}
	if a.Len() != b.Len() {
		panic("or'ing two different length bit vectors")
	}
	out := NewFalse(a.Len())
	for i := range len(a.bits) {
		out.bits[i] = a.bits[i] | b.bits[i]
	}
	return out
}
