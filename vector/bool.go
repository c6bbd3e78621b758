package vector

import (
	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/vector/bitvec"
)

// Bool is a vector of booleans.  It also serves as the null-presence
// vector of a Nullable, where a true bit marks a null row.
type Bool struct {
	deletes
	bits bitvec.Bits
}

var _ Builder = (*Bool)(nil)

func NewBool(bits bitvec.Bits) *Bool {
	return &Bool{bits: bits}
}

func NewBoolEmpty() *Bool {
	return &Bool{}
}

// NewBoolFrom is a convenience for building a vector from a slice.
func NewBoolFrom(vals ...bool) *Bool {
	b := NewBoolEmpty()
	for _, v := range vals {
		b.bits.Append(v)
	}
	return b
}

func (b *Bool) Type() docflat.Type {
	return docflat.TypeBool
}

func (b *Bool) Len() uint32 {
	return b.bits.Len()
}

func (b *Bool) Bits() bitvec.Bits {
	return b.bits
}

func (b *Bool) Value(slot uint32) bool {
	return b.bits.IsSet(slot)
}

func (b *Bool) CloneEmpty() Any {
	return NewBoolEmpty()
}

func (b *Bool) AppendBool(v bool) {
	b.bits.Append(v)
}

func (b *Bool) AppendNulls(n uint32) {
	b.bits.AppendN(false, n)
}

func (b *Bool) AppendValue(val docflat.Value, n uint32) {
	b.bits.AppendN(val.Bool(), n)
}

func (b *Bool) Append(src Any, from, n uint32) {
	if appendConst(b, src, n) {
		return
	}
	s, ok := src.(*Bool)
	if !ok {
		badAppend(b, src)
	}
	b.bits.AppendRange(s.bits, from, n)
}
