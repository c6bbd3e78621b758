package vector

import (
	"github.com/brimdata/docflat"
)

// Nullable wraps a value vector with a null-presence vector of the same
// length.  Rows whose null bit is set hold a zero value in Values.
type Nullable struct {
	deletes
	Nulls   *Bool
	Values  Any
	hasNull bool
}

var _ Builder = (*Nullable)(nil)

func NewNullable(nulls *Bool, values Any) *Nullable {
	n := &Nullable{Nulls: nulls, Values: values}
	n.UpdateHasNull()
	return n
}

func (n *Nullable) Type() docflat.Type {
	return n.Values.Type()
}

func (n *Nullable) Len() uint32 {
	return n.Values.Len()
}

func (n *Nullable) IsNull(slot uint32) bool {
	return n.Nulls.Value(slot)
}

// HasNull returns the cached indication of whether any row is null.
func (n *Nullable) HasNull() bool {
	return n.hasNull
}

func (n *Nullable) SetHasNull(b bool) {
	n.hasNull = b
}

// UpdateHasNull recomputes the cached has-null flag from the null vector.
func (n *Nullable) UpdateHasNull() {
	n.hasNull = n.Nulls.Bits().Any()
}

func (n *Nullable) CloneEmpty() Any {
	return NewNullable(NewBoolEmpty(), n.Values.CloneEmpty())
}

func (n *Nullable) AppendNulls(k uint32) {
	if k == 0 {
		return
	}
	n.Nulls.bits.AppendN(true, k)
	mustBuilder(n.Values).AppendNulls(k)
	n.hasNull = true
}

func (n *Nullable) AppendValue(val docflat.Value, k uint32) {
	if val.IsNull() {
		n.AppendNulls(k)
		return
	}
	n.Nulls.bits.AppendN(false, k)
	mustBuilder(n.Values).AppendValue(val, k)
}

func (n *Nullable) Append(src Any, from, k uint32) {
	if appendConst(n, src, k) {
		return
	}
	values := mustBuilder(n.Values)
	if s, ok := src.(*Nullable); ok {
		n.Nulls.bits.AppendRange(s.Nulls.bits, from, k)
		values.Append(s.Values, from, k)
		if !n.hasNull {
			n.UpdateHasNull()
		}
		return
	}
	n.Nulls.bits.AppendN(false, k)
	values.Append(src, from, k)
}
