package vector

import (
	"github.com/brimdata/docflat"
)

type Int struct {
	deletes
	Typ    docflat.Type
	Values []int64
}

var _ Builder = (*Int)(nil)

func NewInt(typ docflat.Type, values []int64) *Int {
	return &Int{Typ: typ, Values: values}
}

func NewIntEmpty(typ docflat.Type) *Int {
	return NewInt(typ, nil)
}

func (i *Int) Type() docflat.Type {
	return i.Typ
}

func (i *Int) Len() uint32 {
	return uint32(len(i.Values))
}

func (i *Int) Value(slot uint32) int64 {
	return i.Values[slot]
}

func (i *Int) CloneEmpty() Any {
	return NewIntEmpty(i.Typ)
}

func (i *Int) AppendInt(v int64) {
	i.Values = append(i.Values, v)
}

func (i *Int) AppendNulls(n uint32) {
	i.Values = append(i.Values, make([]int64, n)...)
}

func (i *Int) AppendValue(val docflat.Value, n uint32) {
	v := val.Int()
	for range n {
		i.Values = append(i.Values, v)
	}
}

func (i *Int) Append(src Any, from, n uint32) {
	if appendConst(i, src, n) {
		return
	}
	s, ok := src.(*Int)
	if !ok {
		badAppend(i, src)
	}
	i.Values = append(i.Values, s.Values[from:from+n]...)
}
