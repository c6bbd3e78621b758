package vector

import (
	"github.com/brimdata/docflat"
)

type Float struct {
	deletes
	Typ    docflat.Type
	Values []float64
}

var _ Builder = (*Float)(nil)

func NewFloat(typ docflat.Type, values []float64) *Float {
	return &Float{Typ: typ, Values: values}
}

func NewFloatEmpty(typ docflat.Type) *Float {
	return NewFloat(typ, nil)
}

func (f *Float) Type() docflat.Type {
	return f.Typ
}

func (f *Float) Len() uint32 {
	return uint32(len(f.Values))
}

func (f *Float) Value(slot uint32) float64 {
	return f.Values[slot]
}

func (f *Float) CloneEmpty() Any {
	return NewFloatEmpty(f.Typ)
}

func (f *Float) AppendFloat(v float64) {
	f.Values = append(f.Values, v)
}

func (f *Float) AppendNulls(n uint32) {
	f.Values = append(f.Values, make([]float64, n)...)
}

func (f *Float) AppendValue(val docflat.Value, n uint32) {
	v := val.Float()
	for range n {
		f.Values = append(f.Values, v)
	}
}

func (f *Float) Append(src Any, from, n uint32) {
	if appendConst(f, src, n) {
		return
	}
	s, ok := src.(*Float)
	if !ok {
		badAppend(f, src)
	}
	f.Values = append(f.Values, s.Values[from:from+n]...)
}
