package vector

import (
	"github.com/brimdata/docflat"
)

type String struct {
	deletes
	table BytesTable
}

var _ Builder = (*String)(nil)

func NewString(table BytesTable) *String {
	return &String{table: table}
}

func NewStringEmpty() *String {
	return NewString(NewBytesTableEmpty(0))
}

// NewStringFrom is a convenience for building a vector from a slice.
func NewStringFrom(vals ...string) *String {
	s := NewStringEmpty()
	for _, v := range vals {
		s.AppendString(v)
	}
	return s
}

func (s *String) Type() docflat.Type {
	return docflat.TypeString
}

func (s *String) Len() uint32 {
	return s.table.Len()
}

func (s *String) Table() BytesTable {
	return s.table
}

func (s *String) Value(slot uint32) string {
	return s.table.String(slot)
}

func (s *String) CloneEmpty() Any {
	return NewStringEmpty()
}

func (s *String) AppendString(v string) {
	s.table.Append([]byte(v))
}

func (s *String) AppendNulls(n uint32) {
	for range n {
		s.table.Append(nil)
	}
}

func (s *String) AppendValue(val docflat.Value, n uint32) {
	b := val.Bytes()
	for range n {
		s.table.Append(b)
	}
}

func (s *String) Append(src Any, from, n uint32) {
	if appendConst(s, src, n) {
		return
	}
	str, ok := src.(*String)
	if !ok {
		badAppend(s, src)
	}
	s.table.AppendRange(str.table, from, n)
}
