package vector

import (
	"fmt"

	"github.com/brimdata/docflat"
)

// DeleteState records whether a vector may contain rows that a delete
// predicate has hidden.  It travels with a batch from the storage layer to
// the scan and must be propagated when a batch is copied into another vector.
type DeleteState int

const (
	NoDelete DeleteState = iota
	MayHaveDelete
)

type Any interface {
	Type() docflat.Type
	Len() uint32
	// CloneEmpty returns a new, empty vector with the same shape as the
	// receiver, e.g., a Nullable of a Document for a Nullable of a Document.
	CloneEmpty() Any
	DeleteState() DeleteState
	SetDeleteState(DeleteState)
}

// Builder is a vector that may be appended to.
type Builder interface {
	Any
	// AppendNulls appends n null entries.  Vectors without a null
	// representation append n zero values.
	AppendNulls(n uint32)
	// AppendValue appends val n times.
	AppendValue(val docflat.Value, n uint32)
	// Append copies n values of src starting at slot from.
	Append(src Any, from, n uint32)
}

type deletes struct {
	state DeleteState
}

func (d *deletes) DeleteState() DeleteState {
	return d.state
}

func (d *deletes) SetDeleteState(state DeleteState) {
	d.state = state
}

// New returns an empty, non-nullable vector for typ.
func New(typ docflat.Type) Builder {
	switch {
	case typ == docflat.TypeBool:
		return NewBoolEmpty()
	case docflat.IsSigned(typ):
		return NewIntEmpty(typ)
	case docflat.IsFloat(typ):
		return NewFloatEmpty(typ)
	case typ == docflat.TypeString:
		return NewStringEmpty()
	case typ == docflat.TypeJSON:
		return NewDocument()
	}
	panic(fmt.Sprintf("vector: no vector for type %s", typ))
}

// NewNullableOf returns an empty Nullable vector wrapping a new vector for typ.
func NewNullableOf(typ docflat.Type) *Nullable {
	return NewNullable(NewBoolEmpty(), New(typ))
}

// Split returns the null part and the value part of vec.  If vec is not
// null-wrapped, nulls is nil and values is vec itself.
func Split(vec Any) (nulls *Bool, values Any) {
	if n, ok := vec.(*Nullable); ok {
		return n.Nulls, n.Values
	}
	return nil, vec
}

// OnlyNull returns true if vec is a constant null, i.e., every row is null
// without a materialized null bitmap.
func OnlyNull(vec Any) bool {
	c, ok := vec.(*Const)
	return ok && c.Value().IsNull()
}

func mustBuilder(vec Any) Builder {
	b, ok := vec.(Builder)
	if !ok {
		panic(fmt.Sprintf("vector: %T cannot be appended to", vec))
	}
	return b
}

// appendConst handles a Const source for the Append method of every Builder.
func appendConst(dst Builder, src Any, n uint32) bool {
	c, ok := src.(*Const)
	if !ok {
		return false
	}
	if c.Value().IsNull() {
		dst.AppendNulls(n)
	} else {
		dst.AppendValue(c.Value(), n)
	}
	return true
}

func badAppend(dst, src Any) {
	panic(fmt.Sprintf("vector: cannot append %T (%s) to %T (%s)", src, src.Type(), dst, dst.Type()))
}
