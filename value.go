package docflat

import (
	"cmp"
	"math"
	"strconv"
)

// Value is a single typed scalar.  Zone maps, constant vectors, and
// predicates use Values; bulk data lives in vectors.
type Value struct {
	typ  Type
	null bool
	i    int64
	f    float64
	s    string
}

func NewNull(typ Type) Value {
	return Value{typ: typ, null: true}
}

func NewBool(b bool) Value {
	var i int64
	if b {
		i = 1
	}
	return Value{typ: TypeBool, i: i}
}

func NewInt(typ Type, i int64) Value {
	return Value{typ: typ, i: i}
}

func NewInt64(i int64) Value {
	return NewInt(TypeInt64, i)
}

func NewFloat(typ Type, f float64) Value {
	return Value{typ: typ, f: f}
}

func NewFloat64(f float64) Value {
	return NewFloat(TypeFloat64, f)
}

func NewString(s string) Value {
	return Value{typ: TypeString, s: s}
}

// NewJSON returns a JSON value holding the encoded text b.
func NewJSON(b []byte) Value {
	return Value{typ: TypeJSON, s: string(b)}
}

func (v Value) Type() Type       { return v.typ }
func (v Value) IsNull() bool     { return v.null || v.typ == TypeNull }
func (v Value) Bool() bool       { return v.i != 0 }
func (v Value) Int() int64       { return v.i }
func (v Value) Float() float64   { return v.f }
func (v Value) AsString() string { return v.s }
func (v Value) Bytes() []byte    { return []byte(v.s) }

func (v Value) String() string {
	if v.IsNull() {
		return "null"
	}
	switch {
	case v.typ == TypeBool:
		return strconv.FormatBool(v.Bool())
	case IsSigned(v.typ):
		return strconv.FormatInt(v.i, 10)
	case IsFloat(v.typ):
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case v.typ == TypeString:
		return strconv.Quote(v.s)
	}
	return v.s
}

// Compare orders two non-null values of the same type family.  Values of
// unrelated types compare by type.  Nulls sort before everything.
func Compare(a, b Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return -1
	case b.IsNull():
		return 1
	}
	switch {
	case (IsSigned(a.typ) || a.typ == TypeBool) && (IsSigned(b.typ) || b.typ == TypeBool):
		return cmp.Compare(a.i, b.i)
	case IsNumber(a.typ) && IsNumber(b.typ):
		return cmp.Compare(asFloat(a), asFloat(b))
	case a.typ == b.typ:
		return cmp.Compare(a.s, b.s)
	}
	return cmp.Compare(a.typ, b.typ)
}

func asFloat(v Value) float64 {
	if IsFloat(v.typ) {
		if math.IsNaN(v.f) {
			return math.Inf(-1)
		}
		return v.f
	}
	return float64(v.i)
}
