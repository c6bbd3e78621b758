// Package cast compiles and evaluates type casts over vectors.
package cast

import (
	"errors"
	"fmt"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/vector"
	"github.com/brimdata/docflat/vector/bitvec"
)

var ErrCast = errors.New("cast")

// caster casts a non-nullable vector and returns the cast values along with
// the slots that failed to convert, which become null.
type caster func(vector.Any) (vector.Any, []uint32)

// Expr casts the column in one slot of a batch from one type to another.
type Expr struct {
	slot   int
	from   docflat.Type
	to     docflat.Type
	scalar func(docflat.Value) docflat.Value
	vec    caster
}

// Compile returns an Expr that casts the column in slot from type from to
// type to.  A pair of types with no conversion returns an error wrapping
// ErrCast.
func Compile(slot int, from, to docflat.Type) (*Expr, error) {
	e := &Expr{slot: slot, from: from, to: to}
	switch {
	case from == docflat.TypeNull || to == docflat.TypeNull:
		return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrCast, from, to)
	case from == to:
		e.scalar = func(val docflat.Value) docflat.Value { return val }
	case docflat.IsNumber(from) && docflat.IsNumber(to):
		e.scalar = func(val docflat.Value) docflat.Value { return numberToNumber(val, to) }
		e.vec = numberCaster(from, to)
	case to == docflat.TypeBool && docflat.IsNumber(from):
		e.scalar = numberToBool
	case from == docflat.TypeBool && docflat.IsNumber(to):
		e.scalar = func(val docflat.Value) docflat.Value { return boolToNumber(val, to) }
	case from == docflat.TypeJSON:
		e.scalar = func(val docflat.Value) docflat.Value { return fromJSON(val, to) }
	case to == docflat.TypeString:
		e.scalar = toString
	case to == docflat.TypeJSON:
		e.scalar = toJSON
	case from == docflat.TypeString:
		e.scalar = func(val docflat.Value) docflat.Value { return parseString(val, to) }
	default:
		return nil, fmt.Errorf("%w: cannot cast %s to %s", ErrCast, from, to)
	}
	return e, nil
}

func (e *Expr) From() docflat.Type { return e.from }
func (e *Expr) To() docflat.Type   { return e.to }

func (e *Expr) String() string {
	return fmt.Sprintf("cast(slot %d, %s to %s)", e.slot, e.from, e.to)
}

// Eval casts the column in the Expr's slot.  A column of only nulls yields
// a null Const, a Const yields a Const, and any other column yields a
// Nullable of the target type.
func (e *Expr) Eval(batch *vector.Batch) (vector.Any, error) {
	vec, ok := batch.Lookup(e.slot)
	if !ok {
		return nil, fmt.Errorf("%w: no column in slot %d", ErrCast, e.slot)
	}
	if vec.Type() != e.from {
		return nil, fmt.Errorf("%w: %s column in slot %d, expected %s", ErrCast, vec.Type(), e.slot, e.from)
	}
	if c, ok := vec.(*vector.Const); ok {
		if c.Value().IsNull() {
			return vector.NewConst(docflat.NewNull(e.to), c.Len()), nil
		}
		return vector.NewConst(e.scalar(c.Value()), c.Len()), nil
	}
	nulls, values := vector.Split(vec)
	n := vec.Len()
	if nulls != nil && n > 0 && nulls.Bits().TrueCount() == n {
		return vector.NewConst(docflat.NewNull(e.to), n), nil
	}
	var out vector.Any
	var fails []uint32
	if e.vec != nil {
		out, fails = e.vec(values)
	} else {
		out, fails = e.rows(values)
	}
	return vector.NewNullable(mergeNulls(nulls, fails, n), out), nil
}

// rows casts values one at a time with the scalar conversion.
func (e *Expr) rows(values vector.Any) (vector.Any, []uint32) {
	out := vector.New(e.to)
	var fails []uint32
	for slot := range values.Len() {
		val := e.scalar(vector.ValueAt(values, slot))
		if val.IsNull() {
			fails = append(fails, slot)
			out.AppendNulls(1)
			continue
		}
		out.AppendValue(val, 1)
	}
	return out, fails
}

func mergeNulls(nulls *vector.Bool, fails []uint32, n uint32) *vector.Bool {
	bits := bitvec.NewFalse(n)
	if nulls != nil {
		bits = bitvec.Or(bits, nulls.Bits())
	}
	for _, slot := range fails {
		bits.Set(slot)
	}
	return vector.NewBool(bits)
}
