package cast

import (
	"math"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/vector"
	"golang.org/x/exp/constraints"
)

type numeric interface {
	constraints.Float | constraints.Integer
}

func numberCaster(from, to docflat.Type) caster {
	return func(vec vector.Any) (vector.Any, []uint32) {
		switch vec := vec.(type) {
		case *vector.Int:
			if docflat.IsSigned(to) {
				vals, errs := castNumbers[int64, int64](vec.Values, intRange[int64](from, to))
				return vector.NewInt(to, vals), errs
			}
			vals, errs := castNumbers[int64, float64](vec.Values, nil)
			return vector.NewFloat(to, roundFloats(vals, to)), errs
		case *vector.Float:
			if docflat.IsSigned(to) {
				vals, errs := castNumbers[float64, int64](vec.Values, floatToIntRange(to))
				return vector.NewInt(to, vals), errs
			}
			vals, errs := castNumbers[float64, float64](vec.Values, floatRange(from, to))
			return vector.NewFloat(to, roundFloats(vals, to)), errs
		}
		panic(vec)
	}
}

// castNumbers converts each element of s, leaving zero in place of the
// elements that inRange rejects and returning their slots.
func castNumbers[E, T numeric](s []E, inRange func(E) bool) ([]T, []uint32) {
	out := make([]T, len(s))
	var errs []uint32
	for i, v := range s {
		if inRange != nil && !inRange(v) {
			errs = append(errs, uint32(i))
			continue
		}
		out[i] = T(v)
	}
	return out, errs
}

func intLimits(typ docflat.Type) (int64, int64) {
	bits := docflat.IntBits(typ)
	return -1 << (bits - 1), 1<<(bits-1) - 1
}

// intRange returns nil when every value of from fits in to.
func intRange[E constraints.Signed](from, to docflat.Type) func(E) bool {
	if docflat.IntBits(from) <= docflat.IntBits(to) {
		return nil
	}
	lo, hi := intLimits(to)
	return func(v E) bool {
		return int64(v) >= lo && int64(v) <= hi
	}
}

func floatToIntRange(to docflat.Type) func(float64) bool {
	lo, _ := intLimits(to)
	return func(v float64) bool {
		return !math.IsNaN(v) && v >= float64(lo) && v < -float64(lo)
	}
}

func floatRange(from, to docflat.Type) func(float64) bool {
	if from != docflat.TypeFloat64 || to != docflat.TypeFloat32 {
		return nil
	}
	return func(v float64) bool {
		return math.IsInf(v, 0) || math.IsNaN(v) || math.Abs(v) <= math.MaxFloat32
	}
}

func roundFloats(vals []float64, to docflat.Type) []float64 {
	if to == docflat.TypeFloat32 {
		for i, v := range vals {
			vals[i] = float64(float32(v))
		}
	}
	return vals
}

func numberToNumber(val docflat.Value, to docflat.Type) docflat.Value {
	from := val.Type()
	switch {
	case docflat.IsSigned(from) && docflat.IsSigned(to):
		if inRange := intRange[int64](from, to); inRange != nil && !inRange(val.Int()) {
			return docflat.NewNull(to)
		}
		return docflat.NewInt(to, val.Int())
	case docflat.IsSigned(from):
		return docflat.NewFloat(to, roundFloat(float64(val.Int()), to))
	case docflat.IsSigned(to):
		if !floatToIntRange(to)(val.Float()) {
			return docflat.NewNull(to)
		}
		return docflat.NewInt(to, int64(val.Float()))
	default:
		if inRange := floatRange(from, to); inRange != nil && !inRange(val.Float()) {
			return docflat.NewNull(to)
		}
		return docflat.NewFloat(to, roundFloat(val.Float(), to))
	}
}

func roundFloat(v float64, to docflat.Type) float64 {
	if to == docflat.TypeFloat32 {
		return float64(float32(v))
	}
	return v
}

func numberToBool(val docflat.Value) docflat.Value {
	if docflat.IsFloat(val.Type()) {
		return docflat.NewBool(val.Float() != 0)
	}
	return docflat.NewBool(val.Int() != 0)
}

func boolToNumber(val docflat.Value, to docflat.Type) docflat.Value {
	var i int64
	if val.Bool() {
		i = 1
	}
	if docflat.IsFloat(to) {
		return docflat.NewFloat(to, float64(i))
	}
	return docflat.NewInt(to, i)
}
