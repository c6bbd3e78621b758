package vector

import (
	"fmt"

	"github.com/brimdata/docflat"
)

// RawJSON is an encoded JSON value as returned by Interface for documents.
type RawJSON []byte

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

// Interface returns the value at slot as a Go value: nil, bool, int64,
// float64, string, RawJSON, or for a flat Document, a map from path to
// the Go value of each field.
func Interface(vec Any, slot uint32) any {
	switch vec := vec.(type) {
	case *Nullable:
		if vec.IsNull(slot) {
			return nil
		}
		return Interface(vec.Values, slot)
	case *Const:
		return ValueInterface(vec.Value())
	case *Bool:
		return vec.Value(slot)
	case *Int:
		return vec.Value(slot)
	case *Float:
		return vec.Value(slot)
	case *String:
		return vec.Value(slot)
	case *Document:
		if vec.IsFlat() {
			m := make(map[string]any, len(vec.paths))
			for k, path := range vec.paths {
				m[path] = Interface(vec.fields[k], slot)
			}
			return m
		}
		raw := vec.Raw(slot)
		if len(raw) == 0 {
			return nil
		}
		return RawJSON(raw)
	}
	panic(fmt.Sprintf("vector: Interface on %T", vec))
}

// ValueInterface is Interface for a single Value.
func ValueInterface(val docflat.Value) any {
	typ := val.Type()
	switch {
	case val.IsNull():
		return nil
	case typ == docflat.TypeBool:
		return val.Bool()
	case docflat.IsSigned(typ):
		return val.Int()
	case docflat.IsFloat(typ):
		return val.Float()
	case typ == docflat.TypeString:
		return val.AsString()
	}
	return RawJSON(val.Bytes())
}

// Values returns Interface for every slot of vec.
func Values(vec Any) []any {
	out := make([]any, 0, vec.Len())
	for slot := range vec.Len() {
		out = append(out, Interface(vec, slot))
	}
	return out
}

// ValueAt returns the value at slot as a docflat.Value.
func ValueAt(vec Any, slot uint32) docflat.Value {
	switch vec := vec.(type) {
	case *Nullable:
		if vec.IsNull(slot) {
			return docflat.NewNull(vec.Type())
		}
		return ValueAt(vec.Values, slot)
	case *Const:
		return vec.Value()
	case *Bool:
		return docflat.NewBool(vec.Value(slot))
	case *Int:
		return docflat.NewInt(vec.Typ, vec.Value(slot))
	case *Float:
		return docflat.NewFloat(vec.Typ, vec.Value(slot))
	case *String:
		return docflat.NewString(vec.Value(slot))
	case *Document:
		if !vec.IsFlat() {
			if raw := vec.Raw(slot); len(raw) > 0 {
				return docflat.NewJSON(raw)
			}
			return docflat.NewNull(docflat.TypeJSON)
		}
	}
	panic(fmt.Sprintf("vector: ValueAt on %T", vec))
}
