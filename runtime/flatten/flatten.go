// Package flatten computes typed flat fields from raw JSON documents.
//
// A value lands in a field only when its JSON kind is compatible with the
// field's type: numbers become ints when integral and in range and floats in
// any case, true and false become bools, a string field takes the unescaped
// text of a string or the raw text of any other value, and a JSON field takes
// the raw sub-document.  A missing document, a missing path, a JSON null, or
// an incompatible kind yields null.
package flatten

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/pkg/field"
	"github.com/brimdata/docflat/vector"
	"github.com/buger/jsonparser"
)

type Flattener struct {
	paths []string
	types []docflat.Type
	// keys holds the paths scanned together in one EachKey pass and index
	// maps a position in keys back to its field.  Paths with array elements
	// and paths that prefix another path are looked up one at a time.
	keys  [][]string
	index []int
	gets  map[int]field.Path
	root  []int
	vals  []docflat.Value
}

// New returns a Flattener for the fields described by paths and types.
// The path "$" selects the whole document.  Other paths are parsed with
// field.Parse.
func New(paths []string, types []docflat.Type) (*Flattener, error) {
	if len(paths) != len(types) {
		return nil, fmt.Errorf("flatten: %d paths and %d types", len(paths), len(types))
	}
	f := &Flattener{
		paths: paths,
		types: types,
		gets:  make(map[int]field.Path),
		vals:  make([]docflat.Value, len(paths)),
	}
	parsed := make([]field.Path, len(paths))
	for k, s := range paths {
		if s == "$" {
			f.root = append(f.root, k)
			continue
		}
		path, err := field.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("flatten: path %q: %w", s, err)
		}
		parsed[k] = path
	}
	for k, path := range parsed {
		if path == nil {
			continue
		}
		if scanAlone(path, k, parsed) {
			f.gets[k] = path
			continue
		}
		f.keys = append(f.keys, path)
		f.index = append(f.index, k)
	}
	return f, nil
}

func scanAlone(path field.Path, k int, paths []field.Path) bool {
	for _, elem := range path {
		if strings.HasPrefix(elem, "[") {
			return true
		}
	}
	for j, other := range paths {
		if j == k || other == nil {
			continue
		}
		if other.HasPrefix(path) && (len(other) > len(path) || j < k) {
			return true
		}
	}
	return false
}

// Flatten appends one entry per row of src to each vector of dst, which
// must correspond to the Flattener's descriptors.  src is a raw Document
// or a Nullable of one.
func (f *Flattener) Flatten(src vector.Any, dst []vector.Any) error {
	if len(dst) != len(f.paths) {
		return fmt.Errorf("flatten: %d destination fields for %d paths", len(dst), len(f.paths))
	}
	nulls, values := vector.Split(src)
	doc, ok := values.(*vector.Document)
	if !ok || doc.IsFlat() {
		return fmt.Errorf("flatten: source must be a raw document vector, not %T", values)
	}
	builders := make([]vector.Builder, 0, len(dst))
	for k, vec := range dst {
		b, ok := vec.(vector.Builder)
		if !ok {
			return fmt.Errorf("flatten: field %q: cannot append to %T", f.paths[k], vec)
		}
		if vec.Type() != f.types[k] {
			return fmt.Errorf("flatten: field %q: %s vector for %s field", f.paths[k], vec.Type(), f.types[k])
		}
		builders = append(builders, b)
	}
	for slot := range doc.Len() {
		if nulls != nil && nulls.Value(slot) {
			for _, b := range builders {
				b.AppendNulls(1)
			}
			continue
		}
		f.row(doc.Raw(slot))
		for k, b := range builders {
			b.AppendValue(f.vals[k], 1)
		}
	}
	return nil
}

func (f *Flattener) row(raw []byte) {
	for k, typ := range f.types {
		f.vals[k] = docflat.NewNull(typ)
	}
	if len(raw) == 0 {
		return
	}
	for _, k := range f.root {
		f.vals[k] = Convert(raw, f.types[k])
	}
	for k, path := range f.gets {
		data, vt, _, err := jsonparser.Get(raw, path...)
		if err == nil {
			f.vals[k] = convert(data, vt, f.types[k])
		}
	}
	if len(f.keys) == 0 {
		return
	}
	jsonparser.EachKey(raw, func(idx int, data []byte, vt jsonparser.ValueType, err error) {
		if err != nil {
			return
		}
		k := f.index[idx]
		f.vals[k] = convert(data, vt, f.types[k])
	}, f.keys...)
}

// Convert converts the JSON text raw to a value of type typ.
// Empty text is a missing value.
func Convert(raw []byte, typ docflat.Type) docflat.Value {
	if len(raw) == 0 {
		return docflat.NewNull(typ)
	}
	data, vt, _, err := jsonparser.Get(raw)
	if err != nil {
		return docflat.NewNull(typ)
	}
	return convert(data, vt, typ)
}

// convert takes data and vt as returned by jsonparser, where string
// values are stripped of their quotes but not unescaped.
func convert(data []byte, vt jsonparser.ValueType, typ docflat.Type) docflat.Value {
	if vt == jsonparser.Null || vt == jsonparser.NotExist || vt == jsonparser.Unknown {
		return docflat.NewNull(typ)
	}
	switch {
	case typ == docflat.TypeJSON:
		if vt == jsonparser.String {
			return docflat.NewJSON(quote(data))
		}
		return docflat.NewJSON(data)
	case typ == docflat.TypeString:
		if vt == jsonparser.String {
			s, err := jsonparser.ParseString(data)
			if err != nil {
				break
			}
			return docflat.NewString(s)
		}
		return docflat.NewString(string(data))
	case typ == docflat.TypeBool:
		if vt == jsonparser.Boolean {
			if b, err := jsonparser.ParseBoolean(data); err == nil {
				return docflat.NewBool(b)
			}
		}
	case docflat.IsSigned(typ):
		if vt == jsonparser.Number {
			if i, ok := parseInt(data, docflat.IntBits(typ)); ok {
				return docflat.NewInt(typ, i)
			}
		}
	case docflat.IsFloat(typ):
		if vt == jsonparser.Number {
			if v, err := strconv.ParseFloat(string(data), 64); err == nil {
				return docflat.NewFloat(typ, v)
			}
		}
	}
	return docflat.NewNull(typ)
}

// parseInt parses an integral JSON number that fits in bits, accepting
// forms like 3.0 and 1e3.
func parseInt(data []byte, bits int) (int64, bool) {
	s := string(data)
	if i, err := strconv.ParseInt(s, 10, bits); err == nil {
		return i, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != math.Trunc(v) {
		return 0, false
	}
	lim := math.Ldexp(1, bits-1)
	if v < -lim || v >= lim {
		return 0, false
	}
	return int64(v), true
}

func quote(data []byte) []byte {
	out := make([]byte, 0, len(data)+2)
	out = append(out, '"')
	out = append(out, data...)
	return append(out, '"')
}
