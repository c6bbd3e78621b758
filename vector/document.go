package vector

import (
	"fmt"
	"slices"

	"github.com/brimdata/docflat"
)

// Document is a vector of semi-structured (JSON) values.  A Document holds
// either the raw encoded value of each row or, once InitFlat has been called,
// a set of named, typed flat fields (each a Nullable) that together stand in
// for the raw values.
type Document struct {
	deletes
	table  BytesTable
	paths  []string
	types  []docflat.Type
	fields []*Nullable
}

var _ Builder = (*Document)(nil)

func NewDocument() *Document {
	return &Document{table: NewBytesTableEmpty(0)}
}

// NewDocumentFrom is a convenience for building a raw vector from JSON texts.
// An empty string stands for a missing document.
func NewDocumentFrom(vals ...string) *Document {
	d := NewDocument()
	for _, v := range vals {
		d.AppendRaw([]byte(v))
	}
	return d
}

func (d *Document) Type() docflat.Type {
	return docflat.TypeJSON
}

func (d *Document) Len() uint32 {
	if d.IsFlat() {
		return d.fields[0].Len()
	}
	return d.table.Len()
}

func (d *Document) IsFlat() bool {
	return len(d.fields) > 0
}

// Raw returns the encoded value at slot of a raw Document.
func (d *Document) Raw(slot uint32) []byte {
	return d.table.Bytes(slot)
}

func (d *Document) AppendRaw(b []byte) {
	if d.IsFlat() {
		panic("vector: cannot append raw value to flat document")
	}
	d.table.Append(b)
}

// InitFlat prepares d to hold the flat fields described by paths and types.
// Calling InitFlat again with the same descriptors keeps the current fields
// so that successive batches accumulate.
func (d *Document) InitFlat(paths []string, types []docflat.Type) {
	if len(paths) != len(types) || len(paths) == 0 {
		panic(fmt.Sprintf("vector: bad flat descriptors (%d paths, %d types)", len(paths), len(types)))
	}
	if d.IsFlat() {
		if !slices.Equal(d.paths, paths) || !slices.Equal(d.types, types) {
			panic(fmt.Sprintf("vector: document already flattened as %v", d.paths))
		}
		return
	}
	if d.table.Len() != 0 {
		panic("vector: cannot flatten document holding raw values")
	}
	d.paths = slices.Clone(paths)
	d.types = slices.Clone(types)
	d.fields = make([]*Nullable, 0, len(paths))
	for _, typ := range types {
		d.fields = append(d.fields, NewNullableOf(typ))
	}
}

func (d *Document) Paths() []string {
	return d.paths
}

func (d *Document) Types() []docflat.Type {
	return d.types
}

func (d *Document) Field(k int) *Nullable {
	return d.fields[k]
}

func (d *Document) Fields() []*Nullable {
	return d.fields
}

// LookupField returns the flat field for path or nil.
func (d *Document) LookupField(path string) *Nullable {
	if k := slices.Index(d.paths, path); k >= 0 {
		return d.fields[k]
	}
	return nil
}

// CloneEmpty returns an empty raw Document.  Flat fields are derived per
// batch and are not part of the shape.
func (d *Document) CloneEmpty() Any {
	return NewDocument()
}

func (d *Document) AppendNulls(n uint32) {
	if d.IsFlat() {
		for _, f := range d.fields {
			f.AppendNulls(n)
		}
		return
	}
	for range n {
		d.table.Append(nil)
	}
}

func (d *Document) AppendValue(val docflat.Value, n uint32) {
	if val.IsNull() {
		d.AppendNulls(n)
		return
	}
	b := val.Bytes()
	for range n {
		d.AppendRaw(b)
	}
}

func (d *Document) Append(src Any, from, n uint32) {
	if appendConst(d, src, n) {
		return
	}
	s, ok := src.(*Document)
	if !ok || s.IsFlat() || d.IsFlat() {
		badAppend(d, src)
	}
	d.table.AppendRange(s.table, from, n)
}

// NewDocumentTable returns a raw Document over an existing bytes table.
func NewDocumentTable(table BytesTable) *Document {
	return &Document{table: table}
}
