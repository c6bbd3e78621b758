package segment

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
	"github.com/brimdata/docflat/pkg/byteconv"
	"github.com/brimdata/docflat/vector"
	"github.com/pierrec/lz4/v4"
	"github.com/ronanh/intcomp"
)

// page is the encoded form of a run of consecutive rows of one column.
// Row positions inside nulls and bool bitmaps are relative to first.
type page struct {
	first   uint32
	length  uint32
	zone    column.Zone
	nulls   []byte
	values  []byte
	offsets []byte
}

func (p *page) end() uint32 {
	return p.first + p.length
}

func encodePage(vec vector.Any, first, n uint32) (*page, error) {
	p := &page{first: first, length: n}
	nulls, values := vector.Split(vec)
	zb := newZoneBuilder(values.Type())
	isNull := func(uint32) bool { return false }
	if nulls != nil {
		bm := roaring.New()
		for k := range n {
			if nulls.Value(first + k) {
				bm.Add(k)
			}
		}
		b, err := bm.ToBytes()
		if err != nil {
			return nil, err
		}
		p.nulls = b
		isNull = bm.Contains
	}
	switch values := values.(type) {
	case *vector.Bool:
		bm := roaring.New()
		for k := range n {
			v := values.Value(first + k)
			if v {
				bm.Add(k)
			}
			if isNull(k) {
				zb.null()
			} else {
				zb.add(docflat.NewBool(v))
			}
		}
		b, err := bm.ToBytes()
		if err != nil {
			return nil, err
		}
		p.values = b
	case *vector.Int:
		vals := values.Values[first : first+n]
		for k, v := range vals {
			if isNull(uint32(k)) {
				zb.null()
			} else {
				zb.add(docflat.NewInt(values.Typ, v))
			}
		}
		p.values = byteconv.ReinterpretSlice[byte](intcomp.CompressInt64(vals, nil))
	case *vector.Float:
		bits := make([]uint64, 0, n)
		for k, v := range values.Values[first : first+n] {
			bits = append(bits, math.Float64bits(v))
			if isNull(uint32(k)) {
				zb.null()
			} else {
				zb.add(docflat.NewFloat(values.Typ, v))
			}
		}
		p.values = byteconv.ReinterpretSlice[byte](intcomp.CompressUint64(bits, nil))
	case *vector.String:
		table := vector.NewBytesTableEmpty(n)
		table.AppendRange(values.Table(), first, n)
		for k := range n {
			if isNull(k) {
				zb.null()
			} else {
				zb.add(docflat.NewString(table.String(k)))
			}
		}
		if err := p.encodeTable(table); err != nil {
			return nil, err
		}
	case *vector.Document:
		if values.IsFlat() {
			return nil, fmt.Errorf("flat document columns cannot be stored")
		}
		table := vector.NewBytesTableEmpty(n)
		for k := range n {
			raw := values.Raw(first + k)
			table.Append(raw)
			if isNull(k) || len(raw) == 0 {
				zb.null()
			} else {
				zb.add(docflat.NewJSON(raw))
			}
		}
		if err := p.encodeTable(table); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported column vector %T", vec)
	}
	p.zone = zb.zone()
	return p, nil
}

func (p *page) encodeTable(table vector.BytesTable) error {
	offsets, b := table.Slices()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	p.values = buf.Bytes()
	p.offsets = byteconv.ReinterpretSlice[byte](intcomp.CompressUint32(offsets, nil))
	return nil
}

func (p *page) decodeTable() (vector.BytesTable, error) {
	offsets := intcomp.UncompressUint32(byteconv.ReinterpretSlice[uint32](p.offsets), nil)
	if len(offsets) != int(p.length)+1 {
		return vector.BytesTable{}, fmt.Errorf("page at row %d: %d offsets for %d rows", p.first, len(offsets), p.length)
	}
	b, err := io.ReadAll(lz4.NewReader(bytes.NewReader(p.values)))
	if err != nil {
		return vector.BytesTable{}, err
	}
	if int(offsets[p.length]) != len(b) {
		return vector.BytesTable{}, fmt.Errorf("page at row %d: truncated values", p.first)
	}
	return vector.NewBytesTable(offsets, b), nil
}

// decode returns the page's rows as a Nullable when the column stores
// nulls and as a plain vector otherwise.
func (p *page) decode(typ docflat.Type) (vector.Any, error) {
	var values vector.Any
	switch {
	case typ == docflat.TypeBool:
		bm, err := unmarshalBitmap(p.values)
		if err != nil {
			return nil, err
		}
		vec := vector.NewBoolEmpty()
		for k := range p.length {
			vec.AppendBool(bm.Contains(k))
		}
		values = vec
	case docflat.IsSigned(typ):
		vals := intcomp.UncompressInt64(byteconv.ReinterpretSlice[uint64](p.values), nil)
		if len(vals) != int(p.length) {
			return nil, fmt.Errorf("page at row %d: %d values for %d rows", p.first, len(vals), p.length)
		}
		values = vector.NewInt(typ, vals)
	case docflat.IsFloat(typ):
		bits := intcomp.UncompressUint64(byteconv.ReinterpretSlice[uint64](p.values), nil)
		if len(bits) != int(p.length) {
			return nil, fmt.Errorf("page at row %d: %d values for %d rows", p.first, len(bits), p.length)
		}
		vals := make([]float64, 0, len(bits))
		for _, b := range bits {
			vals = append(vals, math.Float64frombits(b))
		}
		values = vector.NewFloat(typ, vals)
	case typ == docflat.TypeString:
		table, err := p.decodeTable()
		if err != nil {
			return nil, err
		}
		values = vector.NewString(table)
	case typ == docflat.TypeJSON:
		table, err := p.decodeTable()
		if err != nil {
			return nil, err
		}
		values = vector.NewDocumentTable(table)
	default:
		return nil, fmt.Errorf("unsupported column type %s", typ)
	}
	if p.nulls == nil {
		return values, nil
	}
	bm, err := unmarshalBitmap(p.nulls)
	if err != nil {
		return nil, err
	}
	nulls := vector.NewBoolEmpty()
	for k := range p.length {
		nulls.AppendBool(bm.Contains(k))
	}
	return vector.NewNullable(nulls, values), nil
}

func unmarshalBitmap(b []byte) (*roaring.Bitmap, error) {
	bm := roaring.New()
	if err := bm.UnmarshalBinary(b); err != nil {
		return nil, err
	}
	return bm, nil
}
