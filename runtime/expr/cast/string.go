package cast

import (
	"strconv"

	"github.com/brimdata/docflat"
)

func formatNumber(val docflat.Value) string {
	if docflat.IsFloat(val.Type()) {
		bits := 64
		if val.Type() == docflat.TypeFloat32 {
			bits = 32
		}
		return strconv.FormatFloat(val.Float(), 'g', -1, bits)
	}
	return strconv.FormatInt(val.Int(), 10)
}

func toString(val docflat.Value) docflat.Value {
	switch typ := val.Type(); {
	case typ == docflat.TypeBool:
		return docflat.NewString(strconv.FormatBool(val.Bool()))
	case docflat.IsNumber(typ):
		return docflat.NewString(formatNumber(val))
	}
	return docflat.NewString(val.AsString())
}

func parseString(val docflat.Value, to docflat.Type) docflat.Value {
	s := val.AsString()
	switch {
	case to == docflat.TypeBool:
		if b, err := strconv.ParseBool(s); err == nil {
			return docflat.NewBool(b)
		}
	case docflat.IsSigned(to):
		if i, err := strconv.ParseInt(s, 10, docflat.IntBits(to)); err == nil {
			return docflat.NewInt(to, i)
		}
	case docflat.IsFloat(to):
		bits := 64
		if to == docflat.TypeFloat32 {
			bits = 32
		}
		if f, err := strconv.ParseFloat(s, bits); err == nil {
			return docflat.NewFloat(to, f)
		}
	}
	return docflat.NewNull(to)
}
