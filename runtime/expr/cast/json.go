package cast

import (
	"math"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/runtime/flatten"
	"github.com/goccy/go-json"
)

func toJSON(val docflat.Value) docflat.Value {
	switch typ := val.Type(); {
	case typ == docflat.TypeString:
		b, err := json.Marshal(val.AsString())
		if err != nil {
			return docflat.NewNull(docflat.TypeJSON)
		}
		return docflat.NewJSON(b)
	case docflat.IsFloat(typ):
		if f := val.Float(); math.IsNaN(f) || math.IsInf(f, 0) {
			return docflat.NewNull(docflat.TypeJSON)
		}
	}
	return docflat.NewJSON(toString(val).Bytes())
}

func fromJSON(val docflat.Value, to docflat.Type) docflat.Value {
	return flatten.Convert(val.Bytes(), to)
}
