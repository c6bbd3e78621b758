package segment

import (
	"math"

	"github.com/brimdata/docflat"
	"github.com/brimdata/docflat/column"
)

type zoneBuilder struct {
	z column.Zone
}

func newZoneBuilder(typ docflat.Type) *zoneBuilder {
	// JSON has no total order.
	return &zoneBuilder{z: column.Zone{Ordered: typ != docflat.TypeJSON}}
}

func (z *zoneBuilder) null() {
	z.z.HasNull = true
}

func (z *zoneBuilder) add(val docflat.Value) {
	if docflat.IsFloat(val.Type()) && math.IsNaN(val.Float()) {
		z.z.Ordered = false
	}
	if !z.z.HasValue {
		z.z.Min, z.z.Max, z.z.HasValue = val, val, true
		return
	}
	if docflat.Compare(val, z.z.Min) < 0 {
		z.z.Min = val
	}
	if docflat.Compare(val, z.z.Max) > 0 {
		z.z.Max = val
	}
}

func (z *zoneBuilder) zone() column.Zone {
	return z.z
}
