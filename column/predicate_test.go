package column

import (
	"testing"

	"github.com/brimdata/docflat"
	"github.com/stretchr/testify/assert"
)

func intZone(min, max int64, hasNull bool) Zone {
	return Zone{
		Min:      docflat.NewInt64(min),
		Max:      docflat.NewInt64(max),
		Ordered:  true,
		HasNull:  hasNull,
		HasValue: true,
	}
}

func TestCompareZone(t *testing.T) {
	z := intZone(10, 20, false)
	cases := []struct {
		op   Op
		val  int64
		may  bool
		must bool
	}{
		{EQ, 15, true, false},
		{EQ, 25, false, false},
		{NE, 15, true, false},
		{NE, 30, true, true},
		{LT, 10, false, false},
		{LT, 21, true, true},
		{LE, 10, true, false},
		{GT, 20, false, false},
		{GT, 9, true, true},
		{GE, 20, true, false},
	}
	for _, c := range cases {
		p := NewCompare(c.op, docflat.NewInt64(c.val))
		assert.Equal(t, c.may, p.ZoneMayMatch(z), p.String())
		assert.Equal(t, c.must, p.ZoneMustMatch(z), p.String())
	}
	// Null rows never satisfy a comparison.
	assert.False(t, NewCompare(GT, docflat.NewInt64(0)).ZoneMustMatch(intZone(10, 20, true)))
	assert.False(t, NewCompare(EQ, docflat.NewInt64(0)).ZoneMayMatch(Zone{HasNull: true}))
	// Unordered zones cannot prune.
	assert.True(t, NewCompare(EQ, docflat.NewInt64(0)).ZoneMayMatch(Zone{HasValue: true}))
}

func TestIsNullZone(t *testing.T) {
	allNull := Zone{HasNull: true}
	noNull := intZone(1, 2, false)
	assert.True(t, NewIsNull().ZoneMustMatch(allNull))
	assert.False(t, NewIsNull().ZoneMayMatch(noNull))
	assert.True(t, NewNotNull().ZoneMustMatch(noNull))
	assert.False(t, NewNotNull().ZoneMayMatch(allNull))
}

func TestZoneMayMatchRelation(t *testing.T) {
	z := intZone(10, 20, false)
	yes := NewCompare(EQ, docflat.NewInt64(12))
	no := NewCompare(EQ, docflat.NewInt64(99))
	assert.True(t, ZoneMayMatch(nil, And, z))
	assert.False(t, ZoneMayMatch([]Predicate{yes, no}, And, z))
	assert.True(t, ZoneMayMatch([]Predicate{yes, no}, Or, z))
	assert.False(t, ZoneMayMatch([]Predicate{no, no}, Or, z))
}
