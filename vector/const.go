package vector

import (
	"github.com/brimdata/docflat"
)

// Const is a vector whose every row holds the same value.  A Const with a
// null value is the "only null" vector.
type Const struct {
	deletes
	val    docflat.Value
	length uint32
}

var _ Any = (*Const)(nil)

func NewConst(val docflat.Value, length uint32) *Const {
	return &Const{val: val, length: length}
}

func (c *Const) Type() docflat.Type {
	return c.val.Type()
}

func (c *Const) Len() uint32 {
	return c.length
}

func (c *Const) Value() docflat.Value {
	return c.val
}

func (c *Const) CloneEmpty() Any {
	return NewConst(c.val, 0)
}
