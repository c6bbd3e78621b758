package column

import (
	"fmt"

	"github.com/brimdata/docflat"
)

// Zone summarizes the values of a run of rows (a page) for pruning.
// Min and Max are meaningful only when Ordered and HasValue are true.
type Zone struct {
	Min      docflat.Value
	Max      docflat.Value
	Ordered  bool
	HasNull  bool
	HasValue bool
}

// Predicate is a single-column condition that can be checked against a Zone.
type Predicate interface {
	// ZoneMayMatch returns false only if no row in z can satisfy the predicate.
	ZoneMayMatch(z Zone) bool
	// ZoneMustMatch returns true only if every row in z satisfies the predicate.
	ZoneMustMatch(z Zone) bool
	fmt.Stringer
}

type Relation int

const (
	And Relation = iota
	Or
)

// ZoneMayMatch combines preds with rel over z.  An empty predicate list
// matches everything.
func ZoneMayMatch(preds []Predicate, rel Relation, z Zone) bool {
	if len(preds) == 0 {
		return true
	}
	for _, p := range preds {
		ok := p.ZoneMayMatch(z)
		if rel == And && !ok {
			return false
		}
		if rel == Or && ok {
			return true
		}
	}
	return rel == And
}

type Op int

const (
	EQ Op = iota
	NE
	LT
	LE
	GT
	GE
)

var opNames = []string{EQ: "==", NE: "!=", LT: "<", LE: "<=", GT: ">", GE: ">="}

func (o Op) String() string {
	return opNames[o]
}

type compare struct {
	op  Op
	val docflat.Value
}

// NewCompare returns the predicate "column op val".
func NewCompare(op Op, val docflat.Value) Predicate {
	return &compare{op: op, val: val}
}

func (c *compare) ZoneMayMatch(z Zone) bool {
	if !z.HasValue {
		return false
	}
	if !z.Ordered {
		return true
	}
	lo := docflat.Compare(z.Min, c.val)
	hi := docflat.Compare(z.Max, c.val)
	switch c.op {
	case EQ:
		return lo <= 0 && hi >= 0
	case NE:
		return !(lo == 0 && hi == 0)
	case LT:
		return lo < 0
	case LE:
		return lo <= 0
	case GT:
		return hi > 0
	case GE:
		return hi >= 0
	}
	return true
}

func (c *compare) ZoneMustMatch(z Zone) bool {
	if z.HasNull || !z.HasValue || !z.Ordered {
		return false
	}
	lo := docflat.Compare(z.Min, c.val)
	hi := docflat.Compare(z.Max, c.val)
	switch c.op {
	case EQ:
		return lo == 0 && hi == 0
	case NE:
		return hi < 0 || lo > 0
	case LT:
		return hi < 0
	case LE:
		return hi <= 0
	case GT:
		return lo > 0
	case GE:
		return lo >= 0
	}
	return false
}

func (c *compare) String() string {
	return fmt.Sprintf("%s %s", c.op, c.val)
}

type isNull struct {
	not bool
}

func NewIsNull() Predicate  { return &isNull{} }
func NewNotNull() Predicate { return &isNull{not: true} }

func (i *isNull) ZoneMayMatch(z Zone) bool {
	if i.not {
		return z.HasValue
	}
	return z.HasNull
}

func (i *isNull) ZoneMustMatch(z Zone) bool {
	if i.not {
		return z.HasValue && !z.HasNull
	}
	return z.HasNull && !z.HasValue
}

func (i *isNull) String() string {
	if i.not {
		return "is not null"
	}
	return "is null"
}
