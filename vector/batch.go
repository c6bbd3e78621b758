package vector

// Batch is a set of equal-length vectors addressed by slot id, the unit
// over which expressions are evaluated.
type Batch struct {
	slots map[int]Any
}

func NewBatch() *Batch {
	return &Batch{slots: make(map[int]Any)}
}

func (b *Batch) Put(slot int, vec Any) {
	b.slots[slot] = vec
}

func (b *Batch) Lookup(slot int) (Any, bool) {
	vec, ok := b.slots[slot]
	return vec, ok
}

func (b *Batch) Len() uint32 {
	for _, vec := range b.slots {
		return vec.Len()
	}
	return 0
}
