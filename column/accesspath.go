package column

import (
	"strings"
)

// AccessPath is a node in the tree of column and document paths read by a
// query, e.g., the node for "b" in "col.a.b".
type AccessPath struct {
	Name     string
	Children []*AccessPath
	parent   *AccessPath
}

func NewAccessPath(name string) *AccessPath {
	return &AccessPath{Name: name}
}

func (p *AccessPath) AddChild(name string) *AccessPath {
	child := &AccessPath{Name: name, parent: p}
	p.Children = append(p.Children, child)
	return child
}

func (p *AccessPath) Parent() *AccessPath {
	return p.parent
}

// AbsolutePath returns the dotted path from the root to p.
func (p *AccessPath) AbsolutePath() string {
	var names []string
	for n := p; n != nil; n = n.parent {
		names = append(names, n.Name)
	}
	var b strings.Builder
	for k := len(names) - 1; k >= 0; k-- {
		b.WriteString(names[k])
		if k > 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}
