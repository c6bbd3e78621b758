package field

import (
	"errors"
	"fmt"
	"strings"
)

// A Path is a sequence of document keys.  Array elements are addressed by
// a key of the form "[n]".
type Path []string

func (p Path) String() string {
	if len(p) == 0 {
		return "$"
	}
	var b strings.Builder
	for k, elem := range p {
		if k > 0 && !isIndex(elem) {
			b.WriteByte('.')
		}
		if needsQuote(elem) {
			b.WriteString(fmt.Sprintf("%q", elem))
		} else {
			b.WriteString(elem)
		}
	}
	return b.String()
}

func (p Path) Equal(to Path) bool {
	if len(p) != len(to) {
		return false
	}
	for k := range p {
		if p[k] != to[k] {
			return false
		}
	}
	return true
}

// HasPrefix returns true if prefix is a leading subsequence of p.
func (p Path) HasPrefix(prefix Path) bool {
	return len(prefix) <= len(p) && p[:len(prefix)].Equal(prefix)
}

var ErrEmpty = errors.New("empty path")

// Parse parses the textual form of a path.  A leading "$" or "$." is
// optional, keys are separated by dots and may be double quoted to include
// dots, and "[n]" selects an array element, e.g., `$.a."b.c"[0].d`.
func Parse(s string) (Path, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, ".")
	if s == "" {
		return nil, ErrEmpty
	}
	var path Path
	for len(s) > 0 {
		switch s[0] {
		case '"':
			end := strings.IndexByte(s[1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("unterminated quote in path %q", s)
			}
			path = append(path, s[1:end+1])
			s = s[end+2:]
		case '[':
			end := strings.IndexByte(s, ']')
			if end < 0 {
				return nil, fmt.Errorf("unterminated index in path %q", s)
			}
			path = append(path, s[:end+1])
			s = s[end+1:]
		default:
			end := strings.IndexAny(s, ".[")
			if end < 0 {
				end = len(s)
			}
			if end == 0 {
				return nil, fmt.Errorf("empty key in path %q", s)
			}
			path = append(path, s[:end])
			s = s[end:]
		}
		if len(s) > 0 && s[0] == '.' {
			s = s[1:]
			if s == "" {
				return nil, errors.New("path ends with '.'")
			}
		}
	}
	return path, nil
}

// Dotted is like Parse but panics on error.
func Dotted(s string) Path {
	path, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return path
}

func isIndex(elem string) bool {
	return strings.HasPrefix(elem, "[") && strings.HasSuffix(elem, "]")
}

func needsQuote(elem string) bool {
	return !isIndex(elem) && strings.ContainsAny(elem, ".[")
}
