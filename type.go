package docflat

import (
	"fmt"
	"strings"
)

// Type is the logical type of a column or of a flat field within a
// document column.
type Type int

const (
	TypeNull Type = iota
	TypeBool
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeJSON
)

var typeNames = []string{
	TypeNull:    "null",
	TypeBool:    "bool",
	TypeInt8:    "int8",
	TypeInt16:   "int16",
	TypeInt32:   "int32",
	TypeInt64:   "int64",
	TypeFloat32: "float32",
	TypeFloat64: "float64",
	TypeString:  "string",
	TypeJSON:    "json",
}

var aliases = map[string]Type{
	"boolean":  TypeBool,
	"tinyint":  TypeInt8,
	"smallint": TypeInt16,
	"int":      TypeInt32,
	"bigint":   TypeInt64,
	"float":    TypeFloat32,
	"double":   TypeFloat64,
	"varchar":  TypeString,
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type-Unknown-%d", int(t))
}

// LookupType returns the Type with the given name, which may be one of the
// canonical names (e.g., "int64") or a SQL-style alias (e.g., "bigint").
func LookupType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, s := range typeNames {
		if s == name {
			return Type(k), nil
		}
	}
	if typ, ok := aliases[name]; ok {
		return typ, nil
	}
	return TypeNull, fmt.Errorf("unknown type %q", name)
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	typ, err := LookupType(string(b))
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

func IsSigned(t Type) bool {
	return t >= TypeInt8 && t <= TypeInt64
}

func IsFloat(t Type) bool {
	return t == TypeFloat32 || t == TypeFloat64
}

func IsNumber(t Type) bool {
	return IsSigned(t) || IsFloat(t)
}

// IntBits returns the width of a signed integer type or 0 for other types.
func IntBits(t Type) int {
	switch t {
	case TypeInt8:
		return 8
	case TypeInt16:
		return 16
	case TypeInt32:
		return 32
	case TypeInt64:
		return 64
	}
	return 0
}
