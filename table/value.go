package table

import (
	"encoding/json"
	"fmt"
)

// Type is the type of a column in a table
type Type int

// Supported column types
const (
	TypeString Type = iota
	TypeFloat
)

var typeNames = map[Type]string{
	TypeString: "string",
	TypeFloat:  "float64",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalJSON writes the type by name
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Column describes a single column of a table
type Column struct {
	Name string `json:"name"`
	Type Type   `json:"type"`
}

// Value is a single cell. A null cell has IsNull set and may carry either type.
type Value struct {
	Raw    interface{}
	Type   Type
	IsNull bool
}

// NewString returns a string cell
func NewString(s string) Value {
	return Value{Raw: s, Type: TypeString}
}

// NewFloat returns a float64 cell
func NewFloat(f float64) Value {
	return Value{Raw: f, Type: TypeFloat}
}

// NewNull returns a null cell of the given type
func NewNull(t Type) Value {
	return Value{Type: t, IsNull: true}
}

// String returns the string content of the cell and whether it is non-null
func (v Value) String() (string, bool) {
	if v.IsNull {
		return "", false
	}
	s, ok := v.Raw.(string)
	return s, ok
}

// Float returns the float content of the cell and whether it is non-null
func (v Value) Float() (float64, bool) {
	if v.IsNull {
		return 0, false
	}
	f, ok := v.Raw.(float64)
	return f, ok
}

// MarshalJSON writes null cells as JSON null
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNull {
		return []byte("null"), nil
	}
	return json.Marshal(v.Raw)
}
