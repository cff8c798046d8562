package sdmx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Level is the attachment level of a dimension or attribute
type Level string

// Attachment levels
const (
	LevelDataSet     Level = "dataSet"
	LevelSeries      Level = "series"
	LevelObservation Level = "observation"
)

// Levels lists the attachment levels in projection order
var Levels = []Level{LevelDataSet, LevelSeries, LevelObservation}

// Structure is the structure section of a data message, shared by all of its datasets
type Structure struct {
	Naming
	Links       []*Link                    `json:"links,omitempty"`
	Dimensions  Components                 `json:"dimensions"`
	Attributes  Components                 `json:"attributes"`
	Annotations []*Annotation              `json:"annotations,omitempty"`
	Extensions  map[string]json.RawMessage `json:"-"`
}

var structureFields = []string{"name", "names", "description", "descriptions", "links", "dimensions", "attributes", "annotations"}

// UnmarshalJSON decodes the structure section, keeping unknown fields as extensions
func (s *Structure) UnmarshalJSON(b []byte) error {
	type structure Structure
	var out struct {
		structure
		Dimensions json.RawMessage `json:"dimensions"`
		Attributes json.RawMessage `json:"attributes"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return structureError("structure", err)
	}

	ext, err := extensions(b, structureFields...)
	if err != nil {
		return structureError("structure", err)
	}

	*s = Structure(out.structure)
	s.Dimensions = Components{section: "dimensions"}
	s.Attributes = Components{section: "attributes"}
	if err := s.Dimensions.decode(out.Dimensions); err != nil {
		return err
	}
	if err := s.Attributes.decode(out.Attributes); err != nil {
		return err
	}
	for _, l := range s.Dimensions.order {
		if err := checkKeyPositions(l, s.Dimensions.levels[l]); err != nil {
			return err
		}
	}
	s.Extensions = ext
	return nil
}

func checkKeyPositions(level Level, dims []*Component) error {
	seen := make(map[int]string, len(dims))
	for _, d := range dims {
		if d.KeyPosition == nil {
			continue
		}
		if other, ok := seen[*d.KeyPosition]; ok {
			return &MalformedStructureError{
				DataSet: -1,
				Section: "dimensions",
				Level:   level,
				Field:   "keyPosition",
				Reason:  fmt.Sprintf("components %q and %q share key position %d", other, d.ID, *d.KeyPosition),
			}
		}
		seen[*d.KeyPosition] = d.ID
	}
	return nil
}

// Components holds the ordered components of each attachment level
type Components struct {
	section string
	levels  map[Level][]*Component
	order   []Level
}

// UnmarshalJSON decodes a level keyed object of component arrays
func (c *Components) UnmarshalJSON(b []byte) error {
	return c.decode(b)
}

func (c *Components) decode(b []byte) error {
	c.levels = make(map[Level][]*Component)
	c.order = nil
	if isNull(b) {
		return nil
	}

	return decodeObject(b, func(key string, raw json.RawMessage) error {
		level := Level(key)
		var comps []*Component
		if err := json.Unmarshal(raw, &comps); err != nil {
			var mse *MalformedStructureError
			if !errors.As(err, &mse) {
				mse = &MalformedStructureError{DataSet: -1, Reason: err.Error()}
				if ute, ok := err.(*json.UnmarshalTypeError); ok {
					mse.Reason = fmt.Sprintf("expected %s, got %s", ute.Type, ute.Value)
				}
			}
			mse.Section = c.section
			mse.Level = level
			return mse
		}
		for i, comp := range comps {
			if comp == nil {
				return &MalformedStructureError{DataSet: -1, Section: c.section, Level: level, Reason: fmt.Sprintf("component %d is null", i)}
			}
		}
		if _, ok := c.levels[level]; !ok {
			c.order = append(c.order, level)
		}
		c.levels[level] = comps
		return nil
	})
}

// Level returns the ordered components declared at level
func (c Components) Level(level Level) ([]*Component, error) {
	comps, ok := c.levels[level]
	if !ok {
		return nil, &MalformedStructureError{
			DataSet: -1,
			Section: c.section,
			Level:   level,
			Reason:  "level is not declared",
		}
	}
	return comps, nil
}

// Has reports whether level is declared
func (c Components) Has(level Level) bool {
	_, ok := c.levels[level]
	return ok
}

// Declared returns the declared levels in document order
func (c Components) Declared() []Level {
	return append([]Level(nil), c.order...)
}

// Component is a dimension or attribute descriptor
type Component struct {
	Identity
	Naming
	KeyPosition *int                       `json:"keyPosition,omitempty"`
	Roles       []string                   `json:"roles,omitempty"`
	Default     *string                    `json:"-"`
	Values      []*ComponentValue          `json:"values"`
	Annotations []int                      `json:"annotations,omitempty"`
	Links       []*Link                    `json:"links,omitempty"`
	Extensions  map[string]json.RawMessage `json:"-"`
}

var componentFields = []string{"id", "urn", "uri", "name", "names", "description", "descriptions", "keyPosition", "roles", "default", "values", "annotations", "links"}

// UnmarshalJSON decodes a component. The id is required.
func (c *Component) UnmarshalJSON(b []byte) error {
	type component Component
	var out struct {
		component
		Default json.RawMessage `json:"default"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return structureError("", err)
	}
	if out.ID == "" {
		return &MalformedStructureError{DataSet: -1, Field: "id", Reason: "component id is required"}
	}

	def, err := valueRef(out.Default)
	if err != nil {
		return &MalformedStructureError{DataSet: -1, Field: "default", Reason: fmt.Sprintf("component %q: %s", out.ID, err)}
	}

	ext, err := extensions(b, componentFields...)
	if err != nil {
		return structureError("", err)
	}

	*c = Component(out.component)
	c.Default = def
	c.Extensions = ext
	return nil
}

// ValueAt returns the value at index i of the component's vocabulary
func (c *Component) ValueAt(i int) (*ComponentValue, bool) {
	if i < 0 || i >= len(c.Values) || c.Values[i] == nil {
		return nil, false
	}
	return c.Values[i], true
}

// ValueByID returns the value with the given id
func (c *Component) ValueByID(id string) (*ComponentValue, bool) {
	for _, v := range c.Values {
		if v != nil && v.ID == id {
			return v, true
		}
	}
	return nil, false
}

// ComponentValue is a single entry of a component's vocabulary
type ComponentValue struct {
	Identity
	Naming
	Start       string `json:"start,omitempty"`
	End         string `json:"end,omitempty"`
	Parent      string `json:"parent,omitempty"`
	Annotations []int  `json:"annotations,omitempty"`
}

// valueRef reads a value id given as a string, a number or an object with an id
func valueRef(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	case '{':
		var ref Identity
		if err := json.Unmarshal(raw, &ref); err != nil {
			return nil, err
		}
		if ref.ID == "" {
			return nil, errors.New("value reference has no id")
		}
		return &ref.ID, nil
	default:
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, errors.Errorf("unsupported value reference %s", raw)
		}
		if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
			return nil, err
		}
		s := n.String()
		return &s, nil
	}
}
