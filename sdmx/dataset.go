package sdmx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Action is the action a dataset asks the receiver to perform
type Action string

// Dataset actions
const (
	ActionInformation Action = "Information"
	ActionAppend      Action = "Append"
	ActionReplace     Action = "Replace"
	ActionDelete      Action = "Delete"
)

func (a Action) valid() bool {
	switch a {
	case ActionInformation, ActionAppend, ActionReplace, ActionDelete:
		return true
	}
	return false
}

// DataSet is a single dataset of a data message
type DataSet struct {
	Action            Action                     `json:"action"`
	ReportingBegin    string                     `json:"reportingBegin,omitempty"`
	ReportingEnd      string                     `json:"reportingEnd,omitempty"`
	ValidFrom         string                     `json:"validFrom,omitempty"`
	ValidTo           string                     `json:"validTo,omitempty"`
	PublicationYear   string                     `json:"publicationYear,omitempty"`
	PublicationPeriod string                     `json:"publicationPeriod,omitempty"`
	Links             []*Link                    `json:"links,omitempty"`
	Annotations       []int                      `json:"annotations,omitempty"`
	Attributes        []*int                     `json:"attributes,omitempty"`
	Series            *SeriesMap                 `json:"series,omitempty"`
	Observations      *ObservationMap            `json:"observations,omitempty"`
	Extensions        map[string]json.RawMessage `json:"-"`

	index int
}

var dataSetFields = []string{"action", "reportingBegin", "reportingEnd", "validFrom", "validTo", "publicationYear", "publicationPeriod", "links", "annotations", "attributes", "series", "observations"}

// UnmarshalJSON decodes a dataset that is not part of a message
func (ds *DataSet) UnmarshalJSON(b []byte) error {
	return ds.decode(b, -1)
}

func (ds *DataSet) decode(b []byte, index int) error {
	type dataSet DataSet
	var out dataSet
	if err := json.Unmarshal(b, &out); err != nil {
		return dataSetError(index, err)
	}

	ext, err := extensions(b, dataSetFields...)
	if err != nil {
		return dataSetError(index, err)
	}

	if out.Action == "" {
		out.Action = ActionInformation
	}
	if !out.Action.valid() {
		return &MalformedStructureError{DataSet: index, Section: "dataSet", Field: "action", Reason: fmt.Sprintf("unknown action %q", out.Action)}
	}

	*ds = DataSet(out)
	ds.Extensions = ext
	ds.index = index

	if _, err := ds.Storage(); err != nil {
		return err
	}
	return nil
}

func dataSetError(index int, err error) error {
	err = structureError("dataSet", err)
	var mse *MalformedStructureError
	if errors.As(err, &mse) {
		mse.DataSet = index
	}
	return err
}

// Storage is where a dataset keeps its observations: either SeriesStorage or ObservationStorage
type Storage interface {
	storage()
}

// SeriesStorage holds observations grouped by series
type SeriesStorage struct {
	Series *SeriesMap
}

// ObservationStorage holds observations directly keyed by every dimension
type ObservationStorage struct {
	Observations *ObservationMap
}

func (SeriesStorage) storage()      {}
func (ObservationStorage) storage() {}

// Storage returns the dataset's payload. Exactly one of series and observations must be present.
func (ds *DataSet) Storage() (Storage, error) {
	hasSeries, hasObs := ds.Series != nil, ds.Observations != nil
	if hasSeries == hasObs {
		return nil, &MutualExclusivityViolationError{DataSet: ds.index, HasSeries: hasSeries, HasObservations: hasObs}
	}
	if hasSeries {
		return SeriesStorage{Series: ds.Series}, nil
	}
	return ObservationStorage{Observations: ds.Observations}, nil
}

// OrderedMap is a JSON object that keeps its keys in document order.
// A repeated key keeps its first position and takes the last value.
type OrderedMap[V any] struct {
	keys   []string
	index  map[string]int
	values []V
}

// NewOrderedMap returns an empty OrderedMap
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{index: make(map[string]int)}
}

// Set adds or replaces the value for key
func (m *OrderedMap[V]) Set(key string, v V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.values[i] = v
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, v)
}

// Len returns the number of entries
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in document order
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Get returns the value for key
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.values[i], true
}

// Each calls fn for every entry in document order, stopping at the first error
func (m *OrderedMap[V]) Each(fn func(key string, v V) error) error {
	if m == nil {
		return nil
	}
	for i, k := range m.keys {
		if err := fn(k, m.values[i]); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalJSON decodes a JSON object keeping key order
func (m *OrderedMap[V]) UnmarshalJSON(b []byte) error {
	*m = OrderedMap[V]{index: make(map[string]int)}
	return decodeObject(b, func(key string, raw json.RawMessage) error {
		var v V
		if err := json.Unmarshal(raw, &v); err != nil {
			return errors.Wrapf(err, "key %q", key)
		}
		m.Set(key, v)
		return nil
	})
}

// MarshalJSON encodes the map as a JSON object in key order
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SeriesMap maps series keys to series
type SeriesMap = OrderedMap[*Series]

// ObservationMap maps observation keys to observations
type ObservationMap = OrderedMap[*Observation]

// Series is a group of observations sharing their series level dimension values
type Series struct {
	Attributes   []*int          `json:"attributes,omitempty"`
	Annotations  []int           `json:"annotations,omitempty"`
	Observations *ObservationMap `json:"observations,omitempty"`
}

// Observation is a value followed by its attribute slots. Attributes holds the slots
// that were supplied; a nil entry is an explicit null.
type Observation struct {
	Value      *float64
	Attributes []*int
}

// UnmarshalJSON decodes an observation array
func (o *Observation) UnmarshalJSON(b []byte) error {
	var slots []json.RawMessage
	if err := json.Unmarshal(b, &slots); err != nil {
		return err
	}

	*o = Observation{}
	if len(slots) == 0 {
		return nil
	}

	v, err := observationValue(slots[0])
	if err != nil {
		return err
	}
	o.Value = v

	o.Attributes = make([]*int, len(slots)-1)
	for i, raw := range slots[1:] {
		if isNull(raw) {
			continue
		}
		var idx int
		if err := json.Unmarshal(raw, &idx); err != nil {
			return errors.Errorf("attribute slot %d: expected an index, got %s", i, raw)
		}
		o.Attributes[i] = &idx
	}
	return nil
}

// MarshalJSON encodes the observation as an array
func (o *Observation) MarshalJSON() ([]byte, error) {
	slots := make([]interface{}, 0, len(o.Attributes)+1)
	slots = append(slots, o.Value)
	for _, a := range o.Attributes {
		slots = append(slots, a)
	}
	return json.Marshal(slots)
}

func observationValue(raw json.RawMessage) (*float64, error) {
	raw = bytes.TrimSpace(raw)
	if isNull(raw) {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errors.Errorf("observation value %q is not numeric", s)
		}
		return &f, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, errors.Errorf("observation value %s is not numeric", raw)
	}
	return &f, nil
}
