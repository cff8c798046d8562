package sdmx

import (
	"encoding/json"
	"io"

	"github.com/ONSdigital/dp-sdmx-api/table"
	"github.com/pkg/errors"
)

// Message is an SDMX-JSON data message. Exactly one of Data and Errors is set.
type Message struct {
	Meta   *Meta   `json:"meta,omitempty"`
	Data   *Data   `json:"data,omitempty"`
	Errors []Error `json:"errors,omitempty"`
}

// Meta is the message header
type Meta struct {
	ID               string            `json:"id,omitempty"`
	Test             bool              `json:"test,omitempty"`
	Schema           string            `json:"schema,omitempty"`
	Prepared         string            `json:"prepared,omitempty"`
	ContentLanguages []string          `json:"contentLanguages,omitempty"`
	Name             string            `json:"name,omitempty"`
	Names            map[string]string `json:"names,omitempty"`
	Sender           *Artefact         `json:"sender,omitempty"`
	Receivers        []*Artefact       `json:"receivers,omitempty"`
	Links            []*Link           `json:"links,omitempty"`
}

// Error is an entry of an error message
type Error struct {
	Code    int               `json:"code"`
	Title   string            `json:"title,omitempty"`
	Titles  map[string]string `json:"titles,omitempty"`
	Detail  string            `json:"detail,omitempty"`
	Details map[string]string `json:"details,omitempty"`
	Links   []*Link           `json:"links,omitempty"`
}

// Data is the data section of a message: one structure shared by zero or more datasets
type Data struct {
	Structure *Structure `json:"structure"`
	DataSets  []*DataSet `json:"dataSets"`
}

// UnmarshalJSON decodes the data section. The structure is required.
func (d *Data) UnmarshalJSON(b []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return structureError("data", err)
	}

	raw, ok := members["structure"]
	if !ok || isNull(raw) {
		return &MalformedStructureError{DataSet: -1, Section: "data", Field: "structure", Reason: "structure is required"}
	}
	var s Structure
	if err := json.Unmarshal(raw, &s); err != nil {
		return structureError("structure", err)
	}

	var sets []json.RawMessage
	if raw, ok := members["dataSets"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &sets); err != nil {
			return structureError("data", err)
		}
	}

	dataSets := make([]*DataSet, len(sets))
	for i, raw := range sets {
		if isNull(raw) {
			return &MalformedStructureError{DataSet: i, Section: "dataSet", Reason: "dataset is null"}
		}
		ds := &DataSet{}
		if err := ds.decode(raw, i); err != nil {
			return err
		}
		dataSets[i] = ds
	}

	*d = Data{Structure: &s, DataSets: dataSets}
	return nil
}

// DataSet returns dataset i
func (d *Data) DataSet(i int) (*DataSet, error) {
	if i < 0 || i >= len(d.DataSets) {
		return nil, errors.Wrapf(ErrDataSetNotFound, "index %d of %d", i, len(d.DataSets))
	}
	return d.DataSets[i], nil
}

// ParseMessage reads a data or error message from raw JSON
func ParseMessage(raw []byte) (*Message, error) {
	if !json.Valid(raw) {
		return nil, errors.WithMessage(ErrInvalidMessage, "message is not valid json")
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, &InvalidTopLevelShapeError{Reason: "message is not a json object"}
	}

	dataRaw, hasData := present(members, "data")
	errorsRaw, hasErrors := present(members, "errors")
	if hasData == hasErrors {
		return nil, &InvalidTopLevelShapeError{HasData: hasData, HasErrors: hasErrors}
	}

	msg := &Message{}
	if metaRaw, ok := present(members, "meta"); ok {
		msg.Meta = &Meta{}
		if err := json.Unmarshal(metaRaw, msg.Meta); err != nil {
			return nil, structureError("meta", err)
		}
	}

	if hasData {
		msg.Data = &Data{}
		if err := json.Unmarshal(dataRaw, msg.Data); err != nil {
			return nil, structureError("data", err)
		}
		return msg, nil
	}

	msg.Errors = []Error{}
	if err := json.Unmarshal(errorsRaw, &msg.Errors); err != nil {
		return nil, structureError("errors", err)
	}
	return msg, nil
}

// DecodeMessage reads a message from r
func DecodeMessage(r io.Reader) (*Message, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read message")
	}
	return ParseMessage(raw)
}

func present(members map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := members[key]
	if !ok || isNull(raw) {
		return nil, false
	}
	return raw, true
}

// Observations returns one table per dataset. Error messages have no observations
// and return nil.
func (m *Message) Observations(opts ...Option) ([]*table.Table, error) {
	if m.Data == nil {
		return nil, nil
	}
	return m.Data.Observations(opts...)
}
