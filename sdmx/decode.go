package sdmx

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// decodeObject walks a JSON object in document order, calling fn for every member
func decodeObject(b []byte, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errors.Errorf("expected object key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return errors.Wrapf(err, "member %q", key)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// extensions returns the members of a JSON object whose keys are not known
func extensions(b []byte, known ...string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return nil, err
	}

	var ext map[string]json.RawMessage
	for k, v := range all {
		if contains(known, k) {
			continue
		}
		if ext == nil {
			ext = make(map[string]json.RawMessage)
		}
		ext[k] = v
	}
	return ext, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func isNull(b []byte) bool {
	b = bytes.TrimSpace(b)
	return len(b) == 0 || bytes.Equal(b, []byte("null"))
}

// structureError turns a decoding failure into a MalformedStructureError, leaving
// errors that already describe an invalid message untouched
func structureError(section string, err error) error {
	if errors.Is(err, ErrInvalidMessage) {
		return err
	}

	mse := &MalformedStructureError{DataSet: -1, Section: section, Reason: err.Error()}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		mse.Field = ute.Field
		mse.Reason = fmt.Sprintf("expected %s, got %s", ute.Type, ute.Value)
	}
	return mse
}
