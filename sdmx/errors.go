package sdmx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMessage is matched by every error raised while reading a message
var ErrInvalidMessage = errors.New("invalid sdmx-json message")

// ErrDataSetNotFound is returned when a dataset index is out of range
var ErrDataSetNotFound = errors.New("dataset not found")

// InvalidTopLevelShapeError is returned when a message does not carry exactly one of data and errors
type InvalidTopLevelShapeError struct {
	HasData   bool
	HasErrors bool
	Reason    string
}

func (e *InvalidTopLevelShapeError) Error() string {
	if e.Reason != "" {
		return "invalid message shape: " + e.Reason
	}
	if e.HasData && e.HasErrors {
		return "invalid message shape: both data and errors are present"
	}
	return "invalid message shape: neither data nor errors is present"
}

// Is reports whether target is ErrInvalidMessage
func (e *InvalidTopLevelShapeError) Is(target error) bool {
	return target == ErrInvalidMessage
}

// MalformedStructureError is returned when the structure section, or a dataset, is missing
// a required field or carries one of the wrong type
type MalformedStructureError struct {
	DataSet int
	Section string
	Level   Level
	Field   string
	Reason  string
}

func (e *MalformedStructureError) Error() string {
	var b strings.Builder
	b.WriteString("malformed structure")
	if e.DataSet >= 0 {
		fmt.Fprintf(&b, ": dataset %d", e.DataSet)
	}
	if e.Section != "" {
		fmt.Fprintf(&b, ": %s", e.Section)
	}
	if e.Level != "" {
		fmt.Fprintf(&b, " level %q", e.Level)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, ": %s", e.Reason)
	}
	return b.String()
}

// Is reports whether target is ErrInvalidMessage
func (e *MalformedStructureError) Is(target error) bool {
	return target == ErrInvalidMessage
}

// MalformedKeyError is returned when a key does not split into one integer per dimension
type MalformedKeyError struct {
	DataSet   int
	Level     Level
	SeriesKey string
	Key       string
	Reason    string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed %skey %q%s: %s", levelPrefix(e.Level), e.Key, location(e.DataSet, e.SeriesKey), e.Reason)
}

// Is reports whether target is ErrInvalidMessage
func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrInvalidMessage
}

// IndexResolutionError is returned when an index, or a default value id, does not
// resolve against a component's values
type IndexResolutionError struct {
	DataSet     int
	Level       Level
	SeriesKey   string
	Key         string
	ComponentID string
	Index       int
	ValueID     string
}

func (e *IndexResolutionError) Error() string {
	ref := fmt.Sprintf("index %d", e.Index)
	if e.ValueID != "" {
		ref = fmt.Sprintf("default %q", e.ValueID)
	}
	key := ""
	if e.Key != "" {
		key = fmt.Sprintf(" at key %q", e.Key)
	}
	return fmt.Sprintf("unresolved %s for %scomponent %q%s%s", ref, levelPrefix(e.Level), e.ComponentID, key, location(e.DataSet, e.SeriesKey))
}

// Is reports whether target is ErrInvalidMessage
func (e *IndexResolutionError) Is(target error) bool {
	return target == ErrInvalidMessage
}

// MutualExclusivityViolationError is returned when a dataset carries both or neither
// of series and observations
type MutualExclusivityViolationError struct {
	DataSet         int
	HasSeries       bool
	HasObservations bool
}

func (e *MutualExclusivityViolationError) Error() string {
	if e.HasSeries && e.HasObservations {
		return fmt.Sprintf("dataset %d: both series and observations are present", e.DataSet)
	}
	return fmt.Sprintf("dataset %d: neither series nor observations is present", e.DataSet)
}

// Is reports whether target is ErrInvalidMessage
func (e *MutualExclusivityViolationError) Is(target error) bool {
	return target == ErrInvalidMessage
}

func location(dataSet int, seriesKey string) string {
	var b strings.Builder
	if seriesKey != "" {
		fmt.Fprintf(&b, " in series %q", seriesKey)
	}
	if dataSet >= 0 {
		fmt.Fprintf(&b, " of dataset %d", dataSet)
	}
	return b.String()
}

func levelPrefix(l Level) string {
	if l == "" {
		return ""
	}
	return string(l) + " "
}
