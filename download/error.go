package download

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedFormat is returned for a format that has no encoder
	ErrUnsupportedFormat = errors.New("unsupported download format")

	// ErrNoColumns is returned when a table without columns is written as parquet
	ErrNoColumns = errors.New("table has no columns")
)

// EncodeError is a wrapper for errors returned while encoding a table
type EncodeError struct {
	originalErr error
	message     string
	args        []interface{}
}

func newEncodeError(err error, message string, args ...interface{}) EncodeError {
	return EncodeError{
		originalErr: err,
		message:     message,
		args:        args,
	}
}

// Error return details about the error
func (encErr EncodeError) Error() string {
	if encErr.originalErr == nil {
		return errors.Errorf(encErr.message, encErr.args...).Error()
	}
	return errors.Wrap(encErr.originalErr, fmt.Sprintf(encErr.message, encErr.args...)).Error()
}

// Unwrap returns the original error
func (encErr EncodeError) Unwrap() error {
	return encErr.originalErr
}
