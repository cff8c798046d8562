package apierrors

import "errors"

// Error messages for SDMX API
var (
	ErrMessageNotFound       = errors.New("message not found")
	ErrDataSetNotFound       = errors.New("dataset not found")
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
	ErrUnableToReadMessage   = errors.New("failed to read message body")
	ErrEmptyRequestBody      = errors.New("empty request body")
	ErrSourceNotFound        = errors.New("message not found at source url")
	ErrSourceUnavailable     = errors.New("unable to retrieve message from source url")
	ErrMessageTooLarge       = errors.New("message exceeds the maximum size")
	ErrNoObservations        = errors.New("error messages have no observations")
	ErrInternalServer        = errors.New("internal error")

	NotFoundMap = map[error]bool{
		ErrMessageNotFound: true,
		ErrDataSetNotFound: true,
	}

	BadRequestMap = map[error]bool{
		ErrInvalidQueryParameter: true,
		ErrUnableToReadMessage:   true,
		ErrEmptyRequestBody:      true,
		ErrSourceNotFound:        true,
		ErrNoObservations:        true,
	}
)
