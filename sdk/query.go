package sdk

import "errors"

// QueryParams represents the paging parameters accepted by list endpoints
type QueryParams struct {
	Offset int
	Limit  int
}

// ErrInvalidQueryParams is returned when paging parameters are negative
var ErrInvalidQueryParams = errors.New("negative offsets or limits are not allowed")

// Validate checks that offset and limit are not negative
func (q *QueryParams) Validate() error {
	if q.Offset < 0 || q.Limit < 0 {
		return ErrInvalidQueryParams
	}
	return nil
}
