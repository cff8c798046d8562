package table

import "errors"

// Table errors
var (
	ErrAlreadyInitialised = errors.New("table already initialised")
	ErrNotInitialised     = errors.New("table not initialised")
	ErrDuplicateColumn    = errors.New("duplicate column name")
	ErrRowLength          = errors.New("row length does not match column count")
	ErrTypeMismatch       = errors.New("cell type does not match column type")
	ErrColumnNotFound     = errors.New("column not found")
	ErrInvalidColumn      = errors.New("invalid column index")
	ErrInvalidRow         = errors.New("invalid row index")
)
