package table

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Sink receives the column set once and then rows in order
type Sink interface {
	Init(columns []Column) error
	Append(row []Value) error
}

// Table is a column-oriented in-memory Sink
type Table struct {
	columns     []Column
	index       map[string]int
	data        [][]Value
	rows        int
	initialised bool
}

// New returns an empty, uninitialised table
func New() *Table {
	return &Table{}
}

// Init sets the column set of the table. It can only be called once.
func (t *Table) Init(columns []Column) error {
	if t.initialised {
		return ErrAlreadyInitialised
	}

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, ok := index[c.Name]; ok {
			return errors.Wrapf(ErrDuplicateColumn, "column %q", c.Name)
		}
		index[c.Name] = i
	}

	t.columns = append([]Column(nil), columns...)
	t.index = index
	t.data = make([][]Value, len(columns))
	t.initialised = true
	return nil
}

// Append adds a row. Null cells are accepted in any column.
func (t *Table) Append(row []Value) error {
	if !t.initialised {
		return ErrNotInitialised
	}
	if len(row) != len(t.columns) {
		return errors.Wrapf(ErrRowLength, "got %d cells, want %d", len(row), len(t.columns))
	}
	for i, v := range row {
		if !v.IsNull && v.Type != t.columns[i].Type {
			return errors.Wrapf(ErrTypeMismatch, "column %q", t.columns[i].Name)
		}
	}
	for i, v := range row {
		if v.IsNull {
			v.Type = t.columns[i].Type
		}
		t.data[i] = append(t.data[i], v)
	}
	t.rows++
	return nil
}

// RowCount returns the number of rows appended
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Columns returns a copy of the column set
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// ColumnName returns the name of column i
func (t *Table) ColumnName(i int) (string, error) {
	if i < 0 || i >= len(t.columns) {
		return "", ErrInvalidColumn
	}
	return t.columns[i].Name, nil
}

// ColumnType returns the type of column i
func (t *Table) ColumnType(i int) (Type, error) {
	if i < 0 || i >= len(t.columns) {
		return 0, ErrInvalidColumn
	}
	return t.columns[i].Type, nil
}

// ColumnIndex returns the position of the named column
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return -1, errors.Wrapf(ErrColumnNotFound, "column %q", name)
	}
	return i, nil
}

// Column returns all values of the named column
func (t *Table) Column(name string) ([]Value, error) {
	i, err := t.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	return append([]Value(nil), t.data[i]...), nil
}

// Cell returns the value at the given row and column
func (t *Table) Cell(row, col int) (Value, error) {
	if col < 0 || col >= len(t.columns) {
		return Value{}, ErrInvalidColumn
	}
	if row < 0 || row >= t.rows {
		return Value{}, ErrInvalidRow
	}
	return t.data[col][row], nil
}

// Row returns a copy of row i
func (t *Table) Row(i int) ([]Value, error) {
	if i < 0 || i >= t.rows {
		return nil, ErrInvalidRow
	}
	row := make([]Value, len(t.columns))
	for c := range t.columns {
		row[c] = t.data[c][i]
	}
	return row, nil
}

type jsonColumn struct {
	Name   string  `json:"name"`
	Type   Type    `json:"type"`
	Values []Value `json:"values"`
}

type jsonTable struct {
	Columns  []jsonColumn `json:"columns"`
	RowCount int          `json:"row_count"`
}

// MarshalJSON writes the table column by column
func (t *Table) MarshalJSON() ([]byte, error) {
	out := jsonTable{Columns: make([]jsonColumn, len(t.columns)), RowCount: t.rows}
	for i, c := range t.columns {
		values := t.data[i]
		if values == nil {
			values = []Value{}
		}
		out.Columns[i] = jsonColumn{Name: c.Name, Type: c.Type, Values: values}
	}
	return json.Marshal(out)
}
