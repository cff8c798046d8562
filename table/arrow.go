package table

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pkg/errors"
)

// ArrowBuilder is a Sink that builds an arrow record
type ArrowBuilder struct {
	mem     memory.Allocator
	schema  *arrow.Schema
	builder *array.RecordBuilder
}

// NewArrowBuilder returns an ArrowBuilder allocating from mem. A nil mem uses the Go allocator.
func NewArrowBuilder(mem memory.Allocator) *ArrowBuilder {
	if mem == nil {
		mem = memory.NewGoAllocator()
	}
	return &ArrowBuilder{mem: mem}
}

// ArrowType maps a column type to its arrow data type
func ArrowType(t Type) arrow.DataType {
	if t == TypeFloat {
		return arrow.PrimitiveTypes.Float64
	}
	return arrow.BinaryTypes.String
}

// Init creates the arrow schema. Every field is nullable.
func (b *ArrowBuilder) Init(columns []Column) error {
	if b.builder != nil {
		return ErrAlreadyInitialised
	}

	fields := make([]arrow.Field, len(columns))
	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if _, ok := seen[c.Name]; ok {
			return errors.Wrapf(ErrDuplicateColumn, "column %q", c.Name)
		}
		seen[c.Name] = struct{}{}
		fields[i] = arrow.Field{Name: c.Name, Type: ArrowType(c.Type), Nullable: true}
	}

	b.schema = arrow.NewSchema(fields, nil)
	b.builder = array.NewRecordBuilder(b.mem, b.schema)
	return nil
}

// Append adds a row to the record being built
func (b *ArrowBuilder) Append(row []Value) error {
	if b.builder == nil {
		return ErrNotInitialised
	}
	if len(row) != len(b.schema.Fields()) {
		return errors.Wrapf(ErrRowLength, "got %d cells, want %d", len(row), len(b.schema.Fields()))
	}

	for i, v := range row {
		switch fb := b.builder.Field(i).(type) {
		case *array.StringBuilder:
			if v.IsNull {
				fb.AppendNull()
				continue
			}
			s, ok := v.String()
			if !ok {
				return errors.Wrapf(ErrTypeMismatch, "column %q", b.schema.Field(i).Name)
			}
			fb.Append(s)
		case *array.Float64Builder:
			if v.IsNull {
				fb.AppendNull()
				continue
			}
			f, ok := v.Float()
			if !ok {
				return errors.Wrapf(ErrTypeMismatch, "column %q", b.schema.Field(i).Name)
			}
			fb.Append(f)
		}
	}
	return nil
}

// Schema returns the arrow schema, nil before Init
func (b *ArrowBuilder) Schema() *arrow.Schema {
	return b.schema
}

// NewRecord returns the rows appended so far as a record and resets the builder.
// The caller must release the record.
func (b *ArrowBuilder) NewRecord() (arrow.Record, error) {
	if b.builder == nil {
		return nil, ErrNotInitialised
	}
	return b.builder.NewRecord(), nil
}

// Release frees the underlying builder
func (b *ArrowBuilder) Release() {
	if b.builder != nil {
		b.builder.Release()
	}
}

// ToArrow copies a table into an arrow record. The caller must release the record.
func ToArrow(t *Table, mem memory.Allocator) (arrow.Record, error) {
	b := NewArrowBuilder(mem)
	defer b.Release()

	if err := b.Init(t.Columns()); err != nil {
		return nil, err
	}
	for i := 0; i < t.RowCount(); i++ {
		row, err := t.Row(i)
		if err != nil {
			return nil, err
		}
		if err := b.Append(row); err != nil {
			return nil, err
		}
	}
	return b.NewRecord()
}
