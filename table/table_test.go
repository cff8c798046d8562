package table_test

import (
	"encoding/json"
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/table"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestTable() *table.Table {
	t := table.New()
	_ = t.Init([]table.Column{
		{Name: "Time Period", Type: table.TypeString},
		{Name: "Value", Type: table.TypeFloat},
	})
	return t
}

func TestTableInit(t *testing.T) {
	Convey("Given an uninitialised table", t, func() {
		tbl := table.New()

		Convey("When Append is called before Init", func() {
			err := tbl.Append([]table.Value{table.NewString("2014")})

			Convey("Then ErrNotInitialised is returned", func() {
				So(err, ShouldEqual, table.ErrNotInitialised)
			})
		})

		Convey("When Init is called with duplicate column names", func() {
			err := tbl.Init([]table.Column{{Name: "a"}, {Name: "a"}})

			Convey("Then ErrDuplicateColumn is returned", func() {
				So(err, ShouldWrap, table.ErrDuplicateColumn)
			})
		})

		Convey("When Init is called twice", func() {
			So(tbl.Init(nil), ShouldBeNil)
			err := tbl.Init(nil)

			Convey("Then the second call fails", func() {
				So(err, ShouldEqual, table.ErrAlreadyInitialised)
				So(tbl.ColumnCount(), ShouldEqual, 0)
				So(tbl.RowCount(), ShouldEqual, 0)
			})
		})
	})
}

func TestTableAppend(t *testing.T) {
	Convey("Given a table with a string and a float column", t, func() {
		tbl := newTestTable()

		Convey("When valid rows are appended", func() {
			So(tbl.Append([]table.Value{table.NewString("2014"), table.NewFloat(350.154)}), ShouldBeNil)
			So(tbl.Append([]table.Value{table.NewNull(table.TypeString), table.NewNull(table.TypeString)}), ShouldBeNil)

			Convey("Then the cells can be read back", func() {
				So(tbl.RowCount(), ShouldEqual, 2)

				cell, err := tbl.Cell(0, 1)
				So(err, ShouldBeNil)
				f, ok := cell.Float()
				So(ok, ShouldBeTrue)
				So(f, ShouldEqual, 350.154)

				row, err := tbl.Row(1)
				So(err, ShouldBeNil)
				So(row[0].IsNull, ShouldBeTrue)
				So(row[1].IsNull, ShouldBeTrue)
				So(row[1].Type, ShouldEqual, table.TypeFloat)
			})

			Convey("Then out of range lookups fail", func() {
				_, err := tbl.Row(2)
				So(err, ShouldEqual, table.ErrInvalidRow)
				_, err = tbl.Cell(0, 2)
				So(err, ShouldEqual, table.ErrInvalidColumn)
				_, err = tbl.ColumnName(-1)
				So(err, ShouldEqual, table.ErrInvalidColumn)
			})
		})

		Convey("When a row of the wrong length is appended", func() {
			err := tbl.Append([]table.Value{table.NewString("2014")})

			Convey("Then ErrRowLength is returned", func() {
				So(err, ShouldWrap, table.ErrRowLength)
				So(tbl.RowCount(), ShouldEqual, 0)
			})
		})

		Convey("When a cell of the wrong type is appended", func() {
			err := tbl.Append([]table.Value{table.NewFloat(1), table.NewFloat(2)})

			Convey("Then ErrTypeMismatch is returned", func() {
				So(err, ShouldWrap, table.ErrTypeMismatch)
			})
		})
	})
}

func TestTableColumns(t *testing.T) {
	Convey("Given a populated table", t, func() {
		tbl := newTestTable()
		So(tbl.Append([]table.Value{table.NewString("2014"), table.NewFloat(1)}), ShouldBeNil)
		So(tbl.Append([]table.Value{table.NewString("2015"), table.NewFloat(2)}), ShouldBeNil)

		Convey("Then columns are found by name", func() {
			i, err := tbl.ColumnIndex("Value")
			So(err, ShouldBeNil)
			So(i, ShouldEqual, 1)

			name, err := tbl.ColumnName(0)
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "Time Period")

			typ, err := tbl.ColumnType(1)
			So(err, ShouldBeNil)
			So(typ, ShouldEqual, table.TypeFloat)

			values, err := tbl.Column("Time Period")
			So(err, ShouldBeNil)
			So(values, ShouldResemble, []table.Value{table.NewString("2014"), table.NewString("2015")})
		})

		Convey("Then an unknown column returns ErrColumnNotFound", func() {
			_, err := tbl.ColumnIndex("Observation status")
			So(err, ShouldWrap, table.ErrColumnNotFound)
		})

		Convey("Then the table marshals column by column", func() {
			b, err := json.Marshal(tbl)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"columns":[{"name":"Time Period","type":"string","values":["2014","2015"]},{"name":"Value","type":"float64","values":[1,2]}],"row_count":2}`)
		})
	})

	Convey("Given a table with no rows", t, func() {
		tbl := newTestTable()

		Convey("Then empty columns marshal as empty arrays", func() {
			b, err := json.Marshal(tbl)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"columns":[{"name":"Time Period","type":"string","values":[]},{"name":"Value","type":"float64","values":[]}],"row_count":0}`)
		})
	})
}
