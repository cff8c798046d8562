package table_test

import (
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/table"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	. "github.com/smartystreets/goconvey/convey"
)

func TestToArrow(t *testing.T) {
	Convey("Given a table with a null cell", t, func() {
		tbl := newTestTable()
		So(tbl.Append([]table.Value{table.NewString("2014"), table.NewFloat(350.154)}), ShouldBeNil)
		So(tbl.Append([]table.Value{table.NewString("2015"), table.NewNull(table.TypeFloat)}), ShouldBeNil)

		mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

		Convey("When it is converted to an arrow record", func() {
			rec, err := table.ToArrow(tbl, mem)
			So(err, ShouldBeNil)
			defer rec.Release()

			Convey("Then the schema has nullable typed fields", func() {
				So(rec.NumRows(), ShouldEqual, 2)
				So(rec.NumCols(), ShouldEqual, 2)
				So(rec.Schema().Field(0).Type.ID(), ShouldEqual, arrow.STRING)
				So(rec.Schema().Field(1).Type.ID(), ShouldEqual, arrow.FLOAT64)
				So(rec.Schema().Field(1).Nullable, ShouldBeTrue)
			})

			Convey("Then the values are carried over", func() {
				periods := rec.Column(0).(*array.String)
				So(periods.Value(1), ShouldEqual, "2015")

				values := rec.Column(1).(*array.Float64)
				So(values.Value(0), ShouldEqual, 350.154)
				So(values.IsNull(1), ShouldBeTrue)
			})
		})
	})

	Convey("Given an uninitialised arrow builder", t, func() {
		b := table.NewArrowBuilder(nil)
		defer b.Release()

		Convey("Then appending and building fail", func() {
			So(b.Append(nil), ShouldEqual, table.ErrNotInitialised)
			_, err := b.NewRecord()
			So(err, ShouldEqual, table.ErrNotInitialised)
		})

		Convey("When a mismatched cell is appended after Init", func() {
			So(b.Init([]table.Column{{Name: "Value", Type: table.TypeFloat}}), ShouldBeNil)
			err := b.Append([]table.Value{table.NewString("x")})

			Convey("Then ErrTypeMismatch is returned", func() {
				So(err, ShouldWrap, table.ErrTypeMismatch)
			})
		})
	})
}
