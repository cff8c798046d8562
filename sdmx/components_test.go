package sdmx_test

import (
	"errors"
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

const unorderedDimensions = `{"data": {"structure": {
	"dimensions": {
		"dataSet": [],
		"series": [
			{"id": "REF_AREA", "name": "Reference area", "names": {"fr": "Zone de référence"}, "keyPosition": 1,
			 "values": [{"id": "UK", "name": "United Kingdom", "names": {"fr": "Royaume-Uni"}}, {"id": "FR", "name": "France"}]},
			{"id": "FREQ", "name": "Frequency", "keyPosition": 0, "values": [{"id": "A", "name": "Annual"}]}
		],
		"observation": [
			{"id": "TIME_PERIOD", "name": "Time Period", "values": [{"id": "2014", "name": "2014"}]}
		]
	},
	"attributes": {
		"dataSet": [{"id": "TITLE", "name": "Title", "values": []}],
		"series": [],
		"observation": [{"id": "OBS_STATUS", "name": "Observation status", "values": [{"id": "A", "name": "Normal value"}]}]
	}
}}}`

func TestDimensions(t *testing.T) {
	Convey("Given a structure whose dimensions are not declared in key order", t, func() {
		msg := mustParse(t, unorderedDimensions)

		Convey("When the dimensions are requested without values", func() {
			tbl, err := msg.Data.Dimensions(false, "")

			Convey("Then they are sorted by key position with unpositioned dimensions last", func() {
				So(err, ShouldBeNil)
				So(columnNames(tbl), ShouldResemble, []string{"keyPosition", "id", "name", "level"})
				want := []map[string]interface{}{
					{"keyPosition": 0.0, "id": "FREQ", "name": "Frequency", "level": "series"},
					{"keyPosition": 1.0, "id": "REF_AREA", "name": "Reference area", "level": "series"},
					{"keyPosition": nil, "id": "TIME_PERIOD", "name": "Time Period", "level": "observation"},
				}
				So(cmp.Diff(want, rows(tbl)), ShouldBeEmpty)
			})
		})

		Convey("When the dimensions are requested with values and a locale", func() {
			tbl, err := msg.Data.Dimensions(true, "fr")

			Convey("Then there is one row per value, localised where translated", func() {
				So(err, ShouldBeNil)
				So(columnNames(tbl), ShouldResemble, []string{"keyPosition", "id", "name", "level", "value_id", "value_name"})
				got := rows(tbl)
				So(got, ShouldHaveLength, 4)
				So(got[1]["name"], ShouldEqual, "Zone de référence")
				So(got[1]["value_name"], ShouldEqual, "Royaume-Uni")
				So(got[2]["value_name"], ShouldEqual, "France")
				So(got[0]["name"], ShouldEqual, "Frequency")
			})
		})
	})
}

func TestAttributes(t *testing.T) {
	Convey("Given a structure with attributes at every level", t, func() {
		msg := mustParse(t, unorderedDimensions)

		Convey("When the attributes are requested", func() {
			tbl, err := msg.Data.Attributes(false, "")

			Convey("Then they are listed in level then declaration order without a key position", func() {
				So(err, ShouldBeNil)
				So(columnNames(tbl), ShouldResemble, []string{"id", "name", "level"})
				want := []map[string]interface{}{
					{"id": "TITLE", "name": "Title", "level": "dataSet"},
					{"id": "OBS_STATUS", "name": "Observation status", "level": "observation"},
				}
				So(cmp.Diff(want, rows(tbl)), ShouldBeEmpty)
			})
		})

		Convey("When the attributes are requested with values", func() {
			tbl, err := msg.Data.Attributes(true, "")

			Convey("Then an attribute without values keeps a row with null values", func() {
				So(err, ShouldBeNil)
				got := rows(tbl)
				So(got, ShouldHaveLength, 2)
				So(got[0]["value_id"], ShouldBeNil)
				So(got[1]["value_name"], ShouldEqual, "Normal value")
			})
		})

		Convey("When the attributes are requested twice", func() {
			first, err := msg.Data.Attributes(true, "fr")
			So(err, ShouldBeNil)
			second, err := msg.Data.Attributes(true, "fr")
			So(err, ShouldBeNil)

			Convey("Then the tables are identical", func() {
				So(cmp.Diff(rows(first), rows(second)), ShouldBeEmpty)
				So(columnNames(first), ShouldResemble, columnNames(second))
			})
		})
	})

	Convey("Given a structure missing the series attribute level", t, func() {
		msg := mustParse(t, `{"data": {"structure": {
			"dimensions": {"dataSet": [], "series": [], "observation": []},
			"attributes": {"dataSet": [], "observation": []}
		}}}`)

		Convey("Then a MalformedStructureError names the level", func() {
			_, err := msg.Data.Attributes(false, "")
			var mse *sdmx.MalformedStructureError
			So(errors.As(err, &mse), ShouldBeTrue)
			So(mse.Section, ShouldEqual, "attributes")
			So(mse.Level, ShouldEqual, sdmx.LevelSeries)
		})
	})
}
