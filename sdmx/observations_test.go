package sdmx_test

import (
	"errors"
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/dp-sdmx-api/table"
	"github.com/google/go-cmp/cmp"
	. "github.com/smartystreets/goconvey/convey"
)

func TestObservationLevel(t *testing.T) {
	Convey("Given a message with observations keyed at observation level", t, func() {
		msg := mustParse(t, observationMessage)

		Convey("When the observations are requested", func() {
			tables, err := msg.Observations()

			Convey("Then one table is returned with dimensions, value and attributes resolved", func() {
				So(err, ShouldBeNil)
				So(tables, ShouldHaveLength, 1)
				So(columnNames(tables[0]), ShouldResemble, []string{"Time Period", "Value", "Observation status"})

				want := []map[string]interface{}{
					{"Time Period": "2014", "Value": 350.154, "Observation status": "Normal value"},
					{"Time Period": "2015", "Value": 389.385, "Observation status": "Normal value"},
				}
				So(cmp.Diff(want, rows(tables[0])), ShouldBeEmpty)
			})
		})

		Convey("When the observations are requested with a locale", func() {
			tables, err := msg.Observations(sdmx.WithLocale("fr"))

			Convey("Then column names and values are localised where translated", func() {
				So(err, ShouldBeNil)
				So(columnNames(tables[0]), ShouldResemble, []string{"Période", "Value", "Statut"})
				So(rows(tables[0])[0]["Statut"], ShouldEqual, "Valeur normale")
				So(rows(tables[0])[0]["Période"], ShouldEqual, "2014")
			})
		})

		Convey("When the observations are requested with an unknown locale", func() {
			tables, err := msg.Observations(sdmx.WithLocale("de"))

			Convey("Then the default names are used", func() {
				So(err, ShouldBeNil)
				So(columnNames(tables[0]), ShouldResemble, []string{"Time Period", "Value", "Observation status"})
			})
		})
	})
}

func TestAttributeDefaults(t *testing.T) {
	Convey("Given observations with omitted, null and explicit attribute slots", t, func() {
		msg := mustParse(t, `{"data": {
			"structure": {
				"dimensions": {"observation": [{"id": "T", "name": "T", "values": [{"id": "a", "name": "a"}, {"id": "b", "name": "b"}, {"id": "c", "name": "c"}]}]},
				"attributes": {"observation": [
					{"id": "S", "name": "Status", "default": "N", "values": [{"id": "N", "name": "Normal"}, {"id": "E", "name": "Estimated"}]},
					{"id": "U", "name": "Unit", "values": [{"id": "GBP", "name": "Pounds"}]}
				]}
			},
			"dataSets": [{"observations": {"0": [1], "1": [2, null], "2": [3, 1, 0, 0]}}]
		}}`)

		Convey("When the observations are requested", func() {
			tables, err := msg.Observations()
			So(err, ShouldBeNil)
			got := rows(tables[0])

			Convey("Then an omitted slot takes the default", func() {
				So(got[0]["Status"], ShouldEqual, "Normal")
			})

			Convey("Then an explicit null slot stays null", func() {
				So(got[1]["Status"], ShouldBeNil)
			})

			Convey("Then an omitted slot without a default is null", func() {
				So(got[0]["Unit"], ShouldBeNil)
				So(got[1]["Unit"], ShouldBeNil)
			})

			Convey("Then supplied slots resolve and extra slots are ignored", func() {
				So(got[2]["Status"], ShouldEqual, "Estimated")
				So(got[2]["Unit"], ShouldEqual, "Pounds")
			})
		})
	})
}

func TestSeriesLevel(t *testing.T) {
	Convey("Given a message with observations grouped by series", t, func() {
		msg := mustParse(t, seriesMessage)

		Convey("When the observations are requested", func() {
			tables, err := msg.Observations()

			Convey("Then the columns are series dimensions, observation dimensions, value, series attributes then observation attributes", func() {
				So(err, ShouldBeNil)
				So(tables, ShouldHaveLength, 1)
				So(columnNames(tables[0]), ShouldResemble, []string{
					"Frequency", "Reference area", "Time Period", "Value", "Unit", "Observation status", "Confidentiality",
				})
			})

			Convey("Then rows follow series then observation order with attributes resolved", func() {
				want := []map[string]interface{}{
					{"Frequency": "Annual", "Reference area": "France", "Time Period": "2014", "Value": 1.5, "Unit": "Percent", "Observation status": "Provisional", "Confidentiality": "Free"},
					{"Frequency": "Annual", "Reference area": "France", "Time Period": "2015", "Value": 2.5, "Unit": "Percent", "Observation status": nil, "Confidentiality": "Confidential"},
					{"Frequency": "Annual", "Reference area": "United Kingdom", "Time Period": "2015", "Value": 3.5, "Unit": "Index", "Observation status": "Normal value", "Confidentiality": "Free"},
					{"Frequency": "Annual", "Reference area": "United Kingdom", "Time Period": "2014", "Value": nil, "Unit": "Index", "Observation status": "Normal value", "Confidentiality": "Free"},
				}
				So(cmp.Diff(want, rows(tables[0])), ShouldBeEmpty)
			})
		})

		Convey("When the dataset attributes are requested", func() {
			tbl, err := msg.Data.DataSetAttributes(0)

			Convey("Then supplied slots resolve and missing slots without a default are null", func() {
				So(err, ShouldBeNil)
				want := []map[string]interface{}{
					{"id": "UNIT_MULT", "name": "Unit multiplier", "value_id": "3", "value_name": "Thousands"},
					{"id": "TITLE", "name": "Title", "value_id": nil, "value_name": nil},
				}
				So(cmp.Diff(want, rows(tbl)), ShouldBeEmpty)
			})
		})

		Convey("When the attributes of a dataset that does not exist are requested", func() {
			_, err := msg.Data.DataSetAttributes(3)

			Convey("Then ErrDataSetNotFound is returned", func() {
				So(errors.Is(err, sdmx.ErrDataSetNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestMultipleDataSets(t *testing.T) {
	Convey("Given a message with a Delete dataset and an Information dataset", t, func() {
		msg := mustParse(t, multiDataSetMessage)

		Convey("When the observations are requested", func() {
			tables, err := msg.Observations()

			Convey("Then the first table is empty and the second has three rows", func() {
				So(err, ShouldBeNil)
				So(tables, ShouldHaveLength, 2)
				So(tables[0].RowCount(), ShouldEqual, 0)
				So(tables[0].ColumnCount(), ShouldEqual, 0)
				So(tables[1].RowCount(), ShouldEqual, 3)
				So(columnNames(tables[1]), ShouldResemble, []string{"Time Period", "Value"})
			})
		})
	})

	Convey("Given a message with no datasets", t, func() {
		msg := mustParse(t, `{"data": {"structure": {"dimensions": {}, "attributes": {}}}}`)

		Convey("Then an empty slice of tables is returned", func() {
			tables, err := msg.Observations()
			So(err, ShouldBeNil)
			So(tables, ShouldNotBeNil)
			So(tables, ShouldBeEmpty)
		})
	})

	Convey("Given an error message", t, func() {
		msg := mustParse(t, `{"errors": [{"code": 404, "title": "No results found"}]}`)

		Convey("Then there are no observations", func() {
			tables, err := msg.Observations()
			So(err, ShouldBeNil)
			So(tables, ShouldBeNil)
		})
	})
}

func TestRowCount(t *testing.T) {
	Convey("Each table has one row per observation entry, or none when deleted", t, func() {
		for _, raw := range []string{observationMessage, seriesMessage, multiDataSetMessage} {
			msg := mustParse(t, raw)
			tables, err := msg.Observations()
			So(err, ShouldBeNil)

			for i, ds := range msg.Data.DataSets {
				want := 0
				if ds.Action != sdmx.ActionDelete {
					want = ds.Observations.Len()
					_ = ds.Series.Each(func(_ string, s *sdmx.Series) error {
						want += s.Observations.Len()
						return nil
					})
				}
				So(tables[i].RowCount(), ShouldEqual, want)
			}
		}
	})
}

func TestEmptyPayload(t *testing.T) {
	Convey("Given a dataset whose observations object is empty", t, func() {
		msg := mustParse(t, `{"data": {
			"structure": {
				"dimensions": {"observation": [{"id": "T", "name": "Time", "values": []}]},
				"attributes": {"observation": [{"id": "S", "name": "Status", "values": []}]}
			},
			"dataSets": [{"observations": {}}]
		}}`)

		Convey("Then the table has the full column set and no rows", func() {
			tables, err := msg.Observations()
			So(err, ShouldBeNil)
			So(columnNames(tables[0]), ShouldResemble, []string{"Time", "Value", "Status"})
			So(tables[0].RowCount(), ShouldEqual, 0)
		})
	})
}

func TestObservationErrors(t *testing.T) {
	structure := `"structure": {
		"dimensions": {"observation": [{"id": "T", "name": "Time", "values": [{"id": "2014", "name": "2014"}]}]},
		"attributes": {"observation": [{"id": "S", "name": "Status", "default": "Z", "values": [{"id": "A", "name": "Normal"}]}]}
	}`

	Convey("Given an observation with an attribute index out of range", t, func() {
		msg := mustParse(t, `{"data": {`+structure+`, "dataSets": [{"observations": {"0": [1, 4]}}]}}`)

		Convey("Then an IndexResolutionError locates the attribute", func() {
			_, err := msg.Observations()
			var ire *sdmx.IndexResolutionError
			So(errors.As(err, &ire), ShouldBeTrue)
			So(ire.DataSet, ShouldEqual, 0)
			So(ire.Key, ShouldEqual, "0")
			So(ire.ComponentID, ShouldEqual, "S")
			So(ire.Index, ShouldEqual, 4)
			So(errors.Is(err, sdmx.ErrInvalidMessage), ShouldBeTrue)
		})
	})

	Convey("Given an observation relying on a default that is not a declared value", t, func() {
		msg := mustParse(t, `{"data": {`+structure+`, "dataSets": [{"observations": {"0": [1]}}]}}`)

		Convey("Then an IndexResolutionError names the default", func() {
			_, err := msg.Observations()
			var ire *sdmx.IndexResolutionError
			So(errors.As(err, &ire), ShouldBeTrue)
			So(ire.ValueID, ShouldEqual, "Z")
		})
	})

	Convey("Given an observation key outside the dimension values", t, func() {
		msg := mustParse(t, `{"data": {`+structure+`, "dataSets": [{"observations": {"1": [1, 0]}}]}}`)

		Convey("Then an IndexResolutionError is returned", func() {
			_, err := msg.Observations()
			var ire *sdmx.IndexResolutionError
			So(errors.As(err, &ire), ShouldBeTrue)
			So(ire.ComponentID, ShouldEqual, "T")
			So(ire.Index, ShouldEqual, 1)
		})
	})

	Convey("Given an observation key with too many tokens", t, func() {
		msg := mustParse(t, `{"data": {`+structure+`, "dataSets": [{"observations": {"0:0": [1, 0]}}]}}`)

		Convey("Then a MalformedKeyError is returned", func() {
			_, err := msg.Observations()
			var mke *sdmx.MalformedKeyError
			So(errors.As(err, &mke), ShouldBeTrue)
			So(mke.Key, ShouldEqual, "0:0")
			So(mke.Level, ShouldEqual, sdmx.LevelObservation)
		})
	})

	Convey("Given a structure without observation level attributes", t, func() {
		msg := mustParse(t, `{"data": {
			"structure": {"dimensions": {"observation": []}, "attributes": {"series": []}},
			"dataSets": [{"observations": {"": [1]}}]
		}}`)

		Convey("Then a MalformedStructureError is returned", func() {
			_, err := msg.Observations()
			var mse *sdmx.MalformedStructureError
			So(errors.As(err, &mse), ShouldBeTrue)
			So(mse.Section, ShouldEqual, "attributes")
			So(mse.Level, ShouldEqual, sdmx.LevelObservation)
		})
	})
}

func TestRepeatedColumnNames(t *testing.T) {
	Convey("Given components that share a name and an attribute named Value", t, func() {
		msg := mustParse(t, `{"data": {
			"structure": {
				"dimensions": {"observation": [{"id": "T", "name": "Status", "values": [{"id": "2014", "name": "2014"}]}]},
				"attributes": {"observation": [
					{"id": "OBS_STATUS", "name": "Status", "values": [{"id": "A", "name": "Normal"}]},
					{"id": "CONF_STATUS", "name": "Status", "values": [{"id": "F", "name": "Free"}]},
					{"id": "OBS_VALUE_NOTE", "name": "Value", "values": [{"id": "N", "name": "Note"}]}
				]}
			},
			"dataSets": [{"observations": {"0": [1.5, 0, 0, 0]}}]
		}}`)

		Convey("When the observations are requested", func() {
			tables, err := msg.Observations()

			Convey("Then later columns are suffixed with their component id", func() {
				So(err, ShouldBeNil)
				So(columnNames(tables[0]), ShouldResemble, []string{"Status", "Value", "Status (OBS_STATUS)", "Status (CONF_STATUS)", "Value (OBS_VALUE_NOTE)"})

				want := []map[string]interface{}{
					{"Status": "2014", "Value": 1.5, "Status (OBS_STATUS)": "Normal", "Status (CONF_STATUS)": "Free", "Value (OBS_VALUE_NOTE)": "Note"},
				}
				So(cmp.Diff(want, rows(tables[0])), ShouldBeEmpty)
			})
		})
	})

	Convey("Given series and observation components sharing a name", t, func() {
		msg := mustParse(t, `{"data": {
			"structure": {
				"dimensions": {
					"series": [{"id": "AREA", "name": "Area", "values": [{"id": "W", "name": "Wales"}]}],
					"observation": [{"id": "T", "name": "Time", "values": [{"id": "2014", "name": "2014"}]}]
				},
				"attributes": {
					"series": [{"id": "AREA_NOTE", "name": "Area", "values": [{"id": "E", "name": "Estimated"}]}],
					"observation": []
				}
			},
			"dataSets": [{"series": {"0": {"attributes": [0], "observations": {"0": [2]}}}}]
		}}`)

		Convey("Then the series attribute column is suffixed", func() {
			tables, err := msg.Observations()
			So(err, ShouldBeNil)
			So(columnNames(tables[0]), ShouldResemble, []string{"Area", "Time", "Value", "Area (AREA_NOTE)"})
			So(rows(tables[0])[0]["Area (AREA_NOTE)"], ShouldEqual, "Estimated")
		})
	})
}

func TestWriteObservations(t *testing.T) {
	Convey("Given a parsed message and an arrow sink", t, func() {
		msg := mustParse(t, observationMessage)
		b := table.NewArrowBuilder(nil)
		defer b.Release()

		Convey("When dataset 0 is written to the sink", func() {
			err := msg.Data.WriteObservations(0, b)

			Convey("Then the record holds the denormalised rows", func() {
				So(err, ShouldBeNil)
				rec, err := b.NewRecord()
				So(err, ShouldBeNil)
				defer rec.Release()
				So(rec.NumRows(), ShouldEqual, 2)
				So(rec.Schema().Field(2).Name, ShouldEqual, "Observation status")
			})
		})

		Convey("When a dataset that does not exist is written", func() {
			err := msg.Data.WriteObservations(1, b)

			Convey("Then ErrDataSetNotFound is returned", func() {
				So(errors.Is(err, sdmx.ErrDataSetNotFound), ShouldBeTrue)
			})
		})
	})
}
