package sdmx_test

import (
	"testing"

	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/dp-sdmx-api/table"
)

// observationMessage has a single observation level dimension and attribute
const observationMessage = `{
	"meta": {"id": "IREF000001", "prepared": "2021-01-01T00:00:00Z", "schema": "https://example.org/sdmx-json-data-schema.json"},
	"data": {
		"structure": {
			"name": "Consumer prices",
			"dimensions": {
				"dataSet": [],
				"series": [],
				"observation": [
					{"id": "TIME_PERIOD", "name": "Time Period", "names": {"fr": "Période"}, "keyPosition": 0,
					 "values": [{"id": "2014", "name": "2014"}, {"id": "2015", "name": "2015"}]}
				]
			},
			"attributes": {
				"dataSet": [],
				"series": [],
				"observation": [
					{"id": "OBS_STATUS", "name": "Observation status", "names": {"fr": "Statut"}, "default": "A",
					 "values": [{"id": "A", "name": "Normal value", "names": {"fr": "Valeur normale"}}]}
				]
			}
		},
		"dataSets": [
			{"action": "Information", "observations": {"0": [350.154], "1": [389.385, 0]}}
		]
	}
}`

// seriesMessage has two series with two observations each
const seriesMessage = `{
	"data": {
		"structure": {
			"dimensions": {
				"dataSet": [],
				"series": [
					{"id": "FREQ", "name": "Frequency", "keyPosition": 0, "values": [{"id": "A", "name": "Annual"}]},
					{"id": "REF_AREA", "name": "Reference area", "keyPosition": 1,
					 "values": [{"id": "UK", "name": "United Kingdom"}, {"id": "FR", "name": "France"}]}
				],
				"observation": [
					{"id": "TIME_PERIOD", "name": "Time Period", "keyPosition": 2,
					 "values": [{"id": "2014", "name": "2014"}, {"id": "2015", "name": "2015"}]}
				]
			},
			"attributes": {
				"dataSet": [
					{"id": "UNIT_MULT", "name": "Unit multiplier", "default": "0",
					 "values": [{"id": "0", "name": "Units"}, {"id": "3", "name": "Thousands"}]},
					{"id": "TITLE", "name": "Title", "values": [{"id": "CPI", "name": "Consumer price index"}]}
				],
				"series": [
					{"id": "UNIT", "name": "Unit", "default": "IX",
					 "values": [{"id": "IX", "name": "Index"}, {"id": "PC", "name": "Percent"}]}
				],
				"observation": [
					{"id": "OBS_STATUS", "name": "Observation status", "default": "A",
					 "values": [{"id": "A", "name": "Normal value"}, {"id": "P", "name": "Provisional"}]},
					{"id": "OBS_CONF", "name": "Confidentiality", "default": "F",
					 "values": [{"id": "F", "name": "Free"}, {"id": "C", "name": "Confidential"}]}
				]
			}
		},
		"dataSets": [{
			"attributes": [1],
			"series": {
				"0:1": {"attributes": [1], "observations": {"0": [1.5, 1], "1": [2.5, null, 1]}},
				"0:0": {"observations": {"1": ["3.5"], "0": [null, 0, 0]}}
			}
		}]
	}
}`

// multiDataSetMessage has a Delete dataset followed by an Information dataset
const multiDataSetMessage = `{
	"data": {
		"structure": {
			"dimensions": {"dataSet": [], "series": [], "observation": [
				{"id": "TIME_PERIOD", "name": "Time Period", "keyPosition": 0,
				 "values": [{"id": "2013", "name": "2013"}, {"id": "2014", "name": "2014"}, {"id": "2015", "name": "2015"}]}
			]},
			"attributes": {"dataSet": [], "series": [], "observation": []}
		},
		"dataSets": [
			{"action": "Delete", "observations": {"0": [null]}},
			{"observations": {"0": [1], "1": [2], "2": [3]}}
		]
	}
}`

func mustParse(t *testing.T, raw string) *sdmx.Message {
	t.Helper()
	msg, err := sdmx.ParseMessage([]byte(raw))
	if err != nil {
		t.Fatalf("failed to parse message: %v", err)
	}
	return msg
}

// rows returns a table as a slice of column name to cell maps, with nil for null cells
func rows(t *table.Table) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		row, _ := t.Row(i)
		m := make(map[string]interface{}, len(row))
		for c, v := range row {
			name, _ := t.ColumnName(c)
			if v.IsNull {
				m[name] = nil
				continue
			}
			m[name] = v.Raw
		}
		out = append(out, m)
	}
	return out
}

func columnNames(t *table.Table) []string {
	names := make([]string, 0, t.ColumnCount())
	for _, c := range t.Columns() {
		names = append(names, c.Name)
	}
	return names
}
