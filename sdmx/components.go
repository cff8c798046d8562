package sdmx

import (
	"sort"

	"github.com/ONSdigital/dp-sdmx-api/table"
)

type componentRow struct {
	keyPosition *int
	values      []table.Value
}

// DimensionsTable lists the dimensions of every level, ordered by key position.
// With includeValues there is one row per value of each dimension.
func (s *Structure) DimensionsTable(includeValues bool, locale string) (*table.Table, error) {
	return s.project(s.Dimensions, true, includeValues, locale)
}

// AttributesTable lists the attributes of every level in declaration order.
// With includeValues there is one row per value of each attribute.
func (s *Structure) AttributesTable(includeValues bool, locale string) (*table.Table, error) {
	return s.project(s.Attributes, false, includeValues, locale)
}

// Dimensions lists the dimension definitions of the message structure
func (d *Data) Dimensions(includeValues bool, locale string) (*table.Table, error) {
	return d.Structure.DimensionsTable(includeValues, locale)
}

// Attributes lists the attribute definitions of the message structure
func (d *Data) Attributes(includeValues bool, locale string) (*table.Table, error) {
	return d.Structure.AttributesTable(includeValues, locale)
}

func (s *Structure) project(comps Components, withKeyPosition, includeValues bool, locale string) (*table.Table, error) {
	var columns []table.Column
	if withKeyPosition {
		columns = append(columns, table.Column{Name: "keyPosition", Type: table.TypeFloat})
	}
	columns = append(columns,
		table.Column{Name: "id", Type: table.TypeString},
		table.Column{Name: "name", Type: table.TypeString},
		table.Column{Name: "level", Type: table.TypeString},
	)
	if includeValues {
		columns = append(columns,
			table.Column{Name: "value_id", Type: table.TypeString},
			table.Column{Name: "value_name", Type: table.TypeString},
		)
	}

	var rows []componentRow
	for _, level := range Levels {
		list, err := comps.Level(level)
		if err != nil {
			return nil, err
		}
		for _, c := range list {
			rows = append(rows, componentRows(c, level, withKeyPosition, includeValues, locale)...)
		}
	}

	if withKeyPosition {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].keyPosition, rows[j].keyPosition
			if a == nil {
				return false
			}
			return b == nil || *a < *b
		})
	}

	t := table.New()
	if err := t.Init(columns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := t.Append(r.values); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func componentRows(c *Component, level Level, withKeyPosition, includeValues bool, locale string) []componentRow {
	var base []table.Value
	if withKeyPosition {
		if c.KeyPosition != nil {
			base = append(base, table.NewFloat(float64(*c.KeyPosition)))
		} else {
			base = append(base, table.NewNull(table.TypeFloat))
		}
	}
	base = append(base,
		table.NewString(c.ID),
		table.NewString(c.LocalName(locale)),
		table.NewString(string(level)),
	)

	if !includeValues {
		return []componentRow{{keyPosition: c.KeyPosition, values: base}}
	}

	// a component without values still gets a row
	if len(c.Values) == 0 {
		row := append(append([]table.Value(nil), base...), table.NewNull(table.TypeString), table.NewNull(table.TypeString))
		return []componentRow{{keyPosition: c.KeyPosition, values: row}}
	}

	rows := make([]componentRow, 0, len(c.Values))
	for _, v := range c.Values {
		if v == nil {
			continue
		}
		row := append(append([]table.Value(nil), base...), table.NewString(v.ID), table.NewString(v.LocalName(locale)))
		rows = append(rows, componentRow{keyPosition: c.KeyPosition, values: row})
	}
	return rows
}
