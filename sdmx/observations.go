package sdmx

import (
	"fmt"

	"github.com/ONSdigital/dp-sdmx-api/table"
)

// ValueColumn is the name of the observation value column
const ValueColumn = "Value"

// Option configures table projection
type Option func(*options)

type options struct {
	locale string
}

// WithLocale localises column names and resolved values, falling back to the default name
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Observations denormalises every dataset into its own table
func (d *Data) Observations(opts ...Option) ([]*table.Table, error) {
	tables := make([]*table.Table, 0, len(d.DataSets))
	for i := range d.DataSets {
		t := table.New()
		if err := d.WriteObservations(i, t, opts...); err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// WriteObservations denormalises dataset i into sink. A Delete dataset yields a
// table with no columns and no rows.
func (d *Data) WriteObservations(i int, sink table.Sink, opts ...Option) error {
	ds, err := d.DataSet(i)
	if err != nil {
		return err
	}
	if ds.Action == ActionDelete {
		return sink.Init(nil)
	}

	storage, err := ds.Storage()
	if err != nil {
		return err
	}

	w := &obsWriter{structure: d.Structure, dataSet: i, locale: newOptions(opts).locale, sink: sink}
	switch s := storage.(type) {
	case SeriesStorage:
		return w.series(s.Series)
	case ObservationStorage:
		return w.observations(s.Observations)
	}
	return nil
}

type obsWriter struct {
	structure *Structure
	dataSet   int
	locale    string
	sink      table.Sink
}

func (w *obsWriter) observations(obs *ObservationMap) error {
	dims, err := w.structure.Dimensions.Level(LevelObservation)
	if err != nil {
		return w.located(err)
	}
	attrs, err := w.structure.Attributes.Level(LevelObservation)
	if err != nil {
		return w.located(err)
	}

	columns := w.columns(nil, dims, nil, attrs)
	if err := w.sink.Init(columns); err != nil {
		return err
	}

	kc := keyContext{dataSet: w.dataSet, level: LevelObservation}
	return obs.Each(func(key string, o *Observation) error {
		row, err := w.observationRow(make([]table.Value, 0, len(columns)), kc, key, o, dims, attrs)
		if err != nil {
			return err
		}
		return w.sink.Append(row)
	})
}

func (w *obsWriter) series(series *SeriesMap) error {
	seriesDims, err := w.structure.Dimensions.Level(LevelSeries)
	if err != nil {
		return w.located(err)
	}
	obsDims, err := w.structure.Dimensions.Level(LevelObservation)
	if err != nil {
		return w.located(err)
	}
	obsAttrs, err := w.structure.Attributes.Level(LevelObservation)
	if err != nil {
		return w.located(err)
	}
	// series attributes are optional in the structure; without them no series attribute columns exist
	seriesAttrs, _ := w.structure.Attributes.Level(LevelSeries)

	columns := w.columns(seriesDims, obsDims, seriesAttrs, obsAttrs)
	if err := w.sink.Init(columns); err != nil {
		return err
	}

	return series.Each(func(seriesKey string, s *Series) error {
		if s == nil {
			s = &Series{}
		}

		kc := keyContext{dataSet: w.dataSet, level: LevelSeries}
		values, err := kc.resolve(seriesKey, seriesDims)
		if err != nil {
			return err
		}
		prefix := make([]table.Value, 0, len(seriesDims))
		for _, v := range values {
			prefix = append(prefix, table.NewString(v.LocalName(w.locale)))
		}

		seriesAttrValues := make([]table.Value, len(seriesAttrs))
		for a, attr := range seriesAttrs {
			seriesAttrValues[a], err = w.attribute(kc, seriesKey, attr, s.Attributes, a)
			if err != nil {
				return err
			}
		}

		okc := keyContext{dataSet: w.dataSet, level: LevelObservation, seriesKey: seriesKey}
		return s.Observations.Each(func(key string, o *Observation) error {
			row := append(make([]table.Value, 0, len(columns)), prefix...)
			row, err := w.observationRow(row, okc, key, o, obsDims, nil)
			if err != nil {
				return err
			}
			row = append(row, seriesAttrValues...)
			row, err = w.attributes(row, okc, key, obsAttrs, o)
			if err != nil {
				return err
			}
			return w.sink.Append(row)
		})
	})
}

// observationRow appends the dimension values, the value and, when attrs is set,
// the attribute values of one observation
func (w *obsWriter) observationRow(row []table.Value, kc keyContext, key string, o *Observation, dims, attrs []*Component) ([]table.Value, error) {
	values, err := kc.resolve(key, dims)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		row = append(row, table.NewString(v.LocalName(w.locale)))
	}

	if o != nil && o.Value != nil {
		row = append(row, table.NewFloat(*o.Value))
	} else {
		row = append(row, table.NewNull(table.TypeFloat))
	}

	if attrs == nil {
		return row, nil
	}
	return w.attributes(row, kc, key, attrs, o)
}

func (w *obsWriter) attributes(row []table.Value, kc keyContext, key string, attrs []*Component, o *Observation) ([]table.Value, error) {
	var slots []*int
	if o != nil {
		slots = o.Attributes
	}
	for a, attr := range attrs {
		v, err := w.attribute(kc, key, attr, slots, a)
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}
	return row, nil
}

func (w *obsWriter) attribute(kc keyContext, key string, attr *Component, slots []*int, a int) (table.Value, error) {
	v, err := resolveAttribute(attr, slots, a)
	if err != nil {
		err.DataSet = kc.dataSet
		err.Level = kc.level
		err.SeriesKey = kc.seriesKey
		err.Key = key
		return table.Value{}, err
	}
	if v == nil {
		return table.NewNull(table.TypeString), nil
	}
	return table.NewString(v.LocalName(w.locale)), nil
}

func (w *obsWriter) columns(seriesDims, obsDims, seriesAttrs, obsAttrs []*Component) []table.Column {
	columns := make([]table.Column, 0, len(seriesDims)+len(obsDims)+1+len(seriesAttrs)+len(obsAttrs))
	used := map[string]bool{ValueColumn: true}
	add := func(cs []*Component) {
		for _, c := range cs {
			columns = append(columns, table.Column{Name: uniqueName(used, c.LocalName(w.locale), c.ID), Type: table.TypeString})
		}
	}
	add(seriesDims)
	add(obsDims)
	columns = append(columns, table.Column{Name: ValueColumn, Type: table.TypeFloat})
	add(seriesAttrs)
	add(obsAttrs)
	return columns
}

// uniqueName returns name, or when it is already taken name suffixed with the
// component id, then with a counter. Value is always reserved for the observation value.
func uniqueName(used map[string]bool, name, id string) string {
	candidate := name
	if used[candidate] {
		candidate = fmt.Sprintf("%s (%s)", name, id)
	}
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s (%s) %d", name, id, n)
	}
	used[candidate] = true
	return candidate
}

func (w *obsWriter) located(err error) error {
	if mse, ok := err.(*MalformedStructureError); ok {
		mse.DataSet = w.dataSet
	}
	return err
}

// resolveAttribute applies the slot rules for attribute a: a supplied index resolves
// against the vocabulary, an explicit null stays null and a missing slot takes the
// declared default. A nil value with a nil error is a null cell.
func resolveAttribute(attr *Component, slots []*int, a int) (*ComponentValue, *IndexResolutionError) {
	if a < len(slots) {
		idx := slots[a]
		if idx == nil {
			return nil, nil
		}
		v, ok := attr.ValueAt(*idx)
		if !ok {
			return nil, &IndexResolutionError{ComponentID: attr.ID, Index: *idx}
		}
		return v, nil
	}

	if attr.Default == nil {
		return nil, nil
	}
	v, ok := attr.ValueByID(*attr.Default)
	if !ok {
		return nil, &IndexResolutionError{ComponentID: attr.ID, Index: -1, ValueID: *attr.Default}
	}
	return v, nil
}

// DataSetAttributes projects the dataset level attribute values of dataset i
// into id, name, value_id and value_name columns
func (d *Data) DataSetAttributes(i int, opts ...Option) (*table.Table, error) {
	ds, err := d.DataSet(i)
	if err != nil {
		return nil, err
	}
	attrs, err := d.Structure.Attributes.Level(LevelDataSet)
	if err != nil {
		if mse, ok := err.(*MalformedStructureError); ok {
			mse.DataSet = i
		}
		return nil, err
	}
	locale := newOptions(opts).locale

	t := table.New()
	if err := t.Init([]table.Column{
		{Name: "id", Type: table.TypeString},
		{Name: "name", Type: table.TypeString},
		{Name: "value_id", Type: table.TypeString},
		{Name: "value_name", Type: table.TypeString},
	}); err != nil {
		return nil, err
	}

	for a, attr := range attrs {
		v, rerr := resolveAttribute(attr, ds.Attributes, a)
		if rerr != nil {
			rerr.DataSet = i
			rerr.Level = LevelDataSet
			return nil, rerr
		}
		row := []table.Value{table.NewString(attr.ID), table.NewString(attr.LocalName(locale)), table.NewNull(table.TypeString), table.NewNull(table.TypeString)}
		if v != nil {
			row[2] = table.NewString(v.ID)
			row[3] = table.NewString(v.LocalName(locale))
		}
		if err := t.Append(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}
