package api

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/dp-sdmx-api/download"
	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/dp-sdmx-api/table"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

const (
	localeParam        = "locale"
	formatParam        = "format"
	includeValuesParam = "include_values"
)

func (api *SDMXAPI) getObservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logData := log.Data{"message_id": mux.Vars(r)["id"]}

	tables, err := func() ([]*table.Table, error) {
		_, msg, err := api.storedMessage(ctx, w, r)
		if err != nil {
			return nil, err
		}
		if msg.Data == nil {
			return nil, apierrors.ErrNoObservations
		}
		return msg.Data.Observations(localeOption(r))
	}()
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	writeJSON(ctx, w, http.StatusOK, tables, logData)
	log.Info(ctx, "getObservations endpoint: request successful", logData)
}

func (api *SDMXAPI) getDataSetObservations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	logData := log.Data{"message_id": vars["id"], "data_set": vars["index"]}

	format, err := download.ParseFormat(r.URL.Query().Get(formatParam))
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}
	logData["format"] = format

	t, err := api.dataSetTable(w, r, func(d *sdmx.Data, i int) (*table.Table, error) {
		t := table.New()
		if err := d.WriteObservations(i, t, localeOption(r)); err != nil {
			return nil, err
		}
		return t, nil
	})
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	var buf bytes.Buffer
	if err := download.Write(&buf, t, format); err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format != download.FormatJSON {
		filename := fmt.Sprintf("%s-%s%s", vars["id"], vars["index"], format.Extension())
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error(ctx, "failed to write response body", err, logData)
		return
	}
	log.Info(ctx, "getDataSetObservations endpoint: request successful", logData)
}

func (api *SDMXAPI) getDataSetAttributes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	logData := log.Data{"message_id": vars["id"], "data_set": vars["index"]}

	t, err := api.dataSetTable(w, r, func(d *sdmx.Data, i int) (*table.Table, error) {
		return d.DataSetAttributes(i, localeOption(r))
	})
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	writeJSON(ctx, w, http.StatusOK, t, logData)
	log.Info(ctx, "getDataSetAttributes endpoint: request successful", logData)
}

// dataSetTable builds a table from the dataset named in the request path of a stored message
func (api *SDMXAPI) dataSetTable(w http.ResponseWriter, r *http.Request, build func(d *sdmx.Data, i int) (*table.Table, error)) (*table.Table, error) {
	i, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		return nil, apierrors.ErrDataSetNotFound
	}

	_, msg, err := api.storedMessage(r.Context(), w, r)
	if err != nil {
		return nil, err
	}
	if msg.Data == nil {
		return nil, apierrors.ErrNoObservations
	}
	return build(msg.Data, i)
}

// postObservations denormalises the message in the request body without storing it
func (api *SDMXAPI) postObservations(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)

	ctx := r.Context()
	logData := log.Data{}

	tables, err := func() ([]*table.Table, error) {
		raw, err := api.readMessage(ctx, r, "")
		if err != nil {
			return nil, err
		}
		msg, err := api.parseMessage(ctx, raw)
		if err != nil {
			return nil, err
		}
		if msg.Data == nil {
			return nil, apierrors.ErrNoObservations
		}
		return msg.Data.Observations(localeOption(r))
	}()
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	logData["data_sets"] = len(tables)
	writeJSON(ctx, w, http.StatusOK, tables, logData)
	log.Info(ctx, "postObservations endpoint: request successful", logData)
}

func localeOption(r *http.Request) sdmx.Option {
	return sdmx.WithLocale(r.URL.Query().Get(localeParam))
}
