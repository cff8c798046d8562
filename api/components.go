package api

import (
	"net/http"
	"strconv"

	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/dp-sdmx-api/table"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

type projection func(d *sdmx.Data, includeValues bool, locale string) (*table.Table, error)

func (api *SDMXAPI) getDimensions(w http.ResponseWriter, r *http.Request) {
	api.getComponents(w, r, "getDimensions", (*sdmx.Data).Dimensions)
}

func (api *SDMXAPI) getAttributes(w http.ResponseWriter, r *http.Request) {
	api.getComponents(w, r, "getAttributes", (*sdmx.Data).Attributes)
}

func (api *SDMXAPI) getComponents(w http.ResponseWriter, r *http.Request, endpoint string, project projection) {
	ctx := r.Context()
	logData := log.Data{"message_id": mux.Vars(r)["id"]}

	t, err := func() (*table.Table, error) {
		includeValues, err := includeValues(r)
		if err != nil {
			return nil, err
		}

		_, msg, err := api.storedMessage(ctx, w, r)
		if err != nil {
			return nil, err
		}
		if msg.Data == nil {
			return nil, apierrors.ErrNoObservations
		}
		return project(msg.Data, includeValues, r.URL.Query().Get(localeParam))
	}()
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	writeJSON(ctx, w, http.StatusOK, t, logData)
	log.Info(ctx, endpoint+" endpoint: request successful", logData)
}

func includeValues(r *http.Request) (bool, error) {
	v := r.URL.Query().Get(includeValuesParam)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, apierrors.ErrInvalidQueryParameter
	}
	return b, nil
}
