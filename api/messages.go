package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/dp-sdmx-api/fetch"
	"github.com/ONSdigital/dp-sdmx-api/models"
	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

const (
	sourceURLParam  = "url"
	eTagHeader      = "ETag"
	ifNoneMatch     = "If-None-Match"
	locationHeader  = "Location"
	jsonContentType = "application/json"
)

func (api *SDMXAPI) addMessage(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)

	ctx := r.Context()
	sourceURL := r.URL.Query().Get(sourceURLParam)
	logData := log.Data{"source_url": sourceURL}

	message, err := func() (*models.Message, error) {
		raw, err := api.readMessage(ctx, r, sourceURL)
		if err != nil {
			return nil, err
		}

		msg, err := api.parseMessage(ctx, raw)
		if err != nil {
			return nil, err
		}

		message, err := models.NewMessage(raw, msg, sourceURL, api.urlBuilder)
		if err != nil {
			return nil, err
		}

		if err := api.dataStore.AddMessage(ctx, message); err != nil {
			return nil, err
		}
		return message, nil
	}()
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	logData["message_id"] = message.ID
	w.Header().Set(locationHeader, message.Links.Self.HRef)
	w.Header().Set(eTagHeader, message.ETag)
	writeJSON(ctx, w, http.StatusCreated, message, logData)
	log.Info(ctx, "addMessage endpoint: request successful", logData)
}

// readMessage returns the raw message from the source url when one is given, otherwise from the request body
func (api *SDMXAPI) readMessage(ctx context.Context, r *http.Request, sourceURL string) ([]byte, error) {
	if sourceURL != "" {
		raw, err := api.fetcher.Get(ctx, sourceURL)
		switch {
		case err == nil:
			return raw, nil
		case errors.Is(err, fetch.ErrMessageNotFound):
			return nil, apierrors.ErrSourceNotFound
		case errors.Is(err, fetch.ErrTooLarge):
			return nil, apierrors.ErrMessageTooLarge
		case errors.Is(err, fetch.ErrNotJSON):
			return nil, apierrors.ErrUnableToReadMessage
		default:
			log.Error(ctx, "failed to retrieve message from source", err, log.Data{"source_url": sourceURL})
			return nil, apierrors.ErrSourceUnavailable
		}
	}

	var body io.Reader = r.Body
	if api.maxMessageSize > 0 {
		body = io.LimitReader(r.Body, api.maxMessageSize+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		log.Error(ctx, "failed to read request body", err)
		return nil, apierrors.ErrUnableToReadMessage
	}
	if len(raw) == 0 {
		return nil, apierrors.ErrEmptyRequestBody
	}
	if api.maxMessageSize > 0 && int64(len(raw)) > api.maxMessageSize {
		return nil, apierrors.ErrMessageTooLarge
	}
	return raw, nil
}

// parseMessage validates raw against its schema, when validation is enabled, then parses it
func (api *SDMXAPI) parseMessage(ctx context.Context, raw []byte) (*sdmx.Message, error) {
	if api.validator != nil {
		if err := api.validator.Validate(ctx, raw); err != nil {
			return nil, err
		}
	}
	return sdmx.ParseMessage(raw)
}

func (api *SDMXAPI) getMessages(w http.ResponseWriter, r *http.Request, limit, offset int) (interface{}, int, error) {
	ctx := r.Context()
	messages, totalCount, err := api.dataStore.GetMessages(ctx, offset, limit)
	if err != nil {
		handleAPIErr(ctx, w, err, log.Data{"limit": limit, "offset": offset})
		return nil, 0, err
	}
	for _, m := range messages {
		m.Links = models.NewMessageLinks(api.urlBuilder, m)
	}
	return messages, totalCount, nil
}

func (api *SDMXAPI) getMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]
	logData := log.Data{"message_id": id}

	message, err := api.dataStore.GetMessage(ctx, id)
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	w.Header().Set(eTagHeader, message.ETag)
	if match := r.Header.Get(ifNoneMatch); match != "" && match == message.ETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	message.Links = models.NewMessageLinks(api.urlBuilder, message)
	writeJSON(ctx, w, http.StatusOK, message, logData)
	log.Info(ctx, "getMessage endpoint: request successful", logData)
}

func (api *SDMXAPI) deleteMessage(w http.ResponseWriter, r *http.Request) {
	defer dphttp.DrainBody(r)

	ctx := r.Context()
	id := mux.Vars(r)["id"]
	logData := log.Data{"message_id": id}

	if err := api.dataStore.DeleteMessage(ctx, id); err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	log.Info(ctx, "deleteMessage endpoint: request successful", logData)
}

// storedMessage retrieves and parses the message named in the request path
func (api *SDMXAPI) storedMessage(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Message, *sdmx.Message, error) {
	message, err := api.dataStore.GetMessage(ctx, mux.Vars(r)["id"])
	if err != nil {
		return nil, nil, err
	}
	msg, err := message.Parse()
	if err != nil {
		return nil, nil, err
	}
	w.Header().Set(eTagHeader, message.ETag)
	return message, msg, nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}, logData log.Data) {
	b, err := json.Marshal(v)
	if err != nil {
		handleAPIErr(ctx, w, err, logData)
		return
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		log.Error(ctx, "failed to write response body", err, logData)
	}
}
