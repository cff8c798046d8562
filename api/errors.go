package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ONSdigital/dp-sdmx-api/apierrors"
	"github.com/ONSdigital/dp-sdmx-api/download"
	"github.com/ONSdigital/dp-sdmx-api/schema"
	"github.com/ONSdigital/dp-sdmx-api/sdmx"
	"github.com/ONSdigital/log.go/v2/log"
	pkgerrors "github.com/pkg/errors"
)

func handleAPIErr(ctx context.Context, w http.ResponseWriter, err error, data log.Data) {
	if data == nil {
		data = log.Data{}
	}

	var status int
	switch {
	case apierrors.NotFoundMap[err], errors.Is(err, sdmx.ErrDataSetNotFound):
		status = http.StatusNotFound
	case apierrors.BadRequestMap[err],
		errors.Is(err, sdmx.ErrInvalidMessage),
		errors.Is(err, download.ErrUnsupportedFormat),
		errors.Is(err, download.ErrNoColumns),
		errors.Is(err, schema.ErrNoSchema),
		errors.Is(err, schema.ErrInvalidSchema):
		status = http.StatusBadRequest
	case err == apierrors.ErrMessageTooLarge:
		status = http.StatusRequestEntityTooLarge
	case err == apierrors.ErrSourceUnavailable, errors.Is(err, schema.ErrSchemaUnavailable):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
		err = pkgerrors.WithMessage(err, apierrors.ErrInternalServer.Error())
	}

	data["response_status"] = status
	log.Error(ctx, "unsuccessful request", err, data)
	http.Error(w, err.Error(), status)
}
