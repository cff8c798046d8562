package api

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-authorisation/auth"
	"github.com/ONSdigital/dp-sdmx-api/config"
	"github.com/ONSdigital/dp-sdmx-api/pagination"
	"github.com/ONSdigital/dp-sdmx-api/store"
	"github.com/ONSdigital/dp-sdmx-api/url"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
)

//go:generate moq -skip-ensure -out mock/fetcher.go -pkg mock . Fetcher
//go:generate moq -skip-ensure -out mock/validator.go -pkg mock . Validator
//go:generate moq -skip-ensure -out mock/auth_handler.go -pkg mock . AuthHandler

var (
	createPermission = auth.Permissions{Create: true}
	deletePermission = auth.Permissions{Delete: true}
)

// Fetcher retrieves a raw message from a url
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Validator checks a raw message against its schema
type Validator interface {
	Validate(ctx context.Context, raw []byte) error
}

// AuthHandler provides authorisation checks on requests
type AuthHandler interface {
	Require(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc
}

// SDMXAPI manages the storage and denormalisation of SDMX-JSON messages
type SDMXAPI struct {
	Router         *mux.Router
	dataStore      store.DataStore
	fetcher        Fetcher
	validator      Validator
	permissions    AuthHandler
	urlBuilder     *url.Builder
	maxMessageSize int64
}

// Setup creates a new SDMX API instance and registers the API routes. A nil validator disables schema validation.
// Routes that store or delete messages require permissions; reads are open.
func Setup(ctx context.Context, cfg *config.Configuration, router *mux.Router, dataStore store.DataStore, fetcher Fetcher, validator Validator, permissions AuthHandler) *SDMXAPI {
	api := &SDMXAPI{
		Router:         router,
		dataStore:      dataStore,
		fetcher:        fetcher,
		validator:      validator,
		permissions:    permissions,
		urlBuilder:     url.NewBuilder(cfg.SdmxAPIURL),
		maxMessageSize: cfg.MaxMessageSize,
	}

	if validator == nil {
		log.Info(ctx, "schema validation of messages is disabled")
	}

	paginator := pagination.NewPaginator(cfg.DefaultLimit, cfg.DefaultOffset, cfg.DefaultMaxLimit)

	api.post("/messages", api.isAuthorised(createPermission, api.addMessage))
	api.get("/messages", paginator.Paginate(api.getMessages))
	api.get("/messages/{id}", api.getMessage)
	api.delete("/messages/{id}", api.isAuthorised(deletePermission, api.deleteMessage))
	api.get("/messages/{id}/observations", api.getObservations)
	api.get("/messages/{id}/datasets/{index}/observations", api.getDataSetObservations)
	api.get("/messages/{id}/datasets/{index}/attributes", api.getDataSetAttributes)
	api.get("/messages/{id}/dimensions", api.getDimensions)
	api.get("/messages/{id}/attributes", api.getAttributes)
	api.post("/observations", api.postObservations)

	return api
}

// get registers a GET http.HandlerFunc.
func (api *SDMXAPI) get(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodGet)
}

// post registers a POST http.HandlerFunc.
func (api *SDMXAPI) post(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodPost)
}

// delete registers a DELETE http.HandlerFunc.
func (api *SDMXAPI) delete(path string, handler http.HandlerFunc) {
	api.Router.HandleFunc(path, handler).Methods(http.MethodDelete)
}

// isAuthorised wraps a http.HandlerFunc in another http.HandlerFunc that checks the caller holds the required
// permissions. The wrapped handler is only called if the check passes.
func (api *SDMXAPI) isAuthorised(required auth.Permissions, handler http.HandlerFunc) http.HandlerFunc {
	return api.permissions.Require(required, handler)
}
