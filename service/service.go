package service

import (
	"context"
	"net/http"

	"github.com/ONSdigital/dp-authorisation/auth"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-sdmx-api/api"
	"github.com/ONSdigital/dp-sdmx-api/config"
	"github.com/ONSdigital/dp-sdmx-api/fetch"
	"github.com/ONSdigital/dp-sdmx-api/schema"
	"github.com/ONSdigital/dp-sdmx-api/store"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Service contains all the configs, server and clients to run the SDMX API
type Service struct {
	Config      *config.Configuration
	ServiceList *ExternalServiceList
	MongoDB     store.Storer
	Fetcher     *fetch.Client
	Validator   *schema.Validator
	Server      HTTPServer
	HealthCheck HealthChecker
	API         *api.SDMXAPI
}

// New creates a new service
func New(cfg *config.Configuration, serviceList *ExternalServiceList) *Service {
	return &Service{
		Config:      cfg,
		ServiceList: serviceList,
	}
}

// SetServer sets the http server for a service
func (svc *Service) SetServer(server HTTPServer) {
	svc.Server = server
}

// SetHealthCheck sets the healthchecker for a service
func (svc *Service) SetHealthCheck(healthCheck HealthChecker) {
	svc.HealthCheck = healthCheck
}

// SetMongoDB sets the mongoDB message store for a service
func (svc *Service) SetMongoDB(mongoDB store.Storer) {
	svc.MongoDB = mongoDB
}

// Run the service
func (svc *Service) Run(ctx context.Context, buildTime, gitCommit, version string, svcErrors chan error) (err error) {
	cfg := svc.Config
	serviceList := svc.ServiceList

	// Get MongoDB connection
	svc.MongoDB, err = serviceList.GetMongoDB(ctx, cfg.MongoConfig)
	if err != nil {
		log.Error(ctx, "could not obtain mongo session", err)
		return err
	}
	dataStore := store.DataStore{Backend: svc.MongoDB}

	svc.Fetcher = fetch.NewClient(serviceList.GetHTTPClient(cfg.FetchTimeout), cfg.MaxMessageSize)

	// api.Validator must stay a nil interface when validation is disabled
	var validator api.Validator
	if cfg.EnableSchemaValidation {
		svc.Validator, err = schema.NewValidator(svc.Fetcher, cfg.SDMXSchemaURL, cfg.SchemaCacheSize)
		if err != nil {
			log.Error(ctx, "could not create schema validator", err)
			return err
		}
		validator = svc.Validator
	}

	// Get HealthCheck
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Error(ctx, "could not instantiate healthcheck", err)
		return err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return errors.Wrap(err, "unable to register checkers")
	}

	// Get HTTP router and server with middleware
	r := mux.NewRouter()
	m := svc.createMiddleware()
	if cfg.OtelEnabled {
		r.Use(otelmux.Middleware(cfg.OTServiceName))
		svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, otelhttp.NewHandler(m.Then(r), "/"))
	} else {
		svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, m.Then(r))
	}

	// Create SDMX API
	permissions := getAuthorisationHandler(ctx, cfg)
	svc.API = api.Setup(ctx, cfg, r, dataStore, svc.Fetcher, validator, permissions)

	svc.HealthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return nil
}

func getAuthorisationHandler(ctx context.Context, cfg *config.Configuration) api.AuthHandler {
	if !cfg.EnablePermissionsAuth {
		log.Info(ctx, "feature flag not enabled defaulting to nop auth impl", log.Data{"feature": "ENABLE_PERMISSIONS_AUTH"})
		return &auth.NopHandler{}
	}

	log.Info(ctx, "feature flag enabled", log.Data{"feature": "ENABLE_PERMISSIONS_AUTH"})
	auth.LoggerNamespace("dp-sdmx-api-auth")

	// for checking caller permissions when we only have a user/service token
	return auth.NewHandler(
		auth.NewPermissionsRequestBuilder(cfg.ZebedeeURL),
		auth.NewPermissionsClient(dphttp.NewClient()),
		auth.DefaultPermissionsVerifier(),
	)
}

// createMiddleware creates an Alice middleware chain of handlers
func (svc *Service) createMiddleware() alice.Chain {
	// healthcheck
	healthcheckHandler := newMiddleware(svc.HealthCheck.Handler, "/health")
	return alice.New(healthcheckHandler)
}

// newMiddleware creates a new http.Handler to intercept /health requests.
func newMiddleware(healthcheckHandler func(http.ResponseWriter, *http.Request), path string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == http.MethodGet && req.URL.Path == path {
				healthcheckHandler(w, req)
				return
			}

			h.ServeHTTP(w, req)
		})
	}
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	shutdownContext, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	// Gracefully shutdown the application closing any open resources.
	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.ServiceList.HealthCheck {
			svc.HealthCheck.Stop()
		}

		// stop any incoming requests
		if svc.Server != nil {
			if err := svc.Server.Shutdown(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to shutdown http server", err)
				hasShutdownError = true
			}
		}

		// Close MongoDB (if it exists)
		if svc.ServiceList.MongoDB {
			if err := svc.MongoDB.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close mongo db session", err)
				hasShutdownError = true
			}
		}

		if svc.Validator != nil {
			svc.Validator.Purge()
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-shutdownContext.Done()

	// timeout expired
	if shutdownContext.Err() == context.DeadlineExceeded {
		log.Error(shutdownContext, "shutdown timed out", shutdownContext.Err())
		return shutdownContext.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(shutdownContext, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(shutdownContext, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the provided clients to the health check object
func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	hasErrors := false

	if err = svc.HealthCheck.AddCheck("Mongo DB", svc.MongoDB.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for mongo db", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
