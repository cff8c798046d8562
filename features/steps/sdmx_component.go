package steps

import (
	"context"
	"net/http"
	"time"

	componenttest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-component-test/utils"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/dp-sdmx-api/config"
	"github.com/ONSdigital/dp-sdmx-api/mongo"
	"github.com/ONSdigital/dp-sdmx-api/service"
	serviceMock "github.com/ONSdigital/dp-sdmx-api/service/mock"
	"github.com/ONSdigital/dp-sdmx-api/store"
	"github.com/ONSdigital/log.go/v2/log"
)

// SdmxComponent runs the service against an in-memory mongo database
type SdmxComponent struct {
	ErrorFeature   componenttest.ErrorFeature
	svc            *service.Service
	errorChan      chan error
	MongoClient    *mongo.Mongo
	Config         *config.Configuration
	HTTPServer     *http.Server
	ServiceRunning bool
}

func NewSdmxComponent(mongoFeature *componenttest.MongoFeature) (*SdmxComponent, error) {
	f := &SdmxComponent{
		HTTPServer:     &http.Server{ReadHeaderTimeout: 5 * time.Second},
		errorChan:      make(chan error),
		ServiceRunning: false,
	}

	cfg, err := config.Get()
	if err != nil {
		return nil, err
	}
	c := *cfg
	f.Config = &c

	f.Config.MongoConfig.ClusterEndpoint = mongoFeature.Server.URI()
	f.Config.MongoConfig.Database = utils.RandomDatabase()

	mongodb := &mongo.Mongo{MongoConfig: f.Config.MongoConfig}
	if err := mongodb.Init(context.Background()); err != nil {
		return nil, err
	}
	f.MongoClient = mongodb

	initMock := &serviceMock.InitialiserMock{
		DoGetMongoDBFunc:     f.DoGetMongoDB,
		DoGetHealthCheckFunc: f.DoGetHealthcheckOk,
		DoGetHTTPServerFunc:  f.DoGetHTTPServer,
		DoGetHTTPClientFunc:  f.DoGetHTTPClient,
	}

	f.svc = service.New(f.Config, service.NewServiceList(initMock))

	return f, nil
}

func (f *SdmxComponent) Reset() *SdmxComponent {
	ctx := context.Background()
	f.MongoClient.Database = utils.RandomDatabase()
	if err := f.MongoClient.Init(ctx); err != nil {
		log.Warn(ctx, "error initialising MongoClient during Reset", log.Data{"err": err.Error()})
	}
	return f
}

func (f *SdmxComponent) Close() error {
	if f.svc != nil && f.ServiceRunning {
		if err := f.svc.Close(context.Background()); err != nil {
			return err
		}
		f.ServiceRunning = false
	}
	return nil
}

func (f *SdmxComponent) InitialiseService() (http.Handler, error) {
	if err := f.svc.Run(context.Background(), "1", "", "", f.errorChan); err != nil {
		return nil, err
	}
	f.ServiceRunning = true
	return f.HTTPServer.Handler, nil
}

func (f *SdmxComponent) DoGetHealthcheckOk(cfg *config.Configuration, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	return &serviceMock.HealthCheckerMock{
		AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		StartFunc:    func(ctx context.Context) {},
		StopFunc:     func() {},
	}, nil
}

func (f *SdmxComponent) DoGetHTTPServer(bindAddr string, router http.Handler) service.HTTPServer {
	f.HTTPServer.Addr = bindAddr
	f.HTTPServer.Handler = router
	return f.HTTPServer
}

// DoGetMongoDB returns the in-memory MongoDB
func (f *SdmxComponent) DoGetMongoDB(ctx context.Context, cfg config.MongoConfig) (store.Storer, error) {
	return f.MongoClient, nil
}

func (f *SdmxComponent) DoGetHTTPClient(timeout time.Duration) dphttp.Clienter {
	initialiser := &service.Init{}
	return initialiser.DoGetHTTPClient(timeout)
}
