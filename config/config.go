package config

import (
	"encoding/json"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"
)

type MongoConfig struct {
	mongodriver.MongoDriverConfig
}

// Configuration structure which hold information for configuring the SDMX API
type Configuration struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	SdmxAPIURL                 string        `envconfig:"SDMX_API_URL"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
	DefaultMaxLimit            int           `envconfig:"DEFAULT_MAXIMUM_LIMIT"`
	DefaultLimit               int           `envconfig:"DEFAULT_LIMIT"`
	DefaultOffset              int           `envconfig:"DEFAULT_OFFSET"`
	MaxMessageSize             int64         `envconfig:"MAX_MESSAGE_SIZE"`
	FetchTimeout               time.Duration `envconfig:"FETCH_TIMEOUT"`
	EnableSchemaValidation     bool          `envconfig:"ENABLE_SCHEMA_VALIDATION"`
	SDMXSchemaURL              string        `envconfig:"SDMX_SCHEMA_URL"`
	SchemaCacheSize            int           `envconfig:"SCHEMA_CACHE_SIZE"`
	ZebedeeURL                 string        `envconfig:"ZEBEDEE_URL"`
	EnablePermissionsAuth      bool          `envconfig:"ENABLE_PERMISSIONS_AUTH"`
	OTExporterOTLPEndpoint     string        `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTServiceName              string        `envconfig:"OTEL_SERVICE_NAME"`
	OTBatchTimeout             time.Duration `envconfig:"OTEL_BATCH_TIMEOUT"`
	OtelEnabled                bool          `envconfig:"OTEL_ENABLED"`
	MongoConfig
}

var cfg *Configuration

const (
	MessagesCollection = "MessagesCollection"

	// MaxStoredMessageSize is the largest MAX_MESSAGE_SIZE accepted. A message is stored in a
	// single mongo document, which cannot exceed 16 MiB including its other fields.
	MaxStoredMessageSize = 15 * 1024 * 1024
)

// Get the application and returns the configuration structure, and initialises with default values.
func Get() (*Configuration, error) {
	if cfg != nil {
		return cfg, nil
	}

	cfg = &Configuration{
		BindAddr:                   ":28300",
		SdmxAPIURL:                 "http://localhost:28300",
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
		DefaultMaxLimit:            1000,
		DefaultLimit:               20,
		DefaultOffset:              0,
		MaxMessageSize:             10 * 1024 * 1024,
		FetchTimeout:               30 * time.Second,
		EnableSchemaValidation:     false,
		SDMXSchemaURL:              "https://raw.githubusercontent.com/sdmx-twg/sdmx-json/master/data-message/tools/schemas/2.0.0/sdmx-json-data-schema.json",
		SchemaCacheSize:            16,
		ZebedeeURL:                 "http://localhost:8082",
		EnablePermissionsAuth:      false,
		OTExporterOTLPEndpoint:     "localhost:4317",
		OTServiceName:              "dp-sdmx-api",
		OTBatchTimeout:             5 * time.Second,
		OtelEnabled:                false,
		MongoConfig: MongoConfig{
			MongoDriverConfig: mongodriver.MongoDriverConfig{
				ClusterEndpoint:               "localhost:27017",
				Username:                      "",
				Password:                      "",
				Database:                      "sdmx",
				Collections:                   map[string]string{MessagesCollection: "messages"},
				ReplicaSet:                    "",
				IsStrongReadConcernEnabled:    false,
				IsWriteConcernMajorityEnabled: true,
				ConnectTimeout:                5 * time.Second,
				QueryTimeout:                  15 * time.Second,
				TLSConnectionConfig: mongodriver.TLSConnectionConfig{
					IsSSL: false,
				},
			},
		},
	}

	if err := envconfig.Process("", cfg); err != nil {
		return cfg, err
	}

	if cfg.MaxMessageSize <= 0 || cfg.MaxMessageSize > MaxStoredMessageSize {
		invalid := cfg
		cfg = nil
		return invalid, errors.Errorf("MAX_MESSAGE_SIZE must be between 1 and %d bytes, got %d", MaxStoredMessageSize, invalid.MaxMessageSize)
	}

	return cfg, nil
}

// String is implemented to prevent sensitive fields being logged.
// The config is returned as JSON with sensitive fields omitted.
func (config Configuration) String() string {
	b, _ := json.Marshal(config)
	return string(b)
}
