package sdk

import (
	"context"
	"io"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/dp-sdmx-api/models"
)

//go:generate moq -out ./mocks/client.go -pkg mocks . Clienter

type Clienter interface {
	Checker(ctx context.Context, check *healthcheck.CheckState) error
	Health() *health.Client
	URL() string
	GetMessages(ctx context.Context, headers Headers, queryParams *QueryParams) (list MessageList, err error)
	GetMessagesInBatches(ctx context.Context, headers Headers, batchSize, maxWorkers int) (messages MessageList, err error)
	GetMessage(ctx context.Context, headers Headers, messageID string) (message models.Message, respHeaders ResponseHeaders, err error)
	PostMessage(ctx context.Context, headers Headers, body []byte) (models.Message, ResponseHeaders, error)
	PostMessageFromURL(ctx context.Context, headers Headers, sourceURL string) (models.Message, ResponseHeaders, error)
	DeleteMessage(ctx context.Context, headers Headers, messageID string) error
	GetObservations(ctx context.Context, headers Headers, messageID string, opts *Options) (tables []Table, err error)
	PostObservations(ctx context.Context, headers Headers, body []byte, opts *Options) (tables []Table, err error)
	GetDataSetObservations(ctx context.Context, headers Headers, messageID string, index int, opts *Options) (io.ReadCloser, error)
	GetDataSetAttributes(ctx context.Context, headers Headers, messageID string, index int, opts *Options) (t Table, err error)
	GetDimensions(ctx context.Context, headers Headers, messageID string, opts *Options) (t Table, err error)
	GetAttributes(ctx context.Context, headers Headers, messageID string, opts *Options) (t Table, err error)
}

var _ Clienter = (*Client)(nil)
