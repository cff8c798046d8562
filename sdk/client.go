package sdk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ONSdigital/dp-api-clients-go/v2/health"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

const (
	service = "dp-sdmx-api"
)

var (
	// ErrNotModified is returned when the message matches the ETag sent in If-None-Match
	ErrNotModified = errors.New("message not modified")
)

// APIError is returned when the API responds with an unexpected status code
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s responded with status %d: %s", service, e.StatusCode, e.Message)
}

type Client struct {
	hcCli *health.Client
}

// Checker calls sdmx api health endpoint and returns a check object to the caller
func (c *Client) Checker(ctx context.Context, check *healthcheck.CheckState) error {
	return c.hcCli.Checker(ctx, check)
}

// Health returns the underlying Healthcheck Client for this API client
func (c *Client) Health() *health.Client {
	return c.hcCli
}

// URL returns the URL used by this client
func (c *Client) URL() string {
	return c.hcCli.URL
}

// New creates a new instance of Client for the service
func New(sdmxAPIURL string) *Client {
	return &Client{
		hcCli: health.NewClient(service, sdmxAPIURL),
	}
}

// NewWithHealthClient creates a new instance of service API Client, reusing the URL and Clienter
// from the provided healthcheck client
func NewWithHealthClient(hcCli *health.Client) *Client {
	return &Client{
		hcCli: health.NewClientWithClienter(service, hcCli.URL, hcCli.Client),
	}
}

// buildURI joins the path elements onto the API URL
func (c *Client) buildURI(query url.Values, elem ...string) (*url.URL, error) {
	uri, err := url.Parse(c.hcCli.URL)
	if err != nil {
		return nil, err
	}
	uri = uri.JoinPath(elem...)
	if len(query) > 0 {
		uri.RawQuery = query.Encode()
	}
	return uri, nil
}

// doRequest sends a request with the given headers and body to uri
func (c *Client) doRequest(ctx context.Context, method string, headers Headers, uri *url.URL, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, uri.String(), body)
	if err != nil {
		return nil, err
	}
	headers.add(req)
	return c.hcCli.Client.Do(ctx, req)
}

// closeResponseBody closes the response body and logs an error if unsuccessful
func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}

// responseError reads the plain text error written by the API
func responseError(resp *http.Response) error {
	b, err := io.ReadAll(resp.Body)
	if err != nil || len(b) == 0 {
		return &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
