package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	dphttp "github.com/ONSdigital/dp-net/v2/http"
	"github.com/ONSdigital/log.go/v2/log"
)

// Retrieval errors
var (
	ErrMessageNotFound  = errors.New("message not found at url")
	ErrUnexpectedStatus = errors.New("unexpected status retrieving message")
	ErrNotJSON          = errors.New("response contents is not json")
	ErrTooLarge         = errors.New("message exceeds the maximum size")
)

// Client retrieves SDMX-JSON messages and schemas over http
type Client struct {
	client  dphttp.Clienter
	maxSize int64
}

// NewClient returns a Client using the given http client. A maxSize of 0 reads bodies of any size.
func NewClient(client dphttp.Clienter, maxSize int64) *Client {
	return &Client{client: client, maxSize: maxSize}
}

// Get retrieves the json document at url
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	logData := log.Data{"url": url}

	resp, err := c.client.Get(ctx, url)
	if err != nil {
		log.Error(ctx, "failed to retrieve message", err, logData)
		return nil, err
	}
	defer closeResponseBody(ctx, resp)

	logData["status_code"] = resp.StatusCode
	switch {
	case resp.StatusCode == http.StatusNotFound:
		log.Warn(ctx, "message not found", logData)
		return nil, ErrMessageNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		log.Warn(ctx, "unexpected status retrieving message", logData)
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	b, err := c.read(resp.Body)
	if err != nil {
		log.Error(ctx, "failed to read message", err, logData)
		return nil, err
	}

	log.Info(ctx, "retrieved message", log.Data{"url": url, "bytes": len(b)})
	return b, nil
}

func (c *Client) read(r io.Reader) ([]byte, error) {
	if c.maxSize > 0 {
		r = io.LimitReader(r, c.maxSize+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if c.maxSize > 0 && int64(len(b)) > c.maxSize {
		return nil, ErrTooLarge
	}
	if !json.Valid(b) {
		return nil, ErrNotJSON
	}
	return b, nil
}

// ReadFile reads a json document from the local file system
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !json.Valid(b) {
		return nil, ErrNotJSON
	}
	return b, nil
}

func closeResponseBody(ctx context.Context, resp *http.Response) {
	if resp.Body != nil {
		if err := resp.Body.Close(); err != nil {
			log.Error(ctx, "error closing http response body", err)
		}
	}
}
