package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ONSdigital/dp-sdmx-api/models"
)

// MessageList is a page of stored messages
type MessageList struct {
	Items      []*models.Message `json:"items"`
	Count      int               `json:"count"`
	Offset     int               `json:"offset"`
	Limit      int               `json:"limit"`
	TotalCount int               `json:"total_count"`
}

// Table is a column oriented table as served by the API
type Table struct {
	Columns  []Column `json:"columns"`
	RowCount int      `json:"row_count"`
}

// Column is a named, typed column of a Table. Null cells are nil.
type Column struct {
	Name   string        `json:"name"`
	Type   string        `json:"type"`
	Values []interface{} `json:"values"`
}

// Options are the optional query parameters of the projection endpoints
type Options struct {
	Locale        string
	IncludeValues bool
	Format        string
}

func (o *Options) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Locale != "" {
		q.Set("locale", o.Locale)
	}
	if o.IncludeValues {
		q.Set("include_values", "true")
	}
	if o.Format != "" {
		q.Set("format", o.Format)
	}
	return q
}

// GetMessages returns a page of stored messages, most recently updated first
func (c *Client) GetMessages(ctx context.Context, headers Headers, queryParams *QueryParams) (list MessageList, err error) {
	query := url.Values{}
	if queryParams != nil {
		if err = queryParams.Validate(); err != nil {
			return list, err
		}
		query.Set("offset", strconv.Itoa(queryParams.Offset))
		query.Set("limit", strconv.Itoa(queryParams.Limit))
	}

	uri, err := c.buildURI(query, "messages")
	if err != nil {
		return list, err
	}

	err = c.getJSON(ctx, headers, uri, &list)
	return list, err
}

// GetMessage returns a stored message summary. ErrNotModified is returned when
// headers.IfNoneMatch matches the current ETag.
func (c *Client) GetMessage(ctx context.Context, headers Headers, messageID string) (message models.Message, respHeaders ResponseHeaders, err error) {
	uri, err := c.buildURI(nil, "messages", messageID)
	if err != nil {
		return message, respHeaders, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, headers, uri, http.NoBody)
	if err != nil {
		return message, respHeaders, err
	}
	defer closeResponseBody(ctx, resp)

	respHeaders = responseHeaders(resp)
	switch resp.StatusCode {
	case http.StatusOK:
		err = json.NewDecoder(resp.Body).Decode(&message)
	case http.StatusNotModified:
		err = ErrNotModified
	default:
		err = responseError(resp)
	}
	return message, respHeaders, err
}

// PostMessage stores an SDMX-JSON message
func (c *Client) PostMessage(ctx context.Context, headers Headers, body []byte) (models.Message, ResponseHeaders, error) {
	uri, err := c.buildURI(nil, "messages")
	if err != nil {
		return models.Message{}, ResponseHeaders{}, err
	}
	return c.postMessage(ctx, headers, uri, bytes.NewReader(body))
}

// PostMessageFromURL asks the API to fetch and store the SDMX-JSON message served at sourceURL
func (c *Client) PostMessageFromURL(ctx context.Context, headers Headers, sourceURL string) (models.Message, ResponseHeaders, error) {
	uri, err := c.buildURI(url.Values{"url": []string{sourceURL}}, "messages")
	if err != nil {
		return models.Message{}, ResponseHeaders{}, err
	}
	return c.postMessage(ctx, headers, uri, http.NoBody)
}

func (c *Client) postMessage(ctx context.Context, headers Headers, uri *url.URL, body io.Reader) (message models.Message, respHeaders ResponseHeaders, err error) {
	resp, err := c.doRequest(ctx, http.MethodPost, headers, uri, body)
	if err != nil {
		return message, respHeaders, err
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusCreated {
		return message, respHeaders, responseError(resp)
	}

	respHeaders = responseHeaders(resp)
	err = json.NewDecoder(resp.Body).Decode(&message)
	return message, respHeaders, err
}

// DeleteMessage removes a stored message
func (c *Client) DeleteMessage(ctx context.Context, headers Headers, messageID string) error {
	uri, err := c.buildURI(nil, "messages", messageID)
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, http.MethodDelete, headers, uri, http.NoBody)
	if err != nil {
		return err
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusNoContent {
		return responseError(resp)
	}
	return nil
}

// GetObservations returns one observation table per dataset of a stored message
func (c *Client) GetObservations(ctx context.Context, headers Headers, messageID string, opts *Options) (tables []Table, err error) {
	uri, err := c.buildURI(opts.query(), "messages", messageID, "observations")
	if err != nil {
		return nil, err
	}

	err = c.getJSON(ctx, headers, uri, &tables)
	return tables, err
}

// PostObservations denormalises body without storing it
func (c *Client) PostObservations(ctx context.Context, headers Headers, body []byte, opts *Options) (tables []Table, err error) {
	uri, err := c.buildURI(opts.query(), "observations")
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, headers, uri, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return nil, responseError(resp)
	}
	err = json.NewDecoder(resp.Body).Decode(&tables)
	return tables, err
}

// GetDataSetObservations downloads the observations of one dataset in opts.Format (json, csv or parquet).
// The caller must close the returned body.
func (c *Client) GetDataSetObservations(ctx context.Context, headers Headers, messageID string, index int, opts *Options) (io.ReadCloser, error) {
	uri, err := c.buildURI(opts.query(), "messages", messageID, "datasets", strconv.Itoa(index), "observations")
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, headers, uri, http.NoBody)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer closeResponseBody(ctx, resp)
		return nil, responseError(resp)
	}
	return resp.Body, nil
}

// GetDataSetAttributes returns the dataset level attributes of one dataset
func (c *Client) GetDataSetAttributes(ctx context.Context, headers Headers, messageID string, index int, opts *Options) (t Table, err error) {
	uri, err := c.buildURI(opts.query(), "messages", messageID, "datasets", strconv.Itoa(index), "attributes")
	if err != nil {
		return t, err
	}

	err = c.getJSON(ctx, headers, uri, &t)
	return t, err
}

// GetDimensions returns the dimension table of a stored message
func (c *Client) GetDimensions(ctx context.Context, headers Headers, messageID string, opts *Options) (t Table, err error) {
	uri, err := c.buildURI(opts.query(), "messages", messageID, "dimensions")
	if err != nil {
		return t, err
	}

	err = c.getJSON(ctx, headers, uri, &t)
	return t, err
}

// GetAttributes returns the attribute table of a stored message
func (c *Client) GetAttributes(ctx context.Context, headers Headers, messageID string, opts *Options) (t Table, err error) {
	uri, err := c.buildURI(opts.query(), "messages", messageID, "attributes")
	if err != nil {
		return t, err
	}

	err = c.getJSON(ctx, headers, uri, &t)
	return t, err
}

// getJSON decodes the body of a successful GET into target
func (c *Client) getJSON(ctx context.Context, headers Headers, uri *url.URL, target interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, headers, uri, http.NoBody)
	if err != nil {
		return err
	}
	defer closeResponseBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return responseError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}
