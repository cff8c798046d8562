package sdk

import (
	"errors"
	"net/http"
	"strings"

	dpNetRequest "github.com/ONSdigital/dp-net/v2/request"
)

// ResponseHeaders represents headers that are available in the HTTP response
type ResponseHeaders struct {
	ETag     string
	Location string
}

const (
	ifNoneMatchHeader = "If-None-Match"
	eTagHeader        = "ETag"
	locationHeader    = "Location"
)

var (
	// ErrHeaderNotFound returned if the requested header is not present in the provided request
	ErrHeaderNotFound = errors.New("header not found")

	// ErrResponseNil return if GetResponseX header function is called with a nil response
	ErrResponseNil = errors.New("error getting request header, response was nil")
)

// Contains the headers to be added to any request
type Headers struct {
	CollectionID string
	ServiceToken string
	IfNoneMatch  string
}

// Adds headers to the input request
func (h *Headers) add(request *http.Request) {
	if h.CollectionID != "" {
		request.Header.Add(dpNetRequest.CollectionIDHeaderKey, h.CollectionID)
	}

	// AddServiceTokenHeader prefixes the token with Bearer
	token := strings.TrimPrefix(h.ServiceToken, "Bearer ")
	dpNetRequest.AddServiceTokenHeader(request, token)

	if h.IfNoneMatch != "" {
		request.Header.Add(ifNoneMatchHeader, h.IfNoneMatch)
	}
}

// responseHeaders collects the response headers the client exposes
func responseHeaders(resp *http.Response) ResponseHeaders {
	eTag, _ := getResponseHeader(resp, eTagHeader)
	location, _ := getResponseHeader(resp, locationHeader)
	return ResponseHeaders{ETag: eTag, Location: location}
}

func getResponseHeader(resp *http.Response, headerName string) (string, error) {
	if resp == nil {
		return "", ErrResponseNil
	}

	headerValue := resp.Header.Get(headerName)
	if headerValue == "" {
		return "", ErrHeaderNotFound
	}

	return headerValue, nil
}
