package protocols

import (
	"io"
	"net/http"
	"net/url"
)

type HttpRequest struct {
	Body      io.ReadCloser
	Header    http.Header
	UrlParams url.Values
	Req       *http.Request
}

type HttpResponse struct {
	Body       io.ReadCloser
	StatusCode int
}

type Controller interface {
	Handle(r HttpRequest) *HttpResponse
}

// Envelope wraps every API response. Error is a string or a list of strings.
type Envelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data,omitempty"`
	Error   any  `json:"error,omitempty"`
}
