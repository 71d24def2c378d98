package api

import (
	"errors"
	"fmt"

	"github.com/shelfhub/shelfhub/internal/common"
)

// APIError is a non-2xx response from the backend. Detail carries the
// backend's error message when the response body had one.
type APIError struct {
	Status int
	Detail string

	// silent is set when the error body was a markup document (the proxy
	// misrouted the API path); logging for that class is suppressed.
	silent bool
}

// Silent marks this error for suppressed logging.
func (e *APIError) Silent() bool { return e.silent }

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
}

// Is lets errors.Is(err, common.ErrorUnauthorized) match a 401 response.
func (e *APIError) Is(target error) bool {
	return target == common.ErrorUnauthorized && e.Status == 401
}

// ProxyError is a distinct failure class: the server answered with a markup
// document where structured data was expected, which indicates a reverse
// proxy routing the API path to the frontend. It is marked silent so
// downstream error reporting can suppress noisy logging for it.
type ProxyError struct {
	ContentType string
}

func (e *ProxyError) Error() string {
	return fmt.Sprintf("%v (content type %q)", common.ErrorProxyMisconfigured, e.ContentType)
}

func (e *ProxyError) Is(target error) bool {
	return target == common.ErrorProxyMisconfigured
}

// Silent marks this failure class for suppressed logging.
func (e *ProxyError) Silent() bool { return true }

// IsSilent reports whether err belongs to a failure class whose logging
// should be suppressed.
func IsSilent(err error) bool {
	var s interface{ Silent() bool }
	return errors.As(err, &s) && s.Silent()
}
