// Package common defines shared constants and sentinel errors used across
// Shelfhub client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorProxyMisconfigured is returned when a response carries a markup
	// content type where structured data was expected. This almost always
	// means a reverse proxy routed the API path to the frontend bundle.
	ErrorProxyMisconfigured = errors.New("received HTML instead of JSON, check reverse proxy configuration")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Caller-input errors, rejected before any network call.
	ErrorEmptyTargetFilename = errors.New("new filename must not be empty")
	ErrorNoViolationIDs      = errors.New("violation id list must not be empty")
	ErrorEmptyUsername       = errors.New("username must not be empty")
	ErrorUnsupportedLocale   = errors.New("unsupported locale")
)
