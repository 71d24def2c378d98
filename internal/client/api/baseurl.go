package api

import "strings"

// DefaultAPIPath is used when no API base URL is configured; the API is then
// assumed to live under the server origin, which is how the reverse-proxy
// deployment serves it.
const DefaultAPIPath = "/api"

// ResolveBaseURL picks the API base URL once at startup. Precedence:
//
//  1. a configured absolute URL is used as-is;
//  2. a configured path starting with "/" is joined to the server origin;
//  3. otherwise origin + DefaultAPIPath.
//
// The result never carries a trailing slash. Pure function; the transport
// must not re-resolve per request.
func ResolveBaseURL(configured, origin string) string {
	origin = strings.TrimRight(origin, "/")

	if strings.HasPrefix(configured, "http://") || strings.HasPrefix(configured, "https://") {
		return strings.TrimRight(configured, "/")
	}

	if strings.HasPrefix(configured, "/") {
		return origin + strings.TrimRight(configured, "/")
	}

	return origin + DefaultAPIPath
}
