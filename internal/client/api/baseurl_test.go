package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		origin     string
		want       string
	}{
		{
			name:       "absolute http URL wins",
			configured: "http://api.internal:8100/api",
			origin:     "https://apps.example.org",
			want:       "http://api.internal:8100/api",
		},
		{
			name:       "absolute https URL wins",
			configured: "https://api.example.org/v1/",
			origin:     "http://localhost",
			want:       "https://api.example.org/v1",
		},
		{
			name:       "relative path joined to origin",
			configured: "/api",
			origin:     "https://apps.example.org",
			want:       "https://apps.example.org/api",
		},
		{
			name:       "relative path with trailing slash normalized",
			configured: "/backend/api/",
			origin:     "https://apps.example.org/",
			want:       "https://apps.example.org/backend/api",
		},
		{
			name:       "empty falls back to default path",
			configured: "",
			origin:     "http://127.0.0.1:8100",
			want:       "http://127.0.0.1:8100/api",
		},
		{
			name:       "non-URL garbage falls back to default path",
			configured: "not a url",
			origin:     "http://127.0.0.1:8100",
			want:       "http://127.0.0.1:8100/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveBaseURL(tt.configured, tt.origin))
		})
	}
}
