package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhub/shelfhub/internal/logging"
)

func TestScan_StartSendsPathAndAIFlag(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/scan/start", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &body))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"new_products": 2, "new_versions": 3, "updated_products": 1,
			"ai_generated": 2, "icons_cached": 2, "errors": []
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	res, err := c.Scan().Start(context.Background(), "/library", true)
	require.NoError(t, err)

	assert.Equal(t, "/library", body["path"])
	assert.Equal(t, true, body["use_ai"])
	assert.Equal(t, 2, res.NewProducts)
	assert.Equal(t, 3, res.NewVersions)
	assert.Empty(t, res.Errors)
}

func TestScan_ExclusionsRoundTrip(t *testing.T) {
	var saved []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/scan/exclusions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"exclusions": ["*.tmp", "node_modules"]}`))
		case http.MethodPost:
			var body struct {
				Exclusions []string `json:"exclusions"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			saved = body.Exclusions
			_, _ = w.Write([]byte(`{"success": true, "message": "saved"}`))
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())

	got, err := c.Scan().Exclusions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "node_modules"}, got)

	require.NoError(t, c.Scan().SaveExclusions(context.Background(), []string{"*.bak"}))
	assert.Equal(t, []string{"*.bak"}, saved)
}

func TestProducts_ListBuildsQuery(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/", r.URL.Path)
		query = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"total": 1, "products": [
			{"id": 4, "title": "Notepad++", "category": "editor", "folder_path": "/library/editors"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	page, err := c.Products().List(context.Background(), ListOptions{Limit: 5, Search: "note"})
	require.NoError(t, err)

	assert.Contains(t, query, "limit=5")
	assert.Contains(t, query, "search=note")
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Notepad++", page.Products[0].Title)
	assert.Equal(t, 1, page.Total)
}
