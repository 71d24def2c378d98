package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhub/shelfhub/internal/common"
	"github.com/shelfhub/shelfhub/internal/logging"
)

// memStorage is an in-memory stand-in for the durable key-value store.
type memStorage struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string][]byte{}}
}

func (m *memStorage) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memStorage) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memStorage) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string][]byte{}
	return nil
}

func (m *memStorage) List(ctx context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data, nil
}

func (m *memStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func TestClient_AttachesBearerFromStorage(t *testing.T) {
	storage := newMemStorage()
	require.NoError(t, storage.Set(context.Background(), common.AccessTokenKey, []byte("tok-123")))

	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, storage, logging.NewNop())
	require.NoError(t, c.getJSON(context.Background(), "anything", nil, nil))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenSendsUnauthenticated(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	require.NoError(t, c.getJSON(context.Background(), "anything", nil, nil))

	assert.Empty(t, gotAuth, "no Authorization header must be fabricated")
}

func TestClient_MarkupResponseIsProxyError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<!DOCTYPE html><html></html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	err := c.getJSON(context.Background(), "anything", nil, &struct{}{})

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorProxyMisconfigured)
	assert.True(t, IsSilent(err), "proxy misconfiguration must be a silent failure class")
}

func TestClient_MarkupErrorResponseIsSilentAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	err := c.getJSON(context.Background(), "anything", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.True(t, IsSilent(err))
}

func TestClient_ErrorDetailFromBackendEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Violation not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	err := c.getJSON(context.Background(), "anything", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Violation not found", apiErr.Detail)
	assert.False(t, IsSilent(err))
}

func TestClient_UnauthorizedClearsTokenAndFiresHandler(t *testing.T) {
	storage := newMemStorage()
	require.NoError(t, storage.Set(context.Background(), common.AccessTokenKey, []byte("stale")))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	}))
	defer srv.Close()

	var expired atomic.Int32
	c := NewClient(srv.URL, storage, logging.NewNop(),
		WithSessionExpiredHandler(func() { expired.Add(1) }))

	err := c.getJSON(context.Background(), "protected", nil, nil)

	require.Error(t, err, "the caller still receives the failure")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, storage.has(common.AccessTokenKey), "token must be cleared")
	assert.Equal(t, int32(1), expired.Load(), "handler fires once per failing request")
}

func TestClient_ConcurrentUnauthorizedCleanupIsIdempotent(t *testing.T) {
	storage := newMemStorage()
	require.NoError(t, storage.Set(context.Background(), common.AccessTokenKey, []byte("stale")))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var expired atomic.Int32
	c := NewClient(srv.URL, storage, logging.NewNop(),
		WithSessionExpiredHandler(func() { expired.Add(1) }))

	const inflight = 3
	var wg sync.WaitGroup
	errs := make([]error, inflight)
	for i := 0; i < inflight; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.getJSON(context.Background(), "protected", nil, nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		assert.ErrorIs(t, err, common.ErrorUnauthorized, "request %d", i)
	}
	assert.False(t, storage.has(common.AccessTokenKey))
	assert.Equal(t, int32(inflight), expired.Load(), "each failing request performs the same idempotent cleanup")
}

func TestClient_NetworkFailurePropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, newMemStorage(), logging.NewNop())
	err := c.getJSON(context.Background(), "anything", nil, nil)

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "network failures are not API errors")
}
