package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhub/shelfhub/internal/client/api"
	"github.com/shelfhub/shelfhub/internal/common"
	"github.com/shelfhub/shelfhub/internal/logging"
)

// fakeStorage is an in-memory localdata.Repository for session tests.
type fakeStorage struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string][]byte{}}
}

func (f *fakeStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.data[key], nil
}

func (f *fakeStorage) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeStorage) Clear(ctx context.Context) error {
	f.data = map[string][]byte{}
	return nil
}

func (f *fakeStorage) List(ctx context.Context) (map[string][]byte, error) {
	return f.data, nil
}

// loginServer answers auth/login with the given token and any other path
// with 404.
func loginServer(t *testing.T, token string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			http.NotFound(w, r)
			return
		}
		require.NoError(t, r.ParseMultipartForm(1<<20))
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": token, "token_type": "bearer"})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestStore(t *testing.T, srvURL string, storage *fakeStorage) *Store {
	t.Helper()
	c := api.NewClient(srvURL+"/api", storage, logging.NewNop())
	return NewStore(context.Background(), c.Auth(), storage, logging.NewNop())
}

func TestStore_LoginPopulatesState(t *testing.T) {
	token := signedToken(t, "alice", RoleAdmin)
	storage := newFakeStorage()
	srv := loginServer(t, token, http.StatusOK)
	s := newTestStore(t, srv.URL, storage)

	require.False(t, s.IsAuthenticated())
	require.NoError(t, s.Login(context.Background(), "alice", "pw"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, token, s.Token())
	require.NotNil(t, s.User())
	assert.Equal(t, "alice", s.User().Username)
	assert.Equal(t, RoleAdmin, s.User().Role)
	assert.Equal(t, []byte(token), storage.data[common.AccessTokenKey])
}

func TestStore_LoginFailureLeavesStateUntouched(t *testing.T) {
	storage := newFakeStorage()
	srv := loginServer(t, "", http.StatusForbidden)
	s := newTestStore(t, srv.URL, storage)

	err := s.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, storage.data[common.AccessTokenKey])
}

func TestStore_LoginWithUndecodableTokenFallsBack(t *testing.T) {
	storage := newFakeStorage()
	srv := loginServer(t, "not-a-jwt", http.StatusOK)
	s := newTestStore(t, srv.URL, storage)

	require.NoError(t, s.Login(context.Background(), "alice", "pw"))

	// login never blocks on decode failure
	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "alice", s.User().Username)
	assert.Equal(t, RoleUser, s.User().Role)
}

func TestStore_LogoutClearsEverything_AndIsIdempotent(t *testing.T) {
	token := signedToken(t, "alice", RoleUser)
	storage := newFakeStorage()
	srv := loginServer(t, token, http.StatusOK)
	s := newTestStore(t, srv.URL, storage)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "alice", "pw"))

	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	_, ok := storage.data[common.AccessTokenKey]
	assert.False(t, ok, "persisted token must be removed")

	// second logout produces the same end state
	s.Logout(ctx)
	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

func TestNewStore_RestoresValidStoredToken(t *testing.T) {
	token := signedToken(t, "carol", RoleUser)
	storage := newFakeStorage()
	storage.data[common.AccessTokenKey] = []byte(token)

	s := NewStore(context.Background(), nil, storage, logging.NewNop())

	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User(), "user must be populated before first use")
	assert.Equal(t, "carol", s.User().Username)
}

func TestStore_CheckAuthHealsCorruptedToken(t *testing.T) {
	storage := newFakeStorage()
	storage.data[common.AccessTokenKey] = []byte("corrupted-token")

	s := NewStore(context.Background(), nil, storage, logging.NewNop())
	assert.True(t, s.IsAuthenticated())
	assert.Nil(t, s.User())

	s.CheckAuth(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
	_, ok := storage.data[common.AccessTokenKey]
	assert.False(t, ok, "storage key must be removed")
}

func TestStore_CheckAuthRefreshesUser(t *testing.T) {
	token := signedToken(t, "dave", RoleAdmin)
	storage := newFakeStorage()
	storage.data[common.AccessTokenKey] = []byte(token)

	s := NewStore(context.Background(), nil, storage, logging.NewNop())
	s.CheckAuth(context.Background())

	assert.True(t, s.IsAuthenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "dave", s.User().Username)
	assert.Equal(t, RoleAdmin, s.User().Role)
}

func TestStore_CheckAuthNoTokenIsNoOp(t *testing.T) {
	storage := newFakeStorage()
	s := NewStore(context.Background(), nil, storage, logging.NewNop())

	s.CheckAuth(context.Background())

	assert.False(t, s.IsAuthenticated())
	assert.Nil(t, s.User())
}

// captureLogger records warn-level reports for assertions.
type captureLogger struct {
	warns []string
	errs  []error
}

func (c *captureLogger) Debug(context.Context, string, ...any) {}
func (c *captureLogger) Info(context.Context, string, ...any)  {}
func (c *captureLogger) Error(context.Context, string, ...any) {}
func (c *captureLogger) With(...any) logging.Logger            { return c }

func (c *captureLogger) Warn(_ context.Context, msg string, args ...any) {
	c.warns = append(c.warns, msg)
	for _, a := range args {
		if err, ok := a.(error); ok {
			c.errs = append(c.errs, err)
		}
	}
}

func TestStore_CheckAuthReportsInvalidToken(t *testing.T) {
	ctx := context.Background()
	storage := newFakeStorage()
	storage.data[common.AccessTokenKey] = []byte("not-a-jwt")
	logs := &captureLogger{}

	s := NewStore(ctx, nil, storage, logs)
	require.True(t, s.IsAuthenticated())

	s.CheckAuth(ctx)

	assert.False(t, s.IsAuthenticated())
	require.NotEmpty(t, logs.errs)
	found := false
	for _, err := range logs.errs {
		if errors.Is(err, common.ErrInvalidToken) {
			found = true
		}
	}
	assert.True(t, found, "expected ErrInvalidToken in logged errors, got %v", logs.errs)
}
