package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelfhub/shelfhub/internal/client/session"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		meta  Meta
		state State
		want  Decision
	}{
		{
			name:  "protected route, unauthenticated",
			meta:  Meta{RequiresAuth: true},
			state: State{},
			want:  Decision{RedirectTo: LoginPath},
		},
		{
			name:  "protected route, authenticated",
			meta:  Meta{RequiresAuth: true},
			state: State{Authenticated: true, Role: session.RoleUser},
			want:  Decision{Allow: true},
		},
		{
			name:  "admin route, regular user",
			meta:  Meta{RequiresAuth: true, RequiresAdmin: true},
			state: State{Authenticated: true, Role: session.RoleUser},
			want:  Decision{RedirectTo: HomePath},
		},
		{
			name:  "admin route, admin",
			meta:  Meta{RequiresAuth: true, RequiresAdmin: true},
			state: State{Authenticated: true, Role: session.RoleAdmin},
			want:  Decision{Allow: true},
		},
		{
			name:  "admin route, unauthenticated redirects to login first",
			meta:  Meta{RequiresAuth: true, RequiresAdmin: true},
			state: State{},
			want:  Decision{RedirectTo: LoginPath},
		},
		{
			name:  "public route always allowed",
			meta:  Meta{},
			state: State{},
			want:  Decision{Allow: true},
		},
		{
			name:  "public route allowed when authenticated too",
			meta:  Meta{},
			state: State{Authenticated: true, Role: session.RoleAdmin},
			want:  Decision{Allow: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.meta, tt.state))
		})
	}
}

func TestRoutes_EntryScreensArePublic(t *testing.T) {
	for _, name := range []string{"Login", "Setup", "Register"} {
		r := Find(name)
		require.NotNil(t, r, name)
		assert.False(t, r.Meta.RequiresAuth, name)
	}
}

func TestRoutes_AdminScreensRequireAuthToo(t *testing.T) {
	for _, r := range Routes {
		if r.Meta.RequiresAdmin {
			assert.True(t, r.Meta.RequiresAuth, "admin route %s must also require auth", r.Name)
		}
	}
}

func TestFind_UnknownRoute(t *testing.T) {
	assert.Nil(t, Find("Nope"))
}
