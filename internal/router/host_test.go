package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rewrittenPath runs a request through the middleware and returns the
// path the router would see.
func rewrittenPath(t *testing.T, rootDomain, host, path string) string {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Host = host
	c := e.NewContext(req, httptest.NewRecorder())

	h := SubdomainRewrite(rootDomain)(func(c echo.Context) error {
		return nil
	})
	require.NoError(t, h(c))

	return c.Request().URL.Path
}

func TestSubdomainRewrite(t *testing.T) {
	tests := []struct {
		name       string
		rootDomain string
		host       string
		path       string
		wantPath   string
	}{
		{
			name:       "tenant subdomain rewrites to profile",
			rootDomain: "example.com",
			host:       "alice.example.com",
			path:       "/",
			wantPath:   "/profile/alice",
		},
		{
			name:       "reserved subdomain passes through",
			rootDomain: "example.com",
			host:       "www.example.com",
			path:       "/",
			wantPath:   "/",
		},
		{
			name:       "reserved check is case-insensitive",
			rootDomain: "example.com",
			host:       "API.example.com",
			path:       "/",
			wantPath:   "/",
		},
		{
			name:       "bare root domain passes through",
			rootDomain: "example.com",
			host:       "example.com",
			path:       "/",
			wantPath:   "/",
		},
		{
			name:       "unrelated host passes through",
			rootDomain: "example.com",
			host:       "other.org",
			path:       "/",
			wantPath:   "/",
		},
		{
			name:       "bare localhost with port passes through",
			rootDomain: "localhost",
			host:       "localhost:3000",
			path:       "/",
			wantPath:   "/",
		},
		{
			name:       "localhost subdomain with port rewrites",
			rootDomain: "localhost",
			host:       "bob.localhost:3000",
			path:       "/",
			wantPath:   "/profile/bob",
		},
		{
			name:       "localhost subdomain without port rewrites",
			rootDomain: "localhost",
			host:       "bob.localhost",
			path:       "/",
			wantPath:   "/profile/bob",
		},
		{
			name:       "only the first label is taken",
			rootDomain: "example.com",
			host:       "a.b.alice.example.com",
			path:       "/",
			wantPath:   "/profile/a",
		},
		{
			name:       "multi-label root domain",
			rootDomain: "example.co.uk",
			host:       "alice.example.co.uk",
			path:       "/",
			wantPath:   "/profile/alice",
		},
		{
			name:       "api paths are never rewritten",
			rootDomain: "example.com",
			host:       "alice.example.com",
			path:       "/api/auth/me",
			wantPath:   "/api/auth/me",
		},
		{
			name:       "health check is never rewritten",
			rootDomain: "example.com",
			host:       "alice.example.com",
			path:       "/healthz",
			wantPath:   "/healthz",
		},
		{
			name:       "rewrite replaces the original path",
			rootDomain: "example.com",
			host:       "alice.example.com",
			path:       "/anything/else",
			wantPath:   "/profile/alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewrittenPath(t, tt.rootDomain, tt.host, tt.path)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}

func TestExtractSubdomain(t *testing.T) {
	assert.Equal(t, "alice", extractSubdomain("alice.example.com", "example.com"))
	assert.Equal(t, "", extractSubdomain("example.com", "example.com"))
	assert.Equal(t, "", extractSubdomain("localhost:3000", "localhost"))
	assert.Equal(t, "bob", extractSubdomain("bob.localhost:3000", "localhost"))
	assert.Equal(t, "", extractSubdomain("other.org", "example.com"))
}
