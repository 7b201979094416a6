package devserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/validators"
	"github.com/MKhiriev/blended-mgmt/models"
)

// backend records the last forwarded request.
type backend struct {
	*httptest.Server

	mu   sync.Mutex
	last *http.Request
}

func (b *backend) lastRequest() *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.last = r.Clone(context.Background())
		b.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"bundleId":0,"symbolicName":"SystemBundle"}]`))
	}))
	t.Cleanup(b.Close)
	return b
}

func newDevServer(t *testing.T, cfg models.BuildConfig) *httptest.Server {
	t.Helper()
	h, err := NewHandler(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDevServer_ProxyStripsPrefix(t *testing.T) {
	api := newBackend(t)
	srv := newDevServer(t, models.BuildConfig{
		DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
			"/management": {Target: api.URL, PathRewrite: map[string]string{"^/management": ""}},
		}},
	})

	status, body := get(t, srv.URL+"/management/osgiManagement/bundles?verbose=1")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"bundleId":0,"symbolicName":"SystemBundle"}]`, body)
	assert.Equal(t, "/osgiManagement/bundles", api.lastRequest().URL.Path)
	assert.Equal(t, "verbose=1", api.lastRequest().URL.RawQuery)
	assert.NotEmpty(t, api.lastRequest().Header.Get("X-Forwarded-Host"))
}

func TestDevServer_ProxyWithoutRewriteKeepsPath(t *testing.T) {
	api := newBackend(t)
	srv := newDevServer(t, models.BuildConfig{
		DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
			"/osgiManagement": {Target: api.URL},
		}},
	})

	status, _ := get(t, srv.URL+"/osgiManagement/bundles/3")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "/osgiManagement/bundles/3", api.lastRequest().URL.Path)
}

func TestDevServer_ProxyTargetWithBasePath(t *testing.T) {
	api := newBackend(t)
	srv := newDevServer(t, models.BuildConfig{
		DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
			"/management": {Target: api.URL + "/base", PathRewrite: map[string]string{"^/management": ""}},
		}},
	})

	_, _ = get(t, srv.URL+"/management")
	assert.Equal(t, "/base/", api.lastRequest().URL.Path)
}

func TestDevServer_UnreachableTarget(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	target := dead.URL
	dead.Close()

	srv := newDevServer(t, models.BuildConfig{
		DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
			"/management": {Target: target},
		}},
	})

	status, _ := get(t, srv.URL+"/management/x")
	assert.Equal(t, http.StatusBadGateway, status)
}

func TestDevServer_StaticFilesAndProxy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index-bundle.js"), []byte("console.log('index')"), 0o644))

	api := newBackend(t)
	srv := newDevServer(t, models.BuildConfig{
		Output: models.Output{Path: dir, PublicPath: "/assets/"},
		DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
			"/management": {Target: api.URL, PathRewrite: map[string]string{"^/management": ""}},
		}},
	})

	status, body := get(t, srv.URL+"/assets/index-bundle.js")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "console.log('index')", body)

	status, _ = get(t, srv.URL+"/assets/missing.js")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, srv.URL+"/management/api/version")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "/api/version", api.lastRequest().URL.Path)

	status, _ = get(t, srv.URL+"/elsewhere")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDevServer_RootPublicPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("app"), 0o644))

	srv := newDevServer(t, models.BuildConfig{Output: models.Output{Path: dir}})

	status, body := get(t, srv.URL+"/app.js")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "app", body)
}

func TestNewHandler_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.BuildConfig
		want error
	}{
		{
			name: "relative target",
			cfg: models.BuildConfig{DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
				"/management": {Target: "localhost:8090"},
			}}},
			want: validators.ErrInvalidProxyTarget,
		},
		{
			name: "bad rewrite",
			cfg: models.BuildConfig{DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
				"/management": {Target: "http://localhost:8090", PathRewrite: map[string]string{"[": ""}},
			}}},
			want: validators.ErrInvalidPathRewrite,
		},
		{
			name: "prefix equals public path",
			cfg: models.BuildConfig{
				Output: models.Output{Path: "dist", PublicPath: "/assets/"},
				DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
					"/assets": {Target: "http://localhost:8090"},
				}},
			},
			want: ErrRouteConflict,
		},
		{
			name: "duplicate prefixes",
			cfg: models.BuildConfig{DevServer: models.DevServer{Proxy: map[string]models.ProxyRule{
				"/api":  {Target: "http://localhost:1"},
				"/api/": {Target: "http://localhost:2"},
			}}},
			want: ErrDuplicatePrefix,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHandler(context.Background(), tt.cfg, logger.Nop())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddress(t *testing.T) {
	assert.Equal(t, "localhost:8090", Address(models.BuildConfig{}))
	assert.Equal(t, "localhost:9000", Address(models.BuildConfig{DevServer: models.DevServer{Port: 9000}}))
}
