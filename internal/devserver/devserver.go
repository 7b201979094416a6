package devserver

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/validators"
	"github.com/MKhiriev/blended-mgmt/models"
)

// DefaultPort is used when devServer.port is not set.
const DefaultPort = 8090

// Address returns the listen address for cfg.
func Address(cfg models.BuildConfig) string {
	port := cfg.DevServer.Port
	if port == 0 {
		port = DefaultPort
	}
	return fmt.Sprintf("localhost:%d", port)
}

// NewHandler builds the dev server router for cfg. Proxy rules are mounted
// first; chi resolves the longest matching prefix, so a rule always wins
// over the static file tree it shadows.
func NewHandler(ctx context.Context, cfg models.BuildConfig, log *logger.Logger) (http.Handler, error) {
	err := validators.NewBuildConfigValidator().
		Validate(ctx, cfg, validators.FieldOutput, validators.FieldDevServer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withAccessLog(log))

	publicPath := mountPoint(cfg.Output.PublicPath)
	mounted := make(map[string]string, len(cfg.DevServer.Proxy))
	for _, prefix := range sortedPrefixes(cfg.DevServer.Proxy) {
		mount := mountPoint(prefix)
		if cfg.Output.Path != "" && mount == publicPath {
			return nil, fmt.Errorf("%w: %s", ErrRouteConflict, prefix)
		}
		if other, ok := mounted[mount]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicatePrefix, prefix, other)
		}
		mounted[mount] = prefix

		proxy, err := newProxy(prefix, cfg.DevServer.Proxy[prefix], log)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		router.Mount(mount, proxy)
	}

	if cfg.Output.Path != "" {
		files := http.StripPrefix(strings.TrimSuffix(publicPath, "/"), http.FileServer(http.Dir(cfg.Output.Path)))
		router.Mount(publicPath, files)
		log.Debug().
			Str("dir", cfg.Output.Path).
			Str("public_path", publicPath).
			Msg("serving static files")
	}

	return router, nil
}

// mountPoint normalises a path prefix to the form chi.Mount expects.
func mountPoint(prefix string) string {
	if prefix == "" {
		return "/"
	}
	if prefix != "/" {
		prefix = strings.TrimSuffix(prefix, "/")
	}
	return prefix
}

// sortedPrefixes orders prefixes longest first, then lexically.
func sortedPrefixes(proxy map[string]models.ProxyRule) []string {
	prefixes := make([]string, 0, len(proxy))
	for p := range proxy {
		prefixes = append(prefixes, p)
	}
	slices.SortFunc(prefixes, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return prefixes
}

// withAccessLog attaches log to the request context, so proxy errors can be
// reported with logger.FromRequest, and logs every served request.
func withAccessLog(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(log.WithContext(r.Context())))

			log.Info().
				Str("uri", r.RequestURI).
				Str("method", r.Method).
				Int("status", ww.Status()).
				Int("size", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Send()
		})
	}
}
