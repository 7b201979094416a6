package devserver

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"regexp"
	"slices"

	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/models"
)

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// compileRewrites orders the expressions by pattern so repeated runs apply
// them identically.
func compileRewrites(pathRewrite map[string]string) ([]rewrite, error) {
	patterns := make([]string, 0, len(pathRewrite))
	for p := range pathRewrite {
		patterns = append(patterns, p)
	}
	slices.Sort(patterns)

	rewrites := make([]rewrite, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("error compiling path rewrite %q: %w", p, err)
		}
		rewrites = append(rewrites, rewrite{pattern: re, replacement: pathRewrite[p]})
	}
	return rewrites, nil
}

func rewritePath(path string, rewrites []rewrite) string {
	for _, rw := range rewrites {
		path = rw.pattern.ReplaceAllString(path, rw.replacement)
	}
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return path
}

func newProxy(prefix string, rule models.ProxyRule, log *logger.Logger) (http.Handler, error) {
	target, err := url.Parse(rule.Target)
	if err != nil {
		return nil, fmt.Errorf("error parsing proxy target %q: %w", rule.Target, err)
	}

	rewrites, err := compileRewrites(rule.PathRewrite)
	if err != nil {
		return nil, err
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.Out.URL.Path = rewritePath(pr.In.URL.Path, rewrites)
			pr.Out.URL.RawPath = ""
			pr.SetURL(target)
			pr.SetXForwarded()
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			logger.FromRequest(r).Err(err).
				Str("func", "devserver.proxy").
				Str("prefix", prefix).
				Str("target", rule.Target).
				Msg("error forwarding request")
			w.WriteHeader(http.StatusBadGateway)
		},
	}

	log.Debug().
		Str("prefix", prefix).
		Str("target", rule.Target).
		Int("rewrites", len(rewrites)).
		Msg("proxy rule registered")

	return proxy, nil
}
