package utils

import (
	"errors"
	"net/url"
	"strings"
)

// NormalizeURL trims raw, adds an "http://" scheme when none is given and
// strips trailing slashes. It fails when the result has no host.
//
//	NormalizeURL("localhost:8080/osgiManagement/bundles/")
//	// "http://localhost:8080/osgiManagement/bundles"
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
