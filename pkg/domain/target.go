package domain

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"sort"
	"strings"
)

// ErrInvalidTarget is returned for targets that are not absolute http(s) URLs.
var ErrInvalidTarget = errors.New("invalid target URL")

// NormalizeTargetURL returns the canonical form of a project's target URL, so
// one site is stored once no matter how it was typed:
//   - scheme and host are lower-cased, and only http and https are accepted
//   - an empty path becomes "/", dot-segments and duplicate slashes are cleaned
//     and a trailing slash is removed (except for the root path)
//   - default ports (http:80, https:443) are dropped
//   - query parameters are sorted by key and by value
//   - user info and the fragment are removed
func NormalizeTargetURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidTarget)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: host is required", ErrInvalidTarget)
	}

	if u.Path == "" {
		u.Path = "/"
	}
	cleaned := path.Clean(u.Path)
	if !strings.HasPrefix(cleaned, "/") {
		cleaned = "/" + cleaned
	}
	u.Path = cleaned
	u.RawPath = ""

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	u.Host = host

	if u.RawQuery != "" {
		q := u.Query()
		for k := range q {
			sort.Strings(q[k])
		}
		// Encode sorts keys
		u.RawQuery = q.Encode()
	}

	u.User = nil
	u.Fragment = ""
	u.RawFragment = ""

	return u.String(), nil
}
