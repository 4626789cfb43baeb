package controller

import (
	"net"
	"net/http"
	"net/url"
	"slices"
)

// CORSOptions configure WithCORS.
type CORSOptions struct {
	// AllowedOrigins are echoed back verbatim when they make a request.
	AllowedOrigins []string
	// DefaultOrigin is sent to every other origin, which makes browsers reject
	// the response for them.
	DefaultOrigin string
}

// WithCORS returns a middleware that sets CORS headers for an allow-list of
// origins and short-circuits OPTIONS preflight requests with 204 No Content.
// Localhost origins are allowed on any port.
func WithCORS(options CORSOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := options.DefaultOrigin
			if origin != "" && (slices.Contains(options.AllowedOrigins, origin) || isLocalOrigin(origin)) {
				allowed = origin
			}

			w.Header().Set("Access-Control-Allow-Origin", allowed)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isLocalOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	host := u.Hostname()
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)

	return ip != nil && ip.IsLoopback()
}
