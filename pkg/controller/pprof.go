package controller

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// Pprof returns a router exposing the net/http/pprof handlers. It must be
// mounted at /debug/pprof, the prefix the pprof index links against.
func Pprof() http.Handler {
	r := chi.NewRouter()

	r.Get("/", pprof.Index)
	r.Get("/cmdline", pprof.Cmdline)
	r.Get("/profile", pprof.Profile)
	r.HandleFunc("/symbol", pprof.Symbol)
	r.Get("/trace", pprof.Trace)
	// heap, goroutine, allocs, block, mutex, threadcreate
	r.Get("/{profile}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(chi.URLParam(r, "profile")).ServeHTTP(w, r)
	})

	return r
}
