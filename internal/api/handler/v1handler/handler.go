// Package v1handler implements the v1 HTTP API: request decoding, calls into
// the halt coordinator and the run lifecycle, and the JSON envelopes
// {"success": true, ...} and {"success": false, "error": "..."}.
package v1handler

import (
	"context"
	"io"
	"net/http"
	"scanguard/internal/halt"
	"scanguard/internal/lifecycle"
	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Deps are the services the v1 API is backed by.
type Deps struct {
	Halt      halt.Coordinator
	Lifecycle lifecycle.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes returns the v1 routes, every one of them behind sec.
func (h *Handler) Routes(sec *SecHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(sec.Middleware)

	r.Post("/scan-runs/halt", h.HaltScanRun)
	r.Post("/projects/{projectID}/scan-runs", h.CreateScanRun)
	r.Get("/scan-runs/{runID}", h.GetScanRun)
	r.Post("/scan-runs/{runID}/pause", h.PauseScanRun)
	r.Post("/scan-runs/{runID}/resume", h.ResumeScanRun)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(r.Context(), w, serrors.With(serrors.ErrNotFound, "no route for %s %s", r.Method, r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, func(e *jx.Encoder) {
			e.FieldStart("success")
			e.Bool(false)
			e.FieldStart("error")
			e.Str("method not allowed")
		})
	})

	return r
}

// StatusCode maps err's kind to the HTTP status of the error envelope.
func StatusCode(err error) int {
	switch serrors.KindOf(err) {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes the failure envelope for err. Storage errors keep their
// message; other unexpected errors are reported as "internal error" and only
// logged in full.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := StatusCode(err)

	message := err.Error()
	switch kind := serrors.KindOf(err); {
	case kind == serrors.ErrStorage:
		logger.Error(ctx, "storage failure", zap.Error(err))
	case status >= http.StatusInternalServerError:
		logger.Error(ctx, err.Error())
		message = "internal error"
	default:
		logger.Debug(ctx, "request rejected", zap.Int("status", status), zap.Error(err))
	}

	writeJSON(ctx, w, status, func(e *jx.Encoder) {
		e.FieldStart("success")
		e.Bool(false)
		e.FieldStart("error")
		e.Str(message)
	})
}

// writeSuccess writes {"success": true, <fields>} with the given status.
func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, fields func(e *jx.Encoder)) {
	writeJSON(ctx, w, status, func(e *jx.Encoder) {
		e.FieldStart("success")
		e.Bool(true)
		fields(e)
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, fields func(e *jx.Encoder)) {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	e.ObjStart()
	fields(e)
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(e.Bytes()); err != nil {
		logger.Debug(ctx, "could not write response", zap.Error(err))
	}
}

// decodeBody decodes a JSON object body with dec. Malformed bodies are BAD_REQUEST.
func decodeBody(w http.ResponseWriter, r *http.Request, dec func(d *jx.Decoder) error) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "could not read request body")
	}
	if len(body) == 0 {
		return serrors.With(serrors.ErrBadRequest, "request body is required")
	}

	if err := dec(jx.DecodeBytes(body)); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, errors.Wrap(err, "decode request"), "invalid request body")
	}

	return nil
}
