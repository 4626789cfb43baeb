package v1handler

import (
	"context"
	"net/http"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

func pathUUID(r *http.Request, param, what string) (uuid.UUID, error) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrNotFound, "%s %s not found", what, raw)
	}

	return id, nil
}

// CreateScanRun implements POST /v1/projects/{projectID}/scan-runs.
func (h *Handler) CreateScanRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := pathUUID(r, "projectID", "project")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	var req CreateRunRequest
	if err := decodeBody(w, r, req.Decode); err != nil {
		WriteError(ctx, w, err)

		return
	}

	run, tasks, err := h.deps.Lifecycle.CreateRun(ctx,
		GetIdentityFromContext(ctx).UserID, domain.ProjectID(projectID), req.Mode)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeSuccess(ctx, w, http.StatusCreated, func(e *jx.Encoder) {
		e.FieldStart("run")
		EncodeRun(e, *run)
		e.FieldStart("tasks")
		encodeTasks(e, tasks)
	})
}

// GetScanRun implements GET /v1/scan-runs/{runID}.
func (h *Handler) GetScanRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	runID, err := pathUUID(r, "runID", "scan run")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	overview, err := h.deps.Lifecycle.Overview(ctx, GetIdentityFromContext(ctx).UserID, domain.RunID(runID))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeSuccess(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		EncodeOverview(e, *overview)
	})
}

// PauseScanRun implements POST /v1/scan-runs/{runID}/pause.
func (h *Handler) PauseScanRun(w http.ResponseWriter, r *http.Request) {
	h.operatorTransition(w, r, h.deps.Lifecycle.Pause)
}

// ResumeScanRun implements POST /v1/scan-runs/{runID}/resume.
func (h *Handler) ResumeScanRun(w http.ResponseWriter, r *http.Request) {
	h.operatorTransition(w, r, h.deps.Lifecycle.Resume)
}

func (h *Handler) operatorTransition(
	w http.ResponseWriter,
	r *http.Request,
	transition func(ctx context.Context, userID domain.UserID, runID domain.RunID) (*domain.ScanRun, error),
) {
	ctx := r.Context()

	runID, err := pathUUID(r, "runID", "scan run")
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	run, err := transition(ctx, GetIdentityFromContext(ctx).UserID, domain.RunID(runID))
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeSuccess(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.FieldStart("run")
		EncodeRun(e, *run)
	})
}
