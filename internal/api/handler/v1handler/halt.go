package v1handler

import (
	"net/http"
	"scanguard/pkg/domain"
	"scanguard/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// HaltScanRun implements POST /v1/scan-runs/halt.
func (h *Handler) HaltScanRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req HaltRequest
	if err := decodeBody(w, r, req.Decode); err != nil {
		WriteError(ctx, w, err)

		return
	}
	if strings.TrimSpace(req.ScanRunID) == "" {
		WriteError(ctx, w, serrors.With(serrors.ErrBadRequest, "scan_run_id is required"))

		return
	}

	runID, err := uuid.Parse(strings.TrimSpace(req.ScanRunID))
	if err != nil {
		// a malformed ID cannot name any run
		WriteError(ctx, w, serrors.With(serrors.ErrNotFound, "scan run %s not found", req.ScanRunID))

		return
	}

	audit, err := h.deps.Halt.Halt(ctx, GetIdentityFromContext(ctx), domain.RunID(runID), req.Reason)
	if err != nil {
		WriteError(ctx, w, err)

		return
	}

	writeSuccess(ctx, w, http.StatusOK, func(e *jx.Encoder) {
		e.FieldStart("audit")
		EncodeAudit(e, *audit)
	})
}
