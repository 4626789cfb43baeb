package v1handler_test

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"scanguard/internal/api/handler/v1handler"
	mockhalt "scanguard/internal/halt/mock"
	"scanguard/internal/lifecycle"
	mocklifecycle "scanguard/internal/lifecycle/mock"
	"scanguard/pkg/domain"
	"scanguard/pkg/logger"
	"scanguard/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

const operatorEmail = "ops@example.com"

type fixture struct {
	halt      *mockhalt.MockCoordinator
	lifecycle *mocklifecycle.MockService

	priv   *rsa.PrivateKey
	userID domain.UserID
	token  string
	routes http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)
	uid := uuid.New()
	now := time.Now()

	f := &fixture{
		halt:      mockhalt.NewMockCoordinator(ctrl),
		lifecycle: mocklifecycle.NewMockService(ctrl),
		priv:      priv,
		userID:    domain.UserID(uid),
		token:     signJWTRS256(t, priv, uid.String(), operatorEmail, now, now.Add(time.Hour)),
	}
	h := v1handler.New(v1handler.Deps{Halt: f.halt, Lifecycle: f.lifecycle})
	f.routes = h.Routes(newSecHandlerForTest(t, pubPEM))

	return f
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+f.token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.routes.ServeHTTP(rec, req)

	return rec
}

func readEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func requireFailure(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := readEnvelope(t, rec)
	require.Equal(t, false, body["success"])
	if message != "" {
		require.Equal(t, message, body["error"])
	}
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "plain error is internal",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
		{
			name:    "internal kind hides its message",
			err:     serrors.With(serrors.ErrInternal, "secret detail"),
			status:  http.StatusInternalServerError,
			message: "internal error",
		},
		{
			name:    "storage error is surfaced",
			err:     serrors.With(serrors.ErrStorage, "could not update scan run: connection reset"),
			status:  http.StatusInternalServerError,
			message: "could not update scan run: connection reset",
		},
		{
			name:    "bad request",
			err:     serrors.With(serrors.ErrBadRequest, "scan_run_id is required"),
			status:  http.StatusBadRequest,
			message: "scan_run_id is required",
		},
		{
			name:    "unauthorized",
			err:     serrors.With(serrors.ErrUnauthorized, "missing bearer token"),
			status:  http.StatusUnauthorized,
			message: "missing bearer token",
		},
		{
			name:    "forbidden",
			err:     serrors.With(serrors.ErrForbidden, "not your project"),
			status:  http.StatusForbidden,
			message: "not your project",
		},
		{
			name:    "kind sentinel",
			err:     serrors.KindOnly(serrors.ErrNotFound),
			status:  http.StatusNotFound,
			message: serrors.ErrNotFound.Error(),
		},
		{
			name:    "conflict",
			err:     serrors.With(serrors.ErrConflict, "scan run is completed"),
			status:  http.StatusConflict,
			message: "scan run is completed",
		},
		{
			name:    "unavailable",
			err:     serrors.With(serrors.ErrUnavailable, "try again"),
			status:  http.StatusServiceUnavailable,
			message: "try again",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			v1handler.WriteError(context.Background(), rec, tt.err)
			requireFailure(t, rec, tt.status, tt.message)
		})
	}
}

func TestRoutes_RequireToken(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/scan-runs/halt", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	f.routes.ServeHTTP(rec, req)

	requireFailure(t, rec, http.StatusUnauthorized, "missing bearer token")
}

func TestRoutes_UnknownRoute(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/nope", "")
	requireFailure(t, rec, http.StatusNotFound, "")
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/projects/"+uuid.NewString()+"/scan-runs", "")
	requireFailure(t, rec, http.StatusMethodNotAllowed, "method not allowed")
}

func TestHaltScanRun(t *testing.T) {
	f := newFixture(t)
	runID := uuid.New()
	haltedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	f.halt.EXPECT().
		Halt(gomock.Any(), domain.Identity{UserID: f.userID, Email: operatorEmail}, domain.RunID(runID), "suspicious traffic").
		Return(&domain.AuditRecord{
			HaltedBy:                 operatorEmail,
			HaltedAt:                 haltedAt,
			Reason:                   "suspicious traffic",
			StageWhenHalted:          "Security Safe Checks",
			TasksCanceled:            3,
			TasksCompletedBeforeHalt: 2,
		}, nil)

	rec := f.do(t, http.MethodPost, "/scan-runs/halt",
		`{"scan_run_id":"`+runID.String()+`","reason":"suspicious traffic"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.JSONEq(t, `{
		"success": true,
		"audit": {
			"halted_by": "ops@example.com",
			"halted_at": "2026-03-01T10:00:00Z",
			"reason": "suspicious traffic",
			"stage_when_halted": "Security Safe Checks",
			"tasks_canceled": 3,
			"tasks_completed_before_halt": 2
		}
	}`, rec.Body.String())
}

func TestHaltScanRun_ReasonIsOptional(t *testing.T) {
	f := newFixture(t)
	runID := uuid.New()

	for _, body := range []string{
		`{"scan_run_id":"` + runID.String() + `"}`,
		`{"scan_run_id":"` + runID.String() + `","reason":null,"extra":[1,2]}`,
	} {
		f.halt.EXPECT().
			Halt(gomock.Any(), gomock.Any(), domain.RunID(runID), "").
			Return(&domain.AuditRecord{Reason: domain.DefaultHaltReason, StageWhenHalted: "Initializing"}, nil)

		rec := f.do(t, http.MethodPost, "/scan-runs/halt", body)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		audit, ok := readEnvelope(t, rec)["audit"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, domain.DefaultHaltReason, audit["reason"])
		require.Equal(t, "Initializing", audit["stage_when_halted"])
	}
}

func TestHaltScanRun_InvalidRequests(t *testing.T) {
	f := newFixture(t)
	f.halt.EXPECT().Halt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "empty body", body: "", status: http.StatusBadRequest},
		{name: "not json", body: "halt it", status: http.StatusBadRequest},
		{name: "not an object", body: `["x"]`, status: http.StatusBadRequest},
		{name: "missing id", body: `{"reason":"x"}`, status: http.StatusBadRequest},
		{name: "blank id", body: `{"scan_run_id":"  "}`, status: http.StatusBadRequest},
		{name: "id of wrong type", body: `{"scan_run_id":42}`, status: http.StatusBadRequest},
		{name: "malformed id", body: `{"scan_run_id":"run-1"}`, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPost, "/scan-runs/halt", tt.body)
			requireFailure(t, rec, tt.status, "")
		})
	}
}

func TestHaltScanRun_CoordinatorErrors(t *testing.T) {
	f := newFixture(t)
	runID := uuid.New()

	tests := []struct {
		err     error
		status  int
		message string
	}{
		{
			err:     serrors.With(serrors.ErrNotFound, "scan run %s not found", runID),
			status:  http.StatusNotFound,
			message: "scan run " + runID.String() + " not found",
		},
		{
			err:     serrors.With(serrors.ErrForbidden, "scan run belongs to another user"),
			status:  http.StatusForbidden,
			message: "scan run belongs to another user",
		},
		{
			err:     serrors.With(serrors.ErrConflict, "scan run is already canceled"),
			status:  http.StatusConflict,
			message: "scan run is already canceled",
		},
		{
			err:     serrors.With(serrors.ErrStorage, "could not commit transaction"),
			status:  http.StatusInternalServerError,
			message: "could not commit transaction",
		},
	}

	for _, tt := range tests {
		f.halt.EXPECT().Halt(gomock.Any(), gomock.Any(), domain.RunID(runID), "").Return(nil, tt.err)

		rec := f.do(t, http.MethodPost, "/scan-runs/halt", `{"scan_run_id":"`+runID.String()+`"}`)
		requireFailure(t, rec, tt.status, tt.message)
	}
}

func sampleRun(runID domain.RunID, status domain.RunStatus) domain.ScanRun {
	return domain.ScanRun{
		ID:        runID,
		ProjectID: domain.ProjectID(uuid.New()),
		Mode:      domain.RunModeURLOnly,
		Status:    status,
		CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func sampleTasks(runID domain.RunID, statuses ...domain.TaskStatus) []domain.ScanTask {
	types := []string{"fingerprint", "tls_check", "security_headers", "perf_baseline", "report_compile"}
	tasks := make([]domain.ScanTask, len(statuses))
	for i, status := range statuses {
		tasks[i] = domain.ScanTask{
			ID:         domain.TaskID(uuid.New()),
			RunID:      runID,
			Position:   i,
			Type:       types[i%len(types)],
			Status:     status,
			MaxRetries: 2,
		}
	}

	return tasks
}

func TestCreateScanRun(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()
	runID := domain.RunID(uuid.New())
	run := sampleRun(runID, domain.RunStatusPending)
	tasks := sampleTasks(runID, domain.TaskStatusPending, domain.TaskStatusPending)

	f.lifecycle.EXPECT().
		CreateRun(gomock.Any(), f.userID, domain.ProjectID(projectID), domain.RunModeURLOnly).
		Return(&run, tasks, nil)

	rec := f.do(t, http.MethodPost, "/projects/"+projectID.String()+"/scan-runs", `{"mode":"url_only"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := readEnvelope(t, rec)
	require.Equal(t, true, body["success"])

	gotRun, ok := body["run"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, runID.String(), gotRun["id"])
	require.Equal(t, "pending", gotRun["status"])
	require.Nil(t, gotRun["started_at"])
	require.Nil(t, gotRun["security_score"])

	gotTasks, ok := body["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, gotTasks, 2)
	second, ok := gotTasks[1].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "tls_check", second["task_type"])
	require.Equal(t, "Security Safe Checks", second["stage"])
	require.InDelta(t, 1, second["position"], 0)
}

func TestCreateScanRun_Errors(t *testing.T) {
	f := newFixture(t)
	projectID := uuid.New()

	rec := f.do(t, http.MethodPost, "/projects/not-a-uuid/scan-runs", `{"mode":"url_only"}`)
	requireFailure(t, rec, http.StatusNotFound, "project not-a-uuid not found")

	rec = f.do(t, http.MethodPost, "/projects/"+projectID.String()+"/scan-runs", `{"mode":1}`)
	requireFailure(t, rec, http.StatusBadRequest, "")

	f.lifecycle.EXPECT().
		CreateRun(gomock.Any(), f.userID, domain.ProjectID(projectID), domain.RunMode("turbo")).
		Return(nil, nil, serrors.With(serrors.ErrBadRequest, "unknown scan mode %q", "turbo"))

	rec = f.do(t, http.MethodPost, "/projects/"+projectID.String()+"/scan-runs", `{"mode":"turbo"}`)
	requireFailure(t, rec, http.StatusBadRequest, `unknown scan mode "turbo"`)
}

func TestGetScanRun(t *testing.T) {
	f := newFixture(t)
	runID := domain.RunID(uuid.New())
	tasks := sampleTasks(runID,
		domain.TaskStatusCompleted, domain.TaskStatusCompleted, domain.TaskStatusRunning,
		domain.TaskStatusPending, domain.TaskStatusPending)

	f.lifecycle.EXPECT().Overview(gomock.Any(), f.userID, runID).Return(&lifecycle.Overview{
		Run:      sampleRun(runID, domain.RunStatusRunning),
		Tasks:    tasks,
		Progress: domain.ComputeProgress(tasks),
	}, nil)

	rec := f.do(t, http.MethodGet, "/scan-runs/"+runID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := readEnvelope(t, rec)
	require.NotContains(t, body, "audit")

	progress, ok := body["progress"].(map[string]any)
	require.True(t, ok)
	require.InDelta(t, 5, progress["total"], 0)
	require.InDelta(t, 2, progress["completed"], 0)
	require.InDelta(t, 1, progress["running"], 0)
	require.InDelta(t, 40, progress["percent_complete"], 0.001)
	require.Equal(t, "Security Safe Checks", progress["current_stage"])

	gotTasks, ok := body["tasks"].([]any)
	require.True(t, ok)
	require.Len(t, gotTasks, 5)
}

func TestGetScanRun_Halted(t *testing.T) {
	f := newFixture(t)
	runID := domain.RunID(uuid.New())
	tasks := sampleTasks(runID, domain.TaskStatusCompleted, domain.TaskStatusCanceled)
	run := sampleRun(runID, domain.RunStatusCanceled)
	run.ErrorMessage = `{"halted_by":"ops@example.com"}`
	run.ErrorSummary = "Halted by ops@example.com during Security Safe Checks"

	f.lifecycle.EXPECT().Overview(gomock.Any(), f.userID, runID).Return(&lifecycle.Overview{
		Run:      run,
		Tasks:    tasks,
		Progress: domain.ComputeProgress(tasks),
		Audit: &domain.AuditRecord{
			HaltedBy:        operatorEmail,
			Reason:          "stop",
			StageWhenHalted: "Security Safe Checks",
			TasksCanceled:   1,
		},
	}, nil)

	rec := f.do(t, http.MethodGet, "/scan-runs/"+runID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := readEnvelope(t, rec)
	audit, ok := body["audit"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "stop", audit["reason"])

	gotRun, ok := body["run"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "canceled", gotRun["status"])
	require.Equal(t, run.ErrorSummary, gotRun["error_summary"])
	require.NotContains(t, gotRun, "error_message")

	progress, ok := body["progress"].(map[string]any)
	require.True(t, ok)
	require.Nil(t, progress["current_stage"])
	require.InDelta(t, 1, progress["canceled"], 0)
}

func TestGetScanRun_Errors(t *testing.T) {
	f := newFixture(t)
	runID := domain.RunID(uuid.New())

	rec := f.do(t, http.MethodGet, "/scan-runs/nope", "")
	requireFailure(t, rec, http.StatusNotFound, "scan run nope not found")

	f.lifecycle.EXPECT().Overview(gomock.Any(), f.userID, runID).
		Return(nil, serrors.With(serrors.ErrForbidden, "scan run belongs to another user"))

	rec = f.do(t, http.MethodGet, "/scan-runs/"+runID.String(), "")
	requireFailure(t, rec, http.StatusForbidden, "scan run belongs to another user")
}

func TestPauseAndResumeScanRun(t *testing.T) {
	f := newFixture(t)
	runID := domain.RunID(uuid.New())
	paused := sampleRun(runID, domain.RunStatusPaused)

	f.lifecycle.EXPECT().Pause(gomock.Any(), f.userID, runID).Return(&paused, nil)

	rec := f.do(t, http.MethodPost, "/scan-runs/"+runID.String()+"/pause", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	gotRun, ok := readEnvelope(t, rec)["run"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "paused", gotRun["status"])

	f.lifecycle.EXPECT().Resume(gomock.Any(), f.userID, runID).
		Return(nil, serrors.With(serrors.ErrConflict, "scan run %s is not paused, cannot move it to running", runID))

	rec = f.do(t, http.MethodPost, "/scan-runs/"+runID.String()+"/resume", "")
	requireFailure(t, rec, http.StatusConflict,
		"scan run "+runID.String()+" is not paused, cannot move it to running")
}
