package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"insurance-agent/internal/classifier"
	"insurance-agent/internal/usecase"
)

type stubEngine struct {
	result      usecase.DispatchResult
	dispatchErr error
	summary     usecase.SessionSummary
	summaryErr  error
	deleteErr   error
	policyTypes []string

	lastInput usecase.DispatchInput
}

func (s *stubEngine) Dispatch(_ context.Context, in usecase.DispatchInput) (usecase.DispatchResult, error) {
	s.lastInput = in
	return s.result, s.dispatchErr
}

func (s *stubEngine) SessionInfo(string) (usecase.SessionSummary, error) {
	return s.summary, s.summaryErr
}

func (s *stubEngine) DeleteSession(string) error { return s.deleteErr }

func (s *stubEngine) PolicyTypes() []string { return s.policyTypes }

func newTestApp(engine Engine) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	app := fiber.New()
	registerRoutes(app, logger, engine)
	return app
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}

func TestChat_HappyPath(t *testing.T) {
	engine := &stubEngine{result: usecase.DispatchResult{
		ResponseText:           "term life explained",
		SessionID:              "sess-1",
		Topic:                  classifier.TopicPolicyType,
		MessageCount:           3,
		SessionDurationSeconds: 12.5,
	}}
	app := newTestApp(engine)

	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(
		`{"user_id":"u1","message":"What is term life insurance?","session_id":"sess-1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, usecase.DispatchInput{
		UserID:    "u1",
		Message:   "What is term life insurance?",
		SessionID: "sess-1",
	}, engine.lastInput)

	out := decodeBody[chatResponse](t, resp.Body)
	require.Equal(t, "term life explained", out.Response)
	require.Equal(t, "sess-1", out.SessionID)
	require.Equal(t, "policy_type", out.QueryType)
	require.Equal(t, "policy_type", out.Context["query_type"])
	require.Equal(t, float64(3), out.Context["message_count"])
}

func TestChat_MalformedBody(t *testing.T) {
	app := newTestApp(&stubEngine{})

	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestChat_MissingUserID(t *testing.T) {
	app := newTestApp(&stubEngine{})

	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(`{"message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestChat_InvalidInputMapsTo422(t *testing.T) {
	engine := &stubEngine{dispatchErr: &usecase.Error{Code: usecase.ErrorInvalidInput, Reason: "empty_message"}}
	app := newTestApp(engine)

	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(`{"user_id":"u1","message":"   "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestChat_InternalErrorMapsTo500(t *testing.T) {
	engine := &stubEngine{dispatchErr: &usecase.Error{Code: usecase.ErrorInternal, Reason: "store_corruption"}}
	app := newTestApp(engine)

	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(`{"user_id":"u1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestChat_NilEngineMapsTo503(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest("POST", "/chat", bytes.NewBufferString(`{"user_id":"u1","message":"hi"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := newTestApp(&stubEngine{})

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody[map[string]any](t, resp.Body)
	require.Equal(t, "healthy", out["status"])
	require.Equal(t, serviceName, out["service"])
	require.Equal(t, serviceVersion, out["version"])
}

func TestHealth_NilEngine(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetSession(t *testing.T) {
	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	engine := &stubEngine{summary: usecase.SessionSummary{
		SessionID:    "sess-1",
		UserID:       "u1",
		CreatedAt:    created,
		LastActiveAt: created.Add(time.Minute),
		MessageCount: 4,
	}}
	app := newTestApp(engine)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/sess-1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody[sessionSummaryResponse](t, resp.Body)
	require.Equal(t, "sess-1", out.SessionID)
	require.Equal(t, 4, out.MessageCount)
}

func TestGetSession_NotFound(t *testing.T) {
	engine := &stubEngine{summaryErr: &usecase.Error{Code: usecase.ErrorNotFound, Reason: "unknown_session"}}
	app := newTestApp(engine)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/missing", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteSession(t *testing.T) {
	app := newTestApp(&stubEngine{})

	resp, err := app.Test(httptest.NewRequest("DELETE", "/sessions/sess-1", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody[map[string]any](t, resp.Body)
	require.Equal(t, "deleted", out["status"])
	require.Equal(t, "sess-1", out["session_id"])
}

func TestDeleteSession_NotFound(t *testing.T) {
	engine := &stubEngine{deleteErr: &usecase.Error{Code: usecase.ErrorNotFound, Reason: "unknown_session"}}
	app := newTestApp(engine)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/sessions/missing", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListPolicyTypes(t *testing.T) {
	engine := &stubEngine{policyTypes: []string{"term_life", "whole_life"}}
	app := newTestApp(engine)

	resp, err := app.Test(httptest.NewRequest("GET", "/knowledge/types", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeBody[map[string][]string](t, resp.Body)
	require.Equal(t, []string{"term_life", "whole_life"}, out["policy_types"])
}
