// Package usecase contains the dispatch engine: the orchestration of session
// resolution, query classification, prompt assembly, model invocation and
// history recording for each incoming message.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"insurance-agent/internal/classifier"
	"insurance-agent/internal/domain"
	"insurance-agent/internal/knowledge"
	"insurance-agent/internal/session"
)

// fallbackResponse is returned to the user when the model boundary fails.
// Model failures never surface as protocol errors.
const fallbackResponse = "I apologize, but I'm having trouble processing your request. Please try again or rephrase your question."

const defaultInvokeTimeout = 30 * time.Second

// Completer is the external model boundary: given an assembled prompt it
// returns the assistant's reply text.
type Completer interface {
	Complete(ctx context.Context, messages []domain.ChatMessage) (string, error)
}

// Engine drives the per-message pipeline: validate, sweep, resolve session,
// classify, assemble context, invoke the model, record the turn.
type Engine struct {
	llm            Completer
	sessions       *session.Store
	knowledge      *knowledge.Store
	logger         *logrus.Logger
	sessionTimeout time.Duration
	invokeTimeout  time.Duration
}

type DispatchInput struct {
	UserID    string
	Message   string
	SessionID string
}

type DispatchResult struct {
	ResponseText           string
	SessionID              string
	Topic                  classifier.Topic
	MessageCount           int
	SessionDurationSeconds float64
}

// SessionSummary is the read-only view of a session exposed to boundaries.
type SessionSummary struct {
	SessionID      string
	UserID         string
	CreatedAt      time.Time
	LastActiveAt   time.Time
	MessageCount   int
	ContextSummary string
}

func NewEngine(llm Completer, sessions *session.Store, store *knowledge.Store, logger *logrus.Logger, sessionTimeout time.Duration) (*Engine, error) {
	if llm == nil {
		return nil, errors.New("usecase: llm client must not be nil")
	}
	if sessions == nil {
		return nil, errors.New("usecase: session store must not be nil")
	}
	if store == nil {
		return nil, errors.New("usecase: knowledge store must not be nil")
	}
	if logger == nil {
		logger = logrus.New()
	}
	if sessionTimeout <= 0 {
		sessionTimeout = 30 * time.Minute
	}
	return &Engine{
		llm:            llm,
		sessions:       sessions,
		knowledge:      store,
		logger:         logger,
		sessionTimeout: sessionTimeout,
		invokeTimeout:  defaultInvokeTimeout,
	}, nil
}

// Dispatch processes one user message and returns a structured result.
//
// An empty or whitespace-only message fails with INVALID_INPUT before any
// session state is touched. A model invocation failure is absorbed: the turn
// is recorded with a canned apology as the assistant side and a normal result
// is returned.
func (e *Engine) Dispatch(ctx context.Context, in DispatchInput) (DispatchResult, error) {
	if strings.TrimSpace(in.Message) == "" {
		return DispatchResult{}, newError(ErrorInvalidInput, "empty_message", nil)
	}

	e.sessions.Sweep(e.sessionTimeout)

	sess := e.sessions.GetOrCreate(in.SessionID, in.UserID)
	sess.Lock()
	defer sess.Unlock()

	sess.MessageCount++
	topic := classifier.Classify(in.Message)

	messages := buildPromptMessages(e.knowledge, topic, sess.History, in.Message)

	invokeCtx, cancel := context.WithTimeout(ctx, e.invokeTimeout)
	defer cancel()

	responseText, err := e.llm.Complete(invokeCtx, messages)
	if err != nil {
		e.logger.WithError(err).WithFields(logrus.Fields{
			"session_id": sess.ID,
			"user_id":    in.UserID,
		}).Error("model invocation failed, returning fallback response")
		responseText = fallbackResponse
	}

	sess.AppendExchange(in.Message, responseText, e.sessions.MaxHistory())

	e.logger.WithFields(logrus.Fields{
		"user_id":       in.UserID,
		"session_id":    sess.ID,
		"query_type":    topic,
		"message_count": sess.MessageCount,
	}).Info("message processed")

	return DispatchResult{
		ResponseText:           responseText,
		SessionID:              sess.ID,
		Topic:                  topic,
		MessageCount:           sess.MessageCount,
		SessionDurationSeconds: time.Since(sess.CreatedAt).Seconds(),
	}, nil
}

// SessionInfo returns a summary of the session under id.
func (e *Engine) SessionInfo(id string) (SessionSummary, error) {
	sess, err := e.sessions.Get(id)
	if err != nil {
		return SessionSummary{}, newError(ErrorNotFound, "unknown_session", err)
	}

	sess.Lock()
	defer sess.Unlock()
	return SessionSummary{
		SessionID:      sess.ID,
		UserID:         sess.UserID,
		CreatedAt:      sess.CreatedAt,
		LastActiveAt:   sess.LastActiveAt,
		MessageCount:   sess.MessageCount,
		ContextSummary: summarizeContext(sess.Context),
	}, nil
}

// DeleteSession removes the session under id.
func (e *Engine) DeleteSession(id string) error {
	if !e.sessions.Delete(id) {
		return newError(ErrorNotFound, "unknown_session", nil)
	}
	return nil
}

// PolicyTypes lists the knowledge base's known policy types.
func (e *Engine) PolicyTypes() []string {
	return e.knowledge.PolicyTypeNames()
}

func summarizeContext(context map[string]string) string {
	if len(context) == 0 {
		return ""
	}
	parts := make([]string, 0, len(context))
	for k, v := range context {
		parts = append(parts, k+"="+v)
	}
	summary := strings.Join(parts, ", ")
	if len(summary) > 200 {
		summary = summary[:200] + "..."
	}
	return summary
}
