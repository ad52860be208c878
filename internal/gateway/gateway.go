// Package gateway wraps calls to the remote generative model.
//
// Each Answer call resolves a conversation, classifies the first turn,
// replays the stored history into a fresh provider session, and applies
// bounded retry with exponential backoff to transient connection
// failures. Failures surface as the closed taxonomy in errors.go.
package gateway

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/mentorai/backend/internal/classifier"
	"github.com/mentorai/backend/internal/llm"
	"github.com/mentorai/backend/internal/model"
	"github.com/mentorai/backend/internal/store"
	"github.com/mentorai/backend/pkg/logger"
	"github.com/mentorai/backend/pkg/metrics"
)

const (
	defaultMaxRetries    = 2
	defaultRetryBaseWait = 2 * time.Second
)

// Result is a successfully answered question.
type Result struct {
	Answer         string
	ConversationID string
}

// Gateway answers questions against the remote model.
type Gateway struct {
	store  *store.Store
	client llm.Client
	log    *logger.Logger

	modelID       string
	maxRetries    uint64
	retryBaseWait time.Duration
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithModel sets the remote model identifier.
func WithModel(id string) Option {
	return func(g *Gateway) { g.modelID = id }
}

// WithMaxRetries sets how many additional attempts follow a transient
// failure.
func WithMaxRetries(n int) Option {
	return func(g *Gateway) {
		if n >= 0 {
			g.maxRetries = uint64(n)
		}
	}
}

// WithRetryBaseWait sets the first backoff interval. Subsequent waits
// double it.
func WithRetryBaseWait(d time.Duration) Option {
	return func(g *Gateway) {
		if d > 0 {
			g.retryBaseWait = d
		}
	}
}

// New creates a Gateway.
func New(st *store.Store, client llm.Client, log *logger.Logger, opts ...Option) *Gateway {
	g := &Gateway{
		store:         st,
		client:        client,
		log:           log,
		maxRetries:    defaultMaxRetries,
		retryBaseWait: defaultRetryBaseWait,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Answer processes a question within the given conversation, creating
// one when the id is empty or unknown. An unknown id is not an error:
// the caller gets a fresh conversation id back.
func (g *Gateway) Answer(ctx context.Context, question, conversationID string) (*Result, error) {
	q := strings.TrimSpace(question)
	if q == "" {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindInvalidInput, errors.New("question is empty"))
	}

	conv, history, err := g.resolveConversation(conversationID)
	if err != nil {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindService, err)
	}

	// Only the first user turn is classified. Later turns in an
	// existing conversation are treated as continuations.
	if len(history) == 0 {
		switch classifier.Classify(q) {
		case classifier.Greeting:
			return g.shortCircuit(conv.ID, q, greetingReply, "greeting")
		case classifier.OffTopic:
			return g.shortCircuit(conv.ID, q, redirectReply, "redirect")
		}
	}

	// The user message is recorded before the remote call and stays in
	// history even when the call fails, so a retry by the user
	// continues the same conversation.
	if err := g.store.Append(conv.ID, model.RoleUser, q); err != nil {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindService, err)
	}

	resp, err := g.callModel(ctx, history, q)
	if err != nil {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	answer := strings.TrimSpace(resp.Content)
	if answer == "" {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindModelResponse, errors.New("model returned an empty reply"))
	}

	if err := g.store.Append(conv.ID, model.RoleModel, answer); err != nil {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindService, err)
	}

	metrics.AnswersTotal.WithLabelValues("answered").Inc()
	g.log.Info("question answered",
		"conversation_id", conv.ID,
		"provider", g.client.Name(),
		"tokens_in", resp.TokensIn,
		"tokens_out", resp.TokensOut,
		"latency_ms", resp.LatencyMs,
	)

	return &Result{Answer: answer, ConversationID: conv.ID}, nil
}

// resolveConversation reuses the supplied conversation when it exists
// and starts a fresh one otherwise. It returns the conversation and
// its history prior to this turn.
func (g *Gateway) resolveConversation(id string) (model.Conversation, []model.Turn, error) {
	if id != "" {
		if conv, err := g.store.Get(id); err == nil {
			history, err := g.store.ExportForModel(id)
			if err != nil {
				return model.Conversation{}, nil, err
			}
			return conv, history, nil
		}
		g.log.Debug("unknown conversation id, starting fresh", "conversation_id", id)
	}

	conv := g.store.Create()
	metrics.ConversationsActive.Inc()
	return conv, nil, nil
}

// shortCircuit records both turns of a canned exchange and returns it
// without calling the remote model.
func (g *Gateway) shortCircuit(conversationID, question, reply, outcome string) (*Result, error) {
	if err := g.store.Append(conversationID, model.RoleUser, question); err != nil {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindService, err)
	}
	if err := g.store.Append(conversationID, model.RoleModel, reply); err != nil {
		metrics.AnswersTotal.WithLabelValues("failed").Inc()
		return nil, newError(KindService, err)
	}

	metrics.AnswersTotal.WithLabelValues(outcome).Inc()
	return &Result{Answer: reply, ConversationID: conversationID}, nil
}

// callModel sends the question with the replayed history, retrying
// transient connection failures with exponential backoff. Non-transient
// failures abort immediately and are classified from the error.
func (g *Gateway) callModel(ctx context.Context, history []model.Turn, question string) (*llm.Response, error) {
	req := &llm.Request{
		Model:    g.modelID,
		System:   systemInstruction,
		History:  toChatMessages(history),
		Question: question,
	}

	start := time.Now()

	var resp *llm.Response
	operation := func() error {
		r, err := g.client.Complete(ctx, req)
		if err != nil {
			if isTransient(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = g.retryBaseWait
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0

	err := backoff.RetryNotify(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, g.maxRetries), ctx),
		func(err error, wait time.Duration) {
			metrics.ModelRetriesTotal.Inc()
			g.log.Warn("model call failed, retrying",
				"provider", g.client.Name(),
				"wait", wait,
				"error", err,
			)
		},
	)
	if err != nil {
		metrics.RecordModelCall(g.client.Name(), "error", time.Since(start).Seconds(), 0, 0)
		if isTransient(err) {
			return nil, newError(KindModelConnection, err)
		}
		return nil, newError(classifyRemote(err), err)
	}

	metrics.RecordModelCall(g.client.Name(), "success", time.Since(start).Seconds(), resp.TokensIn, resp.TokensOut)
	return resp, nil
}

func toChatMessages(turns []model.Turn) []llm.ChatMessage {
	if len(turns) == 0 {
		return nil
	}
	msgs := make([]llm.ChatMessage, len(turns))
	for i, turn := range turns {
		msgs[i] = llm.ChatMessage{Role: string(turn.Role), Content: turn.Content}
	}
	return msgs
}

// isTransient reports whether an error looks like a recoverable
// connectivity or timeout failure.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"timeout",
		"timed out",
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"temporarily unavailable",
		"503",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// classifyRemote maps a non-transient provider error to a taxonomy
// kind by inspecting its text.
func classifyRemote(err error) Kind {
	msg := strings.ToLower(err.Error())

	for _, marker := range []string{"401", "403", "unauthorized", "api key", "authentication", "permission denied"} {
		if strings.Contains(msg, marker) {
			return KindAuthentication
		}
	}
	for _, marker := range []string{"429", "rate limit", "quota", "resource exhausted", "too many requests"} {
		if strings.Contains(msg, marker) {
			return KindRateLimit
		}
	}
	return KindService
}
