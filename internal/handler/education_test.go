package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mentorai/backend/internal/gateway"
	"github.com/mentorai/backend/pkg/logger"
)

// fakeAnswerer returns a scripted result or error.
type fakeAnswerer struct {
	result *gateway.Result
	err    error

	gotQuestion       string
	gotConversationID string
}

func (f *fakeAnswerer) Answer(ctx context.Context, question, conversationID string) (*gateway.Result, error) {
	f.gotQuestion = question
	f.gotConversationID = conversationID
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func postAsk(t *testing.T, h *EducationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/education/ask", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Ask(rec, req)
	return rec
}

func TestAskSuccess(t *testing.T) {
	fake := &fakeAnswerer{result: &gateway.Result{Answer: "42", ConversationID: "conv-1"}}
	h := NewEducationHandler(fake, logger.NewNop())

	rec := postAsk(t, h, `{"question":"What is the answer?","conversation_id":"conv-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp["answer"] != "42" || resp["conversation_id"] != "conv-1" {
		t.Errorf("response = %v", resp)
	}
	if fake.gotQuestion != "What is the answer?" || fake.gotConversationID != "conv-1" {
		t.Errorf("gateway got question=%q conversation=%q", fake.gotQuestion, fake.gotConversationID)
	}
}

func TestAskRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"question":`},
		{"missing question", `{}`},
		{"blank question", `{"question":"   "}`},
		{"oversized question", `{"question":"` + strings.Repeat("a", 1001) + `"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeAnswerer{result: &gateway.Result{}}
			h := NewEducationHandler(fake, logger.NewNop())

			rec := postAsk(t, h, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if fake.gotQuestion != "" {
				t.Error("gateway was called for an invalid request")
			}
		})
	}
}

func TestAskErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", gateway.ErrInvalidInput, http.StatusBadRequest},
		{"connection failure", gateway.ErrModelConnection, http.StatusServiceUnavailable},
		{"invalid reply", gateway.ErrModelResponse, http.StatusInternalServerError},
		{"authentication", gateway.ErrAuthentication, http.StatusInternalServerError},
		{"rate limit", gateway.ErrRateLimit, http.StatusInternalServerError},
		{"service", gateway.ErrService, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := NewEducationHandler(&fakeAnswerer{err: tc.err}, logger.NewNop())

			rec := postAsk(t, h, `{"question":"Explain gravity"}`)
			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}

			var resp map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatal(err)
			}
			if resp["error"] == "" {
				t.Error("error response has no message")
			}
		})
	}
}

func TestHealthAndRoot(t *testing.T) {
	h := NewHealthHandler()

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", rec.Code)
	}
	var health map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "ok" {
		t.Errorf("health = %v, want status ok", health)
	}

	rec = httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("root status = %d, want 200", rec.Code)
	}
	var root map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&root); err != nil {
		t.Fatal(err)
	}
	if root["message"] == "" {
		t.Error("root returned no message")
	}
}
