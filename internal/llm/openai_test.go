package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
)

// newTestOpenAIClient points the SDK at a stub chat-completions server
// and returns the request bodies it receives.
func newTestOpenAIClient(t *testing.T, reply string) (*OpenAIClient, *[]openai.ChatCompletionRequest) {
	t.Helper()

	var requests []openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		requests = append(requests, req)

		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Model: req.Model,
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply}},
			},
			Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5},
		})
	}))
	t.Cleanup(srv.Close)

	cfg := openai.DefaultConfig("test-key")
	cfg.BaseURL = srv.URL + "/v1"

	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}, &requests
}

func TestOpenAIDefaultsModel(t *testing.T) {
	client, requests := newTestOpenAIClient(t, "An answer.")

	resp, err := client.Complete(context.Background(), &Request{Question: "What is entropy?"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp.Content != "An answer." {
		t.Errorf("content = %q", resp.Content)
	}

	if len(*requests) != 1 {
		t.Fatalf("server saw %d requests, want 1", len(*requests))
	}
	if got := (*requests)[0].Model; got != "gpt-4o" {
		t.Errorf("request model = %q, want gpt-4o", got)
	}
}

func TestOpenAIMapsRolesAndSystemPrompt(t *testing.T) {
	client, requests := newTestOpenAIClient(t, "More detail.")

	_, err := client.Complete(context.Background(), &Request{
		Model:  "gpt-4",
		System: "You are a tutor.",
		History: []ChatMessage{
			{Role: "user", Content: "What is entropy?"},
			{Role: "model", Content: "A measure of disorder."},
		},
		Question: "tell me more",
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	msgs := (*requests)[0].Messages
	if len(msgs) != 4 {
		t.Fatalf("request carried %d messages, want 4", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem || msgs[0].Content != "You are a tutor." {
		t.Errorf("first message = %+v, want the system prompt", msgs[0])
	}
	// The stored "model" role must go out as "assistant".
	if msgs[2].Role != openai.ChatMessageRoleAssistant {
		t.Errorf("history reply role = %q, want assistant", msgs[2].Role)
	}
	if msgs[3].Role != openai.ChatMessageRoleUser || msgs[3].Content != "tell me more" {
		t.Errorf("final message = %+v, want the new question", msgs[3])
	}
}
