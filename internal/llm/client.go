// Package llm provides model provider clients behind one interface.
package llm

import (
	"context"
	"fmt"
)

// ChatMessage is a single turn handed to a provider. Role follows the
// Gemini convention ("user" / "model"); providers that speak a
// different dialect map it internally.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is a completion request. Every call builds a fresh provider
// session: History carries all prior turns and Question is the final
// user turn.
type Request struct {
	Model     string
	System    string
	History   []ChatMessage
	Question  string
	MaxTokens int
}

// Response is a provider reply.
type Response struct {
	Content   string
	Model     string
	TokensIn  int
	TokensOut int
	LatencyMs int64
}

// Client is the interface all model providers implement.
type Client interface {
	// Complete sends a completion request and returns the reply.
	Complete(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of model provider.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// NewClient creates a model client for the given provider.
func NewClient(provider Provider, apiKey string) (Client, error) {
	switch provider {
	case ProviderGemini:
		return NewGeminiClient(apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey)
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
