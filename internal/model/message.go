// Package model defines data structures for the education API.
package model

import (
	"time"
)

// Role represents the role of a message sender. Roles follow the
// Gemini convention: the assistant side of a conversation is "model".
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Message is a single turn in a conversation. Messages are immutable
// once appended.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Turn is the role/content projection of a Message handed to the
// model provider when replaying history.
type Turn struct {
	Role    Role
	Content string
}

// Conversation is an ordered sequence of messages sharing one identifier.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// AskRequest is the request body for POST /education/ask.
type AskRequest struct {
	Question       string `json:"question"`
	ConversationID string `json:"conversation_id,omitempty"`
}

// AskResponse is the response body for a successfully answered question.
type AskResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id"`
}
