// Package store holds in-memory conversation state.
//
// The store owns every conversation record exclusively; callers hold
// identifiers only and receive copies on read. State lives for the
// process lifetime: there is no persistence, no TTL and no deletion.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mentorai/backend/internal/model"
)

// ErrNotFound is returned when a conversation id is unknown.
var ErrNotFound = errors.New("conversation not found")

// entry pairs a conversation with its own mutex so that appends to the
// same conversation serialize while distinct conversations proceed in
// parallel.
type entry struct {
	mu   sync.Mutex
	conv *model.Conversation
}

// Store is an in-memory conversation store safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

// Create allocates a new empty conversation with a fresh unique id.
func (s *Store) Create() model.Conversation {
	conv := &model.Conversation{
		ID:        uuid.Must(uuid.NewV7()).String(),
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.entries[conv.ID] = &entry{conv: conv}
	s.mu.Unlock()

	return *conv
}

// Get returns a snapshot of the conversation with the given id.
func (s *Store) Get(id string) (model.Conversation, error) {
	e, err := s.lookup(id)
	if err != nil {
		return model.Conversation{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshot(e.conv), nil
}

// Append adds a message to the conversation. Fails with ErrNotFound if
// the id is unknown.
func (s *Store) Append(id string, role model.Role, content string) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.conv.Messages = append(e.conv.Messages, model.Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	e.mu.Unlock()

	return nil
}

// Messages returns the conversation's messages in insertion order.
func (s *Store) Messages(id string) ([]model.Message, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.Message, len(e.conv.Messages))
	copy(out, e.conv.Messages)
	return out, nil
}

// ExportForModel returns the role/content projection of the
// conversation history, in the same order as stored.
func (s *Store) ExportForModel(id string) ([]model.Turn, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	turns := make([]model.Turn, len(e.conv.Messages))
	for i, msg := range e.conv.Messages {
		turns[i] = model.Turn{Role: msg.Role, Content: msg.Content}
	}
	return turns, nil
}

// Len returns the number of conversations held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, exists := s.entries[id]
	s.mu.RUnlock()

	if !exists {
		return nil, ErrNotFound
	}
	return e, nil
}

func snapshot(conv *model.Conversation) model.Conversation {
	out := *conv
	out.Messages = make([]model.Message, len(conv.Messages))
	copy(out.Messages, conv.Messages)
	return out
}
