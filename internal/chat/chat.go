// Package chat implements a line-oriented conversation loop against a
// server-side stateful responses API.
package chat

import (
	"context"
	"io"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gpt-4.1-nano"

// Request is one user turn.
type Request struct {
	Model string
	Input string

	// PreviousResponseID continues a server-side conversation. Empty starts a
	// new one.
	PreviousResponseID string
}

// Reply is the result of one exchange.
type Reply struct {
	Text  string
	ID    string
	Model string
}

// Responder sends a request to the conversational API. Implementations that
// stream write reply text to w as it arrives; others leave w untouched.
type Responder interface {
	Respond(ctx context.Context, req Request, w io.Writer) (*Reply, error)
}

// Session holds the continuation token and active model for one REPL run.
// It is never persisted.
type Session struct {
	model string
	token string
}

// NewSession creates a session with no continuation token.
func NewSession(model string) *Session {
	if model == "" {
		model = DefaultModel
	}
	return &Session{model: model}
}

// Token returns the continuation token, or "" when none is held.
func (s *Session) Token() string {
	return s.token
}

// Model returns the configured model.
func (s *Session) Model() string {
	return s.model
}

// Reset drops the continuation token.
func (s *Session) Reset() {
	s.token = ""
}

// Advance records the reply ID as the next continuation token.
func (s *Session) Advance(reply *Reply) {
	if reply == nil || reply.ID == "" {
		return
	}
	s.token = reply.ID
}

// Request builds the next request for input.
func (s *Session) Request(input string) Request {
	return Request{
		Model:              s.model,
		Input:              input,
		PreviousResponseID: s.token,
	}
}
