// Package conversation runs a prompt against a chat gateway and keeps the resulting message log.
package conversation

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
)

// State is a snapshot of the conversation.
type State struct {
	Messages   []domain.ChatMessage
	Loading    bool
	Err        error
	HasSession bool
}

// Controller owns at most one chat session at a time. Every Run and Reset starts a new
// generation; a reply that belongs to an older generation is dropped.
type Controller struct {
	gateway gateway.Gateway
	now     func() time.Time
	newID   func() string

	mu       sync.Mutex
	token    uint64
	session  gateway.Session
	messages []domain.ChatMessage
	loading  bool
	err      error
}

func New(gw gateway.Gateway) *Controller {
	return &Controller{
		gateway: gw,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Run discards the current conversation, opens a new session and sends prompt as its first turn.
func (c *Controller) Run(ctx context.Context, credential, prompt string) (domain.ChatMessage, error) {
	c.mu.Lock()
	c.token++
	token := c.token
	c.session = nil
	c.messages = nil
	c.err = nil
	c.loading = true
	c.mu.Unlock()

	session, err := c.gateway.OpenSession(ctx, credential)
	if err != nil {
		return domain.ChatMessage{}, c.fail(ctx, token, err)
	}

	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return domain.ChatMessage{}, domain.ErrSuperseded
	}
	c.session = session
	c.messages = append(c.messages, c.message(domain.RoleUser, prompt))
	c.mu.Unlock()

	slog.InfoContext(ctx, "Conversation started", "gateway", c.gateway.Name(), "prompt_len", len(prompt))

	return c.send(ctx, token, session, prompt)
}

// FollowUp sends text within the open session. The user turn is kept even if the call fails.
func (c *Controller) FollowUp(ctx context.Context, text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, domain.ErrEmptyMessage
	}

	c.mu.Lock()
	switch {
	case c.session == nil:
		c.mu.Unlock()
		return domain.ChatMessage{}, domain.ErrNoSession
	case c.loading:
		c.mu.Unlock()
		return domain.ChatMessage{}, domain.ErrBusy
	}
	token := c.token
	session := c.session
	c.err = nil
	c.loading = true
	c.messages = append(c.messages, c.message(domain.RoleUser, text))
	c.mu.Unlock()

	return c.send(ctx, token, session, text)
}

// Reset drops the session, the log and any pending reply.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token++
	c.session = nil
	c.messages = nil
	c.err = nil
	c.loading = false
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Messages:   slices.Clone(c.messages),
		Loading:    c.loading,
		Err:        c.err,
		HasSession: c.session != nil,
	}
}

func (c *Controller) send(ctx context.Context, token uint64, session gateway.Session, text string) (domain.ChatMessage, error) {
	reply, err := session.Send(ctx, text)
	if err != nil {
		return domain.ChatMessage{}, c.fail(ctx, token, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != token {
		slog.DebugContext(ctx, "Dropping reply of a superseded session")
		return domain.ChatMessage{}, domain.ErrSuperseded
	}

	msg := c.message(domain.RoleAssistant, reply)
	c.messages = append(c.messages, msg)
	c.loading = false

	return msg, nil
}

func (c *Controller) fail(ctx context.Context, token uint64, err error) error {
	err = classify(err)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != token {
		return domain.ErrSuperseded
	}

	c.loading = false
	c.err = err

	slog.ErrorContext(ctx, "Chat request failed", logger.Err(err))
	return err
}

func (c *Controller) message(role domain.Role, text string) domain.ChatMessage {
	return domain.ChatMessage{
		ID:        c.newID(),
		Role:      role,
		Text:      text,
		CreatedAt: c.now(),
	}
}

func classify(err error) error {
	var invalid *domain.InvalidCredentialError
	if errors.Is(err, domain.ErrMissingCredential) || errors.As(err, &invalid) {
		return err
	}
	return &domain.TransportError{Err: err}
}
