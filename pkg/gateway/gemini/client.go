package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
)

const DefaultModel = "gemini-3-flash-preview"

type client struct {
	model   string
	baseURL string
}

type Option func(*client)

// WithBaseURL points the client at another endpoint, used by tests.
func WithBaseURL(url string) Option {
	return func(c *client) {
		c.baseURL = url
	}
}

func NewClient(model string, opts ...Option) *client {
	if model == "" {
		model = DefaultModel
	}

	c := &client{model: model}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Name() string { return "Gemini" }

func (c *client) OpenSession(ctx context.Context, credential string) (gateway.Session, error) {
	if err := gateway.RequireCredential(credential); err != nil {
		return nil, err
	}

	cfg := &genai.ClientConfig{
		APIKey:  credential,
		Backend: genai.BackendGeminiAPI,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	api, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	chat, err := api.Chats.Create(ctx, c.model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(gateway.SystemInstruction, genai.RoleUser),
		Temperature:       genai.Ptr[float32](gateway.Temperature),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("creating chat: %w", err)
	}

	slog.DebugContext(ctx, "Gemini chat session opened", "model", c.model)

	return &session{chat: chat}, nil
}

type session struct {
	chat *genai.Chat
}

func (s *session) Send(ctx context.Context, text string) (string, error) {
	resp, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", classify(err)
	}

	return gateway.OrPlaceholder(resp.Text()), nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) && gateway.IsAuthFailure(apiErr.Code, apiErr.Message) {
		return gateway.InvalidCredential(err)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && gateway.IsAuthFailure(apiErrPtr.Code, apiErrPtr.Message) {
		return gateway.InvalidCredential(err)
	}

	if gateway.IsAuthFailure(0, err.Error()) {
		return gateway.InvalidCredential(err)
	}

	return err
}
