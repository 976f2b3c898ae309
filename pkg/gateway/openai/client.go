package openai

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
)

const DefaultModel = openai.GPT4oMini

type client struct {
	model   string
	baseURL string
}

type Option func(*client)

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

func (c *client) Name() string { return "ChatGPT" }

func (c *client) OpenSession(_ context.Context, credential string) (gateway.Session, error) {
	if err := gateway.RequireCredential(credential); err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(credential)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}

	return &session{
		api:   openai.NewClientWithConfig(cfg),
		model: c.model,
		messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: gateway.SystemInstruction},
		},
	}, nil
}

// session keeps the history locally, chat completions are stateless on the service side.
type session struct {
	api   *openai.Client
	model string

	mu       sync.Mutex
	messages []openai.ChatCompletionMessage
}

func (s *session) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := append(slices.Clone(s.messages), openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	resp, err := s.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: gateway.Temperature,
	})
	if err != nil {
		return "", classify(err)
	}

	var reply string
	if len(resp.Choices) > 0 {
		reply = resp.Choices[0].Message.Content
	}

	s.messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleAssistant,
		Content: reply,
	})

	return gateway.OrPlaceholder(reply), nil
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && gateway.IsAuthFailure(apiErr.HTTPStatusCode, apiErr.Message) {
		return gateway.InvalidCredential(err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && gateway.IsAuthFailure(reqErr.HTTPStatusCode, "") {
		return gateway.InvalidCredential(err)
	}

	return err
}
