package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/dskvich/prompt-workspace-bot/pkg/api/response"
	"github.com/dskvich/prompt-workspace-bot/pkg/composer"
	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

const maxRequestBody = 1 << 20

type ModuleSource func() []domain.Module

type compose struct {
	modules ModuleSource
	writer  response.JSONResponseWriter
}

func NewCompose(modules ModuleSource) *compose {
	return &compose{
		modules: modules,
		writer:  response.JSONResponseWriter{},
	}
}

type ModuleResponse struct {
	domain.Module
	Glyph string `json:"glyph"`
}

type ComposeRequest struct {
	ModuleIDs     []string        `json:"moduleIds"`
	Topic         string          `json:"topic"`
	CustomModules []domain.Module `json:"customModules"`
}

type ComposeResponse struct {
	Prompt string `json:"prompt"`
}

func (c *compose) ListModules(w http.ResponseWriter, _ *http.Request) {
	c.writer.WriteSuccessResponse(w, lo.Map(c.modules(), func(m domain.Module, _ int) ModuleResponse {
		return ModuleResponse{Module: m, Glyph: domain.ParseIcon(m.Icon).Glyph()}
	}))
}

// Compose builds the prompt for the requested modules in request order. Custom modules
// travel with the request since the API keeps no per-user state.
func (c *compose) Compose(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		c.writer.WriteErrorResponse(w, http.StatusBadRequest, "Request body is not valid JSON.")
		return
	}

	modules, err := c.resolve(req)
	if err != nil {
		c.writer.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt := composer.Compose(modules, req.Topic)
	slog.DebugContext(r.Context(), "Prompt composed over http", "modules", req.ModuleIDs, "prompt_len", len(prompt))

	c.writer.WriteSuccessResponse(w, ComposeResponse{Prompt: prompt})
}

func (c *compose) resolve(req ComposeRequest) ([]domain.Module, error) {
	if len(req.ModuleIDs) == 0 {
		return nil, errors.New("moduleIds must not be empty")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return nil, errors.New("topic must not be empty")
	}

	custom := lo.Map(req.CustomModules, func(m domain.Module, _ int) domain.Module {
		m.IsCustom = true
		return m
	})
	// built-in ids win over custom modules that reuse them
	available := lo.KeyBy(slices.Concat(custom, c.modules()), func(m domain.Module) string { return m.ID })

	modules := make([]domain.Module, 0, len(req.ModuleIDs))
	for _, id := range lo.Uniq(req.ModuleIDs) {
		m, ok := available[id]
		if !ok {
			return nil, fmt.Errorf("unknown module id %q", id)
		}
		modules = append(modules, m)
	}

	return modules, nil
}
