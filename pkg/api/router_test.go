package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/prompt-workspace-bot/pkg/api/handler"
	"github.com/dskvich/prompt-workspace-bot/pkg/api/response"
	"github.com/dskvich/prompt-workspace-bot/pkg/catalog"
)

func TestHealth(t *testing.T) {
	router := NewRouter(catalog.Builtin)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListModules(t *testing.T) {
	router := NewRouter(catalog.Builtin)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/modules", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var modules []handler.ModuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &modules))
	require.Len(t, modules, len(catalog.Builtin()))
	assert.Equal(t, "expand-idea", modules[0].ID)
	assert.Equal(t, "💡", modules[0].Glyph)
	assert.False(t, modules[0].IsCustom)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantPrompt []string
	}{
		{
			name:       "single built-in",
			body:       `{"moduleIds":["hookify"],"topic":"Hello world"}`,
			wantStatus: http.StatusOK,
			wantPrompt: []string{"Hello world"},
		},
		{
			name:       "custom module from request",
			body:       `{"moduleIds":["custom-1"],"topic":"봄 소풍","customModules":[{"id":"custom-1","label":"Poem","description":"d","customInstruction":"Write a poem"}]}`,
			wantStatus: http.StatusOK,
			wantPrompt: []string{"봄 소풍", "Write a poem"},
		},
		{
			name:       "several modules",
			body:       `{"moduleIds":["vs-table","expand-idea"],"topic":"전기차"}`,
			wantStatus: http.StatusOK,
			wantPrompt: []string{"### 1. ", "### 2. ", "전기차"},
		},
		{
			name:       "empty selection",
			body:       `{"moduleIds":[],"topic":"Hello"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank topic",
			body:       `{"moduleIds":["hookify"],"topic":"  "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown module",
			body:       `{"moduleIds":["nope"],"topic":"Hello"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{"moduleIds":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	router := NewRouter(catalog.Builtin)

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/compose", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tc.wantStatus != http.StatusOK {
				var errResp response.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.NotEmpty(t, errResp.Error)
				return
			}

			var resp handler.ComposeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			for _, want := range tc.wantPrompt {
				assert.Contains(t, resp.Prompt, want)
			}
		})
	}
}

func TestCompose_BuiltinIDCannotBeShadowed(t *testing.T) {
	router := NewRouter(catalog.Builtin)

	body := `{"moduleIds":["hookify"],"topic":"t","customModules":[{"id":"hookify","label":"Fake","description":"d","customInstruction":"INJECTED"}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/compose", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ComposeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Prompt, "INJECTED")
}
