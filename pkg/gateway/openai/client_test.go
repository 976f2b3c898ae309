package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
)

type fakeAPI struct {
	status   int
	replies  []string
	requests []openai.ChatCompletionRequest
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req openai.ChatCompletionRequest
	json.NewDecoder(r.Body).Decode(&req)
	f.requests = append(f.requests, req)

	w.Header().Set("Content-Type", "application/json")
	if f.status != http.StatusOK {
		w.WriteHeader(f.status)
		if f.status >= http.StatusInternalServerError {
			w.Write([]byte(`{"error":{"message":"The server had an error","type":"server_error"}}`))
			return
		}
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
		return
	}

	reply := ""
	if len(f.replies) > 0 {
		reply, f.replies = f.replies[0], f.replies[1:]
	}
	json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
		ID:     "chatcmpl-1",
		Object: "chat.completion",
		Model:  req.Model,
		Choices: []openai.ChatCompletionChoice{{
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
			FinishReason: openai.FinishReasonStop,
		}},
	})
}

func TestOpenSession_MissingCredential(t *testing.T) {
	_, err := NewClient("").OpenSession(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestSession_SendKeepsHistory(t *testing.T) {
	api := &fakeAPI{status: http.StatusOK, replies: []string{"first", ""}}
	srv := httptest.NewServer(api)
	defer srv.Close()

	session, err := NewClient("gpt-test", WithBaseURL(srv.URL+"/v1")).OpenSession(context.Background(), "sk-test")
	require.NoError(t, err)

	reply, err := session.Send(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "first", reply)

	reply, err = session.Send(context.Background(), "follow-up")
	require.NoError(t, err)
	assert.Equal(t, gateway.EmptyReplyPlaceholder, reply)

	require.Len(t, api.requests, 2)
	assert.Equal(t, "gpt-test", api.requests[1].Model)
	assert.InDelta(t, gateway.Temperature, api.requests[1].Temperature, 0.001)

	roles := make([]string, 0, len(api.requests[1].Messages))
	for _, m := range api.requests[1].Messages {
		roles = append(roles, m.Role)
	}
	assert.Equal(t, []string{"system", "user", "assistant", "user"}, roles)
	assert.Equal(t, gateway.SystemInstruction, api.requests[1].Messages[0].Content)
	assert.Equal(t, "follow-up", api.requests[1].Messages[3].Content)
}

func TestSession_SendErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantAuth bool
	}{
		{"unauthorized", http.StatusUnauthorized, true},
		{"forbidden", http.StatusForbidden, true},
		{"server error", http.StatusInternalServerError, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(&fakeAPI{status: tc.status})
			defer srv.Close()

			session, err := NewClient("", WithBaseURL(srv.URL+"/v1")).OpenSession(context.Background(), "sk-test")
			require.NoError(t, err)

			_, err = session.Send(context.Background(), "prompt")
			require.Error(t, err)

			var invalid *domain.InvalidCredentialError
			assert.Equal(t, tc.wantAuth, errors.As(err, &invalid))
		})
	}
}
