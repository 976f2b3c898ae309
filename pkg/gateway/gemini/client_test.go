package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
)

func TestOpenSession_MissingCredential(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	for _, credential := range []string{"", "   "} {
		_, err := NewClient("", WithBaseURL(srv.URL)).OpenSession(context.Background(), credential)
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
	}
	assert.Zero(t, calls.Load())
}

func TestSession_Send(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantReply string
		wantAuth  bool
	}{
		{
			name:      "reply text",
			status:    http.StatusOK,
			body:      `{"candidates":[{"content":{"role":"model","parts":[{"text":"안녕하세요"}]}}]}`,
			wantReply: "안녕하세요",
		},
		{
			name:      "empty reply",
			status:    http.StatusOK,
			body:      `{"candidates":[{"content":{"role":"model","parts":[{"text":""}]}}]}`,
			wantReply: gateway.EmptyReplyPlaceholder,
		},
		{
			name:     "rejected key",
			status:   http.StatusForbidden,
			body:     `{"error":{"code":403,"message":"Permission denied","status":"PERMISSION_DENIED"}}`,
			wantAuth: true,
		},
		{
			name:   "server failure",
			status: http.StatusInternalServerError,
			body:   `{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			session, err := NewClient("gemini-test", WithBaseURL(srv.URL)).OpenSession(context.Background(), "key")
			require.NoError(t, err)

			reply, err := session.Send(context.Background(), "prompt")

			switch {
			case tc.wantReply != "":
				require.NoError(t, err)
				assert.Equal(t, tc.wantReply, reply)
			case tc.wantAuth:
				var invalid *domain.InvalidCredentialError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, gateway.InvalidCredentialMessage, invalid.Message)
			default:
				require.Error(t, err)
				var invalid *domain.InvalidCredentialError
				assert.False(t, errors.As(err, &invalid))
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		auth bool
	}{
		{"forbidden", genai.APIError{Code: 403, Message: "denied"}, true},
		{"unauthorized", genai.APIError{Code: 401}, true},
		{"bad key message", genai.APIError{Code: 400, Message: "API key not valid. Please pass a valid API key."}, true},
		{"plain message", errors.New("googleapi: Error 403"), true},
		{"rate limited", genai.APIError{Code: 429, Message: "quota"}, false},
		{"network", errors.New("dial tcp: connection refused"), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := classify(tc.err)

			var invalid *domain.InvalidCredentialError
			assert.Equal(t, tc.auth, errors.As(err, &invalid))
			if !tc.auth {
				assert.Equal(t, tc.err, err)
			}
		})
	}
}
