package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

func TestPlainText(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	messages := []domain.ChatMessage{
		{ID: "1", Role: domain.RoleUser, Text: "프롬프트", CreatedAt: at},
		{ID: "2", Role: domain.RoleAssistant, Text: "답변", CreatedAt: at.Add(2 * time.Second)},
	}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "defaults",
			opts: Options{Location: time.UTC},
			want: "[👤 사용자] - 09:26:53\n\n프롬프트\n\n========================================\n" +
				"\n" +
				"[🤖 Gemini (AI)] - 09:26:55\n\n답변\n\n========================================\n",
		},
		{
			name: "custom assistant and layout",
			opts: Options{AssistantName: "ChatGPT", TimeLayout: time.Kitchen, Location: time.UTC},
			want: "[👤 사용자] - 9:26AM\n\n프롬프트\n\n========================================\n" +
				"\n" +
				"[🤖 ChatGPT (AI)] - 9:26AM\n\n답변\n\n========================================\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PlainText(messages, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPlainText_Empty(t *testing.T) {
	_, err := PlainText(nil, Options{})
	assert.ErrorIs(t, err, domain.ErrNothingToExport)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "gpt-workspace-chat-2026-03-04.txt", FileName(time.Date(2026, 3, 4, 23, 0, 0, 0, time.UTC)))
}
