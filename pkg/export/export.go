// Package export renders a conversation as a downloadable plain-text transcript.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

const (
	DefaultAssistantName = "Gemini"
	DefaultTimeLayout    = "15:04:05"

	separator = "========================================"
)

type Options struct {
	AssistantName string
	TimeLayout    string
	Location      *time.Location
}

// PlainText renders one block per message, blocks joined by a blank line.
func PlainText(messages []domain.ChatMessage, opts Options) (string, error) {
	if len(messages) == 0 {
		return "", domain.ErrNothingToExport
	}

	name, _ := lo.Coalesce(opts.AssistantName, DefaultAssistantName)
	layout, _ := lo.Coalesce(opts.TimeLayout, DefaultTimeLayout)
	loc := lo.Ternary(opts.Location != nil, opts.Location, time.Local)

	blocks := lo.Map(messages, func(m domain.ChatMessage, _ int) string {
		return fmt.Sprintf("[%s] - %s\n\n%s\n\n%s\n",
			roleLabel(m.Role, name), m.CreatedAt.In(loc).Format(layout), m.Text, separator)
	})

	return strings.Join(blocks, "\n"), nil
}

func FileName(now time.Time) string {
	return "gpt-workspace-chat-" + now.Format(time.DateOnly) + ".txt"
}

func roleLabel(role domain.Role, assistant string) string {
	if role == domain.RoleUser {
		return "👤 사용자"
	}
	return "🤖 " + assistant + " (AI)"
}
