package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
	"github.com/dskvich/prompt-workspace-bot/pkg/telegram/middleware"
	"github.com/dskvich/prompt-workspace-bot/pkg/workspace"
)

const maxTelegramMessageLength = 4096

// chat is the destination of the replies to one update.
type chat struct {
	b       *bot.Bot
	id      int64
	topicID int
}

func chatOf(b *bot.Bot, update *models.Update) chat {
	chatID, topicID, _ := middleware.ChatOf(update)
	return chat{b: b, id: chatID, topicID: topicID}
}

func (c chat) send(ctx context.Context, text string) {
	if _, err := c.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          c.id,
		MessageThreadID: c.topicID,
		Text:            text,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to send message", logger.Err(err))
	}
}

func (c chat) sendWithKeyboard(ctx context.Context, text string, kb *models.InlineKeyboardMarkup) {
	if _, err := c.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          c.id,
		MessageThreadID: c.topicID,
		Text:            text,
		ReplyMarkup:     kb,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to send message", logger.Err(err))
	}
}

// sendLong sends text in as many messages as the length limit requires.
// The keyboard, if any, is attached to the last one.
func (c chat) sendLong(ctx context.Context, text string, kb *models.InlineKeyboardMarkup) {
	parts := SplitMessage(text, maxTelegramMessageLength)
	for i, part := range parts {
		if i == len(parts)-1 && kb != nil {
			c.sendWithKeyboard(ctx, part, kb)
			return
		}
		c.send(ctx, part)
	}
}

func (c chat) sendError(ctx context.Context, err error) {
	c.send(ctx, ErrorText(err))
}

// workspace loads the workspace of the chat and reports a failure to the user.
func (c chat) workspace(ctx context.Context, provider WorkspaceProvider) (*workspace.Workspace, bool) {
	ws, err := provider.Get(ctx, c.id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load workspace", logger.Err(err))
		c.send(ctx, fmt.Sprintf("❌ 작업 공간을 불러오지 못했습니다: %s", err))
		return nil, false
	}
	return ws, true
}

func answerCallback(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
		ShowAlert:       text != "",
	})
}

// ErrorText turns an error into the message shown to the user.
func ErrorText(err error) string {
	var (
		invalid   *domain.InvalidCredentialError
		protected *domain.ProtectedModuleError
		transport *domain.TransportError
	)

	switch {
	case errors.Is(err, domain.ErrMissingCredential):
		return "🔑 API 키가 없습니다. /key 명령으로 API 키를 입력하거나 환경 변수를 설정해주세요."
	case errors.As(err, &invalid):
		return "❌ " + invalid.Message
	case errors.As(err, &protected):
		return "🚫 기본 제공 도구는 수정하거나 삭제할 수 없습니다."
	case errors.Is(err, domain.ErrNotReady):
		return "⚠️ /modules 에서 도구를 선택하고 주제를 입력해주세요."
	case errors.Is(err, domain.ErrNoSession):
		return "⚠️ 진행 중인 대화가 없습니다. /run 으로 먼저 실행해주세요."
	case errors.Is(err, domain.ErrBusy):
		return "⏳ 이전 답변을 기다리는 중입니다."
	case errors.Is(err, domain.ErrEmptyMessage):
		return "⚠️ 메시지를 입력해주세요."
	case errors.Is(err, domain.ErrInvalidModule), errors.Is(err, domain.ErrDuplicateModule):
		return fmt.Sprintf("⚠️ 도구 정보가 올바르지 않습니다: %s", err)
	case errors.Is(err, domain.ErrNothingToExport):
		return "⚠️ 내보낼 대화가 없습니다."
	case errors.As(err, &transport):
		return fmt.Sprintf("❌ 답변을 생성하는 중 오류가 발생했습니다: %s", transport.Err)
	default:
		return fmt.Sprintf("❌ 오류가 발생했습니다: %s", err)
	}
}

// SplitMessage cuts text into parts of at most limit characters, preferring line breaks.
func SplitMessage(text string, limit int) []string {
	var parts []string
	for utf8.RuneCountInString(text) > limit {
		cut := findCutIndex(text, limit)
		parts = append(parts, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		parts = append(parts, text)
	}
	return parts
}

func findCutIndex(text string, limit int) int {
	end, n := len(text), 0
	for i := range text {
		if n == limit {
			end = i
			break
		}
		n++
	}

	if i := strings.LastIndex(text[:end], "\n"); i > 0 {
		return i
	}
	return end
}

// commandArgs returns what follows the command word.
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(text[i:])
}
