package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
)

const removeCredentialArg = "-"

// SetCredential stores the API key of the chat. The message carrying the key is deleted.
func SetCredential(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		arg := commandArgs(update.Message.Text)
		switch arg {
		case "":
			switch {
			case ws.HasOwnCredential():
				c.send(ctx, "🔑 이 채팅에 저장된 API 키가 있습니다. /key - 로 삭제할 수 있어요.")
			case ws.Credential() != "":
				c.send(ctx, "🔑 기본 API 키를 사용 중입니다. /key API키 로 직접 입력할 수 있어요.")
			default:
				c.send(ctx, "🔑 API 키가 없습니다. /key API키 로 입력해주세요.")
			}
			return
		case removeCredentialArg:
			arg = ""
		}

		if err := ws.SetCredential(ctx, arg); err != nil {
			c.sendError(ctx, err)
			return
		}

		if arg != "" {
			if _, err := b.DeleteMessage(ctx, &bot.DeleteMessageParams{
				ChatID:    c.id,
				MessageID: update.Message.ID,
			}); err != nil {
				slog.WarnContext(ctx, "Failed to delete message with credential", logger.Err(err))
			}
			c.send(ctx, "✅ API 키가 저장되었습니다.")
			return
		}

		c.send(ctx, "🗑️ API 키가 삭제되었습니다.")
	}
}

func ToggleTheme(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		theme, err := ws.ToggleTheme(ctx)
		if err != nil {
			c.sendError(ctx, err)
			return
		}

		if theme == domain.ThemeDark {
			c.send(ctx, "🌙 다크 테마로 바꿨습니다.")
			return
		}
		c.send(ctx, "☀️ 라이트 테마로 바꿨습니다.")
	}
}
