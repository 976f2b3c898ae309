package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
)

func ExportChat(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		name, content, err := ws.Export()
		if err != nil {
			c.sendError(ctx, err)
			return
		}

		if _, err := b.SendDocument(ctx, &bot.SendDocumentParams{
			ChatID:          c.id,
			MessageThreadID: c.topicID,
			Document: &models.InputFileUpload{
				Filename: name,
				Data:     strings.NewReader(content),
			},
			Caption: "💾 대화 내용을 저장했습니다.",
		}); err != nil {
			slog.ErrorContext(ctx, "Failed to send export", logger.Err(err))
			c.sendError(ctx, err)
		}
	}
}
