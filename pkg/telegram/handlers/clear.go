package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func ClearWorkspace(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		slog.InfoContext(ctx, "Clearing workspace")

		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		ws.Clear()
		c.send(ctx, "🧹 초기화되었습니다! 새 주제로 시작해보세요. 🚀")
	}
}
