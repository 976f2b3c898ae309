package middleware

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Authenticator interface {
	IsAuthorized(userID int64) bool
}

func Auth(authenticator Authenticator) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var userID int64
			switch {
			case update.Message != nil && update.Message.From != nil:
				userID = update.Message.From.ID
			case update.CallbackQuery != nil:
				userID = update.CallbackQuery.From.ID
			default:
				slog.WarnContext(ctx, "Received unknown update type", "update_id", update.ID)
				return
			}

			if authenticator.IsAuthorized(userID) {
				next(ctx, b, update)
				return
			}

			slog.WarnContext(ctx, "Unauthorized access attempt", "user_id", userID)

			chatID, topicID, ok := ChatOf(update)
			if !ok {
				return
			}

			b.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Text:            "❌ 사용 권한이 없습니다.",
			})
		}
	}
}
