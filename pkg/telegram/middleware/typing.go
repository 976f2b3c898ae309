package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func Typing(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if chatID, topicID, ok := ChatOf(update); ok {
			b.SendChatAction(ctx, &bot.SendChatActionParams{
				ChatID:          chatID,
				MessageThreadID: topicID,
				Action:          models.ChatActionTyping,
			})
		}

		next(ctx, b, update)
	}
}
