package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
)

// RequestID puts the update id and the chat id into the context for the log handler.
func RequestID(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		ctx = logger.ContextWithRequestID(ctx, update.ID)
		if chatID, _, ok := ChatOf(update); ok {
			ctx = logger.ContextWithChatID(ctx, chatID)
		}

		next(ctx, b, update)
	}
}

// ChatOf returns the chat and topic an update belongs to.
func ChatOf(update *models.Update) (chatID int64, topicID int, ok bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, update.Message.MessageThreadID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil:
		msg := update.CallbackQuery.Message.Message
		return msg.Chat.ID, msg.MessageThreadID, true
	default:
		return 0, 0, false
	}
}
