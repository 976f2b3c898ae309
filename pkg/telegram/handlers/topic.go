package handlers

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func SetTopic(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		topic := commandArgs(update.Message.Text)
		if topic == "" {
			c.send(ctx, "⚠️ 주제를 함께 입력해주세요. 예: /topic 여름 캠핑 준비물")
			return
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		ws.SetTopic(topic)
		c.send(ctx, "📝 주제가 설정되었습니다. /generate 로 프롬프트를 만들어보세요.")
	}
}

// Text continues the open conversation, or takes the message as the topic when there is none.
func Text(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		if !ws.Conversation().HasSession {
			ws.SetTopic(update.Message.Text)
			c.send(ctx, "📝 주제가 설정되었습니다. /modules 로 도구를 고르고 /generate 로 프롬프트를 만들어보세요.")
			return
		}

		slog.InfoContext(ctx, "Sending follow-up message")

		reply, err := ws.FollowUp(ctx, update.Message.Text)
		if err != nil {
			if !isSuperseded(err) {
				c.sendError(ctx, err)
			}
			return
		}

		c.sendLong(ctx, reply.Text, nil)
	}
}
