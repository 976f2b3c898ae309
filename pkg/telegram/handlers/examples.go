package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

func ShowExamples() bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatOf(b, update).sendWithKeyboard(ctx, "💡 빠른 예시로 채우기:", ExamplesKeyboard())
	}
}

// ApplyExample takes the tapped example as the topic.
func ApplyExample(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		i, err := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, domain.TopicExampleCallbackPrefix))
		if err != nil || i < 0 || i >= len(domain.TopicExamples) {
			answerCallback(ctx, b, update, "⚠️ 예시를 찾을 수 없습니다.")
			return
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			answerCallback(ctx, b, update, "")
			return
		}

		topic := domain.TopicExamples[i]
		ws.SetTopic(topic)
		answerCallback(ctx, b, update, "")

		c.send(ctx, fmt.Sprintf("📝 주제가 설정되었습니다: %s\n/modules 로 도구를 고르고 /generate 로 프롬프트를 만들어보세요.", topic))
	}
}
