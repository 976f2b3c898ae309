package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

func GeneratePrompt(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		prompt, err := ws.Generate(ctx)
		if err != nil {
			c.sendError(ctx, err)
			return
		}

		c.sendLong(ctx, prompt, runKeyboard())
	}
}

// RunPrompt opens a new conversation with the generated prompt. It serves both /run and the run button.
func RunPrompt(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)
		if update.CallbackQuery != nil {
			answerCallback(ctx, b, update, "")
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		slog.InfoContext(ctx, "Running prompt")

		reply, err := ws.Run(ctx)
		if err != nil {
			if !isSuperseded(err) {
				c.sendError(ctx, err)
			}
			return
		}

		c.sendLong(ctx, reply.Text, nil)
	}
}

func isSuperseded(err error) bool {
	return errors.Is(err, domain.ErrSuperseded)
}
