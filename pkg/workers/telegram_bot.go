package workers

import (
	"context"
	"log/slog"
)

type botRunner interface {
	Start(ctx context.Context)
}

type telegramBot struct {
	bot botRunner
}

func NewTelegramBot(bot botRunner) *telegramBot {
	return &telegramBot{
		bot: bot,
	}
}

func (t *telegramBot) Name() string { return "telegram_bot" }

func (t *telegramBot) Start(ctx context.Context) error {
	slog.InfoContext(ctx, "Starting worker", "name", t.Name())
	defer slog.InfoContext(ctx, "Worker stopped", "name", t.Name())

	t.bot.Start(ctx)

	return nil
}
