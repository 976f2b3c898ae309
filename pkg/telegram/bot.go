package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/telegram/handlers"
	"github.com/dskvich/prompt-workspace-bot/pkg/telegram/matchers"
	"github.com/dskvich/prompt-workspace-bot/pkg/telegram/middleware"
)

type Config struct {
	Token   string
	Workers int
	// ServerURL overrides the Bot API endpoint.
	ServerURL string
}

// NewBot creates the bot with every workspace command registered.
func NewBot(cfg Config, authenticator middleware.Authenticator, provider handlers.WorkspaceProvider) (*bot.Bot, error) {
	opts := []bot.Option{
		bot.WithMiddlewares(middleware.RequestID, middleware.Auth(authenticator)),
		bot.WithDefaultHandler(unknownUpdate),
	}
	if cfg.Workers > 0 {
		opts = append(opts, bot.WithWorkers(cfg.Workers))
	}
	if cfg.ServerURL != "" {
		opts = append(opts, bot.WithServerURL(cfg.ServerURL))
	}

	b, err := bot.New(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating bot: %w", err)
	}

	commands := map[string]bot.HandlerFunc{
		"start":        handlers.Start(),
		"help":         handlers.Start(),
		"modules":      handlers.ShowModules(provider),
		"multi":        handlers.ToggleMultiSelect(provider),
		"info":         handlers.ShowModuleInfo(provider),
		"topic":        handlers.SetTopic(provider),
		"examples":     handlers.ShowExamples(),
		"generate":     handlers.GeneratePrompt(provider),
		"clear":        handlers.ClearWorkspace(provider),
		"export":       handlers.ExportChat(provider),
		"key":          handlers.SetCredential(provider),
		"theme":        handlers.ToggleTheme(provider),
		"newmodule":    handlers.CreateModule(provider),
		"editmodule":   handlers.EditModule(provider),
		"deletemodule": handlers.DeleteModule(provider),
	}
	for name, h := range commands {
		b.RegisterHandlerMatchFunc(matchers.Command(name), h)
	}

	b.RegisterHandlerMatchFunc(matchers.Command("run"), handlers.RunPrompt(provider), middleware.Typing)
	b.RegisterHandlerMatchFunc(matchers.PlainText(), handlers.Text(provider), middleware.Typing)

	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.ToggleModuleCallbackPrefix, bot.MatchTypePrefix, handlers.ToggleModule(provider))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.ModuleInfoCallbackPrefix, bot.MatchTypePrefix, handlers.ShowModuleInfo(provider))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.ChooseModuleCallbackPrefix, bot.MatchTypePrefix, handlers.ChooseModule(provider))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.TopicExampleCallbackPrefix, bot.MatchTypePrefix, handlers.ApplyExample(provider))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.MultiSelectCallback, bot.MatchTypeExact, handlers.ToggleMultiSelect(provider))
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, domain.RunPromptCallback, bot.MatchTypeExact, handlers.RunPrompt(provider), middleware.Typing)

	return b, nil
}

func unknownUpdate(ctx context.Context, b *bot.Bot, update *models.Update) {
	slog.DebugContext(ctx, "Unhandled update", "update_id", update.ID)

	if update.Message == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          update.Message.Chat.ID,
		MessageThreadID: update.Message.MessageThreadID,
		Text:            "🤔 알 수 없는 명령입니다. /start 로 사용법을 확인해주세요.",
	})
}
