package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"

	"github.com/dskvich/prompt-workspace-bot/pkg/api"
	"github.com/dskvich/prompt-workspace-bot/pkg/auth"
	"github.com/dskvich/prompt-workspace-bot/pkg/catalog"
	"github.com/dskvich/prompt-workspace-bot/pkg/database"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway/gemini"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway/openai"
	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
	"github.com/dskvich/prompt-workspace-bot/pkg/storage"
	"github.com/dskvich/prompt-workspace-bot/pkg/telegram"
	"github.com/dskvich/prompt-workspace-bot/pkg/workers"
	"github.com/dskvich/prompt-workspace-bot/pkg/workspace"
)

const (
	providerGemini = "gemini"
	providerOpenAI = "openai"

	storeSQLite   = "sqlite"
	storePostgres = "postgres"
	storeMemory   = "memory"
)

type Config struct {
	TelegramBotToken               string  `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramAuthorizedUserIDs      []int64 `env:"TELEGRAM_AUTHORIZED_USER_IDS" envSeparator:" "`
	TelegramUpdateListenerPoolSize int     `env:"TELEGRAM_UPDATE_LISTENER_POOL_SIZE" envDefault:"10"`
	TelegramServerURL              string  `env:"TELEGRAM_SERVER_URL"`
	ChatProvider                   string  `env:"CHAT_PROVIDER" envDefault:"gemini"`
	ChatModel                      string  `env:"CHAT_MODEL"`
	ChatBaseURL                    string  `env:"CHAT_BASE_URL"`
	DefaultAPIKey                  string  `env:"DEFAULT_API_KEY"`
	StoreDriver                    string  `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath                     string  `env:"SQLITE_PATH" envDefault:"workspace.db"`
	PgURL                          string  `env:"DATABASE_URL"`
	HTTPAddr                       string  `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel                       string  `env:"LOG_LEVEL" envDefault:"debug"`
	LogNoColor                     bool    `env:"LOG_NO_COLOR"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("Shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

func runMain() error {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parsing env config: %w", err)
	}

	setupLogger(cfg)

	workerGroup, err := setupWorkers(cfg)
	if err != nil {
		return err
	}

	ctx, cancelFn := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer cancelFn()

	return workerGroup.Start(ctx)
}

func setupLogger(cfg Config) {
	opts := *logger.DefaultOptions
	opts.Level = logger.ParseLevel(cfg.LogLevel)
	opts.NoColor = cfg.LogNoColor

	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, &opts)))
}

func setupWorkers(cfg Config) (workers.Group, error) {
	store, err := newStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	gw, err := newGateway(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating chat gateway: %w", err)
	}

	slog.Info("Workspace configured",
		"store", cfg.StoreDriver,
		"chat_provider", gw.Name(),
		"default_api_key", cfg.DefaultAPIKey != "",
	)

	manager := workspace.NewManager(store, gw, cfg.DefaultAPIKey)

	authenticator := auth.NewAuthenticator(cfg.TelegramAuthorizedUserIDs)

	b, err := telegram.NewBot(telegram.Config{
		Token:     cfg.TelegramBotToken,
		Workers:   cfg.TelegramUpdateListenerPoolSize,
		ServerURL: cfg.TelegramServerURL,
	}, authenticator, manager)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return workers.Group{
		workers.NewTelegramBot(b),
		workers.NewHTTPServer(cfg.HTTPAddr, api.NewRouter(catalog.Builtin)),
	}, nil
}

func newStore(cfg Config) (storage.Store, error) {
	switch cfg.StoreDriver {
	case storeMemory:
		slog.Warn("Using in-memory store, custom modules and keys are lost on restart")
		return storage.NewMemoryStore(), nil
	case storeSQLite:
		db, err := database.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLStore(db), nil
	case storePostgres:
		db, err := database.NewPostgres(cfg.PgURL)
		if err != nil {
			return nil, err
		}
		return storage.NewSQLStore(db), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}

func newGateway(cfg Config) (gateway.Gateway, error) {
	switch cfg.ChatProvider {
	case providerGemini:
		var opts []gemini.Option
		if cfg.ChatBaseURL != "" {
			opts = append(opts, gemini.WithBaseURL(cfg.ChatBaseURL))
		}
		return gemini.NewClient(cfg.ChatModel, opts...), nil
	case providerOpenAI:
		var opts []openai.Option
		if cfg.ChatBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.ChatBaseURL))
		}
		return openai.NewClient(cfg.ChatModel, opts...), nil
	default:
		return nil, fmt.Errorf("unsupported chat provider %q", cfg.ChatProvider)
	}
}
