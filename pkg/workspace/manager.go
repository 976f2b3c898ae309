package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
	"github.com/dskvich/prompt-workspace-bot/pkg/storage"
)

// Manager hands out one workspace per chat, loading it from the store on first access.
type Manager struct {
	store             storage.Store
	gateway           gateway.Gateway
	defaultCredential string

	mu         sync.Mutex
	workspaces map[int64]*Workspace
}

func NewManager(store storage.Store, gw gateway.Gateway, defaultCredential string) *Manager {
	return &Manager{
		store:             store,
		gateway:           gw,
		defaultCredential: defaultCredential,
		workspaces:        make(map[int64]*Workspace),
	}
}

func (m *Manager) Get(ctx context.Context, chatID int64) (*Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ws, ok := m.workspaces[chatID]; ok {
		return ws, nil
	}

	ws := New(storage.WithPrefix(m.store, KeyPrefix(chatID)), m.gateway, m.defaultCredential)
	if err := ws.Load(ctx); err != nil {
		return nil, fmt.Errorf("loading workspace for chat %d: %w", chatID, err)
	}
	m.workspaces[chatID] = ws

	slog.DebugContext(ctx, "Workspace loaded", "chat_id", chatID)
	return ws, nil
}

func KeyPrefix(chatID int64) string {
	return fmt.Sprintf("chat:%d:", chatID)
}
