// Package workspace ties the catalog, the selection, the composer and the conversation of one chat together.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/dskvich/prompt-workspace-bot/pkg/catalog"
	"github.com/dskvich/prompt-workspace-bot/pkg/composer"
	"github.com/dskvich/prompt-workspace-bot/pkg/conversation"
	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/export"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
	"github.com/dskvich/prompt-workspace-bot/pkg/selection"
	"github.com/dskvich/prompt-workspace-bot/pkg/storage"
)

// Workspace is the state behind one chat. All methods are safe for concurrent use.
type Workspace struct {
	store             storage.Store
	catalog           *catalog.Catalog
	conversation      *conversation.Controller
	assistantName     string
	defaultCredential string
	now               func() time.Time

	mu         sync.Mutex
	selection  *selection.State
	topic      string
	prompt     string
	credential string
	theme      domain.Theme
}

func New(store storage.Store, gw gateway.Gateway, defaultCredential string) *Workspace {
	return &Workspace{
		store:             store,
		catalog:           catalog.New(store),
		conversation:      conversation.New(gw),
		assistantName:     gw.Name(),
		defaultCredential: defaultCredential,
		now:               time.Now,
		selection:         selection.New(),
		theme:             domain.DefaultTheme,
	}
}

// Load reads the persisted custom modules, credential and theme.
func (w *Workspace) Load(ctx context.Context) error {
	if err := w.catalog.Load(ctx); err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	credential, _, err := w.store.Get(ctx, domain.CredentialKey)
	if err != nil {
		return fmt.Errorf("reading credential: %w", err)
	}

	theme, _, err := w.store.Get(ctx, domain.ThemeKey)
	if err != nil {
		return fmt.Errorf("reading theme: %w", err)
	}

	w.mu.Lock()
	w.credential = credential
	w.theme = domain.ParseTheme(theme)
	w.mu.Unlock()

	return nil
}

func (w *Workspace) Modules() []domain.Module {
	return w.catalog.ListAll()
}

func (w *Workspace) Module(id string) (domain.Module, bool) {
	return w.catalog.Get(id)
}

// Select applies a tap on a module and returns the resulting selection.
func (w *Workspace) Select(id string) ([]string, error) {
	if _, ok := w.catalog.Get(id); !ok {
		return nil, fmt.Errorf("%w: unknown id %s", domain.ErrInvalidModule, id)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.selection.Select(id)
	return w.selection.IDs(), nil
}

// Choose selects a module from its detail view. Unlike Select it never deselects.
func (w *Workspace) Choose(id string) ([]string, error) {
	if _, ok := w.catalog.Get(id); !ok {
		return nil, fmt.Errorf("%w: unknown id %s", domain.ErrInvalidModule, id)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.selection.Choose(id)
	return w.selection.IDs(), nil
}

func (w *Workspace) SetMultiSelect(enabled bool) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.selection.SetMultiSelect(enabled)
	return w.selection.IDs()
}

// Selection returns the selected ids in selection order and the multi-select flag.
func (w *Workspace) Selection() ([]string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.selection.IDs(), w.selection.Multi()
}

func (w *Workspace) CreateModule(ctx context.Context, def domain.Module) (domain.Module, error) {
	return w.catalog.Create(ctx, def)
}

func (w *Workspace) UpdateModule(ctx context.Context, def domain.Module) error {
	return w.catalog.Update(ctx, def)
}

// DeleteModule removes a custom module and drops it from the selection.
func (w *Workspace) DeleteModule(ctx context.Context, id string) error {
	if err := w.catalog.Delete(ctx, id); err != nil {
		return err
	}

	w.mu.Lock()
	w.selection.Remove(id)
	w.mu.Unlock()

	return nil
}

func (w *Workspace) SetTopic(topic string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.topic = topic
}

func (w *Workspace) Topic() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.topic
}

// Generate composes the prompt for the selected modules and the topic. The previous
// conversation is discarded.
func (w *Workspace) Generate(ctx context.Context) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.selection.Len() == 0 || strings.TrimSpace(w.topic) == "" {
		return "", domain.ErrNotReady
	}

	modules := lo.FilterMap(w.selection.IDs(), func(id string, _ int) (domain.Module, bool) {
		return w.catalog.Get(id)
	})
	if len(modules) == 0 {
		return "", domain.ErrNotReady
	}

	w.prompt = composer.Compose(modules, w.topic)
	w.conversation.Reset()

	slog.InfoContext(ctx, "Prompt generated",
		"modules", lo.Map(modules, func(m domain.Module, _ int) string { return m.ID }),
		"prompt_len", len(w.prompt))

	return w.prompt, nil
}

func (w *Workspace) Prompt() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.prompt
}

// Clear resets the topic, the selection, the generated prompt and the conversation.
func (w *Workspace) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.topic = ""
	w.prompt = ""
	w.selection.Reset()
	w.conversation.Reset()
}

// Run opens a new chat session with the generated prompt.
func (w *Workspace) Run(ctx context.Context) (domain.ChatMessage, error) {
	prompt := w.Prompt()
	if prompt == "" {
		return domain.ChatMessage{}, domain.ErrNotReady
	}

	return w.conversation.Run(ctx, w.Credential(), prompt)
}

func (w *Workspace) FollowUp(ctx context.Context, text string) (domain.ChatMessage, error) {
	return w.conversation.FollowUp(ctx, text)
}

func (w *Workspace) Conversation() conversation.State {
	return w.conversation.State()
}

// Export renders the conversation log and returns the suggested file name with it.
func (w *Workspace) Export() (string, string, error) {
	content, err := export.PlainText(w.conversation.State().Messages, export.Options{
		AssistantName: w.assistantName,
	})
	if err != nil {
		return "", "", err
	}

	return export.FileName(w.now()), content, nil
}

// SetCredential stores the credential. A blank value removes it.
func (w *Workspace) SetCredential(ctx context.Context, credential string) error {
	credential = strings.TrimSpace(credential)

	var err error
	if credential == "" {
		err = w.store.Remove(ctx, domain.CredentialKey)
	} else {
		err = w.store.Set(ctx, domain.CredentialKey, credential)
	}
	if err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}

	w.mu.Lock()
	w.credential = credential
	w.mu.Unlock()

	return nil
}

// Credential returns the stored credential or the configured default.
func (w *Workspace) Credential() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	credential, _ := lo.Coalesce(w.credential, w.defaultCredential)
	return credential
}

// HasOwnCredential reports whether the chat stored a credential of its own.
func (w *Workspace) HasOwnCredential() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.credential != ""
}

func (w *Workspace) Theme() domain.Theme {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.theme
}

func (w *Workspace) ToggleTheme(ctx context.Context) (domain.Theme, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.theme.Toggle()
	if err := w.store.Set(ctx, domain.ThemeKey, string(next)); err != nil {
		return w.theme, fmt.Errorf("saving theme: %w", err)
	}
	w.theme = next

	return next, nil
}
