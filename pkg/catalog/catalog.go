package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
	"github.com/dskvich/prompt-workspace-bot/pkg/storage"
)

const customIDPrefix = "custom-"

// Catalog merges the built-in modules with the custom modules kept in a store.
type Catalog struct {
	store storage.Store
	now   func() time.Time

	mu      sync.RWMutex
	builtin []domain.Module
	custom  []domain.Module
}

func New(store storage.Store) *Catalog {
	return &Catalog{
		store:   store,
		now:     time.Now,
		builtin: Builtin(),
	}
}

// Load reads the custom module list once. A list that cannot be parsed is logged and treated as empty.
func (c *Catalog) Load(ctx context.Context) error {
	raw, ok, err := c.store.Get(ctx, domain.CustomModulesKey)
	if err != nil {
		return fmt.Errorf("reading custom modules: %w", err)
	}

	var custom []domain.Module
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &custom); err != nil {
			slog.WarnContext(ctx, "Failed to parse custom modules, starting with an empty list", logger.Err(err))
			custom = nil
		}
	}

	for i := range custom {
		custom[i].IsCustom = true
	}
	custom = lo.Filter(custom, func(m domain.Module, _ int) bool {
		if IsBuiltin(m.ID) || m.ID == "" {
			slog.WarnContext(ctx, "Dropping stored custom module with a reserved id", "id", m.ID)
			return false
		}
		return true
	})
	if unique := lo.UniqBy(custom, func(m domain.Module) string { return m.ID }); len(unique) != len(custom) {
		slog.WarnContext(ctx, "Dropping stored custom modules with duplicate ids", "dropped", len(custom)-len(unique))
		custom = unique
	}

	c.mu.Lock()
	c.custom = custom
	c.mu.Unlock()

	return nil
}

// ListAll returns built-in modules first, then custom modules in insertion order.
func (c *Catalog) ListAll() []domain.Module {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]domain.Module, 0, len(c.builtin)+len(c.custom))
	all = append(all, c.builtin...)
	all = append(all, c.custom...)
	return all
}

func (c *Catalog) Get(id string) (domain.Module, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if m, ok := lo.Find(c.builtin, func(m domain.Module) bool { return m.ID == id }); ok {
		return m, true
	}
	return lo.Find(c.custom, func(m domain.Module) bool { return m.ID == id })
}

func (c *Catalog) Create(ctx context.Context, def domain.Module) (domain.Module, error) {
	if err := validate(def); err != nil {
		return domain.Module{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if def.ID == "" {
		def.ID = c.nextID()
	}
	if IsBuiltin(def.ID) {
		return domain.Module{}, &domain.ProtectedModuleError{ID: def.ID}
	}
	if c.indexOf(def.ID) >= 0 {
		return domain.Module{}, fmt.Errorf("%w: %s", domain.ErrDuplicateModule, def.ID)
	}

	def = withCustomDefaults(def)

	updated := append(slices.Clone(c.custom), def)
	if err := c.persist(ctx, updated); err != nil {
		return domain.Module{}, err
	}
	c.custom = updated

	slog.InfoContext(ctx, "Custom module created", "id", def.ID, "label", def.Label)
	return def, nil
}

// Update replaces the custom module with the same id. Fields describing presentation
// that are left blank keep their previous values. An unknown id is ignored.
func (c *Catalog) Update(ctx context.Context, def domain.Module) error {
	if IsBuiltin(def.ID) {
		return &domain.ProtectedModuleError{ID: def.ID}
	}
	if err := validate(def); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(def.ID)
	if i < 0 {
		slog.WarnContext(ctx, "Custom module to update not found, ignoring", "id", def.ID)
		return nil
	}

	prev := c.custom[i]
	def.IsCustom = true
	def.Icon, _ = lo.Coalesce(def.Icon, prev.Icon)
	def.EasyDescription, _ = lo.Coalesce(def.EasyDescription, prev.EasyDescription)
	if def.Example == (domain.Example{}) {
		def.Example = prev.Example
	}
	if len(def.UsageScenarios) == 0 {
		def.UsageScenarios = prev.UsageScenarios
	}

	updated := slices.Clone(c.custom)
	updated[i] = def
	if err := c.persist(ctx, updated); err != nil {
		return err
	}
	c.custom = updated

	slog.InfoContext(ctx, "Custom module updated", "id", def.ID)
	return nil
}

// Delete removes a custom module. Built-in ids are rejected before anything is written.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	if IsBuiltin(id) {
		return &domain.ProtectedModuleError{ID: id}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(id) < 0 {
		return nil
	}

	updated := lo.Reject(c.custom, func(m domain.Module, _ int) bool { return m.ID == id })
	if err := c.persist(ctx, updated); err != nil {
		return err
	}
	c.custom = updated

	slog.InfoContext(ctx, "Custom module deleted", "id", id)
	return nil
}

func (c *Catalog) persist(ctx context.Context, custom []domain.Module) error {
	if custom == nil {
		custom = []domain.Module{}
	}

	data, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("marshaling custom modules: %w", err)
	}

	if err := c.store.Set(ctx, domain.CustomModulesKey, string(data)); err != nil {
		return fmt.Errorf("saving custom modules: %w", err)
	}

	return nil
}

func (c *Catalog) indexOf(id string) int {
	return slices.IndexFunc(c.custom, func(m domain.Module) bool { return m.ID == id })
}

func (c *Catalog) nextID() string {
	ms := c.now().UnixMilli()
	for {
		id := fmt.Sprintf("%s%d", customIDPrefix, ms)
		if c.indexOf(id) < 0 {
			return id
		}
		ms++
	}
}

func validate(def domain.Module) error {
	switch {
	case strings.TrimSpace(def.Label) == "":
		return fmt.Errorf("%w: label is required", domain.ErrInvalidModule)
	case strings.TrimSpace(def.Description) == "":
		return fmt.Errorf("%w: description is required", domain.ErrInvalidModule)
	case strings.TrimSpace(def.CustomInstruction) == "":
		return fmt.Errorf("%w: instruction is required", domain.ErrInvalidModule)
	}
	return nil
}

func withCustomDefaults(def domain.Module) domain.Module {
	def.IsCustom = true
	def.Icon, _ = lo.Coalesce(def.Icon, string(domain.DefaultCustomIcon))
	def.EasyDescription, _ = lo.Coalesce(def.EasyDescription, "사용자가 직접 정의한 특별한 도구입니다.")
	if def.Example == (domain.Example{}) {
		def.Example = domain.Example{
			Input:  "예시 내용을 입력하세요",
			Output: "설정하신 지시사항에 맞춰 변환된 결과",
		}
	}
	if len(def.UsageScenarios) == 0 {
		def.UsageScenarios = []string{"사용자가 정의한 상황", "반복적인 업무 자동화"}
	}
	return def
}
