package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/logger"
	"github.com/dskvich/prompt-workspace-bot/pkg/workspace"
)

func ShowModules(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		selected, multi := ws.Selection()
		c.sendWithKeyboard(ctx, modulesHeader(ws), ModulesKeyboard(ws.Modules(), selected, multi))
	}
}

func ToggleModule(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)
		id := strings.TrimPrefix(update.CallbackQuery.Data, domain.ToggleModuleCallbackPrefix)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			answerCallback(ctx, b, update, "")
			return
		}

		if _, err := ws.Select(id); err != nil {
			answerCallback(ctx, b, update, ErrorText(err))
			return
		}
		answerCallback(ctx, b, update, "")

		slog.InfoContext(ctx, "Module toggled", "id", id)
		refreshModules(ctx, b, update, ws)
	}
}

// ToggleMultiSelect flips multi-select mode. It serves both the keyboard switch and /multi.
func ToggleMultiSelect(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		_, multi := ws.Selection()
		ws.SetMultiSelect(!multi)

		if update.CallbackQuery != nil {
			answerCallback(ctx, b, update, "")
			refreshModules(ctx, b, update, ws)
			return
		}

		c.send(ctx, lo.Ternary(!multi,
			"🔀 다중 선택이 켜졌습니다. 여러 도구를 함께 적용할 수 있어요.",
			"🔀 다중 선택이 꺼졌습니다. 마지막으로 고른 도구만 남겼어요."))
	}
}

// ShowModuleInfo describes a module. It serves both the info button and /info <id>.
func ShowModuleInfo(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		var id string
		if update.CallbackQuery != nil {
			answerCallback(ctx, b, update, "")
			id = strings.TrimPrefix(update.CallbackQuery.Data, domain.ModuleInfoCallbackPrefix)
		} else {
			id = commandArgs(update.Message.Text)
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		m, ok := ws.Module(id)
		if !ok {
			c.send(ctx, "⚠️ 도구를 찾을 수 없습니다. /modules 에서 ℹ️ 버튼을 눌러주세요.")
			return
		}

		c.sendLong(ctx, ModuleInfoText(m), ModuleInfoKeyboard(m.ID))
	}
}

// ChooseModule selects the module from its detail message. In multi-select mode an
// already selected module stays selected.
func ChooseModule(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)
		id := strings.TrimPrefix(update.CallbackQuery.Data, domain.ChooseModuleCallbackPrefix)

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			answerCallback(ctx, b, update, "")
			return
		}

		if _, err := ws.Choose(id); err != nil {
			answerCallback(ctx, b, update, ErrorText(err))
			return
		}
		answerCallback(ctx, b, update, "")

		slog.InfoContext(ctx, "Module chosen", "id", id)

		m, _ := ws.Module(id)
		selected, multi := ws.Selection()
		c.sendWithKeyboard(ctx,
			fmt.Sprintf("✅ %s 도구를 선택했습니다.\n%s", m.Label, modulesHeader(ws)),
			ModulesKeyboard(ws.Modules(), selected, multi))
	}
}

func ModuleInfoText(m domain.Module) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %s (%s)\n%s\n", domain.ParseIcon(m.Icon).Glyph(), m.Label, m.ID, m.Description)
	if m.EasyDescription != "" {
		fmt.Fprintf(&sb, "\n💡 쉽게 말하면\n%s\n", m.EasyDescription)
	}
	if m.Example != (domain.Example{}) {
		fmt.Fprintf(&sb, "\n✏️ 예시\n입력: %s\n결과: %s\n", m.Example.Input, m.Example.Output)
	}
	if len(m.UsageScenarios) > 0 {
		sb.WriteString("\n🎯 이럴 때 쓰세요\n")
		for _, s := range m.UsageScenarios {
			fmt.Fprintf(&sb, "• %s\n", s)
		}
	}
	if m.HasInstruction() {
		fmt.Fprintf(&sb, "\n📝 지시사항\n%s\n", m.CustomInstruction)
	}

	return strings.TrimRight(sb.String(), "\n")
}

func modulesHeader(ws *workspace.Workspace) string {
	selected, multi := ws.Selection()
	return fmt.Sprintf("🧰 적용할 도구를 선택하세요.\n선택됨: %d개 · 다중 선택 %s",
		len(selected), lo.Ternary(multi, "켜짐", "꺼짐"))
}

func refreshModules(ctx context.Context, b *bot.Bot, update *models.Update, ws *workspace.Workspace) {
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}

	selected, multi := ws.Selection()
	if _, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        modulesHeader(ws),
		ReplyMarkup: ModulesKeyboard(ws.Modules(), selected, multi),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to refresh modules keyboard", logger.Err(err))
	}
}
