package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

const argSeparator = "|"

func CreateModule(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		args, err := ParseArgs(commandArgs(update.Message.Text), 3)
		if err != nil {
			c.send(ctx, "⚠️ 사용법: /newmodule 이름 | 설명 | 지시사항")
			return
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		m, err := ws.CreateModule(ctx, domain.Module{
			Label:             args[0],
			Description:       args[1],
			CustomInstruction: args[2],
		})
		if err != nil {
			c.sendError(ctx, err)
			return
		}

		c.send(ctx, fmt.Sprintf("✅ 새 도구를 만들었습니다: %s %s (%s)", domain.ParseIcon(m.Icon).Glyph(), m.Label, m.ID))
	}
}

func EditModule(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		args, err := ParseArgs(commandArgs(update.Message.Text), 4)
		if err != nil {
			c.send(ctx, "⚠️ 사용법: /editmodule id | 이름 | 설명 | 지시사항")
			return
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		if _, ok := ws.Module(args[0]); !ok {
			c.send(ctx, "⚠️ 도구를 찾을 수 없습니다. /modules 에서 ℹ️ 버튼으로 id를 확인해주세요.")
			return
		}

		if err := ws.UpdateModule(ctx, domain.Module{
			ID:                args[0],
			Label:             args[1],
			Description:       args[2],
			CustomInstruction: args[3],
		}); err != nil {
			c.sendError(ctx, err)
			return
		}

		c.send(ctx, "✅ 도구를 수정했습니다.")
	}
}

func DeleteModule(provider WorkspaceProvider) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		c := chatOf(b, update)

		id := commandArgs(update.Message.Text)
		if id == "" {
			c.send(ctx, "⚠️ 사용법: /deletemodule id")
			return
		}

		ws, ok := c.workspace(ctx, provider)
		if !ok {
			return
		}

		var protected *domain.ProtectedModuleError
		if err := ws.DeleteModule(ctx, id); errors.As(err, &protected) {
			c.send(ctx, "🚫 기본 제공 도구는 삭제할 수 없습니다.")
			return
		} else if err != nil {
			c.sendError(ctx, err)
			return
		}

		c.send(ctx, "🗑️ 도구를 삭제했습니다.")
	}
}

// ParseArgs splits "a | b | c" into exactly n non-blank parts. The last part keeps any further separators.
func ParseArgs(s string, n int) ([]string, error) {
	parts := strings.SplitN(s, argSeparator, n)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d arguments, got %d", n, len(parts))
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, fmt.Errorf("argument %d is empty", i+1)
		}
	}

	return parts, nil
}
