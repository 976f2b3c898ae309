package handlers

import (
	"fmt"
	"strconv"

	"github.com/go-telegram/bot/models"
	"github.com/samber/lo"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

// ModulesKeyboard has one row per module with a toggle and an info button, and the
// multi-select switch at the bottom.
func ModulesKeyboard(modules []domain.Module, selected []string, multi bool) *models.InlineKeyboardMarkup {
	rows := lo.Map(modules, func(m domain.Module, _ int) []models.InlineKeyboardButton {
		return []models.InlineKeyboardButton{
			{Text: moduleButtonText(m, selected, multi), CallbackData: domain.ToggleModuleCallbackPrefix + m.ID},
			{Text: "ℹ️", CallbackData: domain.ModuleInfoCallbackPrefix + m.ID},
		}
	})

	rows = append(rows, []models.InlineKeyboardButton{
		{Text: lo.Ternary(multi, "🔀 다중 선택: 켜짐", "🔀 다중 선택: 꺼짐"), CallbackData: domain.MultiSelectCallback},
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func moduleButtonText(m domain.Module, selected []string, multi bool) string {
	label := domain.ParseIcon(m.Icon).Glyph() + " " + m.Label

	pos := lo.IndexOf(selected, m.ID)
	switch {
	case pos < 0:
		return label
	case multi:
		return fmt.Sprintf("✅ %d. %s", pos+1, label)
	default:
		return "✅ " + label
	}
}

func runKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "▶️ 실행하기", CallbackData: domain.RunPromptCallback}},
		},
	}
}

func ModuleInfoKeyboard(id string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "✅ 선택", CallbackData: domain.ChooseModuleCallbackPrefix + id}},
		},
	}
}

// ExamplesKeyboard has one button per topic example.
func ExamplesKeyboard() *models.InlineKeyboardMarkup {
	rows := lo.Map(domain.TopicExamples, func(ex string, i int) []models.InlineKeyboardButton {
		return []models.InlineKeyboardButton{{Text: ex, CallbackData: domain.TopicExampleCallbackPrefix + strconv.Itoa(i)}}
	})
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}
