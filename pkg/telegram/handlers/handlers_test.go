package handlers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dskvich/prompt-workspace-bot/pkg/catalog"
	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
	"github.com/dskvich/prompt-workspace-bot/pkg/gateway"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"short", "hello", 10, []string{"hello"}},
		{"empty", "", 10, nil},
		{"cut at line break", "aaa\nbbb", 5, []string{"aaa", "bbb"}},
		{"no line break", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"counts characters not bytes", "가나다라마", 2, []string{"가나", "다라", "마"}},
		{"leading line break", "\nabcdef", 3, []string{"\nab", "cde", "f"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitMessage(tc.text, tc.limit))
		})
	}
}

func TestSplitMessage_RespectsLimit(t *testing.T) {
	text := strings.Repeat("한국어 문장입니다.\n", 800)

	parts := SplitMessage(text, maxTelegramMessageLength)
	require.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.LessOrEqual(t, utf8.RuneCountInString(p), maxTelegramMessageLength)
		assert.True(t, utf8.ValidString(p))
	}
	assert.Equal(t, strings.TrimSuffix(text, "\n"), strings.TrimSuffix(strings.Join(parts, "\n"), "\n"))
}

func TestCommandArgs(t *testing.T) {
	assert.Equal(t, "여름 캠핑", commandArgs("/topic 여름 캠핑"))
	assert.Equal(t, "여러\n줄", commandArgs("/topic\n여러\n줄"))
	assert.Empty(t, commandArgs("/topic"))
	assert.Empty(t, commandArgs("/topic   "))
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		n       int
		want    []string
		wantErr bool
	}{
		{"three parts", "시 쓰기 | 시로 바꾼다 | 주제를 시로 써줘", 3, []string{"시 쓰기", "시로 바꾼다", "주제를 시로 써줘"}, false},
		{"separator in last part", "a | b | x | y", 3, []string{"a", "b", "x | y"}, false},
		{"too few", "a | b", 3, nil, true},
		{"blank part", "a |  | c", 3, nil, true},
		{"empty", "", 3, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseArgs(tc.in, tc.n)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestModulesKeyboard(t *testing.T) {
	modules := catalog.Builtin()[:3]

	t.Run("multi select numbers the selection", func(t *testing.T) {
		kb := ModulesKeyboard(modules, []string{"hookify", "expand-idea"}, true)
		require.Len(t, kb.InlineKeyboard, len(modules)+1)

		assert.Equal(t, "✅ 2. 💡 "+modules[0].Label, kb.InlineKeyboard[0][0].Text)
		assert.Equal(t, "📣 "+modules[1].Label, kb.InlineKeyboard[1][0].Text)
		assert.Equal(t, "✅ 1. 🧲 "+modules[2].Label, kb.InlineKeyboard[2][0].Text)

		assert.Equal(t, domain.ToggleModuleCallbackPrefix+"hookify", kb.InlineKeyboard[2][0].CallbackData)
		assert.Equal(t, domain.ModuleInfoCallbackPrefix+"hookify", kb.InlineKeyboard[2][1].CallbackData)

		last := kb.InlineKeyboard[len(modules)]
		assert.Equal(t, domain.MultiSelectCallback, last[0].CallbackData)
		assert.Contains(t, last[0].Text, "켜짐")
	})

	t.Run("single select marks without number", func(t *testing.T) {
		kb := ModulesKeyboard(modules, []string{"marketify"}, false)

		assert.Equal(t, "✅ 📣 "+modules[1].Label, kb.InlineKeyboard[1][0].Text)
		assert.Contains(t, kb.InlineKeyboard[len(modules)][0].Text, "꺼짐")
	})

	t.Run("callback data fits telegram limit", func(t *testing.T) {
		custom := domain.Module{ID: "custom-1700000000000", Label: "Poem"}
		kb := ModulesKeyboard([]domain.Module{custom}, nil, false)

		for _, row := range kb.InlineKeyboard {
			for _, btn := range row {
				assert.LessOrEqual(t, len(btn.CallbackData), 64)
			}
		}
	})
}

func TestModuleInfoText(t *testing.T) {
	builtin, ok := lookup("clarify-it")
	require.True(t, ok)

	text := ModuleInfoText(builtin)
	assert.True(t, strings.HasPrefix(text, "✅ "+builtin.Label+" (clarify-it)"))
	assert.Contains(t, text, builtin.Example.Input)
	assert.Contains(t, text, "• "+builtin.UsageScenarios[0])
	assert.NotContains(t, text, "지시사항")

	custom := domain.Module{
		ID:                "custom-1",
		Label:             "Poem",
		Description:       "Turns the topic into a poem",
		IsCustom:          true,
		CustomInstruction: "Write a poem",
	}
	text = ModuleInfoText(custom)
	assert.Contains(t, text, "📝 지시사항\nWrite a poem")
	assert.NotContains(t, text, "예시")
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrMissingCredential, "API 키가 없습니다"},
		{gateway.InvalidCredential(errors.New("403")), gateway.InvalidCredentialMessage},
		{&domain.ProtectedModuleError{ID: "hookify"}, "기본 제공 도구"},
		{fmt.Errorf("%w: label is required", domain.ErrInvalidModule), "label is required"},
		{domain.ErrNotReady, "/modules"},
		{domain.ErrBusy, "기다리는 중"},
		{&domain.TransportError{Err: errors.New("connection reset")}, "답변을 생성하는 중 오류가 발생했습니다: connection reset"},
		{errors.New("boom"), "오류가 발생했습니다: boom"},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Contains(t, ErrorText(tc.err), tc.want)
		})
	}
}

func lookup(id string) (domain.Module, bool) {
	for _, m := range catalog.Builtin() {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Module{}, false
}
