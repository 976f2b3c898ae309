package matchers

import (
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Command matches "/name", "/name args" and "/name@botname args".
func Command(name string) bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}

		head, _, _ := strings.Cut(strings.TrimSpace(update.Message.Text), " ")
		head, _, _ = strings.Cut(head, "\n")
		head, _, _ = strings.Cut(head, "@")

		return head == "/"+name
	}
}

// PlainText matches text messages that are not commands.
func PlainText() bot.MatchFunc {
	return func(update *models.Update) bool {
		if update.Message == nil {
			return false
		}

		text := strings.TrimSpace(update.Message.Text)
		return text != "" && !strings.HasPrefix(text, "/")
	}
}
