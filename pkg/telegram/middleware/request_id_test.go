package middleware

import (
	"testing"

	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
)

func TestChatOf(t *testing.T) {
	tests := []struct {
		name        string
		update      *models.Update
		wantChat    int64
		wantTopic   int
		wantMatched bool
	}{
		{
			name:        "message",
			update:      &models.Update{Message: &models.Message{Chat: models.Chat{ID: 10}, MessageThreadID: 3}},
			wantChat:    10,
			wantTopic:   3,
			wantMatched: true,
		},
		{
			name: "callback",
			update: &models.Update{CallbackQuery: &models.CallbackQuery{
				Message: models.MaybeInaccessibleMessage{Message: &models.Message{Chat: models.Chat{ID: 20}}},
			}},
			wantChat:    20,
			wantMatched: true,
		},
		{
			name:   "inaccessible callback message",
			update: &models.Update{CallbackQuery: &models.CallbackQuery{}},
		},
		{
			name:   "other update",
			update: &models.Update{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chatID, topicID, ok := ChatOf(tc.update)
			assert.Equal(t, tc.wantMatched, ok)
			assert.Equal(t, tc.wantChat, chatID)
			assert.Equal(t, tc.wantTopic, topicID)
		})
	}
}
