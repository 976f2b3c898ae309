package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func Start() bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		greeting := `👋 안녕하세요! 프롬프트 작업 공간 봇입니다.

🧰 /modules: 도구 선택 (ℹ️ 버튼으로 설명 보기)
🔀 /multi: 다중 선택 켜기/끄기
📝 /topic 주제: 주제 입력 (그냥 메시지를 보내도 됩니다)
💡 /examples: 빠른 예시로 주제 채우기
✨ /generate: 프롬프트 만들기
▶️ /run: 만든 프롬프트로 대화 시작
🧹 /clear: 처음부터 다시
💾 /export: 대화 내용을 파일로 받기
🔑 /key API키: API 키 저장 (/key - 로 삭제)
🎨 /theme: 테마 바꾸기

🛠️ 나만의 도구
/newmodule 이름 | 설명 | 지시사항
/editmodule id | 이름 | 설명 | 지시사항
/deletemodule id

대화가 시작된 뒤에는 메시지를 보내면 이어서 질문할 수 있어요. 🚀`

		chatOf(b, update).send(ctx, greeting)
	}
}
