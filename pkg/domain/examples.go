package domain

// TopicExamples are offered as ready-made topics.
var TopicExamples = []string{
	"초보자를 위한 퍼스널 브랜딩 5단계 가이드",
	"AI 도구로 업무 생산성을 200% 높이는 노하우",
	"지속 가능한 다이어트 식단과 운동 루틴 짜기",
	"매출을 부르는 인스타그램 마케팅 카피라이팅",
	"번아웃을 극복하고 다시 동기부여를 얻는 방법",
}
