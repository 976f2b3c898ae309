// Package composer turns the selected modules and a topic into the prompt sent to the chat service.
package composer

import (
	"fmt"
	"strings"

	"github.com/dskvich/prompt-workspace-bot/pkg/domain"
)

const customTemplate = `다음 지시사항에 따라 작업을 수행해주세요.

[도구 이름]: %[1]s
[지시사항]:
%[2]s

[입력 데이터/맥락]:
"""
%[3]s
"""

[출력 요구사항]:
1. 위의 지시사항을 철저히 준수하세요.
2. **가독성을 위해 반드시 마크다운(Markdown) 형식을 사용하여 출력하세요.**
   - 적절한 제목(#, ##)으로 구조를 나누세요.
   - 핵심 내용은 **굵게** 강조하세요.
3. 문맥에 맞는 자연스러운 어조를 사용하세요.
`

const genericTemplate = `다음 작업을 수행해주세요: "%[1]s".

주제/맥락:
"""
%[2]s
"""

요구사항:
1. 주제를 깊이 있게 분석하세요.
2. "%[1]s"의 원칙을 콘텐츠에 적용하세요.
3. **가독성을 위해 반드시 마크다운(Markdown) 형식을 사용하여 출력하세요.**
   - 적절한 제목(#, ##, ###)으로 구조를 나누세요.
   - 핵심 내용이나 키워드는 **굵게** 강조하세요.
   - 목록(불릿 포인트, 번호)을 사용하여 내용을 정리하세요.
   - 필요하다면 표(Table)나 인용문(>)을 사용하세요.
4. 문맥에 맞는 전문적이고 매력적인 어조를 사용하세요.
5. 사용자가 한눈에 이해하기 쉽도록 깔끔하게 정리해주세요.
`

const multiHeader = `다음 주제에 대해 여러 가지 도구(관점)를 사용하여 종합적으로 분석 및 생성해주세요.

[주제/맥락]:
"""
%s
"""

[수행해야 할 작업 목록]:
다음 순서대로 각 도구의 관점에서 내용을 작성해주세요.
`

const multiSection = `
### %d. %s
- **설명**: %s
- **지시사항**: %s
`

const multiFooter = `
[전체 출력 요구사항]:
1. **반드시 마크다운(Markdown) 형식을 사용하세요.**
2. 각 도구의 결과물 사이에는 구분선(---)을 넣고, '## 1. 도구이름' 형식의 제목을 붙여주세요.
3. 각 섹션의 내용은 해당 도구의 특성을 잘 살려서 작성해주세요.
4. 전체적으로 내용이 유기적으로 연결되도록 구성해주세요.
`

// Compose builds the prompt for modules in the given order. It returns "" when no module is given.
func Compose(modules []domain.Module, topic string) string {
	switch len(modules) {
	case 0:
		return ""
	case 1:
		m := modules[0]
		if m.HasInstruction() {
			return fmt.Sprintf(customTemplate, m.Label, m.CustomInstruction, topic)
		}
		return fmt.Sprintf(genericTemplate, m.Label, topic)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, multiHeader, topic)
	for i, m := range modules {
		fmt.Fprintf(&sb, multiSection, i+1, m.Label, m.Description, Instruction(m))
	}
	sb.WriteString(multiFooter)

	return sb.String()
}

// Instruction is what a module asks for when combined with others.
func Instruction(m domain.Module) string {
	if m.HasInstruction() {
		return m.CustomInstruction
	}
	return m.Label + "의 관점에서 주제를 분석하고 콘텐츠를 생성하세요."
}
