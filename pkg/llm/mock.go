package llm

import (
	"context"
	"fmt"
	"strings"
)

// Mock is a no-network Generator for dry runs and tests. It emits output
// that satisfies both the free-text marker contract and the structured JSON
// contract, so every render variant can run against it.
type Mock struct{}

func (Mock) Generate(_ context.Context, prompt string) (string, error) {
	if strings.Contains(strings.ToLower(prompt), "json") {
		return `{"title":"모의 생성 제목","content":"<h3>개요</h3><p>모의 본문입니다.</p>[[H3]]핵심 정리[[/H3]]<p>요약.</p>[IMG_1][CTA_1]","img_queries":["sample"],"hashtags":"#모의"}`, nil
	}
	return fmt.Sprintf("[TITLE]모의 소제목[/TITLE]\n모의 본문입니다.\n[[CTA_1]]\n\n프롬프트 길이: %d자", len([]rune(prompt))), nil
}
