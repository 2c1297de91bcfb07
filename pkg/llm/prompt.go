package llm

import (
	"fmt"
	"strings"
)

// Prompt builders for the four publishing variants. Each template embeds the
// grounding context built by the aggregator and spells out the marker-token
// contract the render pipeline expects back.

// BuildNaverSalesPrompt asks for free-form marked-up text: [TITLE] headings
// and [[CTA_n]] call-to-action markers.
func BuildNaverSalesPrompt(keyword, product, link, facts string) string {
	var b strings.Builder
	b.WriteString("너는 네이버 블로그 수익형 포스팅 전문 작가다.\n")
	fmt.Fprintf(&b, "키워드: %s\n상품명: %s\n제휴 링크: %s\n", keyword, product, link)
	fmt.Fprintf(&b, "\n[실시간 검색 자료]\n%s\n", facts)
	b.WriteString(`
요구사항:
- 2500자 이상의 한국어 원고를 작성한다.
- 소제목은 반드시 [TITLE]소제목[/TITLE] 형식으로 감싼다.
- 구매 유도 위치에 [[CTA_1]], [[CTA_2]] 마커를 넣는다.
- 강조는 <b> 태그를 사용한다.
- 검색 자료가 "검색 정보 없음"이면 최신 뉴스 인용 없이 일반 지식으로만 작성한다.
`)
	return b.String()
}

// BuildNaverInfoPrompt asks for the structured JSON payload with [[H3]]
// heading markers and [IMG_1]~[IMG_3] image placeholders.
func BuildNaverInfoPrompt(keyword, facts string) string {
	var b strings.Builder
	b.WriteString("너는 네이버 블로그 정보성 칼럼 전문 작가다.\n")
	fmt.Fprintf(&b, "주제: %s\n", keyword)
	fmt.Fprintf(&b, "\n[실시간 검색 자료]\n%s\n", facts)
	b.WriteString(`
다른 설명 없이 JSON 객체 하나만 출력한다:
{"title": "글 제목", "content": "HTML 본문. 소제목은 [[H3]]제목[[/H3]], 이미지 위치는 [IMG_1]~[IMG_3]", "img_queries": ["이미지 검색어 영문 3개"], "hashtags": "#태그"}
검색 자료가 "검색 정보 없음"이면 최신 정보 인용 없이 일반 지식으로만 작성한다.
`)
	return b.String()
}

// BuildTistoryInfoPrompt asks for the structured payload with plain <h3>
// headings, restyled later by the pipeline.
func BuildTistoryInfoPrompt(keyword, facts string) string {
	var b strings.Builder
	b.WriteString("너는 티스토리 정보성 블로그 전문 작가다.\n")
	fmt.Fprintf(&b, "주제: %s\n", keyword)
	fmt.Fprintf(&b, "\n[실시간 검색 자료]\n%s\n", facts)
	b.WriteString(`
다른 설명 없이 JSON 객체 하나만 출력한다:
{"title": "글 제목", "content": "HTML 본문. 소제목은 <h3>제목</h3> 태그 사용", "img_queries": [], "hashtags": "#태그"}
`)
	return b.String()
}

// BuildTistorySalesPrompt asks for the structured payload with <h3> headings
// and [CTA_1], [CTA_2] markers for the narrative call-to-action blocks.
func BuildTistorySalesPrompt(keyword, product, link, facts string) string {
	var b strings.Builder
	b.WriteString("너는 티스토리 수익형 블로그 전문 작가다.\n")
	fmt.Fprintf(&b, "키워드: %s\n상품명: %s\n제휴 링크: %s\n", keyword, product, link)
	fmt.Fprintf(&b, "\n[실시간 검색 자료]\n%s\n", facts)
	b.WriteString(`
다른 설명 없이 JSON 객체 하나만 출력한다:
{"title": "글 제목", "content": "HTML 본문. 소제목은 <h3>제목</h3>, 구매 유도 위치에 [CTA_1], [CTA_2]", "img_queries": [], "hashtags": "#태그"}
`)
	return b.String()
}
