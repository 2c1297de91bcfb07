package llm

import (
	"strings"
	"testing"
)

func TestBuildNaverSalesPrompt(t *testing.T) {
	got := BuildNaverSalesPrompt("무선청소기", "다이슨 V15", "http://x.co", "기사: a\n내용: b\n\n")

	for _, want := range []string{"무선청소기", "다이슨 V15", "http://x.co", "[TITLE]", "[[CTA_1]]", "기사: a"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt lacks %q", want)
		}
	}
	if strings.Contains(got, "JSON") {
		t.Error("free-text prompt must not ask for JSON")
	}
}

func TestStructuredPromptsAskForJSON(t *testing.T) {
	prompts := map[string]string{
		"naver-info":    BuildNaverInfoPrompt("비타민", "출처: a\n내용: b\n\n"),
		"tistory-info":  BuildTistoryInfoPrompt("비타민", "출처: a\n내용: b\n\n"),
		"tistory-sales": BuildTistorySalesPrompt("비타민", "상품", "http://x.co", "기사: a\n내용: b\n\n"),
	}
	for name, p := range prompts {
		if !strings.Contains(p, "JSON") {
			t.Errorf("%s prompt does not ask for JSON", name)
		}
		if !strings.Contains(p, `"title"`) || !strings.Contains(p, `"content"`) {
			t.Errorf("%s prompt does not spell out the payload shape", name)
		}
	}

	if !strings.Contains(prompts["naver-info"], "[[H3]]") {
		t.Error("naver-info prompt must request [[H3]] markers")
	}
	if !strings.Contains(prompts["tistory-sales"], "[CTA_1]") {
		t.Error("tistory-sales prompt must request [CTA_n] markers")
	}
}

func TestMockGeneratorMatchesContracts(t *testing.T) {
	m := Mock{}

	free, err := m.Generate(t.Context(), BuildNaverSalesPrompt("kw", "p", "l", "facts"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(free, "[TITLE]") {
		t.Errorf("mock free-text output lacks TITLE marker: %q", free)
	}

	structured, err := m.Generate(t.Context(), BuildTistoryInfoPrompt("kw", "facts"))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.Contains(structured, `"title"`) {
		t.Errorf("mock structured output lacks JSON payload: %q", structured)
	}
}
