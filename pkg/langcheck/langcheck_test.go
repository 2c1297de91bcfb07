package langcheck

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "plain markup",
			html: "<h3 style='color:red'>전기장판 고르는 법</h3><p>따뜻한  겨울을 위한 선택</p>",
			want: "전기장판 고르는 법 따뜻한 겨울을 위한 선택",
		},
		{
			name: "style block dropped",
			html: "<style>.blink-border { border: 3px solid red; }</style><div>품절 임박</div>",
			want: "품절 임박",
		},
		{
			name: "no markup",
			html: "그냥 텍스트",
			want: "그냥 텍스트",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.html); got != tt.want {
				t.Errorf("StripTags() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsKorean(t *testing.T) {
	c := newTestChecker(t)

	korean := "<h1>겨울철 전기장판 추천</h1><p>추운 겨울, 난방비 걱정 없이 따뜻하게 보내는 방법을 정리했습니다. 전기장판은 소비전력 대비 발열 효율이 높아 1인 가구에 특히 유리합니다.</p>"
	if !c.IsKorean(korean) {
		t.Error("IsKorean() = false for Korean article, want true")
	}

	english := "<h1>Best electric blankets</h1><p>We reviewed the ten most popular electric blankets on the market and ranked them by warmth, safety features, and overall value for money.</p>"
	if c.IsKorean(english) {
		t.Error("IsKorean() = true for English article, want false")
	}
}

func TestIsKoreanShortTextPasses(t *testing.T) {
	c := newTestChecker(t)

	for _, html := range []string{"", "<p>ok</p>", "짧음"} {
		if !c.IsKorean(html) {
			t.Errorf("IsKorean(%q) = false, want true for short text", html)
		}
	}
}

func TestWarnOnlyLogsOnMismatch(t *testing.T) {
	var buf strings.Builder
	c := New(slog.New(slog.NewTextHandler(&buf, nil)))

	c.Warn("전기장판", "<p>겨울철 난방비를 아끼는 가장 확실한 방법은 전기장판입니다. 전기장판은 소비전력이 낮고 직접 난방이라 효율이 좋습니다.</p>")
	if buf.Len() != 0 {
		t.Errorf("Warn() logged for Korean article: %s", buf.String())
	}

	c.Warn("blanket", "<p>This is a long English paragraph that should clearly be flagged as not Korean by the language detector during validation.</p>")
	if !strings.Contains(buf.String(), "blanket") {
		t.Errorf("Warn() did not log for English article, log = %s", buf.String())
	}
}
