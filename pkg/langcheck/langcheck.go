// Package langcheck verifies that generated articles actually came out in
// Korean. The model occasionally drifts into English mid-document, so the
// orchestrator runs every rendered article through a detector and logs a
// warning on mismatch. The check never blocks a batch.
package langcheck

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/pemistahl/lingua-go"
)

var (
	styleRe = regexp.MustCompile(`(?s)<style[^>]*>.*?</style>`)
	tagRe   = regexp.MustCompile(`<[^>]*>`)
)

// Checker wraps a language detector restricted to the languages the model
// realistically drifts into.
type Checker struct {
	detector lingua.LanguageDetector
	logger   *slog.Logger
}

func New(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.Korean, lingua.English, lingua.Japanese, lingua.Chinese).
		Build()
	return &Checker{
		detector: detector,
		logger:   logger,
	}
}

// IsKorean reports whether html reads as Korean once markup is stripped.
// Short or empty documents pass: there is not enough text to judge.
func (c *Checker) IsKorean(html string) bool {
	text := StripTags(html)
	if len([]rune(text)) < 20 {
		return true
	}

	lang, ok := c.detector.DetectLanguageOf(text)
	if !ok {
		return true
	}
	return lang == lingua.Korean
}

// Warn logs a warning for articles that fail the Korean check.
func (c *Checker) Warn(keyword, html string) {
	if c.IsKorean(html) {
		return
	}
	c.logger.Warn("generated article does not read as Korean", "keyword", keyword)
}

// StripTags removes HTML markup and collapses whitespace, leaving the plain
// text the detector should judge.
func StripTags(html string) string {
	text := styleRe.ReplaceAllString(html, " ")
	text = tagRe.ReplaceAllString(text, " ")
	return strings.Join(strings.Fields(text), " ")
}
