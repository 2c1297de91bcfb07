// Package llm abstracts the text-generation service behind a prompt-string
// contract so pipelines can run against a mock.
package llm

import "context"

// Generator produces text from a prompt. The output is untrusted: it may be
// slow to arrive and may not match the marker/JSON contract the prompt asked
// for. Downstream parsing handles that defensively.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
