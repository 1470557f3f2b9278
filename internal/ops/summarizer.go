// Package ops holds the prompt-templated operations built on top of the
// provider abstraction. Each operation is a pure delegation: build a
// prompt, issue one chat completion, return the result unmodified.
package ops

import (
	"context"

	"github.com/quillnotes/quill/internal/provider"
)

// Summarizer produces structured Markdown summaries with one client and
// one model.
type Summarizer struct {
	client provider.Client
	model  string
}

// NewSummarizer binds a summarizer to a client and model.
func NewSummarizer(client provider.Client, model string) *Summarizer {
	return &Summarizer{client: client, model: model}
}

// Summarize returns a three-section Markdown summary of text.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	return s.client.CreateChatCompletion(ctx, provider.ChatRequest{
		Model:        s.model,
		Message:      text,
		SystemPrompt: summarizePrompt,
	})
}
