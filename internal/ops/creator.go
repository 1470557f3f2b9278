package ops

import (
	"context"
	"fmt"

	"github.com/quillnotes/quill/internal/provider"
)

// Creator generates and reworks prose with one client and one model,
// optionally biased toward a writing-style exemplar.
type Creator struct {
	client provider.Client
	model  string
	style  string
}

// NewCreator binds a creator to a client and model. style may be empty,
// in which case prompts carry no style reference at all.
func NewCreator(client provider.Client, model, style string) *Creator {
	return &Creator{client: client, model: model, style: style}
}

// RewordContent returns text corrected and rephrased, with no preamble.
func (c *Creator) RewordContent(ctx context.Context, text string) (string, error) {
	return c.chat(ctx, c.withStyle(rewordPrompt), text)
}

// GenerateParagraph continues text as exactly one narrative paragraph.
func (c *Creator) GenerateParagraph(ctx context.Context, text string) (string, error) {
	return c.chat(ctx, c.withStyle(paragraphPrompt), text)
}

// GenerateOutline produces a structured narrative outline from text.
func (c *Creator) GenerateOutline(ctx context.Context, text string) (string, error) {
	return c.chat(ctx, outlinePrompt, text)
}

func (c *Creator) withStyle(prompt string) string {
	if c.style == "" {
		return prompt
	}
	return prompt + fmt.Sprintf(styleClause, c.style)
}

func (c *Creator) chat(ctx context.Context, systemPrompt, text string) (string, error) {
	return c.client.CreateChatCompletion(ctx, provider.ChatRequest{
		Model:        c.model,
		Message:      text,
		SystemPrompt: systemPrompt,
	})
}
