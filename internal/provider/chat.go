package provider

import "context"

// chatCompletion implements the CreateChatCompletion contract shared by
// every adapter: build the message set (system prompt first when present),
// delegate to CreateCompletion, and take the first choice's text.
func chatCompletion(ctx context.Context, c Client, req ChatRequest) (string, error) {
	var messages []Message
	if req.SystemPrompt != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: req.SystemPrompt})
	}
	messages = append(messages, Message{Role: RoleUser, Content: req.Message})

	temperature := req.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}

	resp, err := c.CreateCompletion(ctx, CompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", &ResponseShapeError{Provider: c.Name(), Reason: "no choices returned"}
	}
	return resp.Choices[0].Message.Content, nil
}
