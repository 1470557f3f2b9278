package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	anthropicBaseURL    = "https://api.anthropic.com/v1"
	anthropicAPIVersion = "2023-06-01"

	// The messages endpoint rejects requests without max_tokens.
	anthropicDefaultMaxTokens = 4096
)

// anthropicModels is the static catalog returned by ListModels; the
// Anthropic API has no model-listing endpoint this adapter uses.
var anthropicModels = []Model{
	{ID: "claude-3-haiku-20240307", OwnedBy: "anthropic"},
	{ID: "claude-3-5-sonnet-latest", OwnedBy: "anthropic"},
}

// AnthropicClient implements Client against the Anthropic Messages API,
// normalizing its response shape into the common envelope.
type AnthropicClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAnthropicClient creates an Anthropic adapter. An empty baseURL
// defaults to api.anthropic.com.
func NewAnthropicClient(apiKey, baseURL string) *AnthropicClient {
	if baseURL == "" {
		baseURL = anthropicBaseURL
	}
	return &AnthropicClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

type anthropicRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	System      string    `json:"system,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

// ListModels implements Client.ListModels with a fixed catalog; no network
// call is made.
func (a *AnthropicClient) ListModels(ctx context.Context) ([]Model, error) {
	models := make([]Model, len(anthropicModels))
	copy(models, anthropicModels)
	return models, nil
}

// CreateCompletion implements Client.CreateCompletion via POST
// {base}/messages. System messages are hoisted out of the message array
// into the top-level system field; the response's content blocks are
// normalized into the common choices envelope with a synthesized
// finish_reason and zero usage, since the wire format carries neither.
func (a *AnthropicClient) CreateCompletion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	payload := anthropicRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if payload.MaxTokens == 0 {
		payload.MaxTokens = anthropicDefaultMaxTokens
	}
	for _, msg := range req.Messages {
		if msg.Role == RoleSystem {
			payload.System = msg.Content
			continue
		}
		payload.Messages = append(payload.Messages, msg)
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", a.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicAPIVersion)

	httpResp, err := a.client.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, &ProviderError{Provider: a.Name(), Status: httpResp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var resp anthropicResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, &ResponseShapeError{Provider: a.Name(), Reason: fmt.Sprintf("parse response: %v", err)}
	}
	if len(resp.Content) == 0 {
		return nil, &ResponseShapeError{Provider: a.Name(), Reason: "no content blocks returned"}
	}

	return &CompletionResponse{
		Choices: []Choice{
			{
				Message:      Message{Role: RoleAssistant, Content: resp.Content[0].Text},
				FinishReason: "stop",
			},
		},
	}, nil
}

// CreateChatCompletion implements Client.CreateChatCompletion.
func (a *AnthropicClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	return chatCompletion(ctx, a, req)
}

// Name implements Client.Name.
func (a *AnthropicClient) Name() string {
	return "anthropic"
}
