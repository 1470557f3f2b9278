package provider

import "context"

// Message roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Model describes one selectable model exposed by a provider.
type Model struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// Message is a single entry in a conversation, ordered oldest first.
// A system message, if present, precedes the first user message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the common request shape. The OpenAI-compatible
// adapter serializes it verbatim; other adapters translate it to their
// own wire format during request construction.
type CompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// Choice is one generated alternative within a completion response.
type Choice struct {
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage carries per-call token accounting. Providers that do not report
// usage leave all counters at zero.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// CompletionResponse is the normalized response envelope. Choices is
// non-empty on success; callers read Choices[0].Message.Content as the
// result text.
type CompletionResponse struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// ChatRequest is the input to the CreateChatCompletion convenience
// wrapper. A zero Temperature means the DefaultTemperature; a zero
// MaxTokens leaves the field to the provider's default.
type ChatRequest struct {
	Model        string
	Message      string
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

// DefaultTemperature is applied when ChatRequest.Temperature is unset.
const DefaultTemperature = 0.7

// Client defines a provider-agnostic interface for completion APIs.
// Implementations hold an API key and base URL, carry no mutable
// cross-call state, and do not cache responses.
type Client interface {
	// ListModels queries the provider for available models. Adapters for
	// providers without a listing endpoint return a static catalog.
	ListModels(ctx context.Context) ([]Model, error)
	// CreateCompletion performs one stateless request/response exchange.
	CreateCompletion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// CreateChatCompletion assembles a CompletionRequest from req and
	// returns the first choice's text content.
	CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error)
	// Name returns the provider name for display purposes.
	Name() string
}
