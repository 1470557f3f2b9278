package provider

import (
	"context"
	"strings"

	ollama "github.com/ollama/ollama/api"
)

// OllamaAPI is the slice of the Ollama SDK client this adapter uses,
// satisfied by *ollama.Client and mockable in tests.
type OllamaAPI interface {
	Chat(ctx context.Context, req *ollama.ChatRequest, fn ollama.ChatResponseFunc) error
	List(ctx context.Context) (*ollama.ListResponse, error)
}

// OllamaClient implements Client against an Ollama server's chat API.
type OllamaClient struct {
	api OllamaAPI
}

// NewOllamaClient creates an OllamaClient from the environment, honoring
// OLLAMA_HOST.
func NewOllamaClient() (*OllamaClient, error) {
	api, err := ollama.ClientFromEnvironment()
	if err != nil {
		return nil, err
	}
	return &OllamaClient{api: api}, nil
}

// NewOllamaClientFromAPI creates an OllamaClient from an existing
// OllamaAPI. Used for testing with a mock.
func NewOllamaClientFromAPI(api OllamaAPI) *OllamaClient {
	return &OllamaClient{api: api}
}

// ListModels implements Client.ListModels using the Ollama tag list.
func (o *OllamaClient) ListModels(ctx context.Context) ([]Model, error) {
	resp, err := o.api.List(ctx)
	if err != nil {
		return nil, &ProviderError{Provider: o.Name(), Err: err}
	}
	models := make([]Model, 0, len(resp.Models))
	for _, m := range resp.Models {
		models = append(models, Model{
			ID:      m.Name,
			Created: m.ModifiedAt.Unix(),
			OwnedBy: "ollama",
		})
	}
	return models, nil
}

// CreateCompletion implements Client.CreateCompletion using the
// non-streaming Chat API, accumulating the response into one choice.
func (o *OllamaClient) CreateCompletion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	falseVar := false
	chatReq := &ollama.ChatRequest{
		Model:   req.Model,
		Stream:  &falseVar,
		Options: map[string]interface{}{},
	}
	for _, msg := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, ollama.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}
	if req.Temperature != nil {
		chatReq.Options["temperature"] = *req.Temperature
	}
	if req.MaxTokens > 0 {
		chatReq.Options["num_predict"] = req.MaxTokens
	}

	var content strings.Builder
	var doneReason string
	var usage Usage
	err := o.api.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		if resp.Done {
			doneReason = resp.DoneReason
			usage = Usage{
				PromptTokens:     resp.Metrics.PromptEvalCount,
				CompletionTokens: resp.Metrics.EvalCount,
				TotalTokens:      resp.Metrics.PromptEvalCount + resp.Metrics.EvalCount,
			}
		}
		return nil
	})
	if err != nil {
		return nil, &ProviderError{Provider: o.Name(), Err: err}
	}
	if doneReason == "" {
		doneReason = "stop"
	}

	return &CompletionResponse{
		Choices: []Choice{
			{
				Message:      Message{Role: RoleAssistant, Content: content.String()},
				FinishReason: doneReason,
			},
		},
		Usage: usage,
	}, nil
}

// CreateChatCompletion implements Client.CreateChatCompletion.
func (o *OllamaClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	return chatCompletion(ctx, o, req)
}

// Name implements Client.Name.
func (o *OllamaClient) Name() string {
	return "ollama"
}
