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

// Well-known base URLs for the OpenAI-compatible adapter.
const (
	OpenAIBaseURL = "https://api.openai.com/v1"
	VeniceBaseURL = "https://api.venice.ai/api/v1"
)

// OpenAIClient implements Client against any OpenAI-compatible chat
// completions API. Works with OpenAI, Venice, vLLM, llama.cpp server, and
// other compatible endpoints; the base URL and credentials are fixed per
// instance, so the same adapter drives multiple backends.
type OpenAIClient struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenAIClient creates an adapter for one OpenAI-compatible backend.
// An empty baseURL defaults to api.openai.com.
func NewOpenAIClient(name, apiKey, baseURL string) *OpenAIClient {
	if baseURL == "" {
		baseURL = OpenAIBaseURL
	}
	return &OpenAIClient{
		name:    name,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

type openAIModelList struct {
	Data []Model `json:"data"`
}

// ListModels implements Client.ListModels via GET {base}/models.
func (o *OpenAIClient) ListModels(ctx context.Context) ([]Model, error) {
	body, err := o.do(ctx, http.MethodGet, "/models", nil)
	if err != nil {
		return nil, err
	}

	var list openAIModelList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &ResponseShapeError{Provider: o.name, Reason: fmt.Sprintf("parse model list: %v", err)}
	}
	return list.Data, nil
}

// CreateCompletion implements Client.CreateCompletion via
// POST {base}/chat/completions. The request is serialized verbatim and the
// response already matches the normalized envelope.
func (o *OpenAIClient) CreateCompletion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	body, err := o.do(ctx, http.MethodPost, "/chat/completions", req)
	if err != nil {
		return nil, err
	}

	var resp CompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &ResponseShapeError{Provider: o.name, Reason: fmt.Sprintf("parse completion: %v", err)}
	}
	return &resp, nil
}

// CreateChatCompletion implements Client.CreateChatCompletion.
func (o *OpenAIClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	return chatCompletion(ctx, o, req)
}

// Name implements Client.Name.
func (o *OpenAIClient) Name() string {
	return o.name
}

func (o *OpenAIClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		bodyBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, o.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: o.name, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: o.name, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{Provider: o.name, Status: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}
