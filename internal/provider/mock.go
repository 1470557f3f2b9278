package provider

import "context"

// MockClient is a mock implementation of Client for testing. It records
// every request it receives so tests can assert on message construction.
type MockClient struct {
	// Response is returned from CreateChatCompletion and as the first
	// choice of CreateCompletion.
	Response string
	// Err, when set, is returned from every call.
	Err error
	// Models is returned from ListModels.
	Models []Model

	// CompletionRequests records each CreateCompletion input in order.
	CompletionRequests []CompletionRequest
	// ChatRequests records each CreateChatCompletion input in order.
	ChatRequests []ChatRequest
}

// ListModels implements Client.ListModels for the mock.
func (m *MockClient) ListModels(ctx context.Context) ([]Model, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Models, nil
}

// CreateCompletion implements Client.CreateCompletion for the mock.
func (m *MockClient) CreateCompletion(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.CompletionRequests = append(m.CompletionRequests, req)
	if m.Err != nil {
		return nil, m.Err
	}
	return &CompletionResponse{
		ID: "mock",
		Choices: []Choice{
			{
				Message:      Message{Role: RoleAssistant, Content: m.Response},
				FinishReason: "stop",
			},
		},
	}, nil
}

// CreateChatCompletion implements Client.CreateChatCompletion for the mock.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	m.ChatRequests = append(m.ChatRequests, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Name implements Client.Name for the mock.
func (m *MockClient) Name() string {
	return "mock"
}
