package models

import "encoding/json"

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // forwarded verbatim, not validated
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the relay endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Model    string        `json:"model"`
	BaseURL  string        `json:"baseUrl,omitempty"`
}

// ChatResponse is the normalized reply returned to the caller. Raw carries
// the backend body untouched; AvailableModels is advisory and only present
// when the requested model did not match any model the backend advertised.
type ChatResponse struct {
	Text            string          `json:"text"`
	Raw             json.RawMessage `json:"raw"`
	AvailableModels []string        `json:"availableModels,omitempty"`
}

// ModelsResponse lists the model names advertised by the backend.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// ProviderError is the error body for failures while talking to the
// inference backend.
type ProviderError struct {
	Error    string `json:"error"`
	Details  string `json:"details,omitempty"`
	Provider string `json:"provider"`
	Code     int    `json:"code,omitempty"`
}

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
