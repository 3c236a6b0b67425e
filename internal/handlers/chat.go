package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chatrelay-backend/internal/models"
	"chatrelay-backend/internal/ollama"
)

const (
	// relayTimeout bounds the outbound call. Local inference can be slow,
	// but the inbound request must never hang indefinitely.
	relayTimeout = 45 * time.Second

	// maxAdvisedModels caps the advisory model list on an unresolved model.
	maxAdvisedModels = 10

	providerName = "ollama"
)

type ChatHandler struct {
	client  *ollama.Client
	baseURL string // configured default, may be empty
	timeout time.Duration
	debug   *DebugLog
}

func NewChatHandler(client *ollama.Client, baseURL string, debug *DebugLog) *ChatHandler {
	return &ChatHandler{
		client:  client,
		baseURL: baseURL,
		timeout: relayTimeout,
		debug:   debug,
	}
}

// Completions relays one chat request to the inference daemon and returns the
// normalized result. Exactly one outbound call per inbound request.
func (h *ChatHandler) Completions(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	base := ollama.ResolveBaseURL(req.BaseURL, h.baseURL)
	h.debug.RequestStart(base, req.Model, len(req.Messages))

	// The deadline is released on every exit path; it can never fire after
	// the response has been written.
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	raw, err := h.client.Chat(ctx, base, req.Model, req.Messages)
	if err != nil {
		writeProviderError(w, h.debug, err)
		return
	}

	resp := models.ChatResponse{
		Text: ollama.ExtractText(raw),
		Raw:  raw,
	}
	if names := ollama.ModelNames(raw); len(names) > 0 && !hasModel(names, req.Model) {
		if len(names) > maxAdvisedModels {
			names = names[:maxAdvisedModels]
		}
		resp.AvailableModels = names
	}
	h.debug.BackendResult(len(resp.Text), len(resp.AvailableModels))

	writeJSON(w, http.StatusOK, resp)
}

// hasModel reports whether the requested model matches an advertised name.
// The comparison is case-insensitive on both sides; the daemon imposes no
// case-sensitive naming convention.
func hasModel(names []string, model string) bool {
	for _, name := range names {
		if strings.EqualFold(name, model) {
			return true
		}
	}
	return false
}

// writeProviderError maps an outbound failure onto the caller-facing error
// surface: backend non-2xx → 502, deadline → 504, anything else → 500. The
// backend's own status code is never passed through verbatim.
func writeProviderError(w http.ResponseWriter, debug *DebugLog, err error) {
	var statusErr *ollama.StatusError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		debug.Error("timeout", err)
		writeJSON(w, http.StatusGatewayTimeout, models.ProviderError{
			Error:    "Ollama request timed out",
			Provider: providerName,
			Code:     http.StatusGatewayTimeout,
		})
	case errors.As(err, &statusErr):
		debug.Error("backend rejected", err)
		writeJSON(w, http.StatusBadGateway, models.ProviderError{
			Error:    fmt.Sprintf("Ollama error: %s", statusErr.Status),
			Details:  statusErr.Body,
			Provider: providerName,
			Code:     http.StatusBadGateway,
		})
	default:
		debug.Error("transport", err)
		writeJSON(w, http.StatusInternalServerError, models.ProviderError{
			Error:    err.Error(),
			Provider: providerName,
		})
	}
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(code, message string, r *http.Request) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	}
}
