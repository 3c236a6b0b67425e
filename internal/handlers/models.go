package handlers

import (
	"context"
	"net/http"
	"time"

	"chatrelay-backend/internal/models"
	"chatrelay-backend/internal/ollama"
)

type ModelsHandler struct {
	client  *ollama.Client
	baseURL string
	timeout time.Duration
	debug   *DebugLog
}

func NewModelsHandler(client *ollama.Client, baseURL string, debug *DebugLog) *ModelsHandler {
	return &ModelsHandler{
		client:  client,
		baseURL: baseURL,
		timeout: relayTimeout,
		debug:   debug,
	}
}

// List relays the daemon's model listing. It shares the chat relay's deadline
// and error mapping; the base URL can be overridden per request via the
// baseUrl query parameter.
func (h *ModelsHandler) List(w http.ResponseWriter, r *http.Request) {
	base := ollama.ResolveBaseURL(r.URL.Query().Get("baseUrl"), h.baseURL)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	raw, err := h.client.Tags(ctx, base)
	if err != nil {
		writeProviderError(w, h.debug, err)
		return
	}

	names := ollama.ModelNames(raw)
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, models.ModelsResponse{Models: names})
}
