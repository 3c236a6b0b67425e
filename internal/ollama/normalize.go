package ollama

import "encoding/json"

// NoResponsePlaceholder is returned when a successful body matches none of
// the known answer shapes. A missing answer is graceful degradation, not an
// error.
const NoResponsePlaceholder = "No response generated."

// The daemon's response schema is not contractually fixed across its own
// versions, so each known shape is decoded independently and the first match
// wins. A shape that fails to decode never masks the ones after it.

type nestedMessageBody struct {
	Message *struct {
		Content *string `json:"content"`
	} `json:"message"`
}

type flatResponseBody struct {
	Response *string `json:"response"`
}

// ExtractText pulls the display-ready answer out of a successful chat body:
// a nested message.content string first, then a flat response string, then
// NoResponsePlaceholder.
func ExtractText(raw json.RawMessage) string {
	var nested nestedMessageBody
	if json.Unmarshal(raw, &nested) == nil && nested.Message != nil && nested.Message.Content != nil {
		return *nested.Message.Content
	}
	var flat flatResponseBody
	if json.Unmarshal(raw, &flat) == nil && flat.Response != nil {
		return *flat.Response
	}
	return NoResponsePlaceholder
}

// ModelNames extracts the advertised model list from any of the daemon's
// known listing shapes: a bare array, a "models" field, or a "data" field.
// Entries without a usable string name are dropped; order is preserved.
func ModelNames(raw json.RawMessage) []string {
	var entries []json.RawMessage
	if json.Unmarshal(raw, &entries) != nil {
		var wrapped struct {
			Models []json.RawMessage `json:"models"`
			Data   []json.RawMessage `json:"data"`
		}
		if json.Unmarshal(raw, &wrapped) != nil {
			return nil
		}
		switch {
		case wrapped.Models != nil:
			entries = wrapped.Models
		case wrapped.Data != nil:
			entries = wrapped.Data
		default:
			return nil
		}
	}

	var names []string
	for _, entry := range entries {
		var descriptor struct {
			Name *string `json:"name"`
		}
		if json.Unmarshal(entry, &descriptor) != nil || descriptor.Name == nil || *descriptor.Name == "" {
			continue
		}
		names = append(names, *descriptor.Name)
	}
	return names
}
