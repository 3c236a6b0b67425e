package handlers

import "log"

// DebugLog emits verbose relay diagnostics when enabled (OLLAMA_DEBUG). It is
// the single place relay control flow reports progress; disabling it never
// changes behavior, only what gets logged.
type DebugLog struct {
	enabled bool
}

func NewDebugLog(enabled bool) *DebugLog {
	return &DebugLog{enabled: enabled}
}

func (d *DebugLog) RequestStart(base, model string, messageCount int) {
	if d == nil || !d.enabled {
		return
	}
	log.Printf("[ollama] relay start base=%s model=%s messages=%d", base, model, messageCount)
}

func (d *DebugLog) BackendResult(textLen, advisedModels int) {
	if d == nil || !d.enabled {
		return
	}
	log.Printf("[ollama] relay ok text_len=%d advised_models=%d", textLen, advisedModels)
}

func (d *DebugLog) Error(stage string, err error) {
	if d == nil || !d.enabled {
		return
	}
	log.Printf("[ollama] relay %s: %v", stage, err)
}
