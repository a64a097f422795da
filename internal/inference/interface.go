package inference

import (
	"context"
	"encoding/json"
	"strings"
	"time"
)

// Generator is the capability interface for the optional generative-text
// provider. Callers must treat every call as best-effort: any error, timeout,
// or malformed output means "fall back to deterministic templates".
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const (
	DefaultMaxRetryAttempts = 2

	// DefaultTimeout bounds a single generative call. The conversational path
	// must never block on the provider; a timeout is treated as a failure.
	DefaultTimeout = 10 * time.Second
)

// DecodeJSON decodes provider output into v, tolerating a Markdown code fence
// around the JSON payload. Providers routinely wrap structured answers in
// ```json fences even when told not to.
func DecodeJSON(content string, v any) error {
	return json.Unmarshal([]byte(StripCodeFence(content)), v)
}

// StripCodeFence removes a surrounding ``` or ```json fence, if present.
func StripCodeFence(content string) string {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
