package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "no fence",
			content:  `{"title": "Lesson"}`,
			expected: `{"title": "Lesson"}`,
		},
		{
			name:     "json fence",
			content:  "```json\n{\"title\": \"Lesson\"}\n```",
			expected: `{"title": "Lesson"}`,
		},
		{
			name:     "bare fence",
			content:  "```\n[1, 2]\n```",
			expected: `[1, 2]`,
		},
		{
			name:     "surrounding whitespace",
			content:  "  \n```json\n{}\n```\n  ",
			expected: `{}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripCodeFence(tc.content))
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Run("decodes fenced object", func(t *testing.T) {
		var decoded struct {
			Title string `json:"title"`
		}
		require.NoError(t, DecodeJSON("```json\n{\"title\": \"Greetings\"}\n```", &decoded))
		assert.Equal(t, "Greetings", decoded.Title)
	})

	t.Run("rejects freeform text", func(t *testing.T) {
		var decoded map[string]any
		assert.Error(t, DecodeJSON("Sure! Here is your lesson.", &decoded))
	})
}
