package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{"already clean", "I like tea.", "I like tea."},
		{"extra spaces", "  I   like  tea.  ", "I like tea."},
		{"tabs and newlines", "I\tlike\ntea.", "I like tea."},
		{"empty", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CleanMessage(tc.message))
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name          string
		message       string
		wantCorrect   bool
		wantLevel     Level
		wantTopic     string
		wantWordCount int
	}{
		{
			name:          "short correct sentence is beginner",
			message:       "I like tea.",
			wantCorrect:   true,
			wantLevel:     LevelBeginner,
			wantTopic:     "general",
			wantWordCount: 3,
		},
		{
			name:          "greeting topic",
			message:       "Hello teacher, how are you today?",
			wantCorrect:   true,
			wantLevel:     LevelIntermediate,
			wantTopic:     "greetings",
			wantWordCount: 6,
		},
		{
			name:          "education topic with errors",
			message:       "i am go school",
			wantCorrect:   false,
			wantLevel:     LevelBeginner,
			wantTopic:     "education",
			wantWordCount: 4,
		},
		{
			name:          "longer clean sentence is advanced",
			message:       "Every evening my family gathers around our dining table and we discuss what happened during our busy days.",
			wantCorrect:   true,
			wantLevel:     LevelAdvanced,
			wantTopic:     "general",
			wantWordCount: 18,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis := Analyze(tc.message)
			assert.Equal(t, tc.wantCorrect, analysis.IsCorrect)
			assert.Equal(t, tc.wantLevel, analysis.StudentLevel)
			assert.Equal(t, tc.wantTopic, analysis.Topic)
			assert.Equal(t, tc.wantWordCount, analysis.WordCount)
		})
	}
}

func TestAnalyze_Complexity(t *testing.T) {
	analysis := Analyze("I like tea.")
	// avg word length 9/3, one sentence of three words.
	assert.InDelta(t, 3.0*0.3+3.0*0.7, analysis.ComplexityScore, 1e-9)
	assert.Equal(t, 1, analysis.SentenceCount)

	multi := Analyze("I like tea. I drink coffee too!")
	assert.Equal(t, 2, multi.SentenceCount)
}

func TestIdentifyTopic_Priority(t *testing.T) {
	// Greeting keywords win over later topic groups.
	assert.Equal(t, "greetings", IdentifyTopic("Hello, what time is it?"))
	assert.Equal(t, "time", IdentifyTopic("What time is the class?"))
	assert.Equal(t, "food", IdentifyTopic("I want to eat rice"))
	assert.Equal(t, "general", IdentifyTopic(strings.Repeat("word ", 3)))
}
