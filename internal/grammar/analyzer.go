package grammar

import (
	"regexp"
	"strings"
)

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Analysis is the full read of a single student message.
type Analysis struct {
	IsCorrect       bool
	Errors          []ErrorRecord
	StudentLevel    Level
	Topic           string
	WordCount       int
	SentenceCount   int
	ComplexityScore float64
}

// CleanMessage collapses runs of whitespace into single spaces and trims the
// result.
func CleanMessage(message string) string {
	return strings.Join(strings.Fields(message), " ")
}

// Analyze inspects a cleaned message. It never fails: if anything panics the
// message is treated as correct beginner-level general conversation.
func Analyze(message string) (analysis Analysis) {
	defer func() {
		if r := recover(); r != nil {
			analysis = Analysis{
				IsCorrect:    true,
				StudentLevel: LevelBeginner,
				Topic:        "general",
			}
		}
	}()

	errors := CheckErrors(message)
	words := strings.Fields(message)

	return Analysis{
		IsCorrect:       len(errors) == 0,
		Errors:          errors,
		StudentLevel:    assessLevel(message, errors),
		Topic:           IdentifyTopic(message),
		WordCount:       len(words),
		SentenceCount:   countSentences(message),
		ComplexityScore: complexityScore(message),
	}
}

func assessLevel(message string, errors []ErrorRecord) Level {
	wordCount := len(strings.Fields(message))
	errorRatio := float64(len(errors)) / float64(max(wordCount, 1))

	switch {
	case errorRatio > 0.3 || wordCount < 5:
		return LevelBeginner
	case errorRatio > 0.1 || wordCount < 15:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}

var topicKeywords = []struct {
	topic    string
	keywords []string
}{
	{"greetings", []string{"hello", "hi", "good morning", "how are you"}},
	{"time", []string{"time", "clock", "hour", "minute"}},
	{"food", []string{"food", "eat", "drink", "hungry"}},
	{"education", []string{"school", "study", "learn", "book"}},
}

// IdentifyTopic maps a message onto a conversation topic by keyword. The
// first topic group with a hit wins.
func IdentifyTopic(message string) string {
	lower := strings.ToLower(message)
	for _, group := range topicKeywords {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.topic
			}
		}
	}
	return "general"
}

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)

func countSentences(message string) int {
	count := 0
	for _, part := range sentenceSplitPattern.Split(message, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	return count
}

func complexityScore(message string) float64 {
	words := strings.Fields(message)
	totalLen := 0
	for _, word := range words {
		totalLen += len(word)
	}
	avgWordLength := float64(totalLen) / float64(max(len(words), 1))
	avgSentenceLength := float64(len(words)) / float64(max(countSentences(message), 1))

	return avgWordLength*0.3 + avgSentenceLength*0.7
}
