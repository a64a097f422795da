// Package grammar contains the rule bank and message analyzer used to spot
// the mistakes Telugu speakers most often make in English.
package grammar

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Category string

const (
	SubjectVerbAgreement Category = "subject_verb_agreement"
	TenseError           Category = "tense_error"
	ArticleError         Category = "article_error"
	PrepositionError     Category = "preposition_error"
	CapitalizationError  Category = "capitalization_error"
	PunctuationError     Category = "punctuation_error"
)

// ErrorRecord is a single mistake found in a message. Start and End are
// character offsets for pattern and punctuation findings, and word indices
// for article and pronoun capitalization findings.
type ErrorRecord struct {
	Category  Category
	Original  string
	Corrected string
	Start     int
	End       int
}

type rewriteRule struct {
	pattern   *regexp.Regexp
	corrected string
}

var subjectVerbRules = []rewriteRule{
	{regexp.MustCompile(`(?i)\bI am go\b`), "I am going"},
	{regexp.MustCompile(`(?i)\bHe are\b`), "He is"},
	{regexp.MustCompile(`(?i)\bShe are\b`), "She is"},
	{regexp.MustCompile(`(?i)\bThey is\b`), "They are"},
	{regexp.MustCompile(`(?i)\bI goes\b`), "I go"},
	{regexp.MustCompile(`(?i)\bHe go\b`), "He goes"},
}

var tenseRules = []rewriteRule{
	{regexp.MustCompile(`(?i)\bI am went\b`), "I went"},
	{regexp.MustCompile(`(?i)\bI was go\b`), "I went"},
	{regexp.MustCompile(`(?i)\bI will went\b`), "I will go"},
	{regexp.MustCompile(`(?i)\bI have went\b`), "I have gone"},
	{regexp.MustCompile(`(?i)\byesterday I am\b`), "yesterday I was"},
}

var prepositionRules = []rewriteRule{
	{regexp.MustCompile(`(?i)\bon the morning\b`), "in the morning"},
	{regexp.MustCompile(`(?i)\bin the night\b`), "at night"},
	{regexp.MustCompile(`(?i)\bgo to school by walk\b`), "walk to school"},
	{regexp.MustCompile(`(?i)\bmarried with\b`), "married to"},
}

// runeOffset converts a byte offset in message to a character offset.
func runeOffset(message string, byteOffset int) int {
	return utf8.RuneCountInString(message[:byteOffset])
}

func matchRules(message string, rules []rewriteRule, category Category) []ErrorRecord {
	var errors []ErrorRecord
	for _, rule := range rules {
		loc := rule.pattern.FindStringIndex(message)
		if loc == nil {
			continue
		}
		errors = append(errors, ErrorRecord{
			Category:  category,
			Original:  message[loc[0]:loc[1]],
			Corrected: rule.corrected,
			Start:     runeOffset(message, loc[0]),
			End:       runeOffset(message, loc[1]),
		})
	}
	return errors
}

// checkArticles flags "a" before a word starting with a vowel letter. The rule
// is orthographic, so "a university" is flagged even though the pronunciation
// is correct.
func checkArticles(message string) []ErrorRecord {
	var errors []ErrorRecord
	words := strings.Fields(message)
	for i, word := range words {
		if strings.ToLower(word) != "a" || i+1 >= len(words) {
			continue
		}
		next := strings.ToLower(words[i+1])
		if next == "" || !strings.ContainsRune("aeiou", rune(next[0])) {
			continue
		}
		errors = append(errors, ErrorRecord{
			Category:  ArticleError,
			Original:  "a " + next,
			Corrected: "an " + next,
			Start:     i,
			End:       i + 2,
		})
	}
	return errors
}

func checkCapitalization(message string) []ErrorRecord {
	var errors []ErrorRecord

	if first, _ := utf8.DecodeRuneInString(message); message != "" && unicode.IsLower(first) {
		errors = append(errors, ErrorRecord{
			Category:  CapitalizationError,
			Original:  string(first),
			Corrected: string(unicode.ToUpper(first)),
			Start:     0,
			End:       1,
		})
	}

	for i, word := range strings.Fields(message) {
		if word != "i" {
			continue
		}
		errors = append(errors, ErrorRecord{
			Category:  CapitalizationError,
			Original:  "i",
			Corrected: "I",
			Start:     i,
			End:       i + 1,
		})
	}

	return errors
}

func checkPunctuation(message string) []ErrorRecord {
	if message == "" {
		return nil
	}
	last, _ := utf8.DecodeLastRuneInString(message)
	if strings.ContainsRune(".!?", last) {
		return nil
	}
	length := utf8.RuneCountInString(message)
	return []ErrorRecord{{
		Category:  PunctuationError,
		Original:  message,
		Corrected: message + ".",
		Start:     length,
		End:       length,
	}}
}

// CheckErrors runs every rule group against the message. Findings keep a fixed
// group order: subject-verb agreement, tense, articles, prepositions,
// capitalization, punctuation.
func CheckErrors(message string) []ErrorRecord {
	var errors []ErrorRecord
	errors = append(errors, matchRules(message, subjectVerbRules, SubjectVerbAgreement)...)
	errors = append(errors, matchRules(message, tenseRules, TenseError)...)
	errors = append(errors, checkArticles(message)...)
	errors = append(errors, matchRules(message, prepositionRules, PrepositionError)...)
	errors = append(errors, checkCapitalization(message)...)
	errors = append(errors, checkPunctuation(message)...)
	return errors
}
