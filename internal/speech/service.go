// Package speech prepares tutor text for synthesis and wraps the
// text-to-speech provider. Speech recognition happens in the browser; the
// server only offers a stub fallback.
package speech

import (
	"context"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/rgkonda/englishtutor/internal/logger"
)

// Synthesizer produces spoken audio for a piece of text in a provider
// language code.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string, slow bool) ([]byte, error)
}

type Service struct {
	synth Synthesizer
	log   *logger.Logger
}

func NewService(synth Synthesizer, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{synth: synth, log: log}
}

// TextToSpeech converts text to base64-encoded MP3 audio. English output is
// spoken slowly for learners.
func (s *Service) TextToSpeech(ctx context.Context, text, languageCode string) (string, error) {
	cleaned := PreprocessText(text, languageCode)
	if strings.TrimSpace(cleaned) == "" {
		return "", fmt.Errorf("no speakable text after preprocessing")
	}

	slow := languageCode == "en-US" || languageCode == "en-IN"
	audio, err := s.synth.Synthesize(ctx, cleaned, MapLanguageCode(languageCode), slow)
	if err != nil {
		return "", fmt.Errorf("synth.Synthesize > %w", err)
	}

	s.log.Debugw("synthesized speech", "language", languageCode, "bytes", len(audio))
	return base64.StdEncoding.EncodeToString(audio), nil
}

// PronunciationAudio speaks a single word slowly, twice.
func (s *Service) PronunciationAudio(ctx context.Context, word, languageCode string) (string, error) {
	text := fmt.Sprintf("The word is: %s. Listen carefully: %s.", word, word)
	return s.TextToSpeech(ctx, text, languageCode)
}

// PracticeAudio builds a listen-and-repeat session from the given sentences.
func (s *Service) PracticeAudio(ctx context.Context, sentences []string, languageCode string) (string, error) {
	if len(sentences) == 0 {
		return "", fmt.Errorf("no sentences to practice")
	}

	var builder strings.Builder
	builder.WriteString("Practice session. Listen and repeat after each sentence. ")
	for i, sentence := range sentences {
		fmt.Fprintf(&builder, "Sentence %d: %s. Repeat. ", i+1, sentence)
	}
	builder.WriteString("Good job! Practice complete.")

	return s.TextToSpeech(ctx, builder.String(), languageCode)
}

// TranscriptionResult is the stub reply for server-side speech recognition.
type TranscriptionResult struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Language   string  `json:"language"`
	Note       string  `json:"note,omitempty"`
}

// SpeechToText is a fallback only: recognition runs in the browser through
// the Web Speech API.
func (s *Service) SpeechToText(audio []byte, languageCode string) TranscriptionResult {
	s.log.Debugw("speech-to-text fallback requested", "bytes", len(audio))
	return TranscriptionResult{
		Language: languageCode,
		Note:     "Use Web Speech API on frontend for STT",
	}
}

var languageCodes = map[string]string{
	"en-US": "en",
	"en-IN": "en",
	"en-GB": "en",
	"te-IN": "te",
	"hi-IN": "hi",
	"ta-IN": "ta",
	"kn-IN": "kn",
	"ml-IN": "ml",
}

// MapLanguageCode maps BCP 47 codes onto the provider's two-letter codes,
// defaulting to English.
func MapLanguageCode(code string) string {
	if mapped, ok := languageCodes[code]; ok {
		return mapped
	}
	return "en"
}

var emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}` +
	`\x{1F300}-\x{1F5FF}` +
	`\x{1F680}-\x{1F6FF}` +
	`\x{1F1E0}-\x{1F1FF}` +
	`\x{2702}-\x{27B0}` +
	`\x{24C2}-\x{1F251}` +
	`\x{1F900}-\x{1F9FF}]+`)

// transliterations maps common Hindi and Telugu phrases to English phonetic
// spellings so a motivational aside survives English synthesis. Longer
// phrases are listed first so they win over their parts.
var transliterations = []struct{ from, to string }{
	{"चलो शुरू करते हैं", "Chalo shuru karte hain"},
	{"शुरू करते हैं", "shuru karte hain"},
	{"चलो", "Chalo"},
	{"शुरू", "Shuru"},
	{"करते", "Karte"},
	{"हैं", "Hain"},
	{"नमस्ते", "Namaste"},
	{"नमस्कार", "Namaskar"},
	{"धन्यवाद", "Dhanyawad"},
	{"अच्छा", "Accha"},
	{"हाँ", "Haan"},
	{"नहीं", "Nahin"},
	{"నమస్కారం", "Namaskar"},
	{"చలో", "Chalo"},
	{"మంచిది", "Manchidi"},
	{"ధన్యవాదాలు", "Dhanyawadalu"},
	{"అవును", "Avunu"},
	{"లేదు", "Ledu"},
}

var (
	nonLatinPattern    = regexp.MustCompile(`[^\x{0000}-\x{024F}\s.,!?;:()'"-]+`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
	bangRunPattern     = regexp.MustCompile(`[!]{2,}`)
	questionRunPattern = regexp.MustCompile(`[?]{2,}`)
	ellipsisRunPattern = regexp.MustCompile(`[.]{3,}`)
	spaceBeforePunct   = regexp.MustCompile(`\s+([,.!?;:])`)
)

// PreprocessText strips content the synthesizer cannot speak: emojis go away,
// known Hindi/Telugu phrases become phonetic English, and for English output
// any remaining non-Latin script is dropped with word boundaries preserved.
func PreprocessText(text, languageCode string) string {
	cleaned := emojiPattern.ReplaceAllString(text, "")

	if strings.HasPrefix(languageCode, "en") {
		for _, tr := range transliterations {
			cleaned = strings.ReplaceAll(cleaned, tr.from, tr.to)
		}
		cleaned = nonLatinPattern.ReplaceAllString(cleaned, " ")
	}

	cleaned = whitespacePattern.ReplaceAllString(strings.TrimSpace(cleaned), " ")

	cleaned = bangRunPattern.ReplaceAllString(cleaned, "!")
	cleaned = questionRunPattern.ReplaceAllString(cleaned, "?")
	cleaned = ellipsisRunPattern.ReplaceAllString(cleaned, "...")
	cleaned = spaceBeforePunct.ReplaceAllString(cleaned, "$1")

	return cleaned
}

// SupportedLanguages lists the language options for both speech directions.
func (s *Service) SupportedLanguages() map[string][]map[string]string {
	return map[string][]map[string]string{
		"speech_to_text": {
			{"code": "en-US", "name": "English (US)", "note": "Handled by Web Speech API"},
			{"code": "en-IN", "name": "English (India)", "note": "Handled by Web Speech API"},
			{"code": "te-IN", "name": "Telugu (India)", "note": "Limited support via Web Speech API"},
		},
		"text_to_speech": {
			{"code": "en-US", "name": "English (US)"},
			{"code": "en-IN", "name": "English (India)"},
			{"code": "te-IN", "name": "Telugu (India)"},
			{"code": "hi-IN", "name": "Hindi (India)"},
			{"code": "ta-IN", "name": "Tamil (India)"},
		},
	}
}
