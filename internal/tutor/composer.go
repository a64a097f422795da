package tutor

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rgkonda/englishtutor/internal/grammar"
	"github.com/rgkonda/englishtutor/internal/inference"
	"github.com/rgkonda/englishtutor/internal/logger"
)

const contextWindow = 10

type turnRecord struct {
	Message     string
	IsCorrect   bool
	Corrections []Correction
	IsVoice     bool
	At          time.Time
}

// Composer turns analyzed student messages into full teaching responses. The
// generative provider is optional: with gen == nil, or whenever a generative
// call fails, the composer answers from templates.
type Composer struct {
	gen     inference.Generator
	tagger  VerbTagger
	log     *logger.Logger
	timeout time.Duration

	mu       sync.Mutex
	rng      *rand.Rand
	contexts map[string][]turnRecord
}

// NewComposer builds a composer. gen and tagger may be nil: without a tagger
// verb forms come from the built-in lexicon only. rng may be nil, in which
// case a time-seeded source is used; tests pass a fixed seed.
func NewComposer(gen inference.Generator, tagger VerbTagger, rng *rand.Rand, log *logger.Logger) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Composer{
		gen:      gen,
		tagger:   tagger,
		log:      log,
		timeout:  inference.DefaultTimeout,
		rng:      rng,
		contexts: make(map[string][]turnRecord),
	}
}

// Respond processes one student message. It never fails: any panic along the
// way yields a safe apology response.
func (c *Composer) Respond(ctx context.Context, studentID, message string, isVoice bool) (response Response) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Errorw("response composition failed", "studentID", studentID, "panic", r)
			response = errorResponse()
		}
	}()

	cleaned := grammar.CleanMessage(message)
	analysis := grammar.Analyze(cleaned)

	var corrections []Correction
	if !analysis.IsCorrect {
		corrections = buildCorrections(analysis.Errors)
	}

	lowered := strings.ToLower(cleaned)
	pronunciationGuide := ""
	if isVoice || strings.Contains(lowered, "pronunciation") || strings.Contains(lowered, "speak") {
		pronunciationGuide = c.pronunciationGuide(ctx, cleaned)
	}

	response = Response{
		IsCorrect:          analysis.IsCorrect,
		Corrections:        corrections,
		Examples:           c.examples(ctx, analysis.Topic, string(analysis.StudentLevel)),
		VerbForms:          c.verbForms(cleaned),
		Encouragement:      c.encouragement(ctx, analysis.IsCorrect, string(analysis.StudentLevel), len(corrections)),
		NextSuggestion:     c.nextSuggestion(ctx, cleaned, string(analysis.StudentLevel)),
		GrammarTip:         grammarTip(corrections),
		PronunciationGuide: pronunciationGuide,
		StudentLevel:       string(analysis.StudentLevel),
	}

	c.recordTurn(studentID, turnRecord{
		Message:     cleaned,
		IsCorrect:   analysis.IsCorrect,
		Corrections: corrections,
		IsVoice:     isVoice,
		At:          time.Now(),
	})

	return response
}

// verbForms finds the first verb in the message. The tagger can name any
// verb; without one, or when tagging fails, the built-in lexicon is scanned.
func (c *Composer) verbForms(message string) *VerbForms {
	if c.tagger != nil {
		verbs, err := c.tagger.Verbs(message)
		if err != nil {
			c.log.Warnw("verb tagging failed, using lexicon", "error", err)
		} else if len(verbs) > 0 {
			return formsOf(strings.ToLower(verbs[0]))
		}
	}
	return ExtractVerbForms(message)
}

func buildCorrections(errors []grammar.ErrorRecord) []Correction {
	corrections := make([]Correction, 0, len(errors))
	for _, record := range errors {
		corrections = append(corrections, Correction{
			OriginalText:       record.Original,
			CorrectedText:      record.Corrected,
			MistakeType:        string(record.Category),
			ExplanationEnglish: englishExplanation(record),
			ExplanationTelugu:  teluguExplanation(record),
			PositionStart:      record.Start,
			PositionEnd:        record.End,
		})
	}
	return corrections
}

func (c *Composer) examples(ctx context.Context, topic, level string) []Example {
	if c.gen != nil && topic != "" && topic != "general" {
		if examples := c.generateExamples(ctx, topic, level); len(examples) > 0 {
			return examples
		}
	}

	if examples, ok := topicExamples[topic]; ok {
		return limitExamples(examples)
	}
	if level == string(grammar.LevelBeginner) {
		return limitExamples(beginnerExamples)
	}
	return limitExamples(generalExamples)
}

func limitExamples(examples []Example) []Example {
	if len(examples) > 3 {
		return examples[:3]
	}
	return examples
}

func (c *Composer) generateExamples(ctx context.Context, topic, level string) []Example {
	prompt := fmt.Sprintf(`Generate 3 English sentences with Telugu translations for a %s level student learning about %s.

Format as JSON array:
[
    {
        "english": "English sentence",
        "telugu": "Telugu translation"
    }
]

Make sentences practical and useful for Telugu speakers learning English.`, level, topic)

	content, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warnw("example generation failed, using templates", "topic", topic, "error", err)
		return nil
	}

	var examples []Example
	if err := inference.DecodeJSON(content, &examples); err != nil {
		c.log.Warnw("example response was not valid JSON, using templates", "error", err)
		return nil
	}
	return limitExamples(examples)
}

func (c *Composer) encouragement(ctx context.Context, isCorrect bool, level string, correctionCount int) string {
	if c.gen != nil {
		outcome := "Correct sentence"
		if !isCorrect {
			outcome = fmt.Sprintf("Incorrect sentence with %d errors", correctionCount)
		}
		prompt := fmt.Sprintf(`Generate encouraging feedback for a %s Telugu-speaking English learner.
Context: %s

Provide encouragement in both English and Telugu. Be supportive and motivating.
Keep it brief (1-2 sentences max).`, level, outcome)

		if content, err := c.generate(ctx, prompt); err == nil {
			return strings.TrimSpace(content)
		}
	}

	if isCorrect {
		return c.randomChoice(correctEncouragements)
	}
	return c.randomChoice(incorrectEncouragements)
}

func (c *Composer) nextSuggestion(ctx context.Context, message, level string) string {
	if c.gen != nil {
		prompt := fmt.Sprintf(`Based on this student message: "%s"
Student level: %s

Suggest what the student should practice next. Make it specific and actionable.
Focus on gradual improvement appropriate for their level.

Keep suggestion brief (1 sentence) and encouraging.`, message, level)

		if content, err := c.generate(ctx, prompt); err == nil {
			return strings.TrimSpace(content)
		}
	}

	return c.randomChoice(nextSuggestions)
}

func (c *Composer) pronunciationGuide(ctx context.Context, message string) string {
	if c.gen == nil {
		return fallbackPronunciationTip
	}

	prompt := fmt.Sprintf(`Create a pronunciation guide for Telugu speakers learning English.

Text to help with: "%s"

Provide:
1. Key sounds that Telugu speakers find difficult in this text
2. Simple phonetic spelling (like "THEE-nk" for "think")
3. Telugu approximation where helpful
4. Specific tips for mouth/tongue position

Keep it concise and practical for a beginner.`, message)

	content, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warnw("pronunciation guide generation failed", "error", err)
		return fallbackPronunciationTip
	}
	return "🗣️ Pronunciation Guide: " + strings.TrimSpace(content)
}

func (c *Composer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.gen.GenerateText(ctx, prompt)
}

func (c *Composer) randomChoice(pool []string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pool[c.rng.Intn(len(pool))]
}

func (c *Composer) recordTurn(studentID string, turn turnRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	turns := append(c.contexts[studentID], turn)
	if len(turns) > contextWindow {
		turns = turns[len(turns)-contextWindow:]
	}
	c.contexts[studentID] = turns
}

// recentCorrections returns corrections from the student's last few turns,
// newest last, capped at limit. Used to personalize lessons and exercises.
func (c *Composer) recentCorrections(studentID string, turns, limit int) []Correction {
	c.mu.Lock()
	defer c.mu.Unlock()

	history := c.contexts[studentID]
	if len(history) > turns {
		history = history[len(history)-turns:]
	}

	var corrections []Correction
	for _, t := range history {
		corrections = append(corrections, t.Corrections...)
	}
	if len(corrections) > limit {
		corrections = corrections[:limit]
	}
	return corrections
}

func errorResponse() Response {
	return Response{
		IsCorrect:      true,
		Corrections:    []Correction{},
		Examples:       []Example{},
		Encouragement:  apologyEncouragement,
		NextSuggestion: "Try typing a simple sentence about yourself.",
		StudentLevel:   string(grammar.LevelBeginner),
	}
}
