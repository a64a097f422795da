package tutor

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgkonda/englishtutor/internal/logger"
)

type stubGenerator struct {
	response string
	err      error
}

func (s stubGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func newTestComposer(gen *stubGenerator) *Composer {
	if gen == nil {
		return NewComposer(nil, nil, rand.New(rand.NewSource(1)), logger.NewNop())
	}
	return NewComposer(*gen, nil, rand.New(rand.NewSource(1)), logger.NewNop())
}

type stubTagger struct {
	verbs []string
	err   error
}

func (s stubTagger) Verbs(message string) ([]string, error) {
	return s.verbs, s.err
}

func TestComposer_Respond_CorrectSentence(t *testing.T) {
	composer := newTestComposer(nil)

	response := composer.Respond(context.Background(), "student-1", "I like tea.", false)

	assert.True(t, response.IsCorrect)
	assert.Empty(t, response.Corrections)
	assert.Equal(t, "beginner", response.StudentLevel)
	assert.Contains(t, correctEncouragements, response.Encouragement)
	assert.Contains(t, nextSuggestions, response.NextSuggestion)
	assert.Empty(t, response.GrammarTip)
	assert.Empty(t, response.PronunciationGuide)
	require.NotNil(t, response.VerbForms)
	assert.Equal(t, "like", response.VerbForms.BaseForm)
	assert.Equal(t, "liked", response.VerbForms.PastSimple)
}

func TestComposer_Respond_IncorrectSentence(t *testing.T) {
	composer := newTestComposer(nil)

	response := composer.Respond(context.Background(), "student-1", "i am go school", false)

	assert.False(t, response.IsCorrect)
	require.NotEmpty(t, response.Corrections)

	first := response.Corrections[0]
	assert.Equal(t, "subject_verb_agreement", first.MistakeType)
	assert.Equal(t, "i am go", first.OriginalText)
	assert.Equal(t, "I am going", first.CorrectedText)
	assert.Contains(t, first.ExplanationEnglish, "The subject and verb don't agree")
	assert.Contains(t, first.ExplanationTelugu, "కర్త మరియు క్రియ")

	assert.Contains(t, incorrectEncouragements, response.Encouragement)
	assert.Contains(t, response.GrammarTip, "Subject and verb must agree")
}

func TestComposer_Respond_GrammarTipPriority(t *testing.T) {
	composer := newTestComposer(nil)

	// Tense and article mistakes together: the tense tip wins.
	response := composer.Respond(context.Background(), "student-1", "I have went to a event.", false)

	require.False(t, response.IsCorrect)
	assert.Contains(t, response.GrammarTip, "Use correct tense")
}

func TestComposer_Respond_PronunciationGuide(t *testing.T) {
	composer := newTestComposer(nil)

	t.Run("voice input gets the fallback tip", func(t *testing.T) {
		response := composer.Respond(context.Background(), "student-1", "I like tea.", true)
		assert.Equal(t, fallbackPronunciationTip, response.PronunciationGuide)
	})

	t.Run("pronunciation keyword triggers the guide", func(t *testing.T) {
		response := composer.Respond(context.Background(), "student-1", "How is my pronunciation?", false)
		assert.Equal(t, fallbackPronunciationTip, response.PronunciationGuide)
	})

	t.Run("plain text message gets none", func(t *testing.T) {
		response := composer.Respond(context.Background(), "student-1", "I like tea.", false)
		assert.Empty(t, response.PronunciationGuide)
	})
}

func TestComposer_Respond_TemplateExamples(t *testing.T) {
	composer := newTestComposer(nil)

	t.Run("topic examples", func(t *testing.T) {
		response := composer.Respond(context.Background(), "student-1", "Hello, how are you?", false)
		assert.Equal(t, topicExamples["greetings"], response.Examples)
	})

	t.Run("beginner general examples", func(t *testing.T) {
		response := composer.Respond(context.Background(), "student-1", "I like tea.", false)
		assert.Equal(t, beginnerExamples, response.Examples)
	})
}

func TestComposer_Respond_FailingGeneratorFallsBack(t *testing.T) {
	composer := newTestComposer(&stubGenerator{err: errors.New("provider down")})

	response := composer.Respond(context.Background(), "student-1", "Hello, how are you?", false)

	assert.True(t, response.IsCorrect)
	assert.Equal(t, topicExamples["greetings"], response.Examples)
	assert.Contains(t, correctEncouragements, response.Encouragement)
	assert.Contains(t, nextSuggestions, response.NextSuggestion)
}

func TestComposer_Respond_GeneratedExamples(t *testing.T) {
	composer := newTestComposer(&stubGenerator{
		response: "```json\n[{\"english\": \"Good evening!\", \"telugu\": \"శుభ సాయంత్రం!\"}]\n```",
	})

	response := composer.Respond(context.Background(), "student-1", "Hello, how are you?", false)

	require.Len(t, response.Examples, 1)
	assert.Equal(t, "Good evening!", response.Examples[0].English)
}

func TestComposer_RecentCorrections_Window(t *testing.T) {
	composer := newTestComposer(nil)

	for i := 0; i < 15; i++ {
		composer.Respond(context.Background(), "student-1", "i am go school", false)
	}

	assert.Len(t, composer.contexts["student-1"], contextWindow)

	corrections := composer.recentCorrections("student-1", 3, 5)
	assert.Len(t, corrections, 5)

	// Other students are isolated.
	assert.Empty(t, composer.recentCorrections("student-2", 3, 5))
}

func TestComposer_VerbForms_Tagged(t *testing.T) {
	t.Run("tagged verb outside the lexicon gets its forms", func(t *testing.T) {
		composer := NewComposer(nil, stubTagger{verbs: []string{"jump"}}, rand.New(rand.NewSource(1)), logger.NewNop())

		response := composer.Respond(context.Background(), "student-1", "I jump every morning.", false)

		require.NotNil(t, response.VerbForms)
		assert.Equal(t, "jump", response.VerbForms.BaseForm)
		assert.Equal(t, "jumped", response.VerbForms.PastSimple)
		assert.Equal(t, "jumping", response.VerbForms.PresentParticiple)
	})

	t.Run("tagged irregular verb keeps its table forms", func(t *testing.T) {
		composer := NewComposer(nil, stubTagger{verbs: []string{"Go", "come"}}, rand.New(rand.NewSource(1)), logger.NewNop())

		forms := composer.verbForms("Go home and come back.")

		require.NotNil(t, forms)
		assert.Equal(t, "go", forms.BaseForm)
		assert.Equal(t, "went", forms.PastSimple)
		assert.Equal(t, "gone", forms.PastParticiple)
	})

	t.Run("tagger failure falls back to the lexicon", func(t *testing.T) {
		composer := NewComposer(nil, stubTagger{err: errors.New("model unavailable")}, rand.New(rand.NewSource(1)), logger.NewNop())

		forms := composer.verbForms("I like tea.")

		require.NotNil(t, forms)
		assert.Equal(t, "like", forms.BaseForm)
	})

	t.Run("no verbs tagged and none in the lexicon", func(t *testing.T) {
		composer := NewComposer(nil, stubTagger{}, rand.New(rand.NewSource(1)), logger.NewNop())

		assert.Nil(t, composer.verbForms("The weather today."))
	})
}

func TestExtractVerbForms(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    *VerbForms
	}{
		{
			name:    "irregular verb keeps plain suffixation outside past forms",
			message: "Yesterday we go to the market.",
			want: &VerbForms{
				BaseForm:          "go",
				PastSimple:        "went",
				PastParticiple:    "gone",
				PresentParticiple: "going",
				ThirdPerson:       "gos",
			},
		},
		{
			name:    "regular verb with plain suffixation",
			message: "They play cricket.",
			want: &VerbForms{
				BaseForm:          "play",
				PastSimple:        "played",
				PastParticiple:    "played",
				PresentParticiple: "playing",
				ThirdPerson:       "plays",
			},
		},
		{
			name:    "no known verb",
			message: "The weather today.",
			want:    nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractVerbForms(tc.message))
		})
	}
}
