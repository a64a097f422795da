package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name           string
		message        string
		wantCategories []Category
	}{
		{
			name:           "clean sentence",
			message:        "I am going to school.",
			wantCategories: nil,
		},
		{
			name:           "subject verb agreement",
			message:        "He are my friend.",
			wantCategories: []Category{SubjectVerbAgreement},
		},
		{
			name:           "tense error",
			message:        "I have went to the market.",
			wantCategories: []Category{TenseError},
		},
		{
			name:           "article before vowel",
			message:        "I have a apple.",
			wantCategories: []Category{ArticleError},
		},
		{
			name:           "preposition error",
			message:        "She is married with a doctor.",
			wantCategories: []Category{PrepositionError},
		},
		{
			name:           "missing end punctuation",
			message:        "We are happy",
			wantCategories: []Category{PunctuationError},
		},
		{
			name:    "stacked mistakes keep group order",
			message: "i am go school",
			wantCategories: []Category{
				SubjectVerbAgreement,
				CapitalizationError,
				CapitalizationError,
				PunctuationError,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errors := CheckErrors(tc.message)
			var categories []Category
			for _, e := range errors {
				categories = append(categories, e.Category)
			}
			assert.Equal(t, tc.wantCategories, categories)
		})
	}
}

func TestCheckErrors_ArticleCorrection(t *testing.T) {
	errors := CheckErrors("I have a apple.")
	require.Len(t, errors, 1)
	assert.Equal(t, "a apple.", errors[0].Original)
	assert.Equal(t, "an apple.", errors[0].Corrected)
}

func TestCheckErrors_ArticleRuleIsOrthographic(t *testing.T) {
	// The vowel-letter rule flags "a university" even though the article is
	// correct by sound.
	errors := CheckErrors("She studies at a university.")
	require.Len(t, errors, 1)
	assert.Equal(t, ArticleError, errors[0].Category)
	assert.Equal(t, "an university.", errors[0].Corrected)
}

func TestCheckErrors_PositionsAreCharacterOffsets(t *testing.T) {
	t.Run("pattern match after non-Latin text", func(t *testing.T) {
		// "నమస్కారం, " is 10 characters but 26 bytes.
		errors := CheckErrors("నమస్కారం, I have went home.")
		require.Len(t, errors, 1)
		assert.Equal(t, TenseError, errors[0].Category)
		assert.Equal(t, "I have went", errors[0].Original)
		assert.Equal(t, 10, errors[0].Start)
		assert.Equal(t, 21, errors[0].End)
	})

	t.Run("missing punctuation on a mixed-script message", func(t *testing.T) {
		errors := CheckErrors("నాకు tea ఇష్టం")
		require.Len(t, errors, 1)
		assert.Equal(t, PunctuationError, errors[0].Category)
		assert.Equal(t, 14, errors[0].Start)
		assert.Equal(t, 14, errors[0].End)
	})
}

func TestCheckErrors_PronounCapitalization(t *testing.T) {
	errors := CheckErrors("Today i went home.")
	require.Len(t, errors, 1)
	assert.Equal(t, CapitalizationError, errors[0].Category)
	assert.Equal(t, "i", errors[0].Original)
	assert.Equal(t, "I", errors[0].Corrected)
	assert.Equal(t, 1, errors[0].Start)
	assert.Equal(t, 2, errors[0].End)
}

func TestCheckErrors_CaseInsensitivePatterns(t *testing.T) {
	errors := CheckErrors("THEY IS HERE.")
	require.Len(t, errors, 1)
	assert.Equal(t, SubjectVerbAgreement, errors[0].Category)
	assert.Equal(t, "THEY IS", errors[0].Original)
	assert.Equal(t, "They are", errors[0].Corrected)
}
