package tutor

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

type proseTagger struct{}

// NewProseTagger returns a VerbTagger backed by the prose part-of-speech
// model, so any verb a student uses can get its forms.
func NewProseTagger() VerbTagger {
	return proseTagger{}
}

func (proseTagger) Verbs(message string) ([]string, error) {
	doc, err := prose.NewDocument(message,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}

	var verbs []string
	for _, token := range doc.Tokens() {
		if strings.HasPrefix(token.Tag, "VB") {
			verbs = append(verbs, token.Text)
		}
	}
	return verbs, nil
}
