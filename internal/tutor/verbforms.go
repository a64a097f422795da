package tutor

import "strings"

// VerbTagger reports the verbs in a message, in order of appearance.
type VerbTagger interface {
	Verbs(message string) ([]string, error)
}

type irregularForms struct {
	past           string
	pastParticiple string
}

var irregularVerbs = map[string]irregularForms{
	"go":    {past: "went", pastParticiple: "gone"},
	"come":  {past: "came", pastParticiple: "come"},
	"see":   {past: "saw", pastParticiple: "seen"},
	"do":    {past: "did", pastParticiple: "done"},
	"have":  {past: "had", pastParticiple: "had"},
	"be":    {past: "was/were", pastParticiple: "been"},
	"eat":   {past: "ate", pastParticiple: "eaten"},
	"drink": {past: "drank", pastParticiple: "drunk"},
	"write": {past: "wrote", pastParticiple: "written"},
	"read":  {past: "read", pastParticiple: "read"},
}

// regularVerbs lists common regular verbs beginners use, so the fallback path
// can find a verb without a part-of-speech tagger.
var regularVerbs = map[string]bool{
	"like": true, "want": true, "play": true, "work": true, "study": true,
	"walk": true, "talk": true, "cook": true, "learn": true, "practice": true,
	"watch": true, "listen": true, "visit": true, "help": true, "wake": true,
	"start": true, "finish": true, "open": true, "close": true, "ask": true,
}

// formsOf builds the five forms of a base verb. Verbs outside the irregular
// table get plain suffixation without spelling changes.
func formsOf(base string) *VerbForms {
	if forms, ok := irregularVerbs[base]; ok {
		return &VerbForms{
			BaseForm:          base,
			PastSimple:        forms.past,
			PastParticiple:    forms.pastParticiple,
			PresentParticiple: base + "ing",
			ThirdPerson:       base + "s",
		}
	}
	return &VerbForms{
		BaseForm:          base,
		PastSimple:        base + "ed",
		PastParticiple:    base + "ed",
		PresentParticiple: base + "ing",
		ThirdPerson:       base + "s",
	}
}

// ExtractVerbForms scans the message for a verb from the built-in lexicon and
// returns its five forms. Used when no tagger is configured or tagging fails.
func ExtractVerbForms(message string) *VerbForms {
	for _, token := range strings.Fields(message) {
		word := strings.ToLower(strings.Trim(token, ".,!?;:'\""))
		if word == "" {
			continue
		}
		if _, ok := irregularVerbs[word]; ok {
			return formsOf(word)
		}
		if regularVerbs[word] {
			return formsOf(word)
		}
	}
	return nil
}
