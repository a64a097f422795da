// Package tutor composes bilingual teaching responses for Telugu-speaking
// English learners, with template content and an optional generative provider
// on top.
package tutor

// Example pairs an English sentence with its Telugu translation.
type Example struct {
	English string `json:"english"`
	Telugu  string `json:"telugu"`
}

// Correction describes one mistake with bilingual explanations.
type Correction struct {
	OriginalText       string `json:"original_text"`
	CorrectedText      string `json:"corrected_text"`
	MistakeType        string `json:"mistake_type"`
	ExplanationEnglish string `json:"explanation_english"`
	ExplanationTelugu  string `json:"explanation_telugu"`
	PositionStart      int    `json:"position_start"`
	PositionEnd        int    `json:"position_end"`
}

// VerbForms lists the five forms of a verb found in the student's message.
type VerbForms struct {
	BaseForm          string `json:"base_form"`
	PastSimple        string `json:"past_simple"`
	PastParticiple    string `json:"past_participle"`
	PresentParticiple string `json:"present_participle"`
	ThirdPerson       string `json:"third_person"`
}

// Response is the full teaching reply for one student message.
type Response struct {
	IsCorrect          bool         `json:"is_correct"`
	Corrections        []Correction `json:"corrections"`
	Examples           []Example    `json:"examples"`
	VerbForms          *VerbForms   `json:"verb_forms,omitempty"`
	Encouragement      string       `json:"encouragement"`
	NextSuggestion     string       `json:"next_suggestion,omitempty"`
	GrammarTip         string       `json:"grammar_tip,omitempty"`
	PronunciationGuide string       `json:"pronunciation_guide,omitempty"`
	StudentLevel       string       `json:"student_level"`
}

// LessonContent is the teachable body of a lesson.
type LessonContent struct {
	Title              string    `json:"title"`
	ExplanationEnglish string    `json:"explanation_english"`
	ExplanationTelugu  string    `json:"explanation_telugu"`
	KeyPoints          []string  `json:"key_points"`
	Examples           []Example `json:"examples"`
}

// Lesson is a generated lesson with its provenance.
type Lesson struct {
	LessonID          string        `json:"lesson_id"`
	LessonType        string        `json:"lesson_type"`
	EstimatedDuration int           `json:"estimated_duration"`
	Content           LessonContent `json:"content"`
	GeneratedBy       string        `json:"generated_by"`
}

// Exercise is a single multiple-choice practice question.
type Exercise struct {
	ExerciseID    string   `json:"exercise_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// ExerciseSet groups generated exercises with their provenance.
type ExerciseSet struct {
	Exercises   []Exercise `json:"exercises"`
	GeneratedBy string     `json:"generated_by"`
}

// VocabularyWord is one daily vocabulary entry with Telugu meaning.
type VocabularyWord struct {
	Word          string    `json:"word"`
	MeaningTelugu string    `json:"meaning_telugu"`
	PartOfSpeech  string    `json:"part_of_speech"`
	Pronunciation string    `json:"pronunciation"`
	Examples      []Example `json:"examples"`
}

// DailyVocabulary is the themed word set for one day.
type DailyVocabulary struct {
	Date  string           `json:"date"`
	Theme string           `json:"theme"`
	Words []VocabularyWord `json:"words"`
}
