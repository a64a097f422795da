package tutor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rgkonda/englishtutor/internal/inference"
)

// GenerateLesson builds a lesson for the student. A generative attempt is made
// first when a provider is configured; templates always back it up.
func (c *Composer) GenerateLesson(ctx context.Context, studentID, lessonType string, durationMinutes int) Lesson {
	if c.gen != nil {
		if lesson, ok := c.generateAILesson(ctx, studentID, lessonType, durationMinutes); ok {
			return lesson
		}
	}

	content, ok := lessonTemplates[lessonType]
	if !ok {
		content = lessonTemplates["grammar"]
	}

	return Lesson{
		LessonID:          uuid.NewString(),
		LessonType:        lessonType,
		EstimatedDuration: durationMinutes,
		Content:           content,
		GeneratedBy:       "template",
	}
}

func (c *Composer) generateAILesson(ctx context.Context, studentID, lessonType string, durationMinutes int) (Lesson, bool) {
	prompt := fmt.Sprintf(`Create an English lesson for a Telugu-speaking student.
Lesson Type: %s
Duration: %d minutes

Student's Recent Mistakes: %s

Please create a JSON response with this structure:
{
    "title": "Engaging lesson title",
    "explanation_english": "Clear explanation in English",
    "explanation_telugu": "Telugu translation and explanation",
    "key_points": ["Point 1", "Point 2", "Point 3", "Point 4"],
    "examples": [
        {"english": "Example sentence", "telugu": "Telugu translation"}
    ]
}

Focus on:
- Common mistakes Telugu speakers make in English
- Practical, everyday usage
- Clear explanations suitable for beginners
- Include Telugu script for better understanding`,
		lessonType, durationMinutes, describeMistakes(c.recentCorrections(studentID, 3, 5)))

	content, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warnw("lesson generation failed, using template", "lessonType", lessonType, "error", err)
		return Lesson{}, false
	}

	var lessonContent LessonContent
	if err := inference.DecodeJSON(content, &lessonContent); err != nil {
		c.log.Warnw("lesson response was not valid JSON, using template", "error", err)
		return Lesson{}, false
	}

	return Lesson{
		LessonID:          uuid.NewString(),
		LessonType:        lessonType,
		EstimatedDuration: durationMinutes,
		Content:           lessonContent,
		GeneratedBy:       "ai",
	}, true
}

// GenerateExercises builds a set of up to three practice exercises.
func (c *Composer) GenerateExercises(ctx context.Context, studentID, exerciseType, difficulty string) ExerciseSet {
	if c.gen != nil {
		if set, ok := c.generateAIExercises(ctx, studentID, exerciseType, difficulty); ok {
			return set
		}
	}

	pool, ok := exerciseTemplates[exerciseType]
	if !ok {
		pool = exerciseTemplates["fill_blanks"]
	}
	candidates, ok := pool[difficulty]
	if !ok {
		candidates = pool["beginner"]
	}

	selected := c.sampleExercises(candidates, 3)
	for i := range selected {
		selected[i].ExerciseID = "ex_" + uuid.NewString()
	}

	return ExerciseSet{Exercises: selected, GeneratedBy: "template"}
}

func (c *Composer) generateAIExercises(ctx context.Context, studentID, exerciseType, difficulty string) (ExerciseSet, bool) {
	prompt := fmt.Sprintf(`Create 3 English practice exercises for a Telugu-speaking student.
Exercise Type: %s
Difficulty: %s

Student's Recent Mistakes: %s

Please create a JSON response with this structure:
{
    "exercises": [
        {
            "question": "Clear question text",
            "options": ["option1", "option2", "option3", "option4"],
            "correct_answer": "correct option",
            "explanation": "Why this is correct, with Telugu explanation if helpful"
        }
    ]
}

Focus on:
- Common errors Telugu speakers make
- %s level appropriate content
- Clear explanations with reasoning
- Practical, everyday English usage`,
		exerciseType, difficulty, describeMistakes(c.recentCorrections(studentID, 3, 3)), difficulty)

	content, err := c.generate(ctx, prompt)
	if err != nil {
		c.log.Warnw("exercise generation failed, using templates", "exerciseType", exerciseType, "error", err)
		return ExerciseSet{}, false
	}

	var set ExerciseSet
	if err := inference.DecodeJSON(content, &set); err != nil || len(set.Exercises) == 0 {
		c.log.Warnw("exercise response was not valid JSON, using templates", "error", err)
		return ExerciseSet{}, false
	}

	for i := range set.Exercises {
		set.Exercises[i].ExerciseID = "ai_ex_" + uuid.NewString()
	}
	set.GeneratedBy = "ai"
	return set, true
}

// sampleExercises picks up to n distinct exercises at random.
func (c *Composer) sampleExercises(candidates []Exercise, n int) []Exercise {
	c.mu.Lock()
	defer c.mu.Unlock()

	indexes := c.rng.Perm(len(candidates))
	if n > len(indexes) {
		n = len(indexes)
	}

	selected := make([]Exercise, 0, n)
	for _, idx := range indexes[:n] {
		selected = append(selected, candidates[idx])
	}
	return selected
}

func describeMistakes(corrections []Correction) string {
	if len(corrections) == 0 {
		return "None yet"
	}

	descriptions := make([]string, 0, len(corrections))
	for _, correction := range corrections {
		descriptions = append(descriptions, fmt.Sprintf("%s ('%s' should be '%s')",
			correction.MistakeType, correction.OriginalText, correction.CorrectedText))
	}
	return strings.Join(descriptions, "; ")
}

// DailyVocabulary returns the themed word set for the given day.
func (c *Composer) DailyVocabulary(now time.Time) DailyVocabulary {
	return DailyVocabulary{
		Date:  now.Format("2006-01-02"),
		Theme: "Learning and Practice",
		Words: dailyVocabularyWords,
	}
}
