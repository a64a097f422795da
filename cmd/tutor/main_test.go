package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnalyzeCommand(t *testing.T) {
	cmd := newAnalyzeCommand()

	assert.Equal(t, "analyze [sentence]", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	// A sentence argument is required.
	err := cmd.Args(cmd, nil)
	assert.Error(t, err)
	assert.NoError(t, cmd.Args(cmd, []string{"I", "like", "tea."}))
}

func TestNewLessonCommand(t *testing.T) {
	cmd := newLessonCommand()

	assert.Equal(t, "lesson", cmd.Use)

	typeFlag := cmd.Flags().Lookup("type")
	assert.NotNil(t, typeFlag)
	assert.Equal(t, "grammar", typeFlag.DefValue)

	durationFlag := cmd.Flags().Lookup("duration")
	assert.NotNil(t, durationFlag)
	assert.Equal(t, "15", durationFlag.DefValue)
}

func TestLessonType_Set(t *testing.T) {
	var lessonType LessonType

	assert.NoError(t, lessonType.Set("vocabulary"))
	assert.Equal(t, "vocabulary", lessonType.String())

	err := lessonType.Set("astrology")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid lesson type")
}

func TestNewVocabularyCommand(t *testing.T) {
	cmd := newVocabularyCommand()

	assert.Equal(t, "vocabulary", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	err := cmd.Execute()
	assert.NoError(t, err)
}
