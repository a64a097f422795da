package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/tutor"
)

type LessonType string

func (lt *LessonType) Set(val string) error {
	for _, candidate := range allLessonTypes {
		if val == string(candidate) {
			*lt = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid lesson type: %s", val)
}

func (lt LessonType) String() string {
	return string(lt)
}

func (lt *LessonType) Type() string {
	return "LessonType"
}

const (
	LessonTypeGrammar       LessonType = "grammar"
	LessonTypeVocabulary    LessonType = "vocabulary"
	LessonTypeConversation  LessonType = "conversation"
	LessonTypePronunciation LessonType = "pronunciation"
	LessonTypeWriting       LessonType = "writing"
)

var (
	_              pflag.Value = (*LessonType)(nil)
	allLessonTypes             = []LessonType{
		LessonTypeGrammar,
		LessonTypeVocabulary,
		LessonTypeConversation,
		LessonTypePronunciation,
		LessonTypeWriting,
	}
)

func newLessonCommand() *cobra.Command {
	lessonType := LessonTypeGrammar
	var duration int

	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Print a template lesson",
		RunE: func(cmd *cobra.Command, args []string) error {
			composer := tutor.NewComposer(nil, nil, nil, logger.NewNop())
			lesson := composer.GenerateLesson(cmd.Context(), "cli", string(lessonType), duration)

			color.Cyan("%s (%d minutes)", lesson.Content.Title, lesson.EstimatedDuration)
			fmt.Println(lesson.Content.ExplanationEnglish)
			fmt.Println(lesson.Content.ExplanationTelugu)
			for _, point := range lesson.Content.KeyPoints {
				fmt.Printf("  * %s\n", point)
			}
			for _, example := range lesson.Content.Examples {
				fmt.Printf("  %s / %s\n", example.English, example.Telugu)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(&lessonType, "type", fmt.Sprintf("Lesson type. Possible values are %v", allLessonTypes))
	flags.IntVar(&duration, "duration", 15, "Lesson duration in minutes")

	return cmd
}
