package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/tutor"
)

func newVocabularyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vocabulary",
		Short: "Show today's vocabulary words",
		RunE: func(cmd *cobra.Command, args []string) error {
			composer := tutor.NewComposer(nil, nil, nil, logger.NewNop())
			vocabulary := composer.DailyVocabulary(time.Now())

			color.Cyan("%s: %s", vocabulary.Date, vocabulary.Theme)
			for _, word := range vocabulary.Words {
				color.Green("%s %s (%s)", word.Word, word.Pronunciation, word.PartOfSpeech)
				fmt.Printf("  %s\n", word.MeaningTelugu)
				for _, example := range word.Examples {
					fmt.Printf("  %s / %s\n", example.English, example.Telugu)
				}
			}
			return nil
		},
	}
}
