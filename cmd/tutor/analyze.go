package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rgkonda/englishtutor/internal/config"
	"github.com/rgkonda/englishtutor/internal/inference"
	"github.com/rgkonda/englishtutor/internal/inference/gemini"
	"github.com/rgkonda/englishtutor/internal/logger"
	"github.com/rgkonda/englishtutor/internal/tutor"
)

func newAnalyzeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [sentence]",
		Short: "Check an English sentence and print bilingual feedback",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			// Without an API key the analysis runs fully offline.
			var generator inference.Generator
			if cfg.Gemini.APIKey != "" {
				client := gemini.NewClient(
					cfg.Gemini.APIKey,
					cfg.Gemini.Model,
					inference.DefaultMaxRetryAttempts,
					time.Duration(cfg.Gemini.TimeoutSeconds)*time.Second,
					logger.NewNop(),
				)
				defer func() {
					_ = client.Close()
				}()
				generator = client
			}

			composer := tutor.NewComposer(generator, tutor.NewProseTagger(), nil, logger.NewNop())
			response := composer.Respond(cmd.Context(), "cli", strings.Join(args, " "), false)
			printResponse(response)
			return nil
		},
	}
}

func printResponse(response tutor.Response) {
	if response.IsCorrect {
		color.Green("Correct! (%s level)", response.StudentLevel)
	} else {
		color.Red("Found %d correction(s): (%s level)", len(response.Corrections), response.StudentLevel)
		for _, correction := range response.Corrections {
			fmt.Printf("  %q should be %q [%s]\n",
				correction.OriginalText, correction.CorrectedText, correction.MistakeType)
			fmt.Printf("    %s\n", correction.ExplanationEnglish)
			fmt.Printf("    %s\n", correction.ExplanationTelugu)
		}
	}

	if response.GrammarTip != "" {
		color.Yellow("%s", response.GrammarTip)
	}

	if len(response.Examples) > 0 {
		fmt.Println("Examples:")
		for _, example := range response.Examples {
			fmt.Printf("  %s / %s\n", example.English, example.Telugu)
		}
	}

	if response.VerbForms != nil {
		fmt.Printf("Verb forms of %q: %s, %s, %s, %s\n",
			response.VerbForms.BaseForm, response.VerbForms.PastSimple,
			response.VerbForms.PastParticiple, response.VerbForms.PresentParticiple,
			response.VerbForms.ThirdPerson)
	}

	fmt.Println(response.Encouragement)
	fmt.Println("Next:", response.NextSuggestion)
}
