package main

import (
	"os"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	rootCommand := &cobra.Command{
		Use:   "tutor",
		Short: "English tutoring toolbox for Telugu speakers",
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "Path to the configuration file")

	rootCommand.AddCommand(newAnalyzeCommand())
	rootCommand.AddCommand(newLessonCommand())
	rootCommand.AddCommand(newVocabularyCommand())

	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
