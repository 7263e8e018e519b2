package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizstation",
	Short: "Quiz yourself on anything",
	Long:  "QuizStation — terminal quiz app that builds multiple-choice quizzes from a topic, a document, or your own CSV file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
