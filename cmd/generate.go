package cmd

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/quizstation/internal/extract"
	"github.com/abhisek/quizstation/internal/ingest"
	"github.com/abhisek/quizstation/internal/llm"
	"github.com/abhisek/quizstation/internal/quizgen"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a quiz CSV without the TUI",
	Long: "Generate quiz questions from a topic or document and write them " +
		"to stdout in the question,option1..option4,correct_answer CSV format. " +
		"The output loads straight back into the CSV quiz source.",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		docPath, _ := cmd.Flags().GetString("doc")
		count, _ := cmd.Flags().GetInt("count")

		if (topic == "") == (docPath == "") {
			return errors.New("exactly one of --topic or --doc is required")
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		provider, err := llm.NewProviderFromEnv(ctx)
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		gen := quizgen.New(provider, quizgen.DefaultConfig())

		var res ingest.Result
		if topic != "" {
			res, err = gen.FromTopic(ctx, topic, count)
		} else {
			var text string
			text, err = extract.FromFile(docPath)
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			res, err = gen.FromDocument(ctx, text, count)
		}
		if err != nil {
			return err
		}

		for _, w := range res.Warnings {
			fmt.Fprintln(os.Stderr, w.String())
		}

		return writeCSV(os.Stdout, res)
	},
}

func init() {
	generateCmd.Flags().String("topic", "", "Topic to generate questions about")
	generateCmd.Flags().String("doc", "", "Path to a PDF or text file to generate questions from")
	generateCmd.Flags().Int("count", 0, "Number of questions (1-20, default 5)")
}

// writeCSV emits the loaded questions in the same column format LoadCSV reads.
func writeCSV(f *os.File, res ingest.Result) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{"question", "option1", "option2", "option3", "option4", "correct_answer"}); err != nil {
		return err
	}
	for _, q := range res.Questions {
		row := append([]string{q.Stem}, q.Options...)
		row = append(row, q.CorrectAnswer)
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
