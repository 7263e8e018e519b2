package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/quizstation/internal/app"
	"github.com/abhisek/quizstation/internal/llm"
	"github.com/abhisek/quizstation/internal/quizgen"
	"github.com/spf13/cobra"
)

// runApp builds dependencies and launches the TUI. The LLM provider is
// optional: without one, only the CSV quiz source is available.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var opts app.Options
	provider, err := llm.NewProviderFromEnv(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Generated quizzes will be unavailable; CSV quizzes still work.")
	} else {
		opts.Generator = quizgen.New(provider, quizgen.DefaultConfig())
	}

	return app.Run(opts)
}
