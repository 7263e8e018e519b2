package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizstation/internal/ingest"
	"github.com/abhisek/quizstation/internal/ui/theme"
)

// LoadSummary renders the outcome of an ingestion attempt: how many
// questions loaded plus any skipped-line warnings, and the prompt to start.
func LoadSummary(res ingest.Result) string {
	var b strings.Builder

	noun := "questions"
	if len(res.Questions) == 1 {
		noun = "question"
	}
	b.WriteString(theme.Correct.Render(fmt.Sprintf("  Loaded %d %s.", len(res.Questions), noun)))
	b.WriteString("\n")

	if len(res.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range res.Warnings {
			b.WriteString(theme.Warning.Render("  " + w.String()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render("  Press Enter to start the quiz."))
	return b.String()
}
