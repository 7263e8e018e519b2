package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizstation/internal/quiz"
	"github.com/abhisek/quizstation/internal/router"
	"github.com/abhisek/quizstation/internal/screen"
	"github.com/abhisek/quizstation/internal/ui/layout"
	"github.com/abhisek/quizstation/internal/ui/theme"
)

// ResultsScreen shows the score, elapsed time and per-question feedback
// for a completed quiz.
type ResultsScreen struct {
	sess    *quiz.Session
	results *quiz.Results

	// offset is the first visible feedback row, for long quizzes.
	offset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a completed session.
func New(sess *quiz.Session, res *quiz.Results) *ResultsScreen {
	return &ResultsScreen{sess: sess, results: res}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "Take another quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		if r.offset < len(r.results.Feedback)-1 {
			r.offset++
		}
	case "enter", "r":
		r.sess.Reset()
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	res := r.results

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("You scored %d out of %d", res.Score, res.Total)))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Time taken: " + formatDuration(res.Duration)))
	b.WriteString("\n\n")

	// Leave room for the headline above and one spare line below.
	visible := height - 6
	if visible < 1 {
		visible = 1
	}

	rows := 0
	for i := r.offset; i < len(res.Feedback) && rows < visible; i++ {
		fb := res.Feedback[i]
		b.WriteString(renderFeedback(i+1, fb, width))
		rows += 2
	}

	if r.offset+visible/2 < len(res.Feedback) {
		b.WriteString(theme.Hint.Render("  ↓ more"))
		b.WriteString("\n")
	}

	b.WriteString(theme.Hint.Render("  session " + res.SessionID))

	return b.String()
}

func renderFeedback(n int, fb quiz.Feedback, width int) string {
	var b strings.Builder

	if fb.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("  ✓ %d. %s", n, fb.Stem)))
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("       Your answer: " + fb.UserAnswer))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  ✗ %d. %s", n, fb.Stem)))
		b.WriteString("\n")
		user := fb.UserAnswer
		if user == "" {
			user = "(no answer)"
		}
		b.WriteString(theme.Body.Render(fmt.Sprintf("       Your answer: %s  ·  Correct: %s", user, fb.CorrectAnswer)))
	}
	b.WriteString("\n")

	return b.String()
}

// formatDuration renders elapsed time as "Xm Ys" or "Ys".
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
