package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizstation/internal/question"
	"github.com/abhisek/quizstation/internal/quiz"
	"github.com/abhisek/quizstation/internal/router"
	"github.com/abhisek/quizstation/internal/screen"
	"github.com/abhisek/quizstation/internal/screens/results"
	"github.com/abhisek/quizstation/internal/ui/layout"
	"github.com/abhisek/quizstation/internal/ui/theme"
)

// PlayScreen walks the user through an in-progress quiz session one
// question at a time.
type PlayScreen struct {
	sess *quiz.Session

	// cursor is the highlighted option row for the current question.
	cursor int
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a quiz screen over a started session.
func New(sess *quiz.Session) *PlayScreen {
	return &PlayScreen{sess: sess}
}

// StartCmd builds and starts a session over the given questions and
// pushes the quiz screen. Returns nil for an empty set; callers gate on
// a non-empty load before offering to start.
func StartCmd(questions []question.Question) tea.Cmd {
	sess, err := quiz.NewSession(questions)
	if err != nil {
		return nil
	}
	if err := sess.Start(); err != nil {
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: New(sess)}
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return nil
}

func (p *PlayScreen) Title() string {
	return "Quiz in progress"
}

// Status shows progress in the header, e.g. "Q 3/10".
func (p *PlayScreen) Status() string {
	return fmt.Sprintf("Q %d/%d", p.sess.Position()+1, p.sess.Len())
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
	}
	if p.sess.AtEnd() {
		hints = append(hints, layout.KeyHint{Key: "S", Description: "Submit"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	options := p.sess.Options(p.sess.Position())

	switch kmsg.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(options)-1 {
			p.cursor++
		}
	case "enter", " ":
		if p.cursor >= 0 && p.cursor < len(options) {
			p.sess.SelectAnswer(p.sess.Position(), options[p.cursor])
		}
	case "left", "h":
		p.sess.Prev()
		p.syncCursor()
	case "right", "l":
		p.sess.Next()
		p.syncCursor()
	case "s":
		res, err := p.sess.Submit()
		if err != nil {
			return p, nil
		}
		return p, func() tea.Msg {
			return router.PushScreenMsg{Screen: results.New(p.sess, res)}
		}
	}

	return p, nil
}

// syncCursor points the cursor at the recorded answer after navigation,
// or the top row when the question is unanswered.
func (p *PlayScreen) syncCursor() {
	p.cursor = 0
	answer, ok := p.sess.Answer(p.sess.Position())
	if !ok {
		return
	}
	for i, opt := range p.sess.Options(p.sess.Position()) {
		if opt == answer {
			p.cursor = i
			return
		}
	}
}

func (p *PlayScreen) View(width, height int) string {
	pos := p.sess.Position()
	q := p.sess.Question(pos)
	options := p.sess.Options(pos)
	answer, answered := p.sess.Answer(pos)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Width(width - 4).Render("  " + q.Stem))
	b.WriteString("\n\n")

	for i, opt := range options {
		marker := "   "
		if i == p.cursor {
			marker = " ▸ "
		}

		style := theme.Unselected
		if i == p.cursor {
			style = theme.Selected
		}

		check := "( )"
		if answered && opt == answer {
			check = "(•)"
		}

		b.WriteString(style.Render(fmt.Sprintf(" %s%s %s", marker, check, opt)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if answered {
		b.WriteString(theme.Hint.Render("  Answer recorded. Use ←→ to revisit questions."))
	} else {
		b.WriteString(theme.Hint.Render("  Pick an option and press Enter."))
	}

	if p.sess.AtEnd() {
		b.WriteString("\n\n")
		b.WriteString(theme.Warning.Render("  Last question — press S to submit the quiz."))
	}

	return b.String()
}
