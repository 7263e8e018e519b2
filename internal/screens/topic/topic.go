package topic

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizstation/internal/ingest"
	"github.com/abhisek/quizstation/internal/quizgen"
	"github.com/abhisek/quizstation/internal/screen"
	"github.com/abhisek/quizstation/internal/screens/play"
	"github.com/abhisek/quizstation/internal/ui/components"
	"github.com/abhisek/quizstation/internal/ui/layout"
	"github.com/abhisek/quizstation/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseLoading
	phaseReady
	phaseError
)

// generatedMsg carries the outcome of an async generation call.
type generatedMsg struct {
	res ingest.Result
	err error
}

// TopicScreen collects a topic and question count, generates a quiz and
// hands the loaded question set to the quiz screen.
type TopicScreen struct {
	gen *quizgen.Generator

	topicInput components.TextInput
	countInput components.TextInput
	focus      int // 0 = topic, 1 = count

	phase  phase
	result ingest.Result
	err    error
}

var _ screen.Screen = (*TopicScreen)(nil)

// New creates the topic generation screen.
func New(gen *quizgen.Generator) *TopicScreen {
	return &TopicScreen{
		gen:        gen,
		topicInput: components.NewTextInput("e.g. photosynthesis, the French Revolution...", false, 120),
		countInput: components.NewTextInput("5", true, 2),
	}
}

func (t *TopicScreen) Init() tea.Cmd {
	return t.topicInput.Init()
}

func (t *TopicScreen) Title() string {
	return "Quiz from a topic"
}

func (t *TopicScreen) KeyHints() []layout.KeyHint {
	switch t.phase {
	case phaseReady:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Generate"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (t *TopicScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.err != nil {
			t.phase = phaseError
			t.err = msg.err
			return t, nil
		}
		t.phase = phaseReady
		t.result = msg.res
		return t, nil

	case tea.KeyMsg:
		switch t.phase {
		case phaseLoading:
			return t, nil

		case phaseReady:
			if msg.String() == "enter" {
				return t, play.StartCmd(t.result.Questions)
			}
			return t, nil

		case phaseError:
			t.phase = phaseInput
			t.err = nil
			return t, t.topicInput.Init()

		default:
			switch msg.String() {
			case "tab", "shift+tab":
				return t, t.toggleFocus()
			case "enter":
				topic := strings.TrimSpace(t.topicInput.Value())
				if topic == "" {
					return t, nil
				}
				t.phase = phaseLoading
				return t, t.generateCmd(topic, t.countInput.IntValue())
			}
		}
	}

	var cmd tea.Cmd
	if t.focus == 0 {
		t.topicInput, cmd = t.topicInput.Update(msg)
	} else {
		t.countInput, cmd = t.countInput.Update(msg)
	}
	return t, cmd
}

func (t *TopicScreen) toggleFocus() tea.Cmd {
	if t.focus == 0 {
		t.focus = 1
		t.topicInput.Model.Blur()
		return t.countInput.Model.Focus()
	}
	t.focus = 0
	t.countInput.Model.Blur()
	return t.topicInput.Model.Focus()
}

func (t *TopicScreen) generateCmd(topic string, n int) tea.Cmd {
	gen := t.gen
	return func() tea.Msg {
		res, err := gen.FromTopic(context.Background(), topic, n)
		return generatedMsg{res: res, err: err}
	}
}

func (t *TopicScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch t.phase {
	case phaseLoading:
		b.WriteString(theme.Body.Render("  Generating questions..."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  This usually takes a few seconds."))

	case phaseReady:
		b.WriteString(components.LoadSummary(t.result))

	case phaseError:
		b.WriteString(theme.Incorrect.Render("  Could not generate a quiz."))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("  " + t.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Press any key to try again."))

	default:
		b.WriteString(theme.Body.Render("  What should the quiz be about?"))
		b.WriteString("\n\n")
		b.WriteString("  " + t.topicInput.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("  How many questions? (1-20, default 5)"))
		b.WriteString("\n\n")
		b.WriteString("  " + t.countInput.View())
	}

	return b.String()
}
