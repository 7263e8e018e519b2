package document

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizstation/internal/extract"
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

// generatedMsg carries the outcome of extraction plus generation.
type generatedMsg struct {
	res ingest.Result
	err error
}

// DocumentScreen collects a file path, extracts the document text and
// generates a quiz grounded in it.
type DocumentScreen struct {
	gen *quizgen.Generator

	pathInput  components.TextInput
	countInput components.TextInput
	focus      int // 0 = path, 1 = count

	phase  phase
	result ingest.Result
	err    error
}

var _ screen.Screen = (*DocumentScreen)(nil)

// New creates the document generation screen.
func New(gen *quizgen.Generator) *DocumentScreen {
	return &DocumentScreen{
		gen:        gen,
		pathInput:  components.NewTextInput("path to a .pdf or text file", false, 512),
		countInput: components.NewTextInput("5", true, 2),
	}
}

func (d *DocumentScreen) Init() tea.Cmd {
	return d.pathInput.Init()
}

func (d *DocumentScreen) Title() string {
	return "Quiz from a document"
}

func (d *DocumentScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
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

func (d *DocumentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.err != nil {
			d.phase = phaseError
			d.err = msg.err
			return d, nil
		}
		d.phase = phaseReady
		d.result = msg.res
		return d, nil

	case tea.KeyMsg:
		switch d.phase {
		case phaseLoading:
			return d, nil

		case phaseReady:
			if msg.String() == "enter" {
				return d, play.StartCmd(d.result.Questions)
			}
			return d, nil

		case phaseError:
			d.phase = phaseInput
			d.err = nil
			return d, d.pathInput.Init()

		default:
			switch msg.String() {
			case "tab", "shift+tab":
				return d, d.toggleFocus()
			case "enter":
				path := strings.TrimSpace(d.pathInput.Value())
				if path == "" {
					return d, nil
				}
				d.phase = phaseLoading
				return d, d.generateCmd(path, d.countInput.IntValue())
			}
		}
	}

	var cmd tea.Cmd
	if d.focus == 0 {
		d.pathInput, cmd = d.pathInput.Update(msg)
	} else {
		d.countInput, cmd = d.countInput.Update(msg)
	}
	return d, cmd
}

func (d *DocumentScreen) toggleFocus() tea.Cmd {
	if d.focus == 0 {
		d.focus = 1
		d.pathInput.Model.Blur()
		return d.countInput.Model.Focus()
	}
	d.focus = 0
	d.countInput.Model.Blur()
	return d.pathInput.Model.Focus()
}

func (d *DocumentScreen) generateCmd(path string, n int) tea.Cmd {
	gen := d.gen
	return func() tea.Msg {
		text, err := extract.FromFile(path)
		if err != nil {
			return generatedMsg{err: err}
		}
		res, err := gen.FromDocument(context.Background(), text, n)
		return generatedMsg{res: res, err: err}
	}
}

func (d *DocumentScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch d.phase {
	case phaseLoading:
		b.WriteString(theme.Body.Render("  Reading the document and generating questions..."))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Large documents are truncated before they reach the model."))

	case phaseReady:
		b.WriteString(components.LoadSummary(d.result))

	case phaseError:
		b.WriteString(theme.Incorrect.Render("  Could not build a quiz from that file."))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("  " + d.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Press any key to try again."))

	default:
		b.WriteString(theme.Body.Render("  Which file should the quiz come from? (PDF or plain text)"))
		b.WriteString("\n\n")
		b.WriteString("  " + d.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("  How many questions? (1-20, default 5)"))
		b.WriteString("\n\n")
		b.WriteString("  " + d.countInput.View())
	}

	return b.String()
}
