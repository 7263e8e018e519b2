package csvfile

import (
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizstation/internal/ingest"
	"github.com/abhisek/quizstation/internal/screen"
	"github.com/abhisek/quizstation/internal/screens/play"
	"github.com/abhisek/quizstation/internal/ui/components"
	"github.com/abhisek/quizstation/internal/ui/layout"
	"github.com/abhisek/quizstation/internal/ui/theme"
)

type phase int

const (
	phaseInput phase = iota
	phaseReady
	phaseError
)

// loadedMsg carries the outcome of a CSV load.
type loadedMsg struct {
	res ingest.Result
	err error
}

// CSVScreen loads a user-supplied question file in the
// question,option1..option4,correct_answer column format.
type CSVScreen struct {
	pathInput components.TextInput

	phase  phase
	result ingest.Result
	err    error
}

var _ screen.Screen = (*CSVScreen)(nil)

// New creates the CSV loading screen.
func New() *CSVScreen {
	return &CSVScreen{
		pathInput: components.NewTextInput("path to a .csv file", false, 512),
	}
}

func (c *CSVScreen) Init() tea.Cmd {
	return c.pathInput.Init()
}

func (c *CSVScreen) Title() string {
	return "Quiz from a CSV file"
}

func (c *CSVScreen) KeyHints() []layout.KeyHint {
	if c.phase == phaseReady {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Load"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *CSVScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			c.phase = phaseError
			c.err = msg.err
			return c, nil
		}
		c.phase = phaseReady
		c.result = msg.res
		return c, nil

	case tea.KeyMsg:
		switch c.phase {
		case phaseReady:
			if msg.String() == "enter" {
				return c, play.StartCmd(c.result.Questions)
			}
			return c, nil

		case phaseError:
			c.phase = phaseInput
			c.err = nil
			return c, c.pathInput.Init()

		default:
			if msg.String() == "enter" {
				path := strings.TrimSpace(c.pathInput.Value())
				if path == "" {
					return c, nil
				}
				return c, loadCmd(path)
			}
		}
	}

	var cmd tea.Cmd
	c.pathInput, cmd = c.pathInput.Update(msg)
	return c, cmd
}

func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return loadedMsg{err: err}
		}
		defer f.Close()

		res, err := ingest.LoadCSV(f)
		return loadedMsg{res: res, err: err}
	}
}

func (c *CSVScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	switch c.phase {
	case phaseReady:
		b.WriteString(components.LoadSummary(c.result))

	case phaseError:
		b.WriteString(theme.Incorrect.Render("  Could not load that file."))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("  " + c.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Press any key to try again."))

	default:
		b.WriteString(theme.Body.Render("  Where is your question file?"))
		b.WriteString("\n\n")
		b.WriteString("  " + c.pathInput.View())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("  Expected columns: question, option1, option2, option3, option4, correct_answer"))
	}

	return b.String()
}
