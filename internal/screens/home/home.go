package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizstation/internal/quizgen"
	"github.com/abhisek/quizstation/internal/router"
	"github.com/abhisek/quizstation/internal/screen"
	"github.com/abhisek/quizstation/internal/screens/csvfile"
	"github.com/abhisek/quizstation/internal/screens/document"
	"github.com/abhisek/quizstation/internal/screens/topic"
	"github.com/abhisek/quizstation/internal/ui/components"
	"github.com/abhisek/quizstation/internal/ui/theme"
)

// Deps carries the collaborators the source screens need.
type Deps struct {
	Generator *quizgen.Generator
}

// HomeScreen is the source-selection menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. Generation-backed sources are disabled
// when no LLM provider is configured.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	aiDetail := "needs an LLM API key"
	aiDisabled := deps.Generator == nil
	if !aiDisabled {
		aiDetail = ""
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Topic",
			Detail: firstNonEmpty(aiDetail, "generate a quiz from any topic"),
			Action: func() tea.Cmd {
				return push(topic.New(deps.Generator))
			},
			Disabled: aiDisabled,
		},
		{
			Label:  "Document",
			Detail: firstNonEmpty(aiDetail, "build a quiz from a PDF or text file"),
			Action: func() tea.Cmd {
				return push(document.New(deps.Generator))
			},
			Disabled: aiDisabled,
		},
		{
			Label:  "Q&A CSV",
			Detail: "load your own questions from a CSV file",
			Action: func() tea.Cmd {
				return push(csvfile.New())
			},
		},
	})

	return h
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Pick a quiz source"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("QuizStation"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Make a quiz, take the quiz, see how you did."))
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if h.deps.Generator == nil {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("Set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY to enable generated quizzes."))
	}

	return b.String()
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
