package wizard

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

// styledModel is a single-line bubbletea form. Enter submits, Esc and Ctrl+C
// cancel with an empty reply.
type styledModel struct {
	question  string
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newStyledModel(question string) styledModel {
	ti := textinput.New()
	ti.Placeholder = "curl vim=2:9.0"
	ti.Prompt = "❯ "
	ti.PromptStyle = promptStyle
	ti.Width = 50
	ti.Focus()
	return styledModel{question: question, input: ti}
}

func (m styledModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m styledModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m styledModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return questionStyle.Render(m.question) + "\n" + m.input.View() + "\n" + hintStyle.Render("enter to submit, esc to cancel") + "\n"
}

func (m styledModel) Value() string {
	if m.cancelled {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}

// StyledPrompt runs the form on the terminal and returns what was typed.
func StyledPrompt(question string) (string, error) {
	final, err := tea.NewProgram(newStyledModel(question)).Run()
	if err != nil {
		return "", err
	}
	return final.(styledModel).Value(), nil
}
