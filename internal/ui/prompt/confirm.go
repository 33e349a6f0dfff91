package prompt

import (
	tea "charm.land/bubbletea/v2"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

// ConfirmResult holds the answer of a yes/no prompt.
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type confirmModel struct {
	question string
	fallback bool // answer for a bare enter
	answer   ConfirmResult
	done     bool
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.answer.Confirmed = true
	case "n", "N":
		m.answer.Confirmed = false
	case "enter":
		m.answer.Confirmed = m.fallback
	case "ctrl+c", "q", "esc":
		m.answer = ConfirmResult{Cancelled: true}
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	choices := "[y/N]"
	if m.fallback {
		choices = "[Y/n]"
	}
	return tea.NewView(m.question + " " + styles.MutedStyle.Render(choices) + " ")
}

// Confirm asks a yes/no question. Enter alone answers fallback.
func Confirm(question string, fallback bool) (ConfirmResult, error) {
	p := tea.NewProgram(confirmModel{question: question, fallback: fallback}, programOptions()...)
	final, err := p.Run()
	if err != nil {
		return ConfirmResult{}, err
	}
	return final.(confirmModel).answer, nil
}
