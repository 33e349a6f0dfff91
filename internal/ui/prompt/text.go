package prompt

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

// TextInputResult holds the entered text, trimmed of surrounding space.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	title     string
	input     textinput.Model
	done      bool
	cancelled bool
}

func newTextInputModel(title, placeholder, value string) textInputModel {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 1024
	in.SetWidth(60)
	in.SetValue(value)
	in.Focus()
	return textInputModel{title: title, input: in}
}

func (m textInputModel) Init() tea.Cmd { return textinput.Blink }

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.done, m.cancelled = true, true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(styles.PrimaryStyle.Render(m.title) + "\n" + m.input.View())
}

func (m textInputModel) result() TextInputResult {
	return TextInputResult{
		Value:     strings.TrimSpace(m.input.Value()),
		Cancelled: m.cancelled,
	}
}

// TextInput asks for a line of text. value pre-fills the field so the
// user can accept it with enter or clear it.
func TextInput(title, placeholder, value string) (TextInputResult, error) {
	p := tea.NewProgram(newTextInputModel(title, placeholder, value), programOptions()...)
	final, err := p.Run()
	if err != nil {
		return TextInputResult{}, err
	}
	return final.(textInputModel).result(), nil
}
