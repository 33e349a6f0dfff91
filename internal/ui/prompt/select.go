package prompt

import (
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/raphi011/git-hook-setup/internal/ui/styles"
)

// Option is a selectable entry. Description is shown below the title when
// any option has one.
type Option struct {
	Title       string
	Description string
}

// SelectResult holds the chosen option. Index is -1 when cancelled.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type optionItem struct {
	opt   Option
	index int
}

func (i optionItem) Title() string       { return i.opt.Title }
func (i optionItem) Description() string { return i.opt.Description }
func (i optionItem) FilterValue() string { return i.opt.Title }

type selectModel struct {
	list   list.Model
	result SelectResult
	done   bool
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// let the list handle keys while the filter is being typed
		if m.list.SettingFilter() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(optionItem); ok {
				m.result = SelectResult{Value: item.opt.Title, Index: item.index}
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// Select lets the user pick one of options, starting with the cursor on
// options[initial]. Typing "/" filters the list.
func Select(title string, options []Option, initial int) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Index: -1, Cancelled: true}, nil
	}

	p := tea.NewProgram(newSelectModel(title, options, initial), programOptions()...)
	final, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	return final.(selectModel).result, nil
}

func newSelectModel(title string, options []Option, initial int) selectModel {
	items := make([]list.Item, len(options))
	rows := len(options)
	describe := false
	for i, opt := range options {
		items[i] = optionItem{opt: opt, index: i}
		describe = describe || opt.Description != ""
	}
	if describe {
		rows *= 2
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = describe
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	delegate.Styles.SelectedDesc = styles.MutedStyle

	l := list.New(items, delegate, 60, min(rows+6, 20))
	l.Title = title
	l.Styles.Title = styles.PrimaryStyle.Bold(true)
	l.SetShowStatusBar(false)
	l.DisableQuitKeybindings()
	if initial > 0 && initial < len(options) {
		l.Select(initial)
	}

	return selectModel{list: l, result: SelectResult{Index: -1, Cancelled: true}}
}
