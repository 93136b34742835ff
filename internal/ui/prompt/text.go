package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
)

type textModel struct {
	textInput textinput.Model
	prompt    string
	def       string
	done      bool
	cancelled bool
}

func newTextModel(message, def string) textModel {
	ti := textinput.New()
	ti.Placeholder = def
	ti.Focus()
	ti.CharLimit = 256
	ti.SetWidth(50)

	return textModel{
		textInput: ti,
		prompt:    message,
		def:       def,
	}
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	label := m.prompt
	if m.def != "" {
		label += " " + styles.MutedStyle.Render(fmt.Sprintf("(%s)", m.def))
	}
	return tea.NewView(fmt.Sprintf("%s\n%s", label, m.textInput.View()))
}

// value returns the trimmed input, or the default when nothing was typed.
func (m textModel) value() string {
	if v := strings.TrimSpace(m.textInput.Value()); v != "" {
		return v
	}
	return m.def
}
