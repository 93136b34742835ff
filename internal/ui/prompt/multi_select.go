package prompt

import (
	"fmt"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/prompt"
)

const maxVisible = 10

// optionSource implements fuzzy.Source for options.
type optionSource []prompt.Option

func (s optionSource) String(i int) string { return s[i].Label }
func (s optionSource) Len() int            { return len(s) }

type multiSelectModel struct {
	prompt    string
	options   []prompt.Option
	filtered  []fuzzy.Match // matches with indices and matched positions
	cursor    int           // position in filtered list
	selected  map[int]bool  // keyed by option index
	filter    string
	minSelect int
	warning   string
	done      bool
	cancelled bool
}

func newMultiSelectModel(message string, options []prompt.Option, minSelect int) multiSelectModel {
	m := multiSelectModel{
		prompt:    message,
		options:   options,
		selected:  make(map[int]bool),
		minSelect: minSelect,
	}
	m.applyFilter()
	return m
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	case "enter":
		if len(m.selected) < m.minSelect {
			m.warning = fmt.Sprintf("Select at least %d", m.minSelect)
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "space", " ":
		m.toggle()
	case "ctrl+a":
		m.toggleAll()
	case "backspace":
		if m.filter != "" {
			r := []rune(m.filter)
			m.filter = string(r[:len(r)-1])
			m.applyFilter()
		}
	default:
		if text := printable(key.Text); text != "" {
			m.filter += text
			m.applyFilter()
		}
	}
	return m, nil
}

func printable(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return r
		}
		return -1
	}, s)
}

func (m *multiSelectModel) toggle() {
	if len(m.filtered) == 0 {
		return
	}
	idx := m.filtered[m.cursor].Index
	if m.selected[idx] {
		delete(m.selected, idx)
	} else {
		m.selected[idx] = true
	}
	m.warning = ""
}

// toggleAll selects every visible option, or clears them when all are selected.
func (m *multiSelectModel) toggleAll() {
	all := true
	for _, match := range m.filtered {
		if !m.selected[match.Index] {
			all = false
			break
		}
	}
	for _, match := range m.filtered {
		if all {
			delete(m.selected, match.Index)
		} else {
			m.selected[match.Index] = true
		}
	}
	m.warning = ""
}

func (m *multiSelectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.filtered[i] = fuzzy.Match{Str: opt.Label, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(m.filter, optionSource(m.options))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

// values returns the selected option values in option order.
func (m multiSelectModel) values() []string {
	var out []string
	for i, opt := range m.options {
		if m.selected[i] {
			out = append(out, opt.Value)
		}
	}
	return out
}

func (m multiSelectModel) labels() []string {
	var out []string
	for i, opt := range m.options {
		if m.selected[i] {
			out = append(out, opt.Label)
		}
	}
	return out
}

func (m multiSelectModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m multiSelectModel) render() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d selected)\n", styles.TitleStyle.Render(m.prompt), len(m.selected))
	b.WriteString(styles.MutedStyle.Render("Filter: ") + m.filter + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		match := m.filtered[i]
		opt := m.options[match.Index]

		cursor := "  "
		if i == m.cursor {
			cursor = styles.AccentStyle.Render("> ")
		}
		checkbox := "[ ]"
		if m.selected[match.Index] {
			checkbox = "[" + styles.SymbolCheck + "]"
		}

		b.WriteString(cursor + checkbox + " " + highlight(opt.Label, match.MatchedIndexes))
		if opt.Description != "" {
			b.WriteString(" " + styles.MutedStyle.Render(opt.Description))
		}
		b.WriteString("\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle.Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.MutedStyle.Render("  No matching hooks") + "\n")
	}

	if m.warning != "" {
		b.WriteString("\n" + styles.ErrorStyle.Render(m.warning) + "\n")
	}
	b.WriteString("\n" + styles.MutedStyle.Render("↑/↓ move • space toggle • ctrl+a toggle all • type to filter • enter confirm • esc cancel"))
	return b.String()
}

// highlight renders the fuzzy-matched characters of label.
func highlight(label string, matched []int) string {
	if len(matched) == 0 {
		return label
	}
	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range label {
		if hit[i] {
			b.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
