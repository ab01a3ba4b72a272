package picker

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	plainStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	markStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	previewStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

type model struct {
	cands []Candidate
	opts  Options

	input    textinput.Model
	filtered []int // indexes into cands, in display order
	cursor   int   // position within filtered
	marked   map[int]bool

	previews map[int]string

	chosen    []Candidate
	cancelled bool
	maxHeight int
}

func newModel(cands []Candidate, opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.PromptStyle = cursorStyle
	ti.CharLimit = 100
	ti.Focus()

	filtered := make([]int, len(cands))
	for i := range cands {
		filtered[i] = i
	}

	return model{
		cands:     cands,
		opts:      opts,
		input:     ti,
		filtered:  filtered,
		marked:    map[int]bool{},
		previews:  map[int]string{},
		maxHeight: 12,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			m.chosen = m.selection()
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil

		case "tab":
			if m.opts.Multi && len(m.filtered) > 0 {
				idx := m.filtered[m.cursor]
				m.marked[idx] = !m.marked[idx]
				if m.cursor < len(m.filtered)-1 {
					m.cursor++
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = m.filter(m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
	return m, cmd
}

// selection returns the marked candidates in listing order, or the
// highlighted one when nothing is marked.
func (m model) selection() []Candidate {
	if m.opts.Multi && len(m.marked) > 0 {
		var sel []Candidate
		for i, c := range m.cands {
			if m.marked[i] {
				sel = append(sel, c)
			}
		}
		return sel
	}
	if len(m.filtered) == 0 {
		return nil
	}
	return []Candidate{m.cands[m.filtered[m.cursor]]}
}

func (m model) filter(query string) []int {
	if query == "" {
		all := make([]int, len(m.cands))
		for i := range m.cands {
			all[i] = i
		}
		return all
	}
	displays := make([]string, len(m.cands))
	for i, c := range m.cands {
		displays[i] = c.Display
	}
	matches := fuzzy.Find(query, displays)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	return idx
}

func (m model) preview(idx int) string {
	if m.opts.Preview == nil {
		return ""
	}
	if p, ok := m.previews[idx]; ok {
		return p
	}
	p := m.opts.Preview(m.cands[idx])
	m.previews[idx] = p
	return p
}

func (m model) View() string {
	if m.cancelled || m.chosen != nil {
		return ""
	}

	var sb strings.Builder
	if m.opts.Header != "" {
		sb.WriteString(headerStyle.Render(m.opts.Header))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  no matches"))
		sb.WriteString("\n")
	}

	start, end := viewport(m.cursor, len(m.filtered), m.maxHeight)
	for i := start; i < end; i++ {
		idx := m.filtered[i]
		c := m.cands[idx]

		mark := "  "
		if m.opts.Multi {
			mark = "[ ] "
			if m.marked[idx] {
				mark = markStyle.Render("[x]") + " "
			}
		}

		if i == m.cursor {
			sb.WriteString(cursorStyle.Render("> ") + mark + selectedStyle.Render(c.Display))
		} else {
			sb.WriteString("  " + mark + plainStyle.Render(c.Display))
		}
		sb.WriteString("\n")
	}
	if len(m.filtered) > m.maxHeight {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  %d/%d", m.cursor+1, len(m.filtered))))
		sb.WriteString("\n")
	}

	if len(m.filtered) > 0 {
		if p := m.preview(m.filtered[m.cursor]); p != "" {
			sb.WriteString(previewStyle.Render(p))
			sb.WriteString("\n")
		}
	}

	help := "↑/↓ navigate • enter select • esc cancel"
	if m.opts.Multi {
		help = "↑/↓ navigate • tab mark • enter confirm • esc cancel"
	}
	sb.WriteString(dimStyle.Render(help))
	return sb.String()
}

func viewport(cursor, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	end := start + height
	if end > total {
		end = total
		start = end - height
	}
	return start, end
}

// TTY is the interactive Picker backed by bubbletea.
type TTY struct{}

// Pick runs the fuzzy selector. Cancellation returns an empty selection and
// a nil error.
func (TTY) Pick(ctx context.Context, candidates []Candidate, opts Options) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(newModel(candidates, opts), tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(model)
	if m.cancelled {
		return nil, nil
	}
	return m.chosen, nil
}
