package picker

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testCandidates() []Candidate {
	return []Candidate{
		Sentinel("branch"),
		{Key: "main", Display: "* main"},
		{Key: "feature-x", Display: "  feature-x (push needed)"},
		{Key: "fix-typo", Display: "  fix-typo"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(model)
	}
	return m
}

func TestSentinel(t *testing.T) {
	t.Parallel()
	s := Sentinel("tag")
	if !s.Sentinel {
		t.Error("Sentinel candidate not marked")
	}
	if !strings.HasPrefix(s.Display, "[+] ") {
		t.Errorf("Display = %q, want reserved prefix", s.Display)
	}
}

func TestModel_EnterSelectsHighlighted(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{})
	m = update(t, m, "down", "down", "enter")
	if len(m.chosen) != 1 || m.chosen[0].Key != "feature-x" {
		t.Errorf("chosen = %+v, want feature-x", m.chosen)
	}
}

func TestModel_EscCancels(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{})
	m = update(t, m, "esc")
	if !m.cancelled {
		t.Error("cancelled = false, want true")
	}
	if m.chosen != nil {
		t.Errorf("chosen = %+v, want nil", m.chosen)
	}
}

func TestModel_FuzzyFilter(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{})
	m = update(t, m, "f", "t", "r")
	// "ftr" fuzzy-matches feature-x but not main.
	for _, idx := range m.filtered {
		if m.cands[idx].Key == "main" {
			t.Errorf("filter kept %q", m.cands[idx].Display)
		}
	}
	if len(m.filtered) == 0 {
		t.Fatal("filter dropped everything")
	}
}

func TestModel_MultiSelectMarks(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{Multi: true})
	m = update(t, m, "down", "tab", "tab", "enter") // mark main and feature-x
	keys := Keys(m.chosen)
	if len(keys) != 2 || keys[0] != "main" || keys[1] != "feature-x" {
		t.Errorf("chosen keys = %v, want [main feature-x]", keys)
	}
}

func TestModel_MultiEnterWithoutMarks(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{Multi: true})
	m = update(t, m, "down", "enter")
	if len(m.chosen) != 1 || m.chosen[0].Key != "main" {
		t.Errorf("chosen = %+v, want highlighted main", m.chosen)
	}
}

func TestModel_ViewShowsHeaderAndRows(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{Header: "Select branch"})
	view := m.View()
	for _, want := range []string{"Select branch", "create new branch", "feature-x"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModel_PreviewToleratesSentinelAndFailures(t *testing.T) {
	t.Parallel()
	preview := func(c Candidate) string {
		if c.Sentinel {
			return "Create a new branch"
		}
		if c.Key == "main" {
			return "(preview unavailable: " + errors.New("boom").Error() + ")"
		}
		return "log for " + c.Key
	}
	m := newModel(testCandidates(), Options{Preview: preview})

	if got := m.View(); !strings.Contains(got, "Create a new branch") {
		t.Errorf("sentinel preview missing: %q", got)
	}
	m = update(t, m, "down")
	if got := m.View(); !strings.Contains(got, "preview unavailable: boom") {
		t.Errorf("degraded preview missing: %q", got)
	}
}

func TestModel_CursorClampedAfterFilter(t *testing.T) {
	t.Parallel()
	m := newModel(testCandidates(), Options{})
	m = update(t, m, "down", "down", "down", "m", "a", "i", "n")
	if m.cursor >= len(m.filtered) {
		t.Errorf("cursor %d out of range for %d filtered rows", m.cursor, len(m.filtered))
	}
	m = update(t, m, "enter")
	if len(m.chosen) != 1 {
		t.Fatalf("chosen = %+v, want one row", m.chosen)
	}
}

func TestHasSentinel(t *testing.T) {
	t.Parallel()
	sel := []Candidate{Sentinel("tag"), {Key: "v1"}}
	if !HasSentinel(sel) {
		t.Error("HasSentinel = false, want true")
	}
	if HasSentinel(sel[1:]) {
		t.Error("HasSentinel = true, want false")
	}
}
