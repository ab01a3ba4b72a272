package flow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Action is one context-menu entry. Dispatch runs the handler carried here;
// it never branches on the label text.
type Action struct {
	Label string
	Run   func(ctx context.Context, s *Session) error
}

// BulkAction is one menu entry for a multi-selection. Run is invoked once
// per selected candidate.
type BulkAction struct {
	Label string
	// Destructive actions require typing DELETE before the batch starts.
	Destructive bool
	Run         func(ctx context.Context, s *Session, c picker.Candidate) error
}

// Flow configures one entity flow for the generic engine.
type Flow struct {
	// Entity is the singular noun, used for the sentinel row and headers.
	Entity string
	// Plural is used in notices ("no branches found").
	Plural string
	// CreateLabel overrides the sentinel text ("create new <entity>").
	CreateLabel string
	// Multi allows selecting more than one candidate; Bulk must be set.
	Multi bool

	List    func(ctx context.Context, s *Session) ([]picker.Candidate, error)
	Preview func(ctx context.Context, s *Session, c picker.Candidate) string
	Create  func(ctx context.Context, s *Session) error
	Menu    func(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error)
	Bulk    []BulkAction
}

func (f Flow) sentinel() picker.Candidate {
	if f.CreateLabel != "" {
		return picker.SentinelLabeled(f.CreateLabel)
	}
	return picker.Sentinel(f.Entity)
}

// Run drives one complete interaction for f: list, select, then dispatch on
// the selection size. Cancellation at any point is a normal outcome ending
// in a printed notice, never an error.
func Run(ctx context.Context, s *Session, f Flow) error {
	out := output.FromContext(ctx)

	cands, err := f.List(ctx, s)
	if err != nil {
		return fmt.Errorf("list %s: %w", f.Plural, err)
	}
	if len(cands) == 0 {
		out.Warnf("no %s found", f.Plural)
	}
	list := append([]picker.Candidate{f.sentinel()}, cands...)

	opts := picker.Options{
		Header: "Select " + f.Entity,
		Multi:  f.Multi,
	}
	if f.Preview != nil {
		opts.Preview = func(c picker.Candidate) string {
			if c.Sentinel {
				return "Create a new " + f.Entity
			}
			return f.Preview(ctx, s, c)
		}
	}

	sel, err := s.Pick.Pick(ctx, list, opts)
	if err != nil {
		return err
	}

	switch {
	case len(sel) == 0:
		out.Warnf("cancelled")
		return nil
	case picker.HasSentinel(sel) && len(sel) > 1:
		out.Failf("the create entry must be selected alone")
		return nil
	case sel[0].Sentinel:
		return f.Create(ctx, s)
	case len(sel) == 1:
		return runMenu(ctx, s, f, sel[0])
	default:
		return runBulk(ctx, s, f, sel)
	}
}

// runMenu presents the context menu for a single candidate and executes the
// chosen action.
func runMenu(ctx context.Context, s *Session, f Flow, c picker.Candidate) error {
	out := output.FromContext(ctx)

	actions, err := f.Menu(ctx, s, c)
	if err != nil {
		return err
	}

	rows := make([]picker.Candidate, len(actions))
	for i, a := range actions {
		rows[i] = picker.Candidate{Key: strconv.Itoa(i), Display: a.Label}
	}
	sel, err := s.Pick.Pick(ctx, rows, picker.Options{Header: f.Entity + " " + c.Key})
	if err != nil {
		return err
	}
	if len(sel) == 0 {
		out.Warnf("cancelled")
		return nil
	}
	idx, err := strconv.Atoi(sel[0].Key)
	if err != nil || idx < 0 || idx >= len(actions) {
		return fmt.Errorf("selector returned unknown action %q", sel[0].Key)
	}
	return actions[idx].Run(ctx, s)
}

// askRequired collects a required free-text value. An empty returned string
// means the handler must stop; the reason has already been printed.
func askRequired(ctx context.Context, s *Session, title, missing string) (string, error) {
	out := output.FromContext(ctx)
	v, ok, err := s.Prompt.Input(ctx, title, "")
	if err != nil {
		return "", err
	}
	if !ok {
		out.Warnf("cancelled")
		return "", nil
	}
	if v == "" {
		out.Failf("%s", missing)
		return "", nil
	}
	return v, nil
}

// confirmed asks a yes/no question and prints a notice when declined.
func confirmed(ctx context.Context, s *Session, title string) (bool, error) {
	ok, err := s.Prompt.Confirm(ctx, title, "")
	if err != nil {
		return false, err
	}
	if !ok {
		output.FromContext(ctx).Warnf("cancelled")
	}
	return ok, nil
}
