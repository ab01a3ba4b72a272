package flow

import (
	"context"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

type menuEntry struct {
	name string
	hint string
	run  func(ctx context.Context, s *Session) error
}

func menuEntries() []menuEntry {
	return []menuEntry{
		{"branch", "switch, merge, push, pull, delete branches", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Branches())
		}},
		{"tag", "checkout, push, delete tags", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Tags())
		}},
		{"stash", "apply, pop, drop stashes", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Stashes())
		}},
		{"remote", "fetch, rename, re-point remotes", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Remotes())
		}},
		{"repo", "clone, archive, delete GitHub repositories", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Repos())
		}},
		{"pr", "checkout, merge, close pull requests", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, PRs())
		}},
		{"issue", "view, close, comment on issues", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Issues(false))
		}},
		{"commit", "show, revert, cherry-pick commits", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Commits())
		}},
		{"status", "stage, unstage, discard, commit changes", func(ctx context.Context, s *Session) error {
			return Run(ctx, s, Changes())
		}},
	}
}

// RunMenu is the top-level loop entered when figit runs without arguments.
// It re-presents the menu after each completed flow until the user exits.
func RunMenu(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	entries := menuEntries()

	cands := make([]picker.Candidate, 0, len(entries)+2)
	for _, e := range entries {
		cands = append(cands, picker.Candidate{Key: e.name, Display: e.name + "  -  " + e.hint})
	}
	cands = append(cands,
		picker.Candidate{Key: "help", Display: "help  -  list what each flow does"},
		picker.Candidate{Key: "exit", Display: "exit"},
	)

	for {
		sel, err := s.Pick.Pick(ctx, cands, picker.Options{Header: "figit"})
		if err != nil {
			return err
		}
		if len(sel) == 0 || sel[0].Key == "exit" {
			return nil
		}
		if sel[0].Key == "help" {
			for _, e := range entries {
				out.Printf("%-8s %s\n", e.name, e.hint)
			}
			continue
		}
		for _, e := range entries {
			if e.name == sel[0].Key {
				if err := e.run(ctx, s); err != nil {
					return err
				}
				break
			}
		}
	}
}
