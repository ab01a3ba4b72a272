package flow

import (
	"context"
	"fmt"

	"github.com/mfaerber/figit/internal/git"
	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Changes returns the working-tree flow over changed paths. The create row
// enters the commit flow.
func Changes() Flow {
	byPath := map[string]git.StatusEntry{}
	return Flow{
		Entity:      "change",
		Plural:      "changes",
		CreateLabel: "commit staged changes",
		Multi:       true,
		List: func(ctx context.Context, s *Session) ([]picker.Candidate, error) {
			entries, err := s.Git.Status(ctx)
			if err != nil {
				return nil, err
			}
			cands := make([]picker.Candidate, len(entries))
			for i, e := range entries {
				byPath[e.Path] = e
				cands[i] = picker.Candidate{Key: e.Path, Display: e.Code() + " " + e.Path}
			}
			return cands, nil
		},
		Preview: func(ctx context.Context, s *Session, c picker.Candidate) string {
			e := byPath[c.Key]
			diff, err := s.Git.Diff(ctx, e.Path, !e.HasUnstaged())
			if err != nil {
				return "(preview unavailable: " + err.Error() + ")"
			}
			return diff
		},
		Create: CreateCommit,
		Menu: func(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
			return changeMenu(byPath[c.Key]), nil
		},
		Bulk: []BulkAction{
			{Label: "stage", Run: func(ctx context.Context, s *Session, c picker.Candidate) error {
				return s.Git.Add(ctx, []string{c.Key})
			}},
			{Label: "unstage", Run: func(ctx context.Context, s *Session, c picker.Candidate) error {
				return s.Git.Unstage(ctx, []string{c.Key})
			}},
			{Label: "discard", Destructive: true, Run: func(ctx context.Context, s *Session, c picker.Candidate) error {
				return s.Git.Discard(ctx, []string{c.Key})
			}},
		},
	}
}

func changeMenu(e git.StatusEntry) []Action {
	actions := []Action{
		{Label: "diff", Run: func(ctx context.Context, s *Session) error {
			diff, err := s.Git.Diff(ctx, e.Path, !e.HasUnstaged())
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(diff)
			return nil
		}},
		{Label: "stage", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Add(ctx, []string{e.Path}); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("staged %s", e.Path)
			return nil
		}},
	}
	if e.HasStaged() {
		actions = append(actions, Action{Label: "unstage", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Unstage(ctx, []string{e.Path}); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("unstaged %s", e.Path)
			return nil
		}})
	}
	actions = append(actions, Action{Label: "discard changes", Run: func(ctx context.Context, s *Session) error {
		ok, err := confirmed(ctx, s, fmt.Sprintf("Discard changes to %s?", e.Path))
		if err != nil || !ok {
			return err
		}
		if err := s.Git.Discard(ctx, []string{e.Path}); err != nil {
			return err
		}
		output.FromContext(ctx).Okf("discarded %s", e.Path)
		return nil
	}})
	return actions
}
