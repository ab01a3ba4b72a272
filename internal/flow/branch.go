package flow

import (
	"context"
	"fmt"

	"github.com/mfaerber/figit/internal/git"
	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Branches returns the branch flow: local branches plus remote-only ones,
// annotated with sync status against the configured remote.
func Branches() Flow {
	return Flow{
		Entity:  "branch",
		Plural:  "branches",
		Multi:   true,
		List:    listBranches,
		Preview: previewRef,
		Create:  createBranch,
		Menu:    branchMenu,
		Bulk: []BulkAction{
			{Label: "delete local", Destructive: true, Run: func(ctx context.Context, s *Session, c picker.Candidate) error {
				if s.Config.Protected(c.Key) {
					return fmt.Errorf("%s is protected", c.Key)
				}
				return s.Git.DeleteBranch(ctx, c.Key)
			}},
		},
	}
}

func listBranches(ctx context.Context, s *Session) ([]picker.Candidate, error) {
	branches, err := s.Git.Branches(ctx, s.Config.Remote)
	if err != nil {
		return nil, err
	}
	cands := make([]picker.Candidate, len(branches))
	for i, b := range branches {
		cands[i] = picker.Candidate{Key: b.Name, Display: branchDisplay(ctx, s, b)}
	}
	return cands, nil
}

func branchDisplay(ctx context.Context, s *Session, b git.Branch) string {
	marker := "  "
	if b.Current {
		marker = "* "
	}
	if b.RemoteOnly {
		return marker + b.Name + " (" + s.Config.Remote + " only)"
	}
	status, err := s.Git.BranchSyncStatus(ctx, b.Name, s.Config.Remote)
	if err != nil {
		return marker + b.Name
	}
	if note := status.Note(); note != "" {
		return marker + b.Name + " " + note
	}
	return marker + b.Name
}

func previewRef(ctx context.Context, s *Session, c picker.Candidate) string {
	out, err := s.Git.Show(ctx, c.Key)
	if err != nil {
		return "(preview unavailable: " + err.Error() + ")"
	}
	return out
}

func branchMenu(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
	name := c.Key
	current := s.Git.CurrentBranch(ctx)
	remote := s.Config.Remote

	actions := []Action{
		{Label: "switch", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Checkout(ctx, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("switched to %s", name)
			return nil
		}},
	}
	if name != current && current != "" {
		actions = append(actions, Action{
			Label: fmt.Sprintf("merge into %s", current),
			Run: func(ctx context.Context, s *Session) error {
				if err := s.Git.Merge(ctx, name); err != nil {
					return err
				}
				output.FromContext(ctx).Okf("merged %s into %s", name, current)
				return nil
			},
		})
	}
	actions = append(actions,
		Action{Label: "copy to new branch", Run: func(ctx context.Context, s *Session) error {
			return copyBranch(ctx, s, name)
		}},
		Action{Label: "push", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Push(ctx, remote, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("pushed %s to %s", name, remote)
			return nil
		}},
		Action{Label: "pull", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Pull(ctx, remote, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("pulled %s from %s", name, remote)
			return nil
		}},
	)
	if name != current && !s.Config.Protected(name) {
		actions = append(actions, Action{
			Label: "delete local",
			Run: func(ctx context.Context, s *Session) error {
				ok, err := confirmed(ctx, s, fmt.Sprintf("Delete local branch %s?", name))
				if err != nil || !ok {
					return err
				}
				if err := s.Git.DeleteBranch(ctx, name); err != nil {
					return err
				}
				output.FromContext(ctx).Okf("deleted %s", name)
				return nil
			},
		})
	}
	if s.Git.RefExists(ctx, remote+"/"+name) {
		actions = append(actions, Action{
			Label: "delete on " + remote,
			Run: func(ctx context.Context, s *Session) error {
				ok, err := confirmed(ctx, s, fmt.Sprintf("Delete %s on %s?", name, remote))
				if err != nil || !ok {
					return err
				}
				if err := s.Git.PushDelete(ctx, remote, name); err != nil {
					return err
				}
				output.FromContext(ctx).Okf("deleted %s on %s", name, remote)
				return nil
			},
		})
	}
	return actions, nil
}

func createBranch(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	name, err := askRequired(ctx, s, "Branch name", "name required")
	if err != nil || name == "" {
		return err
	}
	if err := s.Git.CreateBranch(ctx, name); err != nil {
		return err
	}
	out.Okf("created branch %s", name)

	push, err := s.Prompt.Confirm(ctx, fmt.Sprintf("Push %s to %s?", name, s.Config.Remote), "")
	if err != nil {
		return err
	}
	if !push {
		return nil
	}
	if err := s.Git.Push(ctx, s.Config.Remote, name); err != nil {
		return err
	}
	out.Okf("pushed %s to %s", name, s.Config.Remote)
	return nil
}

// copyBranch creates a new branch pointing at source without switching.
func copyBranch(ctx context.Context, s *Session, source string) error {
	out := output.FromContext(ctx)
	name, err := askRequired(ctx, s, "New branch name", "name required")
	if err != nil || name == "" {
		return err
	}
	if err := s.Git.CreateBranchFrom(ctx, name, source); err != nil {
		return err
	}
	out.Okf("created %s from %s", name, source)

	push, err := s.Prompt.Confirm(ctx, fmt.Sprintf("Push %s to %s?", name, s.Config.Remote), "")
	if err != nil {
		return err
	}
	if !push {
		return nil
	}
	if err := s.Git.Push(ctx, s.Config.Remote, name); err != nil {
		return err
	}
	out.Okf("pushed %s to %s", name, s.Config.Remote)
	return nil
}
