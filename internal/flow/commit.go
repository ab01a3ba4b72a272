package flow

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Commits returns the commit log flow. Single-select only.
func Commits() Flow {
	return Flow{
		Entity:      "commit",
		Plural:      "commits",
		CreateLabel: "new commit",
		List:        listCommits,
		Preview:     previewRef,
		Create:      CreateCommit,
		Menu:        commitMenu,
	}
}

func listCommits(ctx context.Context, s *Session) ([]picker.Candidate, error) {
	commits, err := s.Git.Log(ctx, "", s.Config.ListLimit)
	if err != nil {
		return nil, err
	}
	cands := make([]picker.Candidate, len(commits))
	for i, c := range commits {
		cands[i] = picker.Candidate{
			Key:     c.Hash,
			Display: fmt.Sprintf("%s  %s (%s, %s)", c.Short, c.Subject, c.Author, c.When),
		}
	}
	return cands, nil
}

func commitMenu(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
	hash := c.Key
	return []Action{
		{Label: "show", Run: func(ctx context.Context, s *Session) error {
			detail, err := s.Git.Show(ctx, hash)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(detail)
			return nil
		}},
		{Label: "graph", Run: func(ctx context.Context, s *Session) error {
			graph, err := s.Git.Graph(ctx, hash, s.Config.ListLimit)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(graph)
			return nil
		}},
		{Label: "checkout (detached)", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.CheckoutDetached(ctx, hash); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("checked out %s (detached)", hash)
			return nil
		}},
		{Label: "revert", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Revert(ctx, hash); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("reverted %s", hash)
			return nil
		}},
		{Label: "cherry-pick", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.CherryPick(ctx, hash); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("cherry-picked %s", hash)
			return nil
		}},
		{Label: "reset --hard", Run: func(ctx context.Context, s *Session) error {
			ok, err := s.Prompt.ConfirmTyped(ctx,
				fmt.Sprintf("Type %s to reset --hard to %s, discarding all local changes", deleteToken, hash),
				deleteToken)
			if err != nil {
				return err
			}
			if !ok {
				output.FromContext(ctx).Warnf("aborted, nothing changed")
				return nil
			}
			if err := s.Git.ResetHard(ctx, hash); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("reset --hard to %s", hash)
			return nil
		}},
		{Label: "copy hash", Run: func(ctx context.Context, s *Session) error {
			if err := clipboard.WriteAll(hash); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("copied %s", hash)
			return nil
		}},
	}, nil
}

// CreateCommit is the guarded commit flow: ensure something is staged,
// collect a message, commit, then offer to push. The save subcommand enters
// here directly.
func CreateCommit(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)

	decision, err := Guard(ctx, s, "commit", false)
	if err != nil || decision != Proceed {
		return err
	}
	message, err := askRequired(ctx, s, "Commit message", "message required")
	if err != nil || message == "" {
		return err
	}
	if err := s.Git.Commit(ctx, message); err != nil {
		return err
	}
	out.Okf("committed: %s", message)

	branch := s.Git.CurrentBranch(ctx)
	if branch == "" {
		return nil
	}
	push, err := s.Prompt.Confirm(ctx, fmt.Sprintf("Push %s to %s?", branch, s.Config.Remote), "")
	if err != nil {
		return err
	}
	if !push {
		return nil
	}
	if err := s.Git.Push(ctx, s.Config.Remote, branch); err != nil {
		return err
	}
	out.Okf("pushed %s to %s", branch, s.Config.Remote)
	return nil
}
