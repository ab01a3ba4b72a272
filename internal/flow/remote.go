package flow

import (
	"context"
	"fmt"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Remotes returns the remote flow. Single-select only.
func Remotes() Flow {
	return Flow{
		Entity: "remote",
		Plural: "remotes",
		List:   listRemotes,
		Create: createRemote,
		Menu:   remoteMenu,
	}
}

func listRemotes(ctx context.Context, s *Session) ([]picker.Candidate, error) {
	remotes, err := s.Git.Remotes(ctx)
	if err != nil {
		return nil, err
	}
	cands := make([]picker.Candidate, len(remotes))
	for i, r := range remotes {
		cands[i] = picker.Candidate{Key: r.Name, Display: r.Name + "  " + r.URL}
	}
	return cands, nil
}

func remoteMenu(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
	name := c.Key
	return []Action{
		{Label: "fetch --prune", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.Fetch(ctx, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("fetched %s", name)
			return nil
		}},
		{Label: "set url", Run: func(ctx context.Context, s *Session) error {
			url, err := askRequired(ctx, s, "New URL", "url required")
			if err != nil || url == "" {
				return err
			}
			if err := s.Git.RemoteSetURL(ctx, name, url); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("%s -> %s", name, url)
			return nil
		}},
		{Label: "rename", Run: func(ctx context.Context, s *Session) error {
			newName, err := askRequired(ctx, s, "New name", "name required")
			if err != nil || newName == "" {
				return err
			}
			if err := s.Git.RemoteRename(ctx, name, newName); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("renamed %s to %s", name, newName)
			return nil
		}},
		{Label: "remove", Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Remove remote %s?", name))
			if err != nil || !ok {
				return err
			}
			if err := s.Git.RemoteRemove(ctx, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("removed %s", name)
			return nil
		}},
	}, nil
}

func createRemote(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	name, err := askRequired(ctx, s, "Remote name", "name required")
	if err != nil || name == "" {
		return err
	}
	url, err := askRequired(ctx, s, "Remote URL", "url required")
	if err != nil || url == "" {
		return err
	}
	if err := s.Git.RemoteAdd(ctx, name, url); err != nil {
		return err
	}
	out.Okf("added remote %s", name)
	return nil
}
