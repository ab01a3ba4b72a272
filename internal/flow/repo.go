package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/mfaerber/figit/internal/github"
	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Repos returns the repository flow over the viewer's GitHub repositories.
// Single-select only.
func Repos() Flow {
	byKey := map[string]github.Repo{}
	return Flow{
		Entity: "repository",
		Plural: "repositories",
		List: func(ctx context.Context, s *Session) ([]picker.Candidate, error) {
			repos, err := s.Hub.Repos(ctx)
			if err != nil {
				return nil, err
			}
			cands := make([]picker.Candidate, len(repos))
			for i, r := range repos {
				byKey[r.NameWithOwner] = r
				cands[i] = picker.Candidate{Key: r.NameWithOwner, Display: repoDisplay(r)}
			}
			return cands, nil
		},
		Preview: func(ctx context.Context, s *Session, c picker.Candidate) string {
			r := byKey[c.Key]
			if r.Description == "" {
				return r.URL
			}
			return r.Description + "\n" + r.URL
		},
		Create: createRepo,
		Menu: func(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
			return repoMenu(byKey[c.Key]), nil
		},
	}
}

func repoDisplay(r github.Repo) string {
	parts := []string{r.NameWithOwner, "[" + strings.ToLower(r.Visibility) + "]"}
	if r.IsArchived {
		parts = append(parts, "(archived)")
	}
	if r.Description != "" {
		parts = append(parts, r.Description)
	}
	return strings.Join(parts, "  ")
}

func repoMenu(r github.Repo) []Action {
	actions := []Action{
		{Label: "clone", Run: func(ctx context.Context, s *Session) error {
			if err := s.Hub.RepoClone(ctx, r.NameWithOwner); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("cloned %s", r.NameWithOwner)
			return nil
		}},
		{Label: "open in browser", Run: func(ctx context.Context, s *Session) error {
			return s.Hub.RepoView(ctx, r.NameWithOwner)
		}},
		{Label: "copy url", Run: func(ctx context.Context, s *Session) error {
			if err := clipboard.WriteAll(r.URL); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("copied %s", r.URL)
			return nil
		}},
	}
	if r.IsArchived {
		actions = append(actions, Action{Label: "unarchive", Run: func(ctx context.Context, s *Session) error {
			if err := s.Hub.RepoUnarchive(ctx, r.NameWithOwner); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("unarchived %s", r.NameWithOwner)
			return nil
		}})
	} else {
		actions = append(actions, Action{Label: "archive", Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Archive %s?", r.NameWithOwner))
			if err != nil || !ok {
				return err
			}
			if err := s.Hub.RepoArchive(ctx, r.NameWithOwner); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("archived %s", r.NameWithOwner)
			return nil
		}})
	}
	actions = append(actions, Action{Label: "delete", Run: func(ctx context.Context, s *Session) error {
		ok, err := s.Prompt.ConfirmTyped(ctx,
			fmt.Sprintf("Type %s to delete %s", deleteToken, r.NameWithOwner), deleteToken)
		if err != nil {
			return err
		}
		if !ok {
			output.FromContext(ctx).Warnf("aborted, nothing changed")
			return nil
		}
		if err := s.Hub.RepoDelete(ctx, r.NameWithOwner); err != nil {
			return err
		}
		output.FromContext(ctx).Okf("deleted %s", r.NameWithOwner)
		return nil
	}})
	return actions
}

func createRepo(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	name, err := askRequired(ctx, s, "Repository name", "name required")
	if err != nil || name == "" {
		return err
	}
	private, err := s.Prompt.Confirm(ctx, "Private repository?", "")
	if err != nil {
		return err
	}
	visibility := "--public"
	if private {
		visibility = "--private"
	}
	if err := s.Hub.RepoCreate(ctx, name, visibility); err != nil {
		return err
	}
	out.Okf("created %s", name)
	return nil
}
