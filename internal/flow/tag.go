package flow

import (
	"context"
	"fmt"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Tags returns the tag flow.
func Tags() Flow {
	return Flow{
		Entity:  "tag",
		Plural:  "tags",
		Multi:   true,
		List:    listTags,
		Preview: previewRef,
		Create:  createTag,
		Menu:    tagMenu,
		Bulk: []BulkAction{
			{Label: "delete local", Destructive: true, Run: func(ctx context.Context, s *Session, c picker.Candidate) error {
				return s.Git.DeleteTag(ctx, c.Key)
			}},
		},
	}
}

func listTags(ctx context.Context, s *Session) ([]picker.Candidate, error) {
	tags, err := s.Git.Tags(ctx)
	if err != nil {
		return nil, err
	}
	cands := make([]picker.Candidate, len(tags))
	for i, t := range tags {
		cands[i] = picker.Candidate{Key: t, Display: t}
	}
	return cands, nil
}

func tagMenu(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
	name := c.Key
	remote := s.Config.Remote
	return []Action{
		{Label: "checkout", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.CheckoutDetached(ctx, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("checked out %s (detached)", name)
			return nil
		}},
		{Label: "show", Run: func(ctx context.Context, s *Session) error {
			detail, err := s.Git.Show(ctx, name)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(detail)
			return nil
		}},
		{Label: "push to " + remote, Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.PushRef(ctx, remote, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("pushed %s to %s", name, remote)
			return nil
		}},
		{Label: "delete local", Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Delete local tag %s?", name))
			if err != nil || !ok {
				return err
			}
			if err := s.Git.DeleteTag(ctx, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("deleted %s", name)
			return nil
		}},
		{Label: "delete on " + remote, Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Delete %s on %s?", name, remote))
			if err != nil || !ok {
				return err
			}
			if err := s.Git.PushDelete(ctx, remote, name); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("deleted %s on %s", name, remote)
			return nil
		}},
	}, nil
}

func createTag(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	name, err := askRequired(ctx, s, "Tag name", "name required")
	if err != nil || name == "" {
		return err
	}
	message, ok, err := s.Prompt.Input(ctx, "Tag message (empty for lightweight)", "")
	if err != nil {
		return err
	}
	if !ok {
		out.Warnf("cancelled")
		return nil
	}
	if err := s.Git.CreateTag(ctx, name, message); err != nil {
		return err
	}
	if message == "" {
		out.Okf("created tag %s", name)
	} else {
		out.Okf("created annotated tag %s", name)
	}
	return nil
}
