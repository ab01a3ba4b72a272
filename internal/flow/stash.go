package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// Stashes returns the stash flow.
func Stashes() Flow {
	return Flow{
		Entity: "stash",
		Plural: "stashes",
		Multi:  true,
		List:   listStashes,
		Preview: func(ctx context.Context, s *Session, c picker.Candidate) string {
			detail, err := s.Git.StashShow(ctx, c.Key)
			if err != nil {
				return "(preview unavailable: " + err.Error() + ")"
			}
			return detail
		},
		Create: createStash,
		Menu:   stashMenu,
		Bulk: []BulkAction{
			{Label: "drop", Destructive: true, Run: func(ctx context.Context, s *Session, c picker.Candidate) error {
				return s.Git.StashDrop(ctx, c.Key)
			}},
		},
	}
}

func listStashes(ctx context.Context, s *Session) ([]picker.Candidate, error) {
	stashes, err := s.Git.Stashes(ctx)
	if err != nil {
		return nil, err
	}
	cands := make([]picker.Candidate, len(stashes))
	for i, st := range stashes {
		cands[i] = picker.Candidate{Key: st.Ref, Display: st.Ref + "  " + st.Subject}
	}
	return cands, nil
}

func stashMenu(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
	ref := c.Key
	return []Action{
		{Label: "apply", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.StashApply(ctx, ref); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("applied %s", ref)
			return nil
		}},
		{Label: "pop", Run: func(ctx context.Context, s *Session) error {
			if err := s.Git.StashPop(ctx, ref); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("popped %s", ref)
			return nil
		}},
		{Label: "drop", Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Drop %s?", ref))
			if err != nil || !ok {
				return err
			}
			if err := s.Git.StashDrop(ctx, ref); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("dropped %s", ref)
			return nil
		}},
		{Label: "show", Run: func(ctx context.Context, s *Session) error {
			detail, err := s.Git.StashShow(ctx, ref)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(detail)
			return nil
		}},
	}, nil
}

// stashClock is swapped out by tests for a deterministic default message.
var stashClock = time.Now

func createStash(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	message, ok, err := s.Prompt.Input(ctx, "Stash message (optional)", "")
	if err != nil {
		return err
	}
	if !ok {
		out.Warnf("cancelled")
		return nil
	}
	if message == "" {
		message = "stash " + stashClock().Format("2006-01-02 15:04:05")
	}
	if err := s.Git.StashPush(ctx, message); err != nil {
		return err
	}
	out.Okf("stashed: %s", message)
	return nil
}
