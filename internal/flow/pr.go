package flow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"

	"github.com/mfaerber/figit/internal/github"
	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// PRs returns the pull request flow. Single-select only.
func PRs() Flow {
	byKey := map[string]github.PR{}
	return Flow{
		Entity: "pull request",
		Plural: "pull requests",
		List: func(ctx context.Context, s *Session) ([]picker.Candidate, error) {
			prs, err := s.Hub.PRs(ctx)
			if err != nil {
				return nil, err
			}
			cands := make([]picker.Candidate, len(prs))
			for i, pr := range prs {
				key := strconv.Itoa(pr.Number)
				byKey[key] = pr
				cands[i] = picker.Candidate{
					Key:     key,
					Display: fmt.Sprintf("#%d  %s (%s)", pr.Number, pr.Title, pr.HeadRefName),
				}
			}
			return cands, nil
		},
		Create: createPR,
		Menu: func(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
			return prMenu(byKey[c.Key]), nil
		},
	}
}

func prMenu(pr github.PR) []Action {
	return []Action{
		{Label: "checkout", Run: func(ctx context.Context, s *Session) error {
			if err := s.Hub.PRCheckout(ctx, pr.Number); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("checked out #%d (%s)", pr.Number, pr.HeadRefName)
			return nil
		}},
		{Label: "open in browser", Run: func(ctx context.Context, s *Session) error {
			return s.Hub.PRView(ctx, pr.Number)
		}},
		{Label: "diff", Run: func(ctx context.Context, s *Session) error {
			diff, err := s.Hub.PRDiff(ctx, pr.Number)
			if err != nil {
				return err
			}
			output.FromContext(ctx).Println(diff)
			return nil
		}},
		{Label: "merge", Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Merge #%d?", pr.Number))
			if err != nil || !ok {
				return err
			}
			if err := s.Hub.PRMerge(ctx, pr.Number); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("merged #%d", pr.Number)
			return nil
		}},
		{Label: "close", Run: func(ctx context.Context, s *Session) error {
			ok, err := confirmed(ctx, s, fmt.Sprintf("Close #%d without merging?", pr.Number))
			if err != nil || !ok {
				return err
			}
			if err := s.Hub.PRClose(ctx, pr.Number); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("closed #%d", pr.Number)
			return nil
		}},
		{Label: "copy url", Run: func(ctx context.Context, s *Session) error {
			if err := clipboard.WriteAll(pr.URL); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("copied %s", pr.URL)
			return nil
		}},
	}
}

func createPR(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
	decision, err := Guard(ctx, s, "pull request", true)
	if err != nil || decision != Proceed {
		return err
	}
	title, err := askRequired(ctx, s, "Title", "title required")
	if err != nil || title == "" {
		return err
	}
	body, ok, err := s.Prompt.Input(ctx, "Body (optional)", "")
	if err != nil {
		return err
	}
	if !ok {
		out.Warnf("cancelled")
		return nil
	}
	if err := s.Hub.PRCreate(ctx, title, body); err != nil {
		return err
	}
	out.Okf("opened pull request: %s", title)
	return nil
}
