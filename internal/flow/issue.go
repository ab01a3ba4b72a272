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

// Issues returns the issue flow. When all is set, closed issues are listed
// too and get a reopen action. Single-select only.
func Issues(all bool) Flow {
	byKey := map[string]github.Issue{}
	return Flow{
		Entity: "issue",
		Plural: "issues",
		List: func(ctx context.Context, s *Session) ([]picker.Candidate, error) {
			issues, err := s.Hub.Issues(ctx, all)
			if err != nil {
				return nil, err
			}
			cands := make([]picker.Candidate, len(issues))
			for i, is := range issues {
				key := strconv.Itoa(is.Number)
				byKey[key] = is
				display := fmt.Sprintf("#%d  %s", is.Number, is.Title)
				if is.State != "OPEN" {
					display += " (closed)"
				}
				cands[i] = picker.Candidate{Key: key, Display: display}
			}
			return cands, nil
		},
		Create: createIssue,
		Menu: func(ctx context.Context, s *Session, c picker.Candidate) ([]Action, error) {
			return issueMenu(byKey[c.Key]), nil
		},
	}
}

func issueMenu(is github.Issue) []Action {
	actions := []Action{
		{Label: "open in browser", Run: func(ctx context.Context, s *Session) error {
			return s.Hub.IssueView(ctx, is.Number)
		}},
	}
	if is.State == "OPEN" {
		actions = append(actions, Action{Label: "close", Run: func(ctx context.Context, s *Session) error {
			if err := s.Hub.IssueClose(ctx, is.Number); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("closed #%d", is.Number)
			return nil
		}})
	} else {
		actions = append(actions, Action{Label: "reopen", Run: func(ctx context.Context, s *Session) error {
			if err := s.Hub.IssueReopen(ctx, is.Number); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("reopened #%d", is.Number)
			return nil
		}})
	}
	actions = append(actions,
		Action{Label: "comment", Run: func(ctx context.Context, s *Session) error {
			body, err := askRequired(ctx, s, "Comment", "comment required")
			if err != nil || body == "" {
				return err
			}
			if err := s.Hub.IssueComment(ctx, is.Number, body); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("commented on #%d", is.Number)
			return nil
		}},
		Action{Label: "copy url", Run: func(ctx context.Context, s *Session) error {
			if err := clipboard.WriteAll(is.URL); err != nil {
				return err
			}
			output.FromContext(ctx).Okf("copied %s", is.URL)
			return nil
		}},
	)
	return actions
}

func createIssue(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)
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
	if err := s.Hub.IssueCreate(ctx, title, body); err != nil {
		return err
	}
	out.Okf("opened issue: %s", title)
	return nil
}
