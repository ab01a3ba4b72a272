package flow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// deleteToken is the literal a destructive bulk action requires before any
// item is attempted.
const deleteToken = "DELETE"

// runBulk presents the bulk menu for a multi-selection and applies the
// chosen action to every item in order. Item failures are reported inline
// and never abort the batch; already-applied items are not rolled back.
func runBulk(ctx context.Context, s *Session, f Flow, sel []picker.Candidate) error {
	out := output.FromContext(ctx)

	if len(f.Bulk) == 0 {
		out.Failf("%s actions apply to one selection at a time", f.Entity)
		return nil
	}

	rows := make([]picker.Candidate, len(f.Bulk))
	for i, a := range f.Bulk {
		rows[i] = picker.Candidate{Key: strconv.Itoa(i), Display: a.Label}
	}
	chosen, err := s.Pick.Pick(ctx, rows, picker.Options{
		Header: fmt.Sprintf("%d %s selected", len(sel), f.Plural),
	})
	if err != nil {
		return err
	}
	if len(chosen) == 0 {
		out.Warnf("cancelled")
		return nil
	}
	idx, err := strconv.Atoi(chosen[0].Key)
	if err != nil || idx < 0 || idx >= len(f.Bulk) {
		return fmt.Errorf("selector returned unknown action %q", chosen[0].Key)
	}
	act := f.Bulk[idx]

	if act.Destructive {
		ok, err := s.Prompt.ConfirmTyped(ctx,
			fmt.Sprintf("Type %s to %s %d %s", deleteToken, act.Label, len(sel), f.Plural),
			deleteToken)
		if err != nil {
			return err
		}
		if !ok {
			out.Warnf("aborted, nothing changed")
			return nil
		}
	}

	failed := 0
	for _, c := range sel {
		if err := act.Run(ctx, s, c); err != nil {
			failed++
			out.Failf("%s: %v", c.Key, err)
			continue
		}
		out.Okf("%s", c.Key)
	}
	out.Printf("%d succeeded, %d failed\n", len(sel)-failed, failed)
	return nil
}
