package flow

import (
	"context"
	"fmt"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// GuardDecision is the outcome of the pre-flight guard.
type GuardDecision int

const (
	// Cancelled means the gated action must not run. The guard has already
	// told the user why; the caller just stops.
	Cancelled GuardDecision = iota
	// Proceed means the gated action may run.
	Proceed
)

// Guard inspects working-tree state before a mutating action. The state is
// recomputed on every call; the guard never auto-retries the gated action
// after staging, the user re-invokes it.
func Guard(ctx context.Context, s *Session, action string, autoProceedIfClean bool) (GuardDecision, error) {
	out := output.FromContext(ctx)

	state, err := s.Git.GuardState(ctx)
	if err != nil {
		return Cancelled, err
	}

	if state.Clean() {
		if autoProceedIfClean {
			return Proceed, nil
		}
		ok, err := s.Prompt.Confirm(ctx,
			fmt.Sprintf("Nothing staged for %s. Stage changes now?", action), "")
		if err != nil {
			return Cancelled, err
		}
		if !ok {
			out.Warnf("cancelled")
			return Cancelled, nil
		}
		if err := RunStaging(ctx, s); err != nil {
			return Cancelled, err
		}
		out.Warnf("staged; run %s again when ready", action)
		return Cancelled, nil
	}

	entries, err := s.Git.Status(ctx)
	if err != nil {
		return Cancelled, err
	}
	for _, e := range entries {
		out.Printf("%s %s\n", e.Code(), e.Path)
	}

	choices := []picker.Candidate{
		{Key: "stage", Display: "stage changes"},
		{Key: "staged-only", Display: "proceed with staged changes only"},
		{Key: "cancel", Display: "cancel"},
	}
	sel, err := s.Pick.Pick(ctx, choices, picker.Options{
		Header: "Uncommitted changes before " + action,
	})
	if err != nil {
		return Cancelled, err
	}
	if len(sel) == 0 {
		out.Warnf("cancelled")
		return Cancelled, nil
	}

	switch sel[0].Key {
	case "stage":
		if err := RunStaging(ctx, s); err != nil {
			return Cancelled, err
		}
		out.Warnf("staged; run %s again when ready", action)
		return Cancelled, nil
	case "staged-only":
		if !state.StagedDirty {
			out.Failf("nothing is staged; stage changes first")
			return Cancelled, nil
		}
		return Proceed, nil
	default:
		out.Warnf("cancelled")
		return Cancelled, nil
	}
}
