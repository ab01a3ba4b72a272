package flow

import (
	"context"

	"github.com/mfaerber/figit/internal/output"
	"github.com/mfaerber/figit/internal/picker"
)

// RunStaging lists changed paths, multi-selects, stages the selection and
// prints the resulting status. An empty selection is a no-op with a notice.
func RunStaging(ctx context.Context, s *Session) error {
	out := output.FromContext(ctx)

	entries, err := s.Git.Status(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		out.Warnf("working tree clean, nothing to stage")
		return nil
	}

	cands := make([]picker.Candidate, len(entries))
	for i, e := range entries {
		cands[i] = picker.Candidate{Key: e.Path, Display: e.Code() + " " + e.Path}
	}
	sel, err := s.Pick.Pick(ctx, cands, picker.Options{
		Header: "Stage paths",
		Multi:  true,
	})
	if err != nil {
		return err
	}
	if len(sel) == 0 {
		out.Warnf("nothing selected, nothing staged")
		return nil
	}

	if err := s.Git.Add(ctx, picker.Keys(sel)); err != nil {
		return err
	}

	after, err := s.Git.Status(ctx)
	if err != nil {
		return err
	}
	for _, e := range after {
		out.Printf("%s %s\n", e.Code(), e.Path)
	}
	return nil
}
