package flow

import (
	"bytes"
	"strings"
	"testing"
)

const statusCmd = "git status --porcelain --no-renames"

func TestGuard_CleanAutoProceeds(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: ""}}
	s := testSession(r, &scriptPicker{}, &scriptPrompter{})
	var buf bytes.Buffer

	dec, err := Guard(testContext(&buf), s, "push", true)
	if err != nil {
		t.Fatalf("Guard() error = %v", err)
	}
	if dec != Proceed {
		t.Errorf("decision = %v, want Proceed", dec)
	}
}

func TestGuard_CleanCommitNeverProceeds(t *testing.T) {
	t.Parallel()

	t.Run("decline staging", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{statusCmd: ""}}
		s := testSession(r, &scriptPicker{}, &scriptPrompter{confirms: []bool{false}})
		var buf bytes.Buffer

		dec, err := Guard(testContext(&buf), s, "commit", false)
		if err != nil {
			t.Fatalf("Guard() error = %v", err)
		}
		if dec != Cancelled {
			t.Errorf("decision = %v, want Cancelled", dec)
		}
	})

	t.Run("accept staging", func(t *testing.T) {
		t.Parallel()
		r := &fakeRunner{outputs: map[string]string{statusCmd: ""}}
		s := testSession(r, &scriptPicker{}, &scriptPrompter{confirms: []bool{true}})
		var buf bytes.Buffer

		dec, err := Guard(testContext(&buf), s, "commit", false)
		if err != nil {
			t.Fatalf("Guard() error = %v", err)
		}
		if dec != Cancelled {
			t.Errorf("decision = %v, want Cancelled after staging", dec)
		}
	})
}

func TestGuard_StagedOnlyWithNothingStaged(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: " M main.go"}}
	s := testSession(r, &scriptPicker{scripts: [][]string{{"staged-only"}}}, &scriptPrompter{})
	var buf bytes.Buffer

	dec, err := Guard(testContext(&buf), s, "commit", false)
	if err != nil {
		t.Fatalf("Guard() error = %v", err)
	}
	if dec != Cancelled {
		t.Errorf("decision = %v, want Cancelled", dec)
	}
	if !strings.Contains(buf.String(), "nothing is staged") {
		t.Errorf("output = %q, want explanation", buf.String())
	}
}

func TestGuard_StagedOnlyWithStagedChanges(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: "M  main.go\n M util.go"}}
	s := testSession(r, &scriptPicker{scripts: [][]string{{"staged-only"}}}, &scriptPrompter{})
	var buf bytes.Buffer

	dec, err := Guard(testContext(&buf), s, "commit", false)
	if err != nil {
		t.Fatalf("Guard() error = %v", err)
	}
	if dec != Proceed {
		t.Errorf("decision = %v, want Proceed", dec)
	}
}

func TestGuard_DirtyStageChoiceRunsStagingThenCancels(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: " M main.go"}}
	// First pick: guard choice. Second pick: path selection in the staging
	// flow.
	s := testSession(r,
		&scriptPicker{scripts: [][]string{{"stage"}, {"main.go"}}},
		&scriptPrompter{})
	var buf bytes.Buffer

	dec, err := Guard(testContext(&buf), s, "commit", false)
	if err != nil {
		t.Fatalf("Guard() error = %v", err)
	}
	if dec != Cancelled {
		t.Errorf("decision = %v, want Cancelled", dec)
	}
	if !r.called("git add -- main.go") {
		t.Errorf("staging did not run git add: %v", r.calls)
	}
}

func TestGuard_DirtyCancel(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: "?? new.go"}}
	s := testSession(r, &scriptPicker{scripts: [][]string{{"cancel"}}}, &scriptPrompter{})
	var buf bytes.Buffer

	dec, err := Guard(testContext(&buf), s, "push", true)
	if err != nil {
		t.Fatalf("Guard() error = %v", err)
	}
	if dec != Cancelled {
		t.Errorf("decision = %v, want Cancelled", dec)
	}
	if r.called("git add") {
		t.Errorf("cancel must not mutate: %v", r.calls)
	}
}

// Paths git C-quotes in status output reach git add decoded, so the
// pathspec matches the file on disk.
func TestRunStaging_QuotedPathRoundTrips(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: "?? \"\\303\\244.txt\""}}
	s := testSession(r, &scriptPicker{scripts: [][]string{{"ä.txt"}}}, &scriptPrompter{})
	var buf bytes.Buffer

	if err := RunStaging(testContext(&buf), s); err != nil {
		t.Fatalf("RunStaging() error = %v", err)
	}
	if !r.called("git add -- ä.txt") {
		t.Errorf("decoded path not staged: %v", r.calls)
	}
}

func TestRunStaging_EmptySelectionIsNoop(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{statusCmd: " M main.go"}}
	s := testSession(r, &scriptPicker{scripts: [][]string{nil}}, &scriptPrompter{})
	var buf bytes.Buffer

	if err := RunStaging(testContext(&buf), s); err != nil {
		t.Fatalf("RunStaging() error = %v", err)
	}
	if r.called("git add") {
		t.Errorf("empty selection staged something: %v", r.calls)
	}
	if !strings.Contains(buf.String(), "nothing staged") {
		t.Errorf("output = %q, want notice", buf.String())
	}
}
