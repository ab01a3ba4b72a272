package git

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner scripts subprocess results by full command line.
type fakeRunner struct {
	outputs map[string]string
	fails   map[string]string
	calls   []string
}

func (r *fakeRunner) key(name string, args []string) string {
	return name + " " + strings.Join(args, " ")
}

func (r *fakeRunner) Run(_ context.Context, _, name string, args ...string) error {
	k := r.key(name, args)
	r.calls = append(r.calls, k)
	if msg, ok := r.fails[k]; ok {
		return errors.New(msg)
	}
	return nil
}

func (r *fakeRunner) Output(_ context.Context, _, name string, args ...string) ([]byte, error) {
	k := r.key(name, args)
	r.calls = append(r.calls, k)
	if msg, ok := r.fails[k]; ok {
		return nil, errors.New(msg)
	}
	out, ok := r.outputs[k]
	if !ok {
		return nil, errors.New("exit status 1")
	}
	return []byte(out), nil
}

func (r *fakeRunner) called(k string) bool {
	for _, c := range r.calls {
		if c == k {
			return true
		}
	}
	return false
}

func TestCurrentBranch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		out  map[string]string
		want string
	}{
		{"on branch", map[string]string{"git symbolic-ref --short -q HEAD": "main\n"}, "main"},
		{"detached", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New("", &fakeRunner{outputs: tt.out})
			if got := c.CurrentBranch(context.Background()); got != tt.want {
				t.Errorf("CurrentBranch() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRefExists(t *testing.T) {
	t.Parallel()
	r := &fakeRunner{outputs: map[string]string{
		"git rev-parse --verify --quiet feature-x": "abc123\n",
	}}
	c := New("", r)
	if !c.RefExists(context.Background(), "feature-x") {
		t.Error("RefExists(feature-x) = false, want true")
	}
	if c.RefExists(context.Background(), "nope") {
		t.Error("RefExists(nope) = true, want false")
	}
}

func TestBranchSyncStatus(t *testing.T) {
	t.Parallel()

	const (
		local  = "1111111111111111111111111111111111111111"
		remote = "2222222222222222222222222222222222222222"
		base   = "3333333333333333333333333333333333333333"
	)

	tests := []struct {
		name      string
		remoteID  string
		mergeBase string
		want      SyncStatus
	}{
		{"in sync", local, "", SyncInSync},
		{"ahead", remote, remote, SyncAhead},
		{"behind", remote, local, SyncBehind},
		{"diverged", remote, base, SyncDiverged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &fakeRunner{outputs: map[string]string{
				"git rev-parse --verify --quiet origin/feature": "x",
				"git rev-parse feature":                         local,
				"git rev-parse origin/feature":                  tt.remoteID,
				"git merge-base " + local + " " + tt.remoteID:   tt.mergeBase,
			}}
			c := New("", r)
			got, err := c.BranchSyncStatus(context.Background(), "feature", "origin")
			if err != nil {
				t.Fatalf("BranchSyncStatus = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("BranchSyncStatus = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("no tracking ref", func(t *testing.T) {
		t.Parallel()
		c := New("", &fakeRunner{})
		got, err := c.BranchSyncStatus(context.Background(), "feature", "origin")
		if err != nil {
			t.Fatalf("BranchSyncStatus = %v, want nil", err)
		}
		if got != SyncLocalOnly {
			t.Errorf("BranchSyncStatus = %v, want SyncLocalOnly", got)
		}
	})
}

func TestParseBranches(t *testing.T) {
	t.Parallel()

	out := strings.Join([]string{
		"* main",
		"  feature-x",
		"  remotes/origin/HEAD -> origin/main",
		"  remotes/origin/main",
		"  remotes/origin/feature-x",
		"  remotes/origin/remote-only",
		"  remotes/upstream/other",
	}, "\n")

	got := parseBranches(out, "origin")
	want := []Branch{
		{Name: "main", Current: true},
		{Name: "feature-x"},
		{Name: "remote-only", RemoteOnly: true},
	}
	if len(got) != len(want) {
		t.Fatalf("parseBranches returned %d branches, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("branch[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		staged   bool
		unstaged bool
	}{
		{"staged modify", "M  a.go", true, false},
		{"unstaged modify", " M b.go", false, true},
		{"both", "MM c.go", true, true},
		{"untracked", "?? new.txt", false, true},
		{"staged add", "A  d.go", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			entries, err := parseStatus(tt.line)
			if err != nil {
				t.Fatalf("parseStatus(%q) = %v, want nil", tt.line, err)
			}
			if len(entries) != 1 {
				t.Fatalf("got %d entries, want 1", len(entries))
			}
			e := entries[0]
			if e.HasStaged() != tt.staged {
				t.Errorf("HasStaged() = %v, want %v", e.HasStaged(), tt.staged)
			}
			if e.HasUnstaged() != tt.unstaged {
				t.Errorf("HasUnstaged() = %v, want %v", e.HasUnstaged(), tt.unstaged)
			}
		})
	}

	t.Run("quoted paths decode to real bytes", func(t *testing.T) {
		t.Parallel()
		quoted := []struct {
			line string
			want string
		}{
			{"?? \"\\303\\244.txt\"", "ä.txt"},
			{"?? \"a \\\"b\\\".txt\"", `a "b".txt`},
			{"?? \"back\\\\slash.txt\"", `back\slash.txt`},
		}
		for _, q := range quoted {
			entries, err := parseStatus(q.line)
			if err != nil {
				t.Fatalf("parseStatus(%q) = %v, want nil", q.line, err)
			}
			if entries[0].Path != q.want {
				t.Errorf("parseStatus(%q).Path = %q, want %q", q.line, entries[0].Path, q.want)
			}
		}
	})

	t.Run("broken quoting is an error", func(t *testing.T) {
		t.Parallel()
		if _, err := parseStatus("?? \"unterminated"); err == nil {
			t.Error("parseStatus(unterminated quote) = nil, want error")
		}
	})

	t.Run("malformed line is an error", func(t *testing.T) {
		t.Parallel()
		if _, err := parseStatus("garbage"); err == nil {
			t.Error("parseStatus(garbage) = nil, want error")
		}
	})

	t.Run("empty output", func(t *testing.T) {
		t.Parallel()
		entries, err := parseStatus("")
		if err != nil || len(entries) != 0 {
			t.Errorf("parseStatus(\"\") = %v entries, err %v; want 0, nil", len(entries), err)
		}
	})
}

func TestGuardState(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status string
		want   GuardState
	}{
		{"clean", "", GuardState{}},
		{"worktree only", " M a.go\n?? b.txt", GuardState{WorkTreeDirty: true}},
		{"staged only", "M  a.go", GuardState{StagedDirty: true}},
		{"both", "MM a.go", GuardState{WorkTreeDirty: true, StagedDirty: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := &fakeRunner{outputs: map[string]string{
				"git status --porcelain --no-renames": tt.status,
			}}
			got, err := New("", r).GuardState(context.Background())
			if err != nil {
				t.Fatalf("GuardState = %v, want nil", err)
			}
			if got != tt.want {
				t.Errorf("GuardState = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseStashes(t *testing.T) {
	t.Parallel()

	out := "stash@{0}: WIP on main: abc1234 fix thing\nstash@{1}: On feature-x: saved work"
	stashes, err := parseStashes(out)
	if err != nil {
		t.Fatalf("parseStashes = %v, want nil", err)
	}
	if len(stashes) != 2 {
		t.Fatalf("got %d stashes, want 2", len(stashes))
	}
	if stashes[0].Ref != "stash@{0}" {
		t.Errorf("Ref = %q, want stash@{0}", stashes[0].Ref)
	}
	if stashes[1].Subject != "On feature-x: saved work" {
		t.Errorf("Subject = %q", stashes[1].Subject)
	}

	if _, err := parseStashes("not a stash line"); err == nil {
		t.Error("parseStashes(malformed) = nil, want error")
	}
}

func TestParseLog(t *testing.T) {
	t.Parallel()

	line := "aaaa\x1fa1b2c3d\x1fAda\x1f2 days ago\x1ffix: handle spaces in refs"
	commits, err := parseLog(line)
	if err != nil {
		t.Fatalf("parseLog = %v, want nil", err)
	}
	if len(commits) != 1 {
		t.Fatalf("got %d commits, want 1", len(commits))
	}
	c := commits[0]
	if c.Short != "a1b2c3d" || c.Author != "Ada" || c.Subject != "fix: handle spaces in refs" {
		t.Errorf("commit = %+v", c)
	}

	if _, err := parseLog("only\x1ftwo"); err == nil {
		t.Error("parseLog(short line) = nil, want error")
	}
}

func TestParseRemotes(t *testing.T) {
	t.Parallel()

	out := "origin\tgit@github.com:a/b.git (fetch)\norigin\tgit@github.com:a/b.git (push)\nupstream\thttps://github.com/c/d (fetch)"
	remotes, err := parseRemotes(out)
	if err != nil {
		t.Fatalf("parseRemotes = %v, want nil", err)
	}
	if len(remotes) != 2 {
		t.Fatalf("got %d remotes, want 2 (push rows skipped): %+v", len(remotes), remotes)
	}
	if remotes[0].Name != "origin" || remotes[1].URL != "https://github.com/c/d" {
		t.Errorf("remotes = %+v", remotes)
	}
}

func TestGraph(t *testing.T) {
	t.Parallel()

	r := &fakeRunner{outputs: map[string]string{
		"git log --graph --oneline --decorate --no-color -n 30 a1b2c3d": "* a1b2c3d fix thing\n* 9f8e7d6 earlier",
	}}
	got, err := New("", r).Graph(context.Background(), "a1b2c3d", 30)
	if err != nil {
		t.Fatalf("Graph = %v, want nil", err)
	}
	if !strings.Contains(got, "* a1b2c3d") {
		t.Errorf("Graph output = %q", got)
	}
}

func TestMutationArguments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := &fakeRunner{}
	c := New("", r)

	if err := c.Add(ctx, []string{"a file.go", "b.go"}); err != nil {
		t.Fatal(err)
	}
	if err := c.PushDelete(ctx, "origin", "feature-x"); err != nil {
		t.Fatal(err)
	}
	if err := c.CreateTag(ctx, "v1.0.0", "first release"); err != nil {
		t.Fatal(err)
	}
	if err := c.CreateTag(ctx, "v1.0.1", ""); err != nil {
		t.Fatal(err)
	}
	if err := c.ResetHard(ctx, "a1b2c3d"); err != nil {
		t.Fatal(err)
	}

	// Paths and refs pass through as discrete argv entries, never a shell.
	wantCalls := []string{
		"git add -- a file.go b.go",
		"git push origin --delete feature-x",
		"git tag -a v1.0.0 -m first release",
		"git tag v1.0.1",
		"git reset --hard a1b2c3d",
	}
	for _, w := range wantCalls {
		if !r.called(w) {
			t.Errorf("missing call %q in %v", w, r.calls)
		}
	}
}
