package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// StatusEntry is one changed path from porcelain status output.
type StatusEntry struct {
	Staged   byte   // index status code, ' ' if none
	Unstaged byte   // work-tree status code, ' ' if none
	Path     string // new path for renames
}

// Untracked reports whether the entry is an untracked path.
func (e StatusEntry) Untracked() bool {
	return e.Staged == '?' && e.Unstaged == '?'
}

// HasStaged reports whether the entry has staged (index) changes.
func (e StatusEntry) HasStaged() bool {
	return e.Staged != ' ' && !e.Untracked()
}

// HasUnstaged reports whether the entry has work-tree changes.
func (e StatusEntry) HasUnstaged() bool {
	return e.Unstaged != ' ' || e.Untracked()
}

// Code returns the two-letter porcelain code, e.g. "M " or "??".
func (e StatusEntry) Code() string {
	return string([]byte{e.Staged, e.Unstaged})
}

// Status returns the porcelain v1 short status, one entry per changed path.
func (c *Client) Status(ctx context.Context) ([]StatusEntry, error) {
	out, err := c.gitOut(ctx, "status", "--porcelain", "--no-renames")
	if err != nil {
		return nil, err
	}
	return parseStatus(out)
}

// parseStatus parses porcelain v1 output: two status bytes, a space, then
// the path. Anything else is a hard error, not a guess.
func parseStatus(out string) ([]StatusEntry, error) {
	var entries []StatusEntry
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		if len(line) < 4 || line[2] != ' ' {
			return nil, fmt.Errorf("unexpected status line %q", line)
		}
		path, err := unquotePath(line[3:])
		if err != nil {
			return nil, err
		}
		entries = append(entries, StatusEntry{
			Staged:   line[0],
			Unstaged: line[1],
			Path:     path,
		})
	}
	return entries, nil
}

// unquotePath decodes the C-quoted form git emits under core.quotePath for
// paths with non-ASCII bytes, quotes or backslashes. The escape set (octal,
// \t, \n, \", \\) is a subset of Go's string syntax, so strconv does the
// decoding. The decoded path is what later add/restore/diff calls receive.
func unquotePath(p string) (string, error) {
	if !strings.HasPrefix(p, `"`) {
		return p, nil
	}
	unquoted, err := strconv.Unquote(p)
	if err != nil {
		return "", fmt.Errorf("unquote status path %s: %w", p, err)
	}
	return unquoted, nil
}

// GuardState captures the staged/unstaged dirtiness of the repository at one
// point in time. Never cache it across prompts; recompute before each
// guarded action.
type GuardState struct {
	WorkTreeDirty bool
	StagedDirty   bool
}

// Clean reports whether neither the work tree nor the index has changes.
func (g GuardState) Clean() bool {
	return !g.WorkTreeDirty && !g.StagedDirty
}

// GuardState computes a fresh dirtiness snapshot.
func (c *Client) GuardState(ctx context.Context) (GuardState, error) {
	entries, err := c.Status(ctx)
	if err != nil {
		return GuardState{}, err
	}
	var g GuardState
	for _, e := range entries {
		if e.HasStaged() {
			g.StagedDirty = true
		}
		if e.HasUnstaged() {
			g.WorkTreeDirty = true
		}
	}
	return g, nil
}

// Add stages the given paths.
func (c *Client) Add(ctx context.Context, paths []string) error {
	return c.git(ctx, append([]string{"add", "--"}, paths...)...)
}

// Unstage removes the given paths from the index, keeping work-tree changes.
func (c *Client) Unstage(ctx context.Context, paths []string) error {
	return c.git(ctx, append([]string{"restore", "--staged", "--"}, paths...)...)
}

// Discard throws away work-tree changes to the given paths.
func (c *Client) Discard(ctx context.Context, paths []string) error {
	return c.git(ctx, append([]string{"restore", "--"}, paths...)...)
}

// Diff returns the unified diff for one path, of the index when staged is
// set, of the work tree otherwise.
func (c *Client) Diff(ctx context.Context, path string, staged bool) (string, error) {
	args := []string{"diff", "--no-color"}
	if staged {
		args = append(args, "--cached")
	}
	args = append(args, "--", path)
	return c.gitOut(ctx, args...)
}
