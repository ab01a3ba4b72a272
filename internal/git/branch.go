package git

import (
	"context"
	"fmt"
	"strings"
)

// Branch is one row of the branch listing.
type Branch struct {
	Name       string
	Current    bool
	RemoteOnly bool // exists on the remote but not locally
}

// Branches lists local branches plus branches that exist only on remote.
// Symbolic entries like "origin/HEAD -> origin/main" are skipped.
func (c *Client) Branches(ctx context.Context, remote string) ([]Branch, error) {
	out, err := c.gitOut(ctx, "branch", "--all", "--no-color")
	if err != nil {
		return nil, err
	}
	return parseBranches(out, remote), nil
}

func parseBranches(out, remote string) []Branch {
	remotePrefix := "remotes/" + remote + "/"
	local := make(map[string]bool)
	var branches []Branch

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.Contains(trimmed, "->") {
			continue
		}
		current := strings.HasPrefix(trimmed, "* ")
		name := strings.TrimPrefix(trimmed, "* ")
		if strings.HasPrefix(name, "remotes/") {
			continue // collected in the second pass
		}
		local[name] = true
		branches = append(branches, Branch{Name: name, Current: current})
	}

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, remotePrefix) || strings.Contains(trimmed, "->") {
			continue
		}
		name := strings.TrimPrefix(trimmed, remotePrefix)
		if name == "" || local[name] {
			continue
		}
		local[name] = true
		branches = append(branches, Branch{Name: name, RemoteOnly: true})
	}
	return branches
}

// CreateBranch creates a local branch at HEAD without switching to it.
func (c *Client) CreateBranch(ctx context.Context, name string) error {
	return c.git(ctx, "branch", name)
}

// CreateBranchFrom creates a local branch pointing at source.
func (c *Client) CreateBranchFrom(ctx context.Context, name, source string) error {
	return c.git(ctx, "branch", name, source)
}

// DeleteBranch deletes a local branch. Uses -d, so git refuses to delete
// unmerged branches; that refusal is surfaced to the user verbatim.
func (c *Client) DeleteBranch(ctx context.Context, name string) error {
	return c.git(ctx, "branch", "-d", name)
}

// SyncStatus describes a local branch relative to its remote tracking ref.
type SyncStatus int

const (
	SyncLocalOnly SyncStatus = iota
	SyncInSync
	SyncAhead
	SyncBehind
	SyncDiverged
)

// Note returns a short human annotation for the status, "" when in sync or
// local-only.
func (s SyncStatus) Note() string {
	switch s {
	case SyncAhead:
		return "(push needed)"
	case SyncBehind:
		return "(pull needed)"
	case SyncDiverged:
		return "(diverged)"
	}
	return ""
}

// BranchSyncStatus compares branch with remote/<branch> using merge-base.
func (c *Client) BranchSyncStatus(ctx context.Context, branch, remote string) (SyncStatus, error) {
	tracking := remote + "/" + branch
	if !c.RefExists(ctx, tracking) {
		return SyncLocalOnly, nil
	}
	localID, err := c.CommitID(ctx, branch)
	if err != nil {
		return SyncLocalOnly, fmt.Errorf("resolve %s: %w", branch, err)
	}
	remoteID, err := c.CommitID(ctx, tracking)
	if err != nil {
		return SyncLocalOnly, fmt.Errorf("resolve %s: %w", tracking, err)
	}
	if localID == remoteID {
		return SyncInSync, nil
	}
	base, err := c.MergeBase(ctx, localID, remoteID)
	if err != nil {
		return SyncLocalOnly, fmt.Errorf("merge-base %s %s: %w", branch, tracking, err)
	}
	switch base {
	case remoteID:
		return SyncAhead, nil
	case localID:
		return SyncBehind, nil
	}
	return SyncDiverged, nil
}
