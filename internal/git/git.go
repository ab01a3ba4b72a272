package git

import (
	"context"
	"strings"

	"github.com/mfaerber/figit/internal/cmd"
)

// Client runs git commands against one repository directory.
type Client struct {
	dir string
	run cmd.Runner
}

// New creates a Client for the repository at dir. An empty dir means the
// current working directory.
func New(dir string, r cmd.Runner) *Client {
	return &Client{dir: dir, run: r}
}

// Dir returns the repository directory the client operates on.
func (c *Client) Dir() string {
	return c.dir
}

func (c *Client) git(ctx context.Context, args ...string) error {
	return c.run.Run(ctx, c.dir, "git", args...)
}

func (c *Client) gitOut(ctx context.Context, args ...string) (string, error) {
	out, err := c.run.Output(ctx, c.dir, "git", args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(out), "\n"), nil
}

// IsRepository reports whether the client's directory is inside a git
// work tree.
func (c *Client) IsRepository(ctx context.Context) bool {
	_, err := c.gitOut(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil
}

// CurrentBranch returns the checked-out branch name, or "" when HEAD is
// detached. symbolic-ref -q exits non-zero without output on detached HEAD,
// so errors collapse into "".
func (c *Client) CurrentBranch(ctx context.Context) string {
	out, err := c.gitOut(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if err != nil || out == "HEAD" {
		return ""
	}
	return out
}

// RefExists reports whether ref resolves to an object. A failing rev-parse
// is treated as "does not exist"; git exits non-zero for both.
func (c *Client) RefExists(ctx context.Context, ref string) bool {
	_, err := c.gitOut(ctx, "rev-parse", "--verify", "--quiet", ref)
	return err == nil
}

// CommitID resolves ref to a full commit hash.
func (c *Client) CommitID(ctx context.Context, ref string) (string, error) {
	return c.gitOut(ctx, "rev-parse", ref)
}

// MergeBase returns the best common ancestor of two commits.
func (c *Client) MergeBase(ctx context.Context, a, b string) (string, error) {
	return c.gitOut(ctx, "merge-base", a, b)
}

// RemoteURL returns the fetch URL of remote, or "" when the remote is not
// configured.
func (c *Client) RemoteURL(ctx context.Context, remote string) string {
	url, err := c.gitOut(ctx, "remote", "get-url", remote)
	if err != nil {
		return ""
	}
	return url
}

// Checkout switches to ref. For a remote-only branch name git creates a
// local tracking branch.
func (c *Client) Checkout(ctx context.Context, ref string) error {
	return c.git(ctx, "checkout", ref)
}

// CheckoutDetached checks out a commit without moving any branch.
func (c *Client) CheckoutDetached(ctx context.Context, ref string) error {
	return c.git(ctx, "checkout", "--detach", ref)
}

// Fetch updates remote refs and prunes deleted ones.
func (c *Client) Fetch(ctx context.Context, remote string) error {
	return c.git(ctx, "fetch", remote, "--prune")
}

// Push pushes branch to remote, setting the upstream on first push.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	return c.git(ctx, "push", "-u", remote, branch)
}

// PushRef pushes an arbitrary ref (tag, branch) without upstream tracking.
func (c *Client) PushRef(ctx context.Context, remote, ref string) error {
	return c.git(ctx, "push", remote, ref)
}

// PushDelete deletes a ref on the remote.
func (c *Client) PushDelete(ctx context.Context, remote, ref string) error {
	return c.git(ctx, "push", remote, "--delete", ref)
}

// Pull pulls branch from remote.
func (c *Client) Pull(ctx context.Context, remote, branch string) error {
	return c.git(ctx, "pull", remote, branch)
}

// Merge merges ref into the current branch.
func (c *Client) Merge(ctx context.Context, ref string) error {
	return c.git(ctx, "merge", ref)
}

// Show returns a summary (commit header plus diffstat) for any ref.
func (c *Client) Show(ctx context.Context, ref string) (string, error) {
	return c.gitOut(ctx, "show", "--no-color", "--stat", ref)
}
