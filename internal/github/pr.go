package github

import (
	"context"
	"strconv"
)

// PR is one pull request row.
type PR struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	HeadRefName string `json:"headRefName"`
	State       string `json:"state"` // OPEN, MERGED, CLOSED
	URL         string `json:"url"`
}

// PRs lists open pull requests for the repository.
func (c *Client) PRs(ctx context.Context) ([]PR, error) {
	var prs []PR
	err := c.ghJSON(ctx, &prs, "pr", "list",
		"--limit", strconv.Itoa(c.limit),
		"--json", "number,title,headRefName,state,url")
	return prs, err
}

// PRCheckout checks out the head branch of a pull request.
func (c *Client) PRCheckout(ctx context.Context, number int) error {
	return c.gh(ctx, "pr", "checkout", strconv.Itoa(number))
}

// PRView opens a pull request in the browser.
func (c *Client) PRView(ctx context.Context, number int) error {
	return c.gh(ctx, "pr", "view", strconv.Itoa(number), "--web")
}

// PRDiff returns the diff of a pull request.
func (c *Client) PRDiff(ctx context.Context, number int) (string, error) {
	out, err := c.ghOut(ctx, "pr", "diff", strconv.Itoa(number))
	return string(out), err
}

// PRMerge merges a pull request with the repository's default strategy.
func (c *Client) PRMerge(ctx context.Context, number int) error {
	return c.gh(ctx, "pr", "merge", strconv.Itoa(number))
}

// PRClose closes a pull request without merging.
func (c *Client) PRClose(ctx context.Context, number int) error {
	return c.gh(ctx, "pr", "close", strconv.Itoa(number))
}

// PRCreate opens a pull request from the current branch.
func (c *Client) PRCreate(ctx context.Context, title, body string) error {
	return c.gh(ctx, "pr", "create", "--title", title, "--body", body)
}
