package github

import (
	"context"
	"strconv"
)

// Issue is one issue row.
type Issue struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"` // OPEN, CLOSED
	URL    string `json:"url"`
}

// Issues lists issues for the repository. When all is set, closed issues
// are included.
func (c *Client) Issues(ctx context.Context, all bool) ([]Issue, error) {
	args := []string{"issue", "list",
		"--limit", strconv.Itoa(c.limit),
		"--json", "number,title,state,url"}
	if all {
		args = append(args, "--state", "all")
	}
	var issues []Issue
	err := c.ghJSON(ctx, &issues, args...)
	return issues, err
}

// IssueView opens an issue in the browser.
func (c *Client) IssueView(ctx context.Context, number int) error {
	return c.gh(ctx, "issue", "view", strconv.Itoa(number), "--web")
}

// IssueClose closes an issue.
func (c *Client) IssueClose(ctx context.Context, number int) error {
	return c.gh(ctx, "issue", "close", strconv.Itoa(number))
}

// IssueReopen reopens a closed issue.
func (c *Client) IssueReopen(ctx context.Context, number int) error {
	return c.gh(ctx, "issue", "reopen", strconv.Itoa(number))
}

// IssueComment adds a comment to an issue.
func (c *Client) IssueComment(ctx context.Context, number int, body string) error {
	return c.gh(ctx, "issue", "comment", strconv.Itoa(number), "--body", body)
}

// IssueCreate opens a new issue.
func (c *Client) IssueCreate(ctx context.Context, title, body string) error {
	return c.gh(ctx, "issue", "create", "--title", title, "--body", body)
}
