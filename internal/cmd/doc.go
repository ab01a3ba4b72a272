// Package cmd executes external commands with proper error handling.
//
// Every git and gh invocation in figit goes through this package. Stderr is
// captured and becomes the error message on failure, so the tool's own
// diagnostic text reaches the user verbatim.
//
//	var runner cmd.Runner = cmd.Exec{}
//	out, err := runner.Output(ctx, dir, "git", "status", "--porcelain")
//	if err != nil {
//	    // err carries git's stderr
//	}
//
// # Design Notes
//
// figit shells out to the git/gh CLIs rather than using Go libraries. This
// keeps behavior identical to what the user gets on the command line and
// respects their configuration (SSH keys, credential helpers, aliases).
package cmd
