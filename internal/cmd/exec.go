package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/mfaerber/figit/internal/log"
)

// Runner executes external commands. The git and gh adapters depend on this
// interface so tests can substitute a fake.
type Runner interface {
	// Run executes a command in dir and returns stderr in the error
	// message if it fails.
	Run(ctx context.Context, dir, name string, args ...string) error
	// Output executes a command in dir and returns stdout, with stderr
	// in the error message if it fails.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// Exec is the Runner backed by os/exec.
type Exec struct{}

// Run executes a command with context support and verbose logging.
func (Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr
	if err := c.Run(); err != nil {
		return commandError(ctx, &stderr, err)
	}
	return nil
}

// Output executes a command with context support and verbose logging,
// returning stdout.
func (Exec) Output(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	log.FromContext(ctx).Command(name, args...)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = dir
	var stderr bytes.Buffer
	c.Stderr = &stderr
	out, err := c.Output()
	if err != nil {
		return nil, commandError(ctx, &stderr, err)
	}
	return out, nil
}

func commandError(ctx context.Context, stderr *bytes.Buffer, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
