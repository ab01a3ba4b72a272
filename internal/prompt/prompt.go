// Package prompt collects free-text input and confirmations.
package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Prompter asks the user for input. Implementations return ok=false (or
// confirmed=false) on user cancellation; cancellation is never an error.
type Prompter interface {
	// Input asks for one line of free text. ok is false when cancelled.
	Input(ctx context.Context, title, placeholder string) (value string, ok bool, err error)
	// Confirm asks a yes/no question, defaulting to no.
	Confirm(ctx context.Context, title, description string) (bool, error)
	// ConfirmTyped asks the user to type token exactly. Any other input
	// declines; there is no retry.
	ConfirmTyped(ctx context.Context, title, token string) (bool, error)
}

func theme() *huh.Theme {
	t := *huh.ThemeCharm()
	t.Focused.FocusedButton = t.Focused.FocusedButton.Background(lipgloss.Color("78"))
	return &t
}

// Forms is the interactive Prompter backed by huh.
type Forms struct{}

func runForm(ctx context.Context, field huh.Field) (cancelled bool, err error) {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(theme()).
		WithShowHelp(false)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// Input asks for one line of free text.
func (Forms) Input(ctx context.Context, title, placeholder string) (string, bool, error) {
	var v string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&v)
	cancelled, err := runForm(ctx, field)
	if err != nil || cancelled {
		return "", false, err
	}
	return strings.TrimSpace(v), true, nil
}

// Confirm asks a yes/no question, defaulting to no.
func (Forms) Confirm(ctx context.Context, title, description string) (bool, error) {
	var confirmed bool
	field := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)
	cancelled, err := runForm(ctx, field)
	if err != nil || cancelled {
		return false, err
	}
	return confirmed, nil
}

// ConfirmTyped requires the exact token; anything else declines.
func (f Forms) ConfirmTyped(ctx context.Context, title, token string) (bool, error) {
	v, ok, err := f.Input(ctx, title, token)
	if err != nil || !ok {
		return false, err
	}
	return Matches(v, token), nil
}

// Matches reports whether typed input satisfies a typed-confirmation token.
// The comparison is exact: case and whitespace matter, trimming aside.
func Matches(input, token string) bool {
	return strings.TrimSpace(input) == token
}
