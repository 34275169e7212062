package tui

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user cancels a prompt.
var ErrAborted = errors.New("aborted by user")

// InputConfig configures a text prompt.
type InputConfig struct {
	Title       string
	Description string
	Placeholder string
	Value       string
	Multiline   bool
	Secret      bool
}

// SelectConfig configures a single choice prompt. Select returns the index of the chosen option.
type SelectConfig struct {
	Title   string
	Options []string
}

// Driver abstracts the terminal prompts so the survey flow can be tested without a real terminal.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Alert(ctx context.Context, msg string) error
}
