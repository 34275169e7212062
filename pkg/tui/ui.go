package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ksysoev/waterlily/pkg/core"
	"github.com/ksysoev/waterlily/pkg/core/form"
)

// SurveyService is the part of the core service the terminal UI drives.
type SurveyService interface {
	StartSurvey(ctx context.Context) (*form.Session, error)
	Submit(ctx context.Context, fs *form.Session) (*core.SubmitResult, error)
	Results(ctx context.Context) (*core.Results, error)
}

// Option configures the UI.
type Option func(*UI)

// WithDriver overrides the prompt driver.
func WithDriver(d Driver) Option {
	return func(u *UI) {
		u.driver = d
	}
}

// WithOutput overrides the writer pages and results are rendered to.
func WithOutput(w io.Writer) Option {
	return func(u *UI) {
		u.out = w
	}
}

// WithAccessible switches the default driver to accessible mode, which prompts line by line.
func WithAccessible(accessible bool) Option {
	return func(u *UI) {
		u.accessible = accessible
	}
}

// UI renders the questionnaire in the terminal and binds the user input to a form session.
type UI struct {
	driver     Driver
	out        io.Writer
	accessible bool
}

// New creates a terminal UI. Without WithDriver it prompts through huh.
func New(opts ...Option) *UI {
	u := &UI{out: os.Stdout}

	for _, opt := range opts {
		opt(u)
	}

	if u.driver == nil {
		u.driver = newHuhDriver(u.accessible)
	}

	return u
}

// Credentials prompts for a username and a password.
func (u *UI) Credentials(ctx context.Context) (username, password string, err error) {
	username, err = u.driver.Input(ctx, InputConfig{Title: "Username", Placeholder: "Enter your username..."})
	if err != nil {
		return "", "", err
	}

	password, err = u.driver.Input(ctx, InputConfig{Title: "Password", Placeholder: "Enter your password...", Secret: true})
	if err != nil {
		return "", "", err
	}

	return username, password, nil
}

// Alert shows a blocking message.
func (u *UI) Alert(ctx context.Context, msg string) error {
	return u.driver.Alert(ctx, msg)
}

func (u *UI) println(lines ...string) {
	_, _ = fmt.Fprintln(u.out, strings.Join(lines, ""))
}
