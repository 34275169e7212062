package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

type huhDriver struct {
	accessible bool
}

func newHuhDriver(accessible bool) Driver {
	return &huhDriver{accessible: accessible}
}

func (d *huhDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	value := cfg.Value

	var field huh.Field

	if cfg.Multiline {
		field = huh.NewText().
			Title(cfg.Title).
			Description(cfg.Description).
			Placeholder(cfg.Placeholder).
			Value(&value)
	} else {
		input := huh.NewInput().
			Title(cfg.Title).
			Description(cfg.Description).
			Placeholder(cfg.Placeholder).
			Value(&value)

		if cfg.Secret {
			input = input.EchoMode(huh.EchoModePassword)
		}

		field = input
	}

	if err := d.run(ctx, field); err != nil {
		return "", err
	}

	return value, nil
}

func (d *huhDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(cfg.Options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}

	options := make([]huh.Option[int], len(cfg.Options))
	for i, opt := range cfg.Options {
		options[i] = huh.NewOption(opt, i)
	}

	var selected int

	field := huh.NewSelect[int]().
		Title(cfg.Title).
		Options(options...).
		Value(&selected)

	if err := d.run(ctx, field); err != nil {
		return 0, err
	}

	return selected, nil
}

func (d *huhDriver) Alert(ctx context.Context, msg string) error {
	note := huh.NewNote().
		Title(alertStyle.Render(msg)).
		Next(true).
		NextLabel("OK")

	return d.run(ctx, note)
}

func (d *huhDriver) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(d.accessible).
		WithShowHelp(false)

	err := form.RunWithContext(ctx)

	switch {
	case errors.Is(err, huh.ErrUserAborted):
		return ErrAborted
	case err != nil:
		return fmt.Errorf("prompt failed: %w", err)
	}

	return nil
}
