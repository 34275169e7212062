package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/ksysoev/waterlily/pkg/core"
	"github.com/ksysoev/waterlily/pkg/core/form"
)

const (
	optPrevious = "Previous"
	optNext     = "Next"
	optSubmit   = "Submit"
	optEdit     = "Edit answers"
	optQuit     = "Quit"
	optExit     = "Exit"
)

// Run takes the user through the questionnaire, shows the stored answers after a successful submission and offers to
// start over until the user exits.
func (u *UI) Run(ctx context.Context, svc SurveyService) error {
	for {
		if _, err := u.Survey(ctx, svc); err != nil {
			return err
		}

		res, err := svc.Results(ctx)
		next := u.PrintResults(res, err)

		choice, err := u.driver.Select(ctx, SelectConfig{Title: "What next?", Options: []string{next, optExit}})
		if err != nil {
			return err
		}

		if choice == 1 {
			return nil
		}
	}
}

// Survey runs one pass through the questionnaire and returns once the answers are accepted by the backend.
// Every failed attempt is reported to the user and leaves the entered answers in place.
func (u *UI) Survey(ctx context.Context, svc SurveyService) (*core.SubmitResult, error) {
	fs, err := svc.StartSurvey(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize: %w", err)
	}

	edit := true

	for {
		page := fs.Page()

		if edit {
			u.renderPage(fs, page)

			if err := u.fillPage(ctx, fs, page); err != nil {
				return nil, err
			}
		}

		edit = false

		options := navigation(page, fs.PrimaryAction())

		choice, err := u.driver.Select(ctx, SelectConfig{
			Title:   fmt.Sprintf("Page %d of %d", page.Index+1, page.Total),
			Options: options,
		})
		if err != nil {
			return nil, err
		}

		switch options[choice] {
		case optPrevious:
			edit = fs.Retreat() == nil
		case optNext:
			err := fs.Advance()

			var pageErr *form.PageError

			switch {
			case errors.As(err, &pageErr):
				if err := u.driver.Alert(ctx, pageErr.Error()); err != nil {
					return nil, err
				}

				u.renderErrors(fs)
			case err != nil:
				return nil, err
			default:
				edit = true
			}
		case optSubmit:
			res, err := u.submit(ctx, svc, fs)
			if err != nil || res != nil {
				return res, err
			}
		case optEdit:
			edit = true
		case optQuit:
			return nil, ErrAborted
		}
	}
}

// submit returns a nil result when the user has to keep editing.
func (u *UI) submit(ctx context.Context, svc SurveyService, fs *form.Session) (*core.SubmitResult, error) {
	res, err := svc.Submit(ctx, fs)
	if err != nil {
		return nil, err
	}

	if res.Outcome == core.OutcomeSubmitted {
		u.println(titleStyle.Render("✓ " + res.Message))
		return res, nil
	}

	if err := u.driver.Alert(ctx, res.Message); err != nil {
		return nil, err
	}

	if res.Reauth {
		return nil, core.ErrNotAuthenticated
	}

	u.renderErrors(fs)

	return nil, nil
}

func (u *UI) fillPage(ctx context.Context, fs *form.Session, page form.Page) error {
	for _, q := range page.Questions {
		current, answered := fs.Answer(q.ID)

		title := q.Title
		if fs.IsMandatory(q) {
			title += " *"
		}

		desc := q.Description
		if msg := fs.Error(q.ID); msg != "" {
			desc += "\n" + errorStyle.Render(msg)
		}

		value, err := u.driver.Input(ctx, InputConfig{
			Title:       title,
			Description: desc,
			Placeholder: placeholder(q.InputType),
			Value:       current,
			Multiline:   q.InputType == form.KindTextarea,
		})
		if err != nil {
			return err
		}

		if answered || value != "" {
			if err := fs.SetAnswer(q.ID, value); err != nil {
				return err
			}
		}

		msg, err := fs.Blur(q.ID)
		if err != nil {
			return err
		}

		if msg != "" {
			u.println(errorStyle.Render(fmt.Sprintf("  ✗ %s: %s", q.Title, msg)))
		}
	}

	return nil
}

func (u *UI) renderPage(fs *form.Session, page form.Page) {
	header := fmt.Sprintf("%s (%d/%d)", page.Key, page.Index+1, page.Total)
	if page.Key == fs.MandatoryGroup() {
		header += " - all fields required"
	}

	u.println()
	u.println(pageStyle.Render(header))
}

// renderErrors lists every failing question across all pages.
func (u *UI) renderErrors(fs *form.Session) {
	errs := fs.Errors()

	for _, q := range fs.Questions() {
		if msg := errs[q.ID]; msg != "" {
			u.println(errorStyle.Render(fmt.Sprintf("  ✗ %s (%s): %s", q.Title, q.Field, msg)))
		}
	}
}

func navigation(page form.Page, primary form.Action) []string {
	options := make([]string, 0, 4)

	if !page.IsFirst() {
		options = append(options, optPrevious)
	}

	if primary == form.ActionSubmit {
		options = append(options, optSubmit)
	} else {
		options = append(options, optNext)
	}

	return append(options, optEdit, optQuit)
}

func placeholder(kind form.Kind) string {
	switch kind {
	case form.KindNumber:
		return "Enter a number..."
	case form.KindEmail:
		return "Enter your email address..."
	case form.KindPhone:
		return "Enter your phone number..."
	default:
		return "Enter your answer..."
	}
}
