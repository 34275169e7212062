package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ksysoev/waterlily/pkg/core/form"
)

// Outcome is the terminal state of a submission attempt.
type Outcome string

const (
	OutcomeSubmitted    Outcome = "submitted"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeIncomplete   Outcome = "incomplete"
	OutcomeRejected     Outcome = "rejected"
	OutcomeNetworkError Outcome = "network-error"
	OutcomeBusy         Outcome = "busy"
)

const (
	invalidMessage    = "Please fix the validation errors before submitting."
	incompleteMessage = "Please complete all %s fields before submitting."
	submittedMessage  = "Your answers have been submitted."
	failedMessage     = "Failed to submit answers: %s"
)

// SubmitResult describes how a submission attempt ended. Every outcome leaves the form session intact.
type SubmitResult struct {
	Outcome Outcome
	Message string
	Body    string
	Stored  []PersistedAnswer
	Status  int
	UserID  int64
	Reauth  bool
}

// Submit validates the whole form and, when it is complete, sends every answer to the backend in a single request.
// A missing authenticated session is returned as ErrNotAuthenticated; every other ending is reported through the
// result outcome. Only one submission per form session may be in flight.
func (s *Service) Submit(ctx context.Context, fs *form.Session) (*SubmitResult, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	if err := fs.BeginSubmit(); err != nil {
		return &SubmitResult{Outcome: OutcomeBusy, Message: err.Error()}, nil
	}

	ok := false
	defer func() { fs.EndSubmit(ok) }()

	entries, err := fs.Prepare()

	switch {
	case errors.Is(err, form.ErrValidationFailed):
		return &SubmitResult{Outcome: OutcomeInvalid, Message: invalidMessage}, nil
	case errors.Is(err, form.ErrMandatoryIncomplete):
		return &SubmitResult{Outcome: OutcomeIncomplete, Message: fmt.Sprintf(incompleteMessage, fs.MandatoryGroup())}, nil
	case err != nil:
		return nil, fmt.Errorf("failed to prepare answers: %w", err)
	}

	stored, err := s.api.SubmitAnswers(ctx, sess.Token, entries)

	var statusErr *StatusError

	switch {
	case errors.As(err, &statusErr):
		slog.WarnContext(ctx, "Answers rejected", slog.Int("status", statusErr.Status))

		return &SubmitResult{
			Outcome: OutcomeRejected,
			Status:  statusErr.Status,
			Body:    statusErr.Body,
			Reauth:  statusErr.Reauth(),
			Message: fmt.Sprintf(failedMessage, fmt.Sprintf("%d - %s", statusErr.Status, statusErr.Body)),
		}, nil
	case err != nil:
		slog.WarnContext(ctx, "Failed to submit answers", slog.Any("error", err))

		return &SubmitResult{
			Outcome: OutcomeNetworkError,
			Message: fmt.Sprintf(failedMessage, err.Error()),
		}, nil
	}

	ok = true

	slog.InfoContext(ctx, "Answers submitted", slog.Int64("user_id", sess.UserID), slog.Int("answers", len(entries)))

	return &SubmitResult{
		Outcome: OutcomeSubmitted,
		Message: submittedMessage,
		UserID:  sess.UserID,
		Stored:  stored,
	}, nil
}
