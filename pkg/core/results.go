package core

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ResultGroup holds the answers of one field in the order the backend returned them.
type ResultGroup struct {
	Field   string
	Answers []UserAnswer
}

type Results struct {
	SubmittedAt time.Time
	Groups      []ResultGroup
	UserID      int64
}

// Results fetches the answers of the logged-in user.
func (s *Service) Results(ctx context.Context) (*Results, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	return s.resultsFor(ctx, sess, sess.UserID)
}

// ResultsFor fetches the answers stored for userID with the logged-in user's token.
// The backend only serves a user's own answers; a 403 is reported as ErrNotAuthorized and never as an empty result.
func (s *Service) ResultsFor(ctx context.Context, userID int64) (*Results, error) {
	sess, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	return s.resultsFor(ctx, sess, userID)
}

func (s *Service) resultsFor(ctx context.Context, sess *AuthSession, userID int64) (*Results, error) {
	answers, err := s.api.UserAnswers(ctx, sess.Token, userID)

	switch {
	case isStatus(err, http.StatusForbidden):
		return nil, ErrNotAuthorized
	case isUnauthorized(err):
		return nil, ErrNotAuthenticated
	case err != nil:
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}

	if len(answers) == 0 {
		return nil, ErrNoResults
	}

	return &Results{
		UserID:      userID,
		SubmittedAt: answers[0].CreatedAt,
		Groups:      GroupAnswers(answers),
	}, nil
}

// GroupAnswers groups answers by field, ordering groups by the first appearance of their field.
func GroupAnswers(answers []UserAnswer) []ResultGroup {
	var groups []ResultGroup

	index := make(map[string]int)

	for _, a := range answers {
		i, ok := index[a.Field]
		if !ok {
			i = len(groups)
			index[a.Field] = i
			groups = append(groups, ResultGroup{Field: a.Field})
		}

		groups[i].Answers = append(groups[i].Answers, a)
	}

	return groups
}

// IsFetchError reports whether err is a results failure other than the empty-results state.
func IsFetchError(err error) bool {
	return err != nil && !errors.Is(err, ErrNoResults)
}
