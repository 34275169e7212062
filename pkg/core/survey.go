package core

import (
	"context"
	"fmt"

	"github.com/ksysoev/waterlily/pkg/core/form"
)

// StartSurvey loads the questions once and returns a fresh form session over them. It requires an authenticated session.
func (s *Service) StartSurvey(ctx context.Context) (*form.Session, error) {
	if _, err := s.session(ctx); err != nil {
		return nil, err
	}

	questions, err := s.api.Questions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}

	fs, err := form.NewSession(questions, s.mandatoryGroup)
	if err != nil {
		return nil, fmt.Errorf("failed to create form session: %w", err)
	}

	return fs, nil
}
