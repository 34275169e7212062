package core

import (
	"context"
	"errors"
	"testing"

	"github.com/ksysoev/waterlily/pkg/core/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_StartSurvey(t *testing.T) {
	questions := []form.Question{
		{ID: 1, Title: "Name", InputType: form.KindText, Field: "Contact"},
		{ID: 2, Title: "Gender", InputType: form.KindText, Field: "Demographic Information"},
	}

	tests := []struct {
		getErr      error
		apiErr      error
		questions   []form.Question
		wantErr     error
		name        string
		expectedErr string
		fetches     bool
	}{
		{
			name:      "creates form session",
			questions: questions,
			fetches:   true,
		},
		{
			name:    "not authenticated",
			getErr:  ErrNoSession,
			wantErr: ErrNotAuthenticated,
		},
		{
			name:        "fetch failure",
			fetches:     true,
			apiErr:      errors.New("status 500"),
			expectedErr: "failed to fetch questions: status 500",
		},
		{
			name:      "no questions",
			fetches:   true,
			questions: []form.Question{},
			wantErr:   form.ErrNoQuestions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockSessionRepo(t)
			api := NewMockSurveyAPI(t)

			if tt.getErr != nil {
				repo.On("GetSession", mock.Anything, "default").Return(nil, tt.getErr)
			} else {
				repo.On("GetSession", mock.Anything, "default").Return(testSession, nil)
			}

			if tt.fetches {
				api.On("Questions", mock.Anything).Return(tt.questions, tt.apiErr)
			}

			fs, err := New(Config{MandatoryGroup: "Contact"}, repo, api).StartSurvey(context.Background())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, fs)
			case tt.expectedErr != "":
				assert.EqualError(t, err, tt.expectedErr)
			default:
				require.NoError(t, err)
				assert.Equal(t, "Contact", fs.MandatoryGroup())
				assert.Equal(t, 2, fs.Page().Total)
				assert.Equal(t, questions, fs.Questions())
			}
		})
	}
}
