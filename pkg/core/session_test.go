package core

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Login(t *testing.T) {
	sess := &AuthSession{UserID: 7, Username: "jane", Token: "tkn"}

	tests := []struct {
		apiErr      error
		saveErr     error
		name        string
		username    string
		password    string
		expectedErr string
		callsAPI    bool
	}{
		{
			name:     "success trims username",
			username: "  jane ",
			password: "secret1",
			callsAPI: true,
		},
		{
			name:        "empty username",
			username:    "   ",
			password:    "secret1",
			expectedErr: ErrEmptyCredentials.Error(),
		},
		{
			name:        "empty password",
			username:    "jane",
			password:    " ",
			expectedErr: ErrEmptyCredentials.Error(),
		},
		{
			name:        "invalid credentials",
			username:    "jane",
			password:    "wrong",
			callsAPI:    true,
			apiErr:      &StatusError{Status: http.StatusUnauthorized, Message: "Invalid username or password"},
			expectedErr: "failed to login: status 401: Invalid username or password",
		},
		{
			name:        "save error",
			username:    "jane",
			password:    "secret1",
			callsAPI:    true,
			saveErr:     errors.New("redis down"),
			expectedErr: "failed to save session: redis down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockSessionRepo(t)
			api := NewMockSurveyAPI(t)

			if tt.callsAPI {
				if tt.apiErr != nil {
					api.On("Login", mock.Anything, "jane", tt.password).Return(nil, tt.apiErr)
				} else {
					api.On("Login", mock.Anything, "jane", tt.password).Return(sess, nil)
					repo.On("SaveSession", mock.Anything, "default", sess).Return(tt.saveErr)
				}
			}

			svc := New(Config{}, repo, api)

			got, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, sess, got)
		})
	}
}

func TestService_Register(t *testing.T) {
	sess := &AuthSession{UserID: 8, Username: "john", Token: "tkn"}

	repo := NewMockSessionRepo(t)
	api := NewMockSurveyAPI(t)

	api.On("Register", mock.Anything, "john", "secret1").Return(sess, nil)
	repo.On("SaveSession", mock.Anything, "default", sess).Return(nil)

	svc := New(Config{}, repo, api)

	got, err := svc.Register(context.Background(), "john", "secret1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	_, err = svc.Register(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestService_Register_Rejected(t *testing.T) {
	repo := NewMockSessionRepo(t)
	api := NewMockSurveyAPI(t)

	api.On("Register", mock.Anything, "jo", "secret1").
		Return(nil, &StatusError{Status: http.StatusBadRequest, Message: "Username must be at least 3 characters long"})

	svc := New(Config{}, repo, api)

	_, err := svc.Register(context.Background(), "jo", "secret1")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
}

func TestService_Logout(t *testing.T) {
	repo := NewMockSessionRepo(t)
	api := NewMockSurveyAPI(t)

	repo.On("DeleteSession", mock.Anything, "default").Return(nil).Once()
	repo.On("DeleteSession", mock.Anything, "default").Return(errors.New("boom")).Once()

	svc := New(Config{}, repo, api)

	assert.NoError(t, svc.Logout(context.Background()))
	assert.EqualError(t, svc.Logout(context.Background()), "failed to delete session: boom")
}

func TestService_CurrentUser(t *testing.T) {
	sess := &AuthSession{UserID: 7, Username: "jane", Token: "tkn"}
	user := &User{ID: 7, Username: "jane"}

	tests := []struct {
		getErr      error
		verifyErr   error
		getSess     *AuthSession
		wantUser    *User
		wantErr     error
		name        string
		expectedErr string
		verifies    bool
		deletes     bool
	}{
		{
			name:     "valid token",
			getSess:  sess,
			verifies: true,
			wantUser: user,
		},
		{
			name:    "no session",
			getErr:  ErrNoSession,
			wantErr: ErrNotAuthenticated,
		},
		{
			name:    "session without token",
			getSess: &AuthSession{UserID: 7},
			wantErr: ErrNotAuthenticated,
		},
		{
			name:      "expired token tears down session",
			getSess:   sess,
			verifies:  true,
			verifyErr: &StatusError{Status: http.StatusForbidden, Message: "Invalid or expired token"},
			deletes:   true,
			wantErr:   ErrNotAuthenticated,
		},
		{
			name:        "backend down",
			getSess:     sess,
			verifies:    true,
			verifyErr:   errors.New("connection refused"),
			expectedErr: "failed to verify token: connection refused",
		},
		{
			name:        "repo failure",
			getErr:      errors.New("redis down"),
			expectedErr: "failed to get session: redis down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockSessionRepo(t)
			api := NewMockSurveyAPI(t)

			repo.On("GetSession", mock.Anything, "default").Return(tt.getSess, tt.getErr)

			if tt.verifies {
				api.On("Verify", mock.Anything, "tkn").Return(tt.wantUser, tt.verifyErr)
			}

			if tt.deletes {
				repo.On("DeleteSession", mock.Anything, "default").Return(nil)
			}

			svc := New(Config{}, repo, api)

			got, err := svc.CurrentUser(context.Background())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.expectedErr != "":
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			}
		})
	}
}
