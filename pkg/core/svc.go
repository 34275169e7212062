package core

import (
	"context"
	"errors"

	"github.com/ksysoev/waterlily/pkg/core/form"
)

const DefaultMandatoryGroup = "Personal Information"

var (
	ErrNotAuthenticated = errors.New("user not authenticated, please log in again")
	ErrNotAuthorized    = errors.New("not authorized to access these answers")
	ErrNoSession        = errors.New("no active session")
	ErrNoResults        = errors.New("no responses found for this user")
	ErrEmptyCredentials = errors.New("please fill in all fields")
	ErrTransport        = errors.New("transport failure")
)

// SessionRepo persists the authenticated session between command invocations.
type SessionRepo interface {
	SaveSession(ctx context.Context, profile string, sess *AuthSession) error
	GetSession(ctx context.Context, profile string) (*AuthSession, error)
	DeleteSession(ctx context.Context, profile string) error
}

// SurveyAPI is the REST backend that issues tokens and stores answers.
type SurveyAPI interface {
	Register(ctx context.Context, username, password string) (*AuthSession, error)
	Login(ctx context.Context, username, password string) (*AuthSession, error)
	Verify(ctx context.Context, token string) (*User, error)
	Questions(ctx context.Context) ([]form.Question, error)
	SubmitAnswers(ctx context.Context, token string, entries []form.AnswerEntry) ([]PersistedAnswer, error)
	UserAnswers(ctx context.Context, token string, userID int64) ([]UserAnswer, error)
}

type Config struct {
	MandatoryGroup string `mapstructure:"mandatory_group"`
	Profile        string `mapstructure:"profile"`
}

type Service struct {
	repo           SessionRepo
	api            SurveyAPI
	mandatoryGroup string
	profile        string
}

// New creates a survey service. Empty config values fall back to the "Personal Information" mandatory group and the
// "default" profile.
func New(cfg Config, repo SessionRepo, api SurveyAPI) *Service {
	group := cfg.MandatoryGroup
	if group == "" {
		group = DefaultMandatoryGroup
	}

	profile := cfg.Profile
	if profile == "" {
		profile = "default"
	}

	return &Service{
		repo:           repo,
		api:            api,
		mandatoryGroup: group,
		profile:        profile,
	}
}
