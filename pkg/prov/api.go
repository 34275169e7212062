package prov

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ksysoev/waterlily/pkg/core"
	"github.com/ksysoev/waterlily/pkg/core/form"
)

type Config struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// API is an HTTP client for the survey backend.
type API struct {
	baseURL string
	cl      *http.Client
}

// New creates an API client. A zero timeout leaves the request duration to the transport defaults.
func New(cfg Config) *API {
	return &API{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		cl: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    core.User `json:"user"`
}

type verifyResponse struct {
	User  core.User `json:"user"`
	Valid bool      `json:"valid"`
}

type submitRequest struct {
	Answer []form.AnswerEntry `json:"answer"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Register creates an account and returns the session issued for it.
func (a *API) Register(ctx context.Context, username, password string) (*core.AuthSession, error) {
	return a.authenticate(ctx, "/auth/register", username, password)
}

// Login exchanges credentials for a session.
func (a *API) Login(ctx context.Context, username, password string) (*core.AuthSession, error) {
	return a.authenticate(ctx, "/auth/login", username, password)
}

func (a *API) authenticate(ctx context.Context, path, username, password string) (*core.AuthSession, error) {
	var resp authResponse

	req := credentialsRequest{Username: username, Password: password}
	if err := a.do(ctx, http.MethodPost, path, "", req, &resp); err != nil {
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("empty token in response")
	}

	return &core.AuthSession{
		UserID:   resp.User.ID,
		Username: resp.User.Username,
		Token:    resp.Token,
	}, nil
}

// Verify checks the bearer token and returns the user it belongs to.
func (a *API) Verify(ctx context.Context, token string) (*core.User, error) {
	var resp verifyResponse

	if err := a.do(ctx, http.MethodGet, "/auth/verify", token, nil, &resp); err != nil {
		return nil, err
	}

	if !resp.Valid {
		return nil, &core.StatusError{Status: http.StatusForbidden, Message: "token is not valid"}
	}

	return &resp.User, nil
}

// Questions returns all survey questions in backend order.
func (a *API) Questions(ctx context.Context) ([]form.Question, error) {
	var questions []form.Question

	if err := a.do(ctx, http.MethodGet, "/questions", "", nil, &questions); err != nil {
		return nil, err
	}

	return questions, nil
}

// SubmitAnswers stores the answer list for the token's user.
func (a *API) SubmitAnswers(ctx context.Context, token string, entries []form.AnswerEntry) ([]core.PersistedAnswer, error) {
	var stored []core.PersistedAnswer

	req := submitRequest{Answer: entries}
	if err := a.do(ctx, http.MethodPost, "/user-answers", token, req, &stored); err != nil {
		return nil, err
	}

	return stored, nil
}

// UserAnswers returns the stored answers of userID joined with question metadata.
func (a *API) UserAnswers(ctx context.Context, token string, userID int64) ([]core.UserAnswer, error) {
	var answers []core.UserAnswer

	path := "/user-answers/" + strconv.FormatInt(userID, 10)
	if err := a.do(ctx, http.MethodGet, path, token, nil, &answers); err != nil {
		return nil, err
	}

	return answers, nil
}

// do sends a JSON request and decodes the JSON response into out.
// Transport failures wrap core.ErrTransport; non-2xx responses are returned as *core.StatusError.
func (a *API) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader = http.NoBody

	if body != nil {
		jsonReq, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}

		reqBody = bytes.NewReader(jsonReq)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.cl.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrTransport, err)
	}

	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func newStatusError(resp *http.Response) *core.StatusError {
	data, _ := io.ReadAll(resp.Body)

	statusErr := &core.StatusError{
		Status: resp.StatusCode,
		Body:   string(data),
	}

	var errResp errorResponse
	if json.Unmarshal(data, &errResp) == nil {
		statusErr.Message = errResp.Error
	}

	return statusErr
}
