package core

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ksysoev/waterlily/pkg/core/form"
)

// AuthSession is the process-wide authentication context: who is logged in and the bearer token for API calls.
type AuthSession struct {
	Username string `json:"username"`
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
}

type User struct {
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	ID        int64     `json:"id"`
}

// PersistedAnswer is a stored answer as returned after submission.
type PersistedAnswer struct {
	CreatedAt  time.Time `json:"created_at"`
	Answer     string    `json:"answer"`
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
}

// UserAnswer is a stored answer joined with the metadata of its question.
type UserAnswer struct {
	CreatedAt   time.Time `json:"created_at"`
	Answer      string    `json:"answer"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	InputType   form.Kind `json:"input_type"`
	Field       string    `json:"field"`
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	QuestionID  int64     `json:"question_id"`
}

// StatusError is returned by the API client when the backend answers with a non-2xx status.
type StatusError struct {
	Body    string
	Message string
	Status  int
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("status %d: %s", e.Status, e.Body)
}

// Reauth reports whether the rejection means the bearer token is missing, invalid or expired.
func (e *StatusError) Reauth() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}
