package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/ksysoev/waterlily/pkg/store"
)

const internalError = "Internal Server Error"

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	CreatedAt *time.Time `json:"created_at,omitempty"`
	Username  string     `json:"username"`
	ID        int64      `json:"id"`
}

type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

type verifyResponse struct {
	User  userResponse `json:"user"`
	Valid bool         `json:"valid"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type questionResponse struct {
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	InputType   string    `json:"input_type"`
	Field       string    `json:"field"`
	ID          int64     `json:"id"`
}

// answerItem keeps the answer as a pointer so that a missing answer can be told apart from an empty one.
type answerItem struct {
	Answer     *string `json:"answer"`
	QuestionID int64   `json:"question_id"`
}

type submitRequest struct {
	Answer []answerItem `json:"answer"`
}

type responseItem struct {
	CreatedAt  time.Time `json:"created_at"`
	Answer     string    `json:"answer"`
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
}

type userAnswerItem struct {
	responseItem
	Title       string `json:"title"`
	Description string `json:"description"`
	InputType   string `json:"input_type"`
	Field       string `json:"field"`
}

func newUserResponse(u *store.User) userResponse {
	createdAt := u.CreatedAt

	return userResponse{ID: u.ID, Username: u.Username, CreatedAt: &createdAt}
}

func newResponseItem(r store.Response) responseItem {
	return responseItem{
		ID:         r.ID,
		UserID:     r.UserID,
		QuestionID: r.QuestionID,
		Answer:     r.Answer,
		CreatedAt:  r.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}
