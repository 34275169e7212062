package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ksysoev/waterlily/pkg/auth"
	"github.com/ksysoev/waterlily/pkg/store"
)

const (
	minUsernameLen = 3
	minPasswordLen = 6

	msgCredentialsRequired = "Username and password are required"
	msgUsernameTooShort    = "Username must be at least 3 characters long"
	msgPasswordTooShort    = "Password must be at least 6 characters long"
	msgUsernameTaken       = "Username already exists"
	msgInvalidCredentials  = "Invalid username or password"
	msgInvalidAnswers      = "Invalid request format. Expected answer array."
	msgForeignAnswers      = "You can only access your own answers"
)

func (s *Server) handleTest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Server is working"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	switch {
	case utf8.RuneCountInString(req.Username) < minUsernameLen:
		writeError(w, http.StatusBadRequest, msgUsernameTooShort, "")
		return
	case utf8.RuneCountInString(req.Password) < minPasswordLen:
		writeError(w, http.StatusBadRequest, msgPasswordTooShort, "")
		return
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		s.internalError(w, r, "Failed to hash password", err)
		return
	}

	user, err := s.store.CreateUser(r.Context(), req.Username, hash)

	switch {
	case errors.Is(err, store.ErrUserExists):
		writeError(w, http.StatusBadRequest, msgUsernameTaken, "")
		return
	case err != nil:
		s.internalError(w, r, "Failed to register user", err)
		return
	}

	s.writeToken(w, r, http.StatusCreated, "User registered successfully", user)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := s.store.GetUserByName(r.Context(), req.Username)

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials, "")
		return
	case err != nil:
		s.internalError(w, r, "Failed to find user", err)
		return
	}

	if !s.auth.CheckPassword(user.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, msgInvalidCredentials, "")
		return
	}

	s.writeToken(w, r, http.StatusOK, "Login successful", user)
}

func (s *Server) handleVerify(w http.ResponseWriter, _ *http.Request, claims *auth.Claims) {
	writeJSON(w, http.StatusOK, verifyResponse{
		Valid: true,
		User:  userResponse{ID: claims.ID, Username: claims.Username},
	})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := s.store.ListQuestions(r.Context())
	if err != nil {
		s.internalError(w, r, "Failed to list questions", err)
		return
	}

	resp := make([]questionResponse, 0, len(questions))

	for _, q := range questions {
		resp = append(resp, questionResponse{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			InputType:   q.InputType,
			Field:       q.Field,
			CreatedAt:   q.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSubmitAnswers(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	var req submitRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Answer == nil {
		writeError(w, http.StatusBadRequest, msgInvalidAnswers, "")
		return
	}

	answers := make([]store.Answer, 0, len(req.Answer))

	for _, item := range req.Answer {
		if item.QuestionID == 0 || item.Answer == nil {
			continue
		}

		answers = append(answers, store.Answer{QuestionID: item.QuestionID, Text: *item.Answer})
	}

	stored, err := s.store.SaveAnswers(r.Context(), claims.ID, answers)

	switch {
	case errors.Is(err, store.ErrUnknownQuestion):
		writeError(w, http.StatusBadRequest, msgInvalidAnswers, err.Error())
		return
	case err != nil:
		s.internalError(w, r, "Failed to save answers", err)
		return
	}

	slog.InfoContext(r.Context(), "Answers stored", slog.Int64("user_id", claims.ID), slog.Int("answers", len(stored)))

	resp := make([]responseItem, 0, len(stored))
	for _, st := range stored {
		resp = append(resp, newResponseItem(st))
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUserAnswers(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	userID, err := strconv.ParseInt(r.PathValue("userId"), 10, 64)
	if err != nil || userID != claims.ID {
		writeError(w, http.StatusForbidden, msgForeignAnswers, "")
		return
	}

	answers, err := s.store.ListUserAnswers(r.Context(), userID)
	if err != nil {
		s.internalError(w, r, "Failed to list answers", err)
		return
	}

	resp := make([]userAnswerItem, 0, len(answers))

	for _, a := range answers {
		resp = append(resp, userAnswerItem{
			responseItem: newResponseItem(a.Response),
			Title:        a.Title,
			Description:  a.Description,
			InputType:    a.InputType,
			Field:        a.Field,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeToken(w http.ResponseWriter, r *http.Request, status int, msg string, user *store.User) {
	token, err := s.auth.Sign(user.ID, user.Username)
	if err != nil {
		s.internalError(w, r, "Failed to sign token", err)
		return
	}

	writeJSON(w, status, authResponse{
		Message: msg,
		Token:   token,
		User:    newUserResponse(user),
	})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.ErrorContext(r.Context(), msg, slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, internalError, err.Error())
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgCredentialsRequired, "")
		return req, false
	}

	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, msgCredentialsRequired, "")
		return req, false
	}

	return req, true
}
