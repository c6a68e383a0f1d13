// Copyright (c) 2026 LivePoll Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/livepoll/livepoll/auth"
	"github.com/livepoll/livepoll/cliparse"
	"github.com/livepoll/livepoll/middleware"
	"github.com/livepoll/livepoll/models"
)

// Postgres error code for unique constraint violations
const uniqueViolation = "23505"

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Email == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email is required")
		return
	}
	if len(req.Password) < 6 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		FullName:  req.FullName,
		CreatedAt: time.Now().UTC(),
	}

	_, err = h.db.Exec(`
		INSERT INTO app_user (id, username, email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, user.ID, user.Username, user.Email, user.FullName, passwordHash, user.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			middleware.ErrorResponse(w, http.StatusBadRequest, "User with this username or email already exists")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	token, err := auth.IssueToken(user.ID, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username and password are required")
		return
	}

	var user models.User
	var passwordHash string
	err := h.db.QueryRow(`
		SELECT id, username, email, full_name, password_hash, created_at
		FROM app_user
		WHERE username = $1
	`, req.Username).Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &passwordHash, &user.CreatedAt,
	)

	// Unknown user and wrong password are indistinguishable on purpose
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(passwordHash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := auth.IssueToken(user.ID, h.cfg.JWTSecret)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)

	middleware.JSONResponse(w, http.StatusOK, models.AuthResponse{
		Token: token,
		User:  user,
	})
}

// requireUser extracts and verifies the bearer token, returning the user id.
// Writes the 401 response itself and returns false when the token is bad.
func requireUser(w http.ResponseWriter, r *http.Request, secret string) (string, bool) {
	token, err := auth.BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization header required")
		return "", false
	}

	userID, err := auth.VerifyToken(token, secret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
		return "", false
	}
	return userID, true
}
