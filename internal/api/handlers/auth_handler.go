package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/HakimZ78/devhakim-api/internal/api/types"
	"github.com/HakimZ78/devhakim-api/internal/models"
	"github.com/HakimZ78/devhakim-api/internal/repository"
)

// AuthHandler issues tokens for the site owner. There is no self-service
// registration; the owner account is bootstrapped by the migrate command.
type AuthHandler struct {
	users      repository.UserRepository
	hmacSecret []byte
}

func NewAuthHandler(users repository.UserRepository, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, hmacSecret: secret}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeErrorStr(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var u models.User
	if err := h.users.GetByEmail(r.Context(), req.Email, &u); err != nil {
		writeErrorStr(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		writeErrorStr(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID.String(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})

	tokenString, err := token.SignedString(h.hmacSecret)
	if err != nil {
		writeErrorStr(w, http.StatusInternalServerError, "token signing failed")
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{
		Success: true,
		Data: map[string]any{
			"token": tokenString,
			"email": u.Email,
			"name":  u.Name,
		},
	})
}
