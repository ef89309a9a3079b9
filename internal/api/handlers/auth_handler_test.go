package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/HakimZ78/devhakim-api/internal/models"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string, dest *models.User) error {
	args := m.Called(ctx, email, dest)
	return args.Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func loginRequest(t *testing.T, email, password string) *http.Request {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	secret := []byte("test-secret")
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	ownerID := uuid.New()
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "owner@example.com", mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*models.User)
			dest.ID = ownerID
			dest.Email = "owner@example.com"
			dest.Name = "Owner"
			dest.PasswordHash = string(hash)
		}).Return(nil).Once()

	h := NewAuthHandler(users, secret)
	rr := httptest.NewRecorder()
	h.Login(rr, loginRequest(t, "owner@example.com", "hunter2"))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
			Email string `json:"email"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "owner@example.com", resp.Data.Email)

	token, err := jwt.Parse(resp.Data.Token, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, ownerID.String(), claims["sub"])
	users.AssertExpectations(t)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "owner@example.com", mock.Anything).
		Run(func(args mock.Arguments) {
			args.Get(2).(*models.User).PasswordHash = string(hash)
		}).Return(nil).Once()

	h := NewAuthHandler(users, []byte("test-secret"))
	rr := httptest.NewRecorder()
	h.Login(rr, loginRequest(t, "owner@example.com", "wrong"))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid credentials")
}

func TestLoginUnknownEmailLooksLikeBadPassword(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByEmail", mock.Anything, "nobody@example.com", mock.Anything).
		Return(context.DeadlineExceeded).Once() // any lookup failure

	h := NewAuthHandler(users, []byte("test-secret"))
	rr := httptest.NewRecorder()
	h.Login(rr, loginRequest(t, "nobody@example.com", "hunter2"))

	// Same response as a wrong password, so emails cannot be probed.
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Contains(t, rr.Body.String(), "invalid credentials")
}

func TestLoginRequiresBothFields(t *testing.T) {
	h := NewAuthHandler(new(mockUserRepo), []byte("test-secret"))
	rr := httptest.NewRecorder()
	h.Login(rr, loginRequest(t, "owner@example.com", ""))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}
