package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret []byte, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "owner-id",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Auth(secret)(next)

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"valid token", "Bearer " + signedToken(t, secret, time.Now().Add(time.Hour)), http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"expired token", "Bearer " + signedToken(t, secret, time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signedToken(t, []byte("other"), time.Now().Add(time.Hour)), http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotUserID = ""
			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
			if tc.want == http.StatusNoContent && gotUserID != "owner-id" {
				t.Fatalf("expected user id in context, got %q", gotUserID)
			}
		})
	}
}
