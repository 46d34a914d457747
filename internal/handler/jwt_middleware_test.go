package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return s
}

func TestJWTAuth(t *testing.T) {
	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	mw := JWTAuth(testSecret)(next)

	valid := signToken(t, testSecret, jwt.MapClaims{
		"sub": 7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUserID int
	}{
		{"token válido", "Bearer " + valid, http.StatusOK, 7},
		{"sin header", "", http.StatusUnauthorized, 0},
		{"sin prefijo Bearer", valid, http.StatusUnauthorized, 0},
		{"token basura", "Bearer no-es-un-jwt", http.StatusUnauthorized, 0},
		{
			"firmado con otro secreto",
			"Bearer " + signToken(t, "otro", jwt.MapClaims{"sub": 7, "exp": time.Now().Add(time.Hour).Unix()}),
			http.StatusUnauthorized, 0,
		},
		{
			"token vencido",
			"Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": 7, "exp": time.Now().Add(-time.Hour).Unix()}),
			http.StatusUnauthorized, 0,
		},
		{
			"sin claim sub",
			"Bearer " + signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}),
			http.StatusUnauthorized, 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID = 0
			req := httptest.NewRequest(http.MethodGet, "/me/ratings", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotUserID != tt.wantUserID {
				t.Errorf("userId en contexto = %d, want %d", gotUserID, tt.wantUserID)
			}
		})
	}
}
