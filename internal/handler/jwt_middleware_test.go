package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "secreto-de-test"

func signToken(t *testing.T, secret, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func protectedEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(UserIDFromContext(r.Context())))
	})
}

func TestJWTAuth(t *testing.T) {
	mw := JWTAuth(testSecret)
	h := mw(protectedEcho())

	tests := []struct {
		name       string
		authHeader string
		wantCode   int
		wantBody   string
	}{
		{
			name:     "sin header",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:       "header sin Bearer",
			authHeader: "Basic abc",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "token basura",
			authHeader: "Bearer no-es-un-jwt",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "firmado con otro secret",
			authHeader: "Bearer " + signToken(t, "otro-secret", "u1", "user"),
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "token válido",
			authHeader: "Bearer " + signToken(t, testSecret, "u1", "user"),
			wantCode:   http.StatusOK,
			wantBody:   "u1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, esperaba %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("body = %q, esperaba %q (el sub del token)", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	h := JWTAuth(testSecret)(AdminOnly()(protectedEcho()))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", "user"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("role user: status = %d, esperaba 403", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "admin1", "admin"))
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("role admin: status = %d, esperaba 200", w.Code)
	}
}
