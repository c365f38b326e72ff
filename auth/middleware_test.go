package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRequireAuth(t *testing.T) {
	issuer := testIssuer("test-secret", time.Hour)

	validToken, err := issuer.Sign(7)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	expiredToken, err := testIssuer("test-secret", -time.Minute).Sign(7)
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantUserID int
	}{
		{
			name:       "missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed token",
			authHeader: "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			authHeader: "Bearer " + expiredToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
		{
			name:       "bearer keyword is case-insensitive",
			authHeader: "bearer " + validToken,
			wantStatus: http.StatusOK,
			wantUserID: 7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			var handlerCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			RequireAuth(issuer)(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if !handlerCalled {
					t.Fatal("next handler was not called")
				}
				if gotUserID != tt.wantUserID {
					t.Errorf("user id in context = %d, want %d", gotUserID, tt.wantUserID)
				}
			} else if handlerCalled {
				t.Error("next handler was called on a rejected request")
			}
		})
	}
}
