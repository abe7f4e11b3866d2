package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// newProtectedEcho mirrors the real route shapes: one route carrying a
// :user_id parameter and one scoped by review id only.
func newProtectedEcho(svc *JWTService) *echo.Echo {
	e := echo.New()
	identity := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]uint{"id": UserID(c)})
	}
	g := e.Group("/api", RequireAuth(svc))
	g.GET("/users/:user_id/reviews", identity)
	g.PUT("/reviews/:review_id", identity)
	return e
}

func TestRequireAuth(t *testing.T) {
	svc := NewJWTService("test-secret")
	validToken, err := svc.GenerateToken(1)
	assert.NoError(t, err)
	expiredToken := signedTokenExpiringAt(t, "test-secret", time.Now().Add(-time.Minute))
	foreignToken := signedTokenExpiringAt(t, "other-secret", time.Now().Add(time.Hour))

	e := newProtectedEcho(svc)

	tests := []struct {
		name       string
		method     string
		target     string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access denied"}`,
		},
		{
			name:       "scheme without token",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			authHeader: "Bearer",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"Access denied"}`,
		},
		{
			name:       "garbage token",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			authHeader: "Bearer garbage",
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "token signed with another secret",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			authHeader: "Bearer " + foreignToken,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "expired token",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			authHeader: "Bearer " + expiredToken,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Invalid token"}`,
		},
		{
			name:       "valid token matching path id",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1}`,
		},
		{
			name:       "scheme word is not checked",
			method:     http.MethodGet,
			target:     "/api/users/1/reviews",
			authHeader: "Token " + validToken,
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1}`,
		},
		{
			name:       "mismatched path id",
			method:     http.MethodGet,
			target:     "/api/users/2/reviews",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Unauthorized access"}`,
		},
		{
			name:       "non-integer path id",
			method:     http.MethodGet,
			target:     "/api/users/abc/reviews",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"error":"Unauthorized access"}`,
		},
		{
			name:       "review-scoped route skips the path check",
			method:     http.MethodPut,
			target:     "/api/reviews/99",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
