package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/platewise/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func newAuthRouter(v TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Auth(v), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	r.GET("/admin", Auth(v), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func request(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingHeader(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &types.TokenClaims{UserID: "u1"}})
	w := request(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedHeader(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &types.TokenClaims{UserID: "u1"}})

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		w := request(r, "/me", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	r := newAuthRouter(&stubValidator{err: errors.New("expired")})
	w := request(r, "/me", "Bearer bad-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthSetsIdentity(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &types.TokenClaims{UserID: "user-42"}})
	w := request(r, "/me", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-42")
}

func TestAdminOnlyRejectsRegularUsers(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &types.TokenClaims{UserID: "u1", IsAdmin: false}})
	w := request(r, "/admin", "Bearer good-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnlyAllowsAdmins(t *testing.T) {
	r := newAuthRouter(&stubValidator{claims: &types.TokenClaims{UserID: "u1", IsAdmin: true}})
	w := request(r, "/admin", "Bearer good-token")
	assert.Equal(t, http.StatusOK, w.Code)
}
