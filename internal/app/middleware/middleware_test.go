package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printshop/internal/app/config"
	"printshop/internal/app/ds"
	"printshop/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeBlacklist) WriteJWTToBlacklist(_ context.Context, token string, _ time.Duration) error {
	f.revoked[token] = true
	return nil
}

func (f *fakeBlacklist) IsJWTBlacklisted(_ context.Context, token string) (bool, error) {
	return f.revoked[token], f.err
}

func testConfig() *config.Config {
	return &config.Config{JWT: config.JWTConfig{
		Token:         "test-secret",
		ExpiresIn:     time.Hour,
		SigningMethod: jwt.SigningMethodHS256,
	}}
}

func signToken(t *testing.T, cfg *config.Config, staffID uint, r role.Role, expires time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(cfg.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{ExpiresAt: expires.Unix(), IssuedAt: time.Now().Unix()},
		StaffID:        staffID,
		Role:           r,
	})
	s, err := token.SignedString([]byte(cfg.JWT.Token))
	require.NoError(t, err)
	return s
}

func newAuthRouter(am *AuthMiddleware, roles ...role.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", am.WithAuthCheck(roles...), func(c *gin.Context) {
		id, rl, ok := StaffFromContext(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "role": rl.String()})
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWithAuthCheck(t *testing.T) {
	cfg := testConfig()
	bl := &fakeBlacklist{revoked: map[string]bool{}}
	am := NewAuthMiddleware(bl, cfg)

	staffToken := signToken(t, cfg, 3, role.Staff, time.Now().Add(time.Hour))
	adminToken := signToken(t, cfg, 1, role.Admin, time.Now().Add(time.Hour))

	t.Run("MissingHeader", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, doGet(newAuthRouter(am), "/private", "").Code)
	})

	t.Run("Valid", func(t *testing.T) {
		w := doGet(newAuthRouter(am), "/private", staffToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":3,"role":"staff"}`, w.Body.String())
	})

	t.Run("Expired", func(t *testing.T) {
		expired := signToken(t, cfg, 3, role.Staff, time.Now().Add(-time.Minute))
		assert.Equal(t, http.StatusUnauthorized, doGet(newAuthRouter(am), "/private", expired).Code)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := testConfig()
		other.JWT.Token = "other"
		forged := signToken(t, other, 1, role.Admin, time.Now().Add(time.Hour))
		assert.Equal(t, http.StatusUnauthorized, doGet(newAuthRouter(am), "/private", forged).Code)
	})

	t.Run("RoleRequired", func(t *testing.T) {
		r := newAuthRouter(am, role.Admin)
		assert.Equal(t, http.StatusForbidden, doGet(r, "/private", staffToken).Code)
		assert.Equal(t, http.StatusOK, doGet(r, "/private", adminToken).Code)
	})

	t.Run("Revoked", func(t *testing.T) {
		require.NoError(t, bl.WriteJWTToBlacklist(context.Background(), staffToken, time.Hour))
		assert.Equal(t, http.StatusUnauthorized, doGet(newAuthRouter(am), "/private", staffToken).Code)
	})

	t.Run("BlacklistDown", func(t *testing.T) {
		broken := NewAuthMiddleware(&fakeBlacklist{revoked: map[string]bool{}, err: errors.New("redis down")}, cfg)
		assert.Equal(t, http.StatusInternalServerError, doGet(newAuthRouter(broken), "/private", adminToken).Code)
	})
}

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(0.001, 2)

	r := gin.New()
	r.Use(rl.Middleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, doGet(r, "/x", "").Code)
	assert.Equal(t, http.StatusNoContent, doGet(r, "/x", "").Code)
	w := doGet(r, "/x", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"fail"`)

	rl.Cleanup(time.Now().Add(time.Hour))
	assert.Equal(t, http.StatusNoContent, doGet(r, "/x", "").Code, "stale visitors are forgotten")
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("requestID")) })

	w := doGet(r, "/x", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
}
