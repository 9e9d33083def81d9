package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

// protected answers 200 with the role Auth stored, behind RequireRole(parent).
func protected(t *testing.T, auth bool) *ginext.Engine {
	t.Helper()
	r := ginext.New("test")
	if auth {
		r.Use(Auth(testSecret, newTestLogger(t)))
	}
	r.GET("/jobs", RequireRole(RoleParent), func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(ctxRole))
	})
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuth(t *testing.T) {
	r := protected(t, true)

	tests := []struct {
		name  string
		token string
		code  int
		body  string
	}{
		{
			name:  "missing token",
			token: "",
			code:  http.StatusUnauthorized,
		},
		{
			name:  "garbage",
			token: "not.a.jwt",
			code:  http.StatusUnauthorized,
		},
		{
			name:  "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("other"), jwt.MapClaims{"sub": "u1", "role": RoleParent}),
			code:  http.StatusUnauthorized,
		},
		{
			name:  "no subject",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"role": RoleParent}),
			code:  http.StatusUnauthorized,
		},
		{
			name:  "parent",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u1", "role": RoleParent}),
			code:  http.StatusOK,
			body:  RoleParent,
		},
		{
			name:  "admin passes any role check",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u2", "role": RoleAdmin}),
			code:  http.StatusOK,
			body:  RoleAdmin,
		},
		{
			name:  "babysitter on a parent route",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "u3", "role": RoleBabysitter}),
			code:  http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.token)

			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRequireRole_NoAuth(t *testing.T) {
	w := get(protected(t, false), "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	r := ginext.New("test")
	r.Use(RateLimit(0.001, 2, newTestLogger(t)))
	r.GET("/jobs", func(c *ginext.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusOK, get(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "").Code)
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/jobs", func(c *ginext.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "req-123")
	assert.NotContains(t, w.Body.String(), "boom")
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRequestID_Generated(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/jobs", func(c *ginext.Context) { c.String(http.StatusOK, c.GetString(ctxRequestID)) })

	w := get(r, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestID))
}

func TestIPLimiters_EvictsIdle(t *testing.T) {
	s := newIPLimiters(1, 5)
	clock := time.Unix(1_700_000_000, 0)
	s.now = func() time.Time { return clock }

	for i := 0; i < 100; i++ {
		s.get("10.0.0." + strconv.Itoa(i))
	}
	assert.Equal(t, 100, s.size())

	clock = clock.Add(s.idle / 2)
	s.get("10.0.0.1")

	clock = clock.Add(s.idle/2 + time.Second)
	s.get("10.0.0.200")

	assert.Equal(t, 2, s.size(), "only the recently seen buckets survive")
}

func TestIPLimiters_IdleCoversRefill(t *testing.T) {
	s := newIPLimiters(0.001, 2)

	assert.GreaterOrEqual(t, s.idle, 2000*time.Second)
}
