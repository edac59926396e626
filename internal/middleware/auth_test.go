package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goboards-dev/goboards/internal/domain"
	"github.com/goboards-dev/goboards/internal/jwt"
)

func authedEcho(t *testing.T) (http.Handler, **domain.User) {
	t.Helper()
	var seen *domain.User
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	})
	return h, &seen
}

func TestNeedAuth(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	auth := NewAuth(jwtService)
	next, seen := authedEcho(t)
	protected := auth.NeedAuth()(next)

	token, err := jwtService.NewToken(domain.User{Id: 7, Name: "alice"})
	require.NoError(t, err)

	// bearer header
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, *seen)
	assert.Equal(t, domain.UserId(7), (*seen).Id)
	assert.Equal(t, "alice", (*seen).Name)

	// cookie
	*seen = nil
	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, *seen)

	// no token
	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// garbage token
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// token signed with another key
	otherToken, err := jwt.New("other", time.Hour).NewToken(domain.User{Id: 7})
	require.NoError(t, err)
	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+otherToken)
	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAdminOnly(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	auth := NewAuth(jwtService)
	next, _ := authedEcho(t)
	protected := auth.AdminOnly()(next)

	adminToken, err := jwtService.NewToken(domain.User{Id: 1, Admin: true})
	require.NoError(t, err)
	userToken, err := jwtService.NewToken(domain.User{Id: 2})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rr := httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest("POST", "/", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	rr = httptest.NewRecorder()
	protected.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestOptionalAuth(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	auth := NewAuth(jwtService)
	next, seen := authedEcho(t)
	wrapped := auth.OptionalAuth()(next)

	// anonymous passes through with no identity
	rr := httptest.NewRecorder()
	wrapped.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, *seen)

	// valid token populates identity
	token, err := jwtService.NewToken(domain.User{Id: 7})
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	wrapped.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotNil(t, *seen)
}
