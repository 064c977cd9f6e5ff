package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cmlabs-hris/event-checkin-go/internal/handler/http/view"
	"github.com/cmlabs-hris/event-checkin-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret   = "test-secret-key-for-jwt"
	handlerTestPassword = "correct horse"
)

func newTestAuthHandler(t *testing.T) (AuthHandler, jwt.Service) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.MinCost)
	require.NoError(t, err)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(handlerTestSecret, "1h", false)
	return NewAuthHandler(jwtService, string(hash), renderer), jwtService
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == jwt.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_LoginPage(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	rec := httptest.NewRecorder()
	h.LoginPage(rec, httptest.NewRequest(http.MethodGet, "/admin/login?next=%2Fadmin%3Fyear%3D2024", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="password"`)
	assert.Contains(t, rec.Body.String(), "/admin?year=2024")
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := httptest.NewRecorder()
		h.Login(rec, postForm("/admin/login", url.Values{"password": {"nope"}}))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Wrong password.")
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("correct password issues a session", func(t *testing.T) {
		h, jwtService := newTestAuthHandler(t)

		rec := httptest.NewRecorder()
		h.Login(rec, postForm("/admin/login", url.Values{"password": {handlerTestPassword}, "next": {"/admin?year=2024"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin?year=2024", rec.Header().Get("Location"))
		cookie := sessionCookie(rec)
		require.NotNil(t, cookie)
		_, _, err := jwtService.ValidateAdminToken(cookie.Value)
		assert.NoError(t, err)
	})

	t.Run("off-site next is ignored", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)

		rec := httptest.NewRecorder()
		h.Login(rec, postForm("/admin/login", url.Values{"password": {handlerTestPassword}, "next": {"//evil.example.com"}}))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get("Location"))
	})
}

func TestAuthHandler_Logout_RevokesSession(t *testing.T) {
	h, jwtService := newTestAuthHandler(t)
	token, expiresAt, err := jwtService.GenerateAdminToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(jwtService.SessionCookie(token, expiresAt))
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	cleared := sessionCookie(rec)
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
	_, _, err = jwtService.ValidateAdminToken(token)
	assert.Error(t, err)
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/admin?year=2024", safeNext("/admin?year=2024"))
	assert.Equal(t, "/admin", safeNext(""))
	assert.Equal(t, "/admin", safeNext("https://evil.example.com"))
	assert.Equal(t, "/admin", safeNext("//evil.example.com"))
	assert.Equal(t, "/admin", safeNext(`/\evil.example.com`))
}
