package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// SessionCookieName carries the admin session token.
const SessionCookieName = "admin_session"

const tokenTypeAdmin = "admin"

type Service interface {
	GenerateAdminToken() (token string, expiresAt int64, err error)
	ValidateAdminToken(tokenString string) (jti string, expiresAt int64, err error)
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearSessionCookie() *http.Cookie
	RevokeToken(jti string, expiresAt int64)
	IsTokenRevoked(jti string) bool
	PruneRevoked(now time.Time) int
}

type JWTService struct {
	sessionExpirationTime string
	secureCookie          bool
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func NewJWTService(secretKey string, sessionExpirationTime string, secureCookie bool) Service {
	return &JWTService{
		sessionExpirationTime: sessionExpirationTime,
		secureCookie:          secureCookie,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) GenerateAdminToken() (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"jti":  uuid.NewString(),
		"type": tokenTypeAdmin,
		"exp":  expiresAt,
	})
	return tokenString, expiresAt, err
}

// ValidateAdminToken checks signature, expiry, type and revocation and returns the token id
func (j *JWTService) ValidateAdminToken(tokenString string) (jti string, expiresAt int64, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", 0, err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != tokenTypeAdmin {
		return "", 0, jwt.ErrInvalidJWT()
	}

	jti = token.JwtID()
	if jti == "" || j.IsTokenRevoked(jti) {
		return "", 0, jwt.ErrInvalidJWT()
	}

	return jti, token.Expiration().Unix(), nil
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// RevokeToken blocks a token id until it would have expired anyway
func (j *JWTService) RevokeToken(jti string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[jti] = expiresAt
}

// PruneRevoked forgets revoked ids whose tokens have expired and returns how many were removed
func (j *JWTService) PruneRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	removed := 0
	for id, exp := range j.revokedTokens {
		if exp < now.Unix() {
			delete(j.revokedTokens, id)
			removed++
		}
	}
	return removed
}

func (j *JWTService) IsTokenRevoked(jti string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[jti]
	return revoked
}
