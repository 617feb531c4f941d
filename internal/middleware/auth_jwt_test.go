package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"datagen/internal/config"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub": "uuid_alice",
		"tv":  0,
		"iat": now.Unix(),
		"exp": now.Add(time.Minute).Unix(),
	}
}

func runAuthJWT(authz string) (*httptest.ResponseRecorder, bool, string, int) {
	cfg := config.Config{JWTSecret: "test-secret"}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	var gotUserID string
	var gotTV int

	h := AuthJWT(cfg)(func(c echo.Context) error {
		reached = true
		gotUserID, _ = c.Get(CtxUserIDKey).(string)
		gotTV, _ = c.Get(CtxTokenVersionKey).(int)
		return c.NoContent(http.StatusOK)
	})
	_ = h(c)

	return rec, reached, gotUserID, gotTV
}

func TestAuthJWT_ValidToken(t *testing.T) {
	token := signToken(t, "test-secret", validClaims())

	rec, reached, userID, tv := runAuthJWT("Bearer " + token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uuid_alice", userID)
	assert.Equal(t, 0, tv)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, reached, _, _ := runAuthJWT("")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	rec, reached, _, _ := runAuthJWT("Basic abc123")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", validClaims())

	rec, reached, _, _ := runAuthJWT("Bearer " + token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()
	token := signToken(t, "test-secret", claims)

	rec, reached, _, _ := runAuthJWT("Bearer " + token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MissingSubClaim(t *testing.T) {
	claims := validClaims()
	delete(claims, "sub")
	token := signToken(t, "test-secret", claims)

	rec, reached, _, _ := runAuthJWT("Bearer " + token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
