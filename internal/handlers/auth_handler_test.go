package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignUp_Success(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/signup", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	out := decode(t, w)
	require.NotEmpty(t, out["token"])
	require.NotEmpty(t, out["user_id"])
	require.Equal(t, "alice@example.com", out["email"])
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	r := setupRouter(t)

	payload := map[string]string{"email": "alice@example.com", "password": "secret123"}
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/signup", "", payload).Code)
	require.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/api/signup", "", payload).Code)
}

func TestSignUp_ShortPassword(t *testing.T) {
	r := setupRouter(t)

	w := do(r, http.MethodPost, "/api/signup", "", map[string]string{
		"email":    "alice@example.com",
		"password": "short",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	r := setupRouter(t)

	payload := map[string]string{"email": "alice@example.com", "password": "secret123"}
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/signup", "", payload).Code)

	w := do(r, http.MethodPost, "/api/login", "", payload)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, decode(t, w)["token"])
}

func TestLogin_BadCredentialsIndistinguishable(t *testing.T) {
	r := setupRouter(t)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/signup", "", map[string]string{
		"email": "alice@example.com", "password": "secret123",
	}).Code)

	wrongPassword := do(r, http.MethodPost, "/api/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrongpass",
	})
	unknownEmail := do(r, http.MethodPost, "/api/login", "", map[string]string{
		"email": "nobody@example.com", "password": "secret123",
	})

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	// identical body for both failure modes
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestMe(t *testing.T) {
	r := setupRouter(t)
	token := testToken(t, "u-me")

	w := do(r, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u-me", decode(t, w)["user_id"])
}
