package rest

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	h := newTestServer(t).Handler()

	rec := do(t, h, request{method: http.MethodPost, path: "/register", body: `{"username":"alice","password":"pw"}`})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "User created successfully", decode[messageResponse](t, rec).Message)

	rec = do(t, h, request{method: http.MethodPost, path: "/register", body: `{"username":"alice","password":"other"}`})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already registered", decode[errorResponse](t, rec).Detail)
}

func TestRegister_Invalid(t *testing.T) {
	h := newTestServer(t).Handler()

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"username":`},
		{"missing password", `{"username":"alice"}`},
		{"empty username", `{"username":"","password":"pw"}`},
		{"wrong types", `{"username":1,"password":2}`},
		{"password too long", `{"username":"alice","password":"` + strings.Repeat("x", 80) + `"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, request{method: http.MethodPost, path: "/register", body: tt.body})
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		})
	}
}

func TestLogin(t *testing.T) {
	h := newTestServer(t).Handler()
	tokens := registerAndLogin(t, h, "alice", "secret")

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)
}

func TestLogin_Failures(t *testing.T) {
	h := newTestServer(t).Handler()
	registerAndLogin(t, h, "alice", "secret")

	for _, form := range []url.Values{
		{"username": {"alice"}, "password": {"wrong"}},
		{"username": {"ghost"}, "password": {"secret"}},
	} {
		rec := do(t, h, request{method: http.MethodPost, path: "/token", form: form})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		assert.Equal(t, "Incorrect username or password", decode[errorResponse](t, rec).Detail)
	}

	rec := do(t, h, request{method: http.MethodPost, path: "/token", form: url.Values{"username": {"alice"}}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRefresh(t *testing.T) {
	h := newTestServer(t).Handler()
	tokens := registerAndLogin(t, h, "alice", "secret")

	rec := do(t, h, request{method: http.MethodPost, path: "/refresh",
		body: `{"refresh_token":"` + tokens.RefreshToken + `"}`})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decode[tokenResponse](t, rec)
	assert.NotEmpty(t, got.AccessToken)
	assert.Empty(t, got.RefreshToken)
	assert.Equal(t, "bearer", got.TokenType)

	rec = do(t, h, request{method: http.MethodGet, path: "/todos/", token: got.AccessToken})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefresh_Rejected(t *testing.T) {
	h := newTestServer(t).Handler()
	tokens := registerAndLogin(t, h, "alice", "secret")

	for _, tok := range []string{tokens.AccessToken, "garbage"} {
		rec := do(t, h, request{method: http.MethodPost, path: "/refresh", body: `{"refresh_token":"` + tok + `"}`})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Invalid refresh token", decode[errorResponse](t, rec).Detail)
	}

	rec := do(t, h, request{method: http.MethodPost, path: "/refresh", body: `{}`})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
