package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"bcpartners_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAuth_Login covers the credential paths. Wrong password and unknown
// email must be indistinguishable in the response.
func TestAuth_Login(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("login_%d@test.com", time.Now().UnixNano())
	helpers.CreateOperator(t, tx, email, "correct-horse-battery")

	// Happy path.
	res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "correct-horse-battery",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "Login should succeed, got: "+bodyStr)
	assert.Contains(t, bodyStr, "access_token")
	assert.Contains(t, bodyStr, `"token_type":"Bearer"`)

	// Wrong password.
	res, wrongPass := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	// Unknown email yields the identical error body.
	res, unknownEmail := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Equal(t, wrongPass, unknownEmail)

	// Malformed payload.
	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

// TestAuth_Me covers the JSON session check. Unlike the admin surface,
// a bad session here answers 401 with a body, never a redirect.
func TestAuth_Me(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateAndLoginOperator(t, ts, tx)

	res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "Session check should succeed, got: "+bodyStr)
	assert.Contains(t, bodyStr, user.Email)
	assert.Contains(t, bodyStr, `"role":"admin"`)
	assert.NotContains(t, bodyStr, "password")

	// No token: JSON 401, not a redirect.
	res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Empty(t, res.Header.Get("Location"))
	assert.Contains(t, bodyStr, "error")

	// Garbage token.
	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
