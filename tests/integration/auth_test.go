//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/testutil"
)

func TestAuth_Signup_Signin_Flow(t *testing.T) {
	client := newTestClient(t)
	email := testutil.RandomEmail()
	password := "Password123"

	resp, err := client.POST("/api/v1/auth/signup", map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var signupResult tokenResponse
	testutil.DecodeJSON(t, resp, &signupResult)
	assert.Equal(t, email, signupResult.Data.User.Email)
	assert.Equal(t, "user", signupResult.Data.User.Role)
	assert.NotEmpty(t, signupResult.Data.Token)

	resp, err = client.POST("/api/v1/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var signinResult tokenResponse
	testutil.DecodeJSON(t, resp, &signinResult)
	assert.Equal(t, email, signinResult.Data.User.Email)
	assert.NotEmpty(t, signinResult.Data.Token)
}

func TestAuth_Signup_DuplicateEmail(t *testing.T) {
	client := newTestClient(t)
	_, email, _ := signupUser(t, client)

	resp, err := client.POST("/api/v1/auth/signup", map[string]string{
		"email":    email,
		"password": "Password123",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAuth_Signin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	client := newTestClient(t)
	_, email, _ := signupUser(t, client)

	respUnknown, err := client.POST("/api/v1/auth/signin", map[string]string{
		"email":    testutil.RandomEmail(),
		"password": "Password123",
	})
	require.NoError(t, err)
	bodyUnknown := testutil.ReadBody(t, respUnknown)

	respWrong, err := client.POST("/api/v1/auth/signin", map[string]string{
		"email":    email,
		"password": "WrongPassword1",
	})
	require.NoError(t, err)
	bodyWrong := testutil.ReadBody(t, respWrong)

	assert.Equal(t, http.StatusUnauthorized, respUnknown.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, respWrong.StatusCode)
	assert.Equal(t, bodyUnknown, bodyWrong, "both failures must present identically")
}

func TestAuth_Me_RequiresToken(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/api/v1/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_Me_ReturnsCurrentUser(t *testing.T) {
	client := newTestClient(t)
	id, email, token := signupUser(t, client)

	resp, err := client.WithToken(token).GET("/api/v1/me")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data userResponse `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, id, result.Data.ID)
	assert.Equal(t, email, result.Data.Email)
}

func TestAuth_ChangePassword_Flow(t *testing.T) {
	client := newTestClient(t)
	_, email, token := signupUser(t, client)
	authed := client.WithToken(token)

	// Weak replacement is rejected
	resp, err := authed.PUT("/api/v1/me/password", map[string]string{
		"old_password": "Password123",
		"new_password": "weak",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Reusing the current password is rejected
	resp, err = authed.PUT("/api/v1/me/password", map[string]string{
		"old_password": "Password123",
		"new_password": "Password123",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong old password is rejected
	resp, err = authed.PUT("/api/v1/me/password", map[string]string{
		"old_password": "WrongOld123",
		"new_password": "NewPassword1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Valid change succeeds
	resp, err = authed.PUT("/api/v1/me/password", map[string]string{
		"old_password": "Password123",
		"new_password": "NewPassword1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	// Old password no longer works, new one does
	resp, err = client.POST("/api/v1/auth/signin", map[string]string{
		"email":    email,
		"password": "Password123",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = client.POST("/api/v1/auth/signin", map[string]string{
		"email":    email,
		"password": "NewPassword1",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
