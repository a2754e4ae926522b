//go:build integration

package integration

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/testutil"
)

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type tokenResponse struct {
	Data struct {
		Token string       `json:"token"`
		User  userResponse `json:"user"`
	} `json:"data"`
}

// signupUser registers a fresh user and returns its id, email, and token.
func signupUser(t *testing.T, client *testutil.Client) (id, email, token string) {
	t.Helper()
	return signupWithRole(t, client, "")
}

// signupAdmin registers a fresh admin and returns its id, email, and token.
func signupAdmin(t *testing.T, client *testutil.Client) (id, email, token string) {
	t.Helper()
	return signupWithRole(t, client, "admin")
}

func signupWithRole(t *testing.T, client *testutil.Client, role string) (id, email, token string) {
	t.Helper()

	email = testutil.RandomEmail()
	payload := map[string]string{
		"email":    email,
		"password": "Password123",
	}
	if role != "" {
		payload["role"] = role
	}

	resp, err := client.POST("/api/v1/auth/signup", payload)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result tokenResponse
	testutil.DecodeJSON(t, resp, &result)
	require.NotEmpty(t, result.Data.Token)
	require.NotEmpty(t, result.Data.User.ID)

	return result.Data.User.ID, email, result.Data.Token
}

type todoResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Weather string `json:"weather"`
	OwnerID string `json:"owner_id"`
	Owner   *struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"owner"`
}

// createTodo creates a todo with the given token and returns its id.
func createTodo(t *testing.T, client *testutil.Client, token, title string) string {
	t.Helper()

	resp, err := client.WithToken(token).POST("/api/v1/todos", map[string]string{
		"title":    title,
		"contents": "integration test todo",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data todoResponse `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotEmpty(t, result.Data.ID)
	return result.Data.ID
}
