//go:build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/testutil"
)

func TestTodos_CreateCapturesWeather(t *testing.T) {
	client := newTestClient(t)
	id, _, token := signupUser(t, client)

	resp, err := client.WithToken(token).POST("/api/v1/todos", map[string]string{
		"title":    "water the plants",
		"contents": "both balconies",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Data todoResponse `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "water the plants", result.Data.Title)
	assert.Equal(t, "Clear Skies", result.Data.Weather, "snapshot is title-cased")
	assert.Equal(t, id, result.Data.OwnerID)
}

func TestTodos_CreateRequiresToken(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.POST("/api/v1/todos", map[string]string{"title": "anonymous"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTodos_CreateRejectsEmptyTitle(t *testing.T) {
	client := newTestClient(t)
	_, _, token := signupUser(t, client)

	resp, err := client.WithToken(token).POST("/api/v1/todos", map[string]string{"title": ""})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTodos_GetIsPublicAndIncludesOwner(t *testing.T) {
	client := newTestClient(t)
	ownerID, ownerEmail, token := signupUser(t, client)
	todoID := createTodo(t, client, token, "public read")

	// No token on the read
	resp, err := client.GET("/api/v1/todos/" + todoID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data todoResponse `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.NotNil(t, result.Data.Owner)
	assert.Equal(t, ownerID, result.Data.Owner.ID)
	assert.Equal(t, ownerEmail, result.Data.Owner.Email)
}

func TestTodos_GetNotFound(t *testing.T) {
	client := newTestClient(t)

	resp, err := client.GET("/api/v1/todos/00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTodos_ListPaginatesNewestFirst(t *testing.T) {
	client := newTestClient(t)
	_, _, token := signupUser(t, client)

	var lastID string
	for i := 0; i < 3; i++ {
		lastID = createTodo(t, client, token, fmt.Sprintf("todo %d", i))
	}

	resp, err := client.GET("/api/v1/todos?page=1&size=2")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Data struct {
			Todos []todoResponse `json:"todos"`
			Total int            `json:"total"`
		} `json:"data"`
	}
	testutil.DecodeJSON(t, resp, &result)
	require.Len(t, result.Data.Todos, 2)
	assert.GreaterOrEqual(t, result.Data.Total, 3)
	assert.Equal(t, lastID, result.Data.Todos[0].ID, "most recently modified first")
}
