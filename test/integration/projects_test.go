package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"
)

func projectBody(title string, order int) map[string]interface{} {
	return map[string]interface{}{
		"title":        title,
		"description":  "A test project",
		"technologies": []string{"Go", "PostgreSQL"},
		"githubUrl":    "https://github.com/example/" + title,
		"featured":     true,
		"order":        order,
	}
}

func TestProjectCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	t.Run("empty store lists as empty array", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/projects", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Equal(t, "[]", body)
	})

	var createdID string

	t.Run("create then get returns the same record", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/projects", token, projectBody("first", 2))
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var created models.Project
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		require.NotEmpty(t, created.ID)
		assert.Equal(t, "first", created.Title)
		assert.True(t, created.Featured)
		createdID = created.ID

		res, body = ts.SendRequest(t, http.MethodGet, "/api/projects/"+createdID, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var fetched models.Project
		require.NoError(t, json.Unmarshal([]byte(body), &fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Title, fetched.Title)
		assert.Equal(t, []string{"Go", "PostgreSQL"}, []string(fetched.Technologies))
	})

	t.Run("list is sorted by order ascending", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/projects", token, projectBody("second", 1))
		require.Equal(t, http.StatusCreated, res.StatusCode)

		res, body := ts.SendRequest(t, http.MethodGet, "/api/projects", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var list []models.Project
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "second", list[0].Title)
		assert.Equal(t, "first", list[1].Title)
	})

	t.Run("update omitting featured resets it to false", func(t *testing.T) {
		update := map[string]interface{}{
			"title":       "first-renamed",
			"description": "Updated description",
			"order":       2,
		}
		res, body := ts.SendRequest(t, http.MethodPut, "/api/projects/"+createdID, token, update)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var updated models.Project
		require.NoError(t, json.Unmarshal([]byte(body), &updated))
		assert.Equal(t, "first-renamed", updated.Title)
		assert.False(t, updated.Featured)
		assert.Empty(t, []string(updated.Technologies))
	})

	t.Run("update on missing id yields 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/projects/no-such-id", token, projectBody("x", 1))
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "PROJECT_NOT_FOUND")
	})

	t.Run("delete removes the record", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodDelete, "/api/projects/"+createdID, token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "Project removed")

		res, _ = ts.SendRequest(t, http.MethodGet, "/api/projects/"+createdID, "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("delete on missing id yields 404", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, "/api/projects/"+createdID, token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("malformed id yields 404 not 500", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/projects/%20%00", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestProjectAccessGating(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, adminToken := ts.CreateAdmin(t, "admin@example.com", "supersecret")
	_, userToken := ts.CreateUser(t, "user@example.com", "supersecret")

	countProjects := func() int64 {
		var count int64
		require.NoError(t, ts.DB.Model(&models.Project{}).Count(&count).Error)
		return count
	}

	t.Run("write without token is rejected with no side effect", func(t *testing.T) {
		before := countProjects()
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/projects", "", projectBody("sneaky", 1))
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, before, countProjects())
	})

	t.Run("write with non-admin token is forbidden with no side effect", func(t *testing.T) {
		before := countProjects()
		res, body := ts.SendRequest(t, http.MethodPost, "/api/projects", userToken, projectBody("sneaky", 1))
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
		assert.Contains(t, body, "FORBIDDEN")
		assert.Equal(t, before, countProjects())
	})

	t.Run("delete without token leaves the record intact", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/projects", adminToken, projectBody("keep-me", 1))
		require.Equal(t, http.StatusCreated, res.StatusCode)
		var created models.Project
		require.NoError(t, json.Unmarshal([]byte(body), &created))

		res, _ = ts.SendRequest(t, http.MethodDelete, "/api/projects/"+created.ID, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

		res, _ = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/projects/%s", created.ID), "", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("public reads need no token", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodGet, "/api/projects", "", nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
