package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"
)

func profileBody(name string) map[string]interface{} {
	return map[string]interface{}{
		"name":  name,
		"title": "Software Engineer",
		"bio":   "I build things.",
		"email": "me@example.com",
		"social": map[string]string{
			"github": "https://github.com/example",
		},
	}
}

func TestProfileUpsert(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	admin, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	t.Run("public get with no profile yields 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/profile", "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "PROFILE_NOT_FOUND")
	})

	t.Run("first submission creates the profile", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, profileBody("Jane Doe"))
		require.Equal(t, http.StatusCreated, res.StatusCode)

		var created models.Profile
		require.NoError(t, json.Unmarshal([]byte(body), &created))
		assert.Equal(t, admin.ID, created.UserID)
		assert.Equal(t, "Jane Doe", created.Name)
		assert.Equal(t, "https://github.com/example", created.Social.GitHub)
	})

	t.Run("second submission updates in place", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, profileBody("Jane Updated"))
		require.Equal(t, http.StatusOK, res.StatusCode)

		var updated models.Profile
		require.NoError(t, json.Unmarshal([]byte(body), &updated))
		assert.Equal(t, "Jane Updated", updated.Name)

		var count int64
		require.NoError(t, ts.DB.Model(&models.Profile{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("public get returns the profile", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/profile", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var fetched models.Profile
		require.NoError(t, json.Unmarshal([]byte(body), &fetched))
		assert.Equal(t, "Jane Updated", fetched.Name)
	})

	t.Run("get by id is admin-only", func(t *testing.T) {
		var profile models.Profile
		require.NoError(t, ts.DB.First(&profile).Error)

		res, _ := ts.SendRequest(t, http.MethodGet, "/api/profile/"+profile.ID, "", nil)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

		res, body := ts.SendRequest(t, http.MethodGet, "/api/profile/"+profile.ID, token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, profile.ID)
	})

	t.Run("submission without token is rejected", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/profile", "", profileBody("Mallory"))
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("incomplete body fails validation", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/profile", token, map[string]interface{}{
			"name": "No Title",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "VALIDATION_FAILED")
	})
}
