package integration

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio_backend/internal/models"
	"portfolio_backend/test/helpers"
)

func TestExperienceCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/experience", token, map[string]interface{}{
		"title":   "Backend Engineer",
		"company": "Acme",
		"from":    from,
		"to":      to,
		"order":   2,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created models.Experience
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	require.NotNil(t, created.To)
	assert.Equal(t, "Acme", created.Company)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/experience", token, map[string]interface{}{
		"title":   "Senior Engineer",
		"company": "Acme",
		"from":    to,
		"current": true,
		"order":   1,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	t.Run("list is public and ordered by order ascending", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/experience", "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var list []models.Experience
		require.NoError(t, json.Unmarshal([]byte(body), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "Senior Engineer", list[0].Title)
		assert.True(t, list[0].Current)
		assert.Nil(t, list[0].To)
	})

	t.Run("update omitting current resets it", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPut, "/api/experience/"+created.ID, token, map[string]interface{}{
			"title":   "Backend Engineer",
			"company": "Acme Corp",
			"from":    from,
		})
		require.Equal(t, http.StatusOK, res.StatusCode)

		var updated models.Experience
		require.NoError(t, json.Unmarshal([]byte(body), &updated))
		assert.Equal(t, "Acme Corp", updated.Company)
		assert.False(t, updated.Current)
		assert.Nil(t, updated.To)
	})

	t.Run("missing required from fails validation", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/experience", token, map[string]interface{}{
			"title":   "Ghost",
			"company": "Nowhere",
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "VALIDATION_FAILED")
	})

	t.Run("delete on unknown id yields 404", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodDelete, "/api/experience/unknown", token, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "EXPERIENCE_NOT_FOUND")
	})
}

func TestEducationCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	from := time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/education", token, map[string]interface{}{
		"school":       "State University",
		"degree":       "BSc",
		"fieldOfStudy": "Computer Science",
		"from":         from,
		"current":      false,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created models.Education
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "Computer Science", created.FieldOfStudy)

	t.Run("get returns the created record", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodGet, "/api/education/"+created.ID, "", nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		var fetched models.Education
		require.NoError(t, json.Unmarshal([]byte(body), &fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.School, fetched.School)
	})

	t.Run("missing fieldOfStudy fails validation", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/education", token, map[string]interface{}{
			"school": "State University",
			"degree": "BSc",
			"from":   from,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "VALIDATION_FAILED")
	})

	t.Run("delete removes the record", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodDelete, "/api/education/"+created.ID, token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res, body := ts.SendRequest(t, http.MethodGet, "/api/education/"+created.ID, "", nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, "EDUCATION_NOT_FOUND")
	})
}
