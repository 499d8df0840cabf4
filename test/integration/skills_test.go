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

func TestSkillValidation(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	countSkills := func() int64 {
		var count int64
		require.NoError(t, ts.DB.Model(&models.Skill{}).Count(&count).Error)
		return count
	}

	t.Run("level above 100 is rejected and nothing is persisted", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/skills", token, map[string]interface{}{
			"name":     "Go",
			"level":    150,
			"category": "Backend",
		})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "VALIDATION_FAILED")
		assert.Equal(t, int64(0), countSkills())
	})

	t.Run("level below 1 is rejected", func(t *testing.T) {
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/skills", token, map[string]interface{}{
			"name":     "Go",
			"level":    0,
			"category": "Backend",
		})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, int64(0), countSkills())
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/skills", token, map[string]interface{}{
			"name":     "Go",
			"level":    90,
			"category": "Wizardry",
		})

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, "VALIDATION_FAILED")
		assert.Equal(t, int64(0), countSkills())
	})

	t.Run("boundary levels 1 and 100 are accepted", func(t *testing.T) {
		for _, level := range []int{1, 100} {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/skills", token, map[string]interface{}{
				"name":     "Go",
				"level":    level,
				"category": "Backend",
			})

			require.Equal(t, http.StatusCreated, res.StatusCode)

			var created models.Skill
			require.NoError(t, json.Unmarshal([]byte(body), &created))
			assert.Equal(t, level, created.Level)
		}
	})
}

func TestSkillCRUD(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	_, token := ts.CreateAdmin(t, "admin@example.com", "supersecret")

	skill := map[string]interface{}{
		"name":     "PostgreSQL",
		"level":    80,
		"category": "Database",
		"icon":     "postgres.svg",
		"order":    3,
	}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/skills", token, skill)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created models.Skill
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, models.SkillCategoryDatabase, created.Category)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/skills/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var fetched models.Skill
	require.NoError(t, json.Unmarshal([]byte(body), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, 80, fetched.Level)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/skills/"+created.ID, token, map[string]interface{}{
		"name":     "PostgreSQL",
		"level":    95,
		"category": "Database",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated models.Skill
	require.NoError(t, json.Unmarshal([]byte(body), &updated))
	assert.Equal(t, 95, updated.Level)
	assert.Empty(t, updated.Icon)
	assert.Zero(t, updated.OrderIndex)

	res, _ = ts.SendRequest(t, http.MethodDelete, "/api/skills/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/skills/"+created.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Contains(t, body, "SKILL_NOT_FOUND")
}
