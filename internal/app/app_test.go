package app

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/database"
	"portfolio_backend/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestNewCORSHandler(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty allow-list is refused", func(t *testing.T) {
		cfg := &config.Config{}
		_, err := NewCORSHandler(cfg, next)
		assert.Error(t, err, "an empty list must not silently become allow-all")
	})

	t.Run("listed origin is allowed", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

		handler, err := NewCORSHandler(cfg, next)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin gets no allow header", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000"}

		handler, err := NewCORSHandler(cfg, next)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSeedFirstAdmin(t *testing.T) {
	adminConfig := func(password string) *config.Config {
		cfg := &config.Config{}
		cfg.Admin.Name = "Admin"
		cfg.Admin.Email = "admin@example.com"
		cfg.Admin.Password = password
		return cfg
	}

	t.Run("creates the admin when none exists", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, SeedFirstAdmin(db, adminConfig("supersecret")))

		var admin models.User
		require.NoError(t, db.First(&admin, "email = ?", "admin@example.com").Error)
		assert.Equal(t, models.UserRoleAdmin, admin.Role)
		assert.NotEqual(t, "supersecret", admin.PasswordHash)
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, SeedFirstAdmin(db, adminConfig("supersecret")))
		require.NoError(t, SeedFirstAdmin(db, adminConfig("supersecret")))

		var count int64
		require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects a weak configured password", func(t *testing.T) {
		db := openTestDB(t)
		err := SeedFirstAdmin(db, adminConfig("short"))
		require.Error(t, err)

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.Zero(t, count, "nothing is seeded with a rejected password")
	})

	t.Run("does nothing without configured credentials", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, SeedFirstAdmin(db, &config.Config{}))

		var count int64
		require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
		assert.Zero(t, count)
	})
}
