package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio_backend/internal/app"
	"portfolio_backend/internal/auth"
	"portfolio_backend/internal/config"
	"portfolio_backend/internal/database"
	"portfolio_backend/internal/models"
)

// TestServer wraps an httptest server backed by an in-memory SQLite database.
// Every test gets a fresh database, so no table cleanup is needed.
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Config *config.Config
}

func NewTestServer(t *testing.T) *TestServer {
	return NewTestServerWithConfig(t, nil)
}

// NewTestServerWithConfig lets a test adjust the config (resume paths, email
// settings) before the router is built.
func NewTestServerWithConfig(t *testing.T, mutate func(*config.Config)) *TestServer {
	t.Helper()

	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}
	config.AppConfig = cfg

	// A uniquely named shared-cache in-memory database keeps parallel test
	// servers isolated while letting gorm's pool share one store.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server: server,
		DB:     db,
		Config: cfg,
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Resume.TemplatePath = "testdata/resume.html"
	cfg.Resume.OutputPath = "testdata/out/resume.pdf"
	return cfg
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
}

// CreateAdmin inserts an admin user directly and returns a valid token for it.
func (ts *TestServer) CreateAdmin(t *testing.T, email, password string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	admin := &models.User{
		Name:         "Test Admin",
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := ts.DB.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin user: %v", err)
	}

	token, err := auth.GenerateToken(admin, ts.Config.JWT.Secret, time.Duration(ts.Config.JWT.TTL)*time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return admin, token
}

// CreateUser inserts a regular (non-admin) user and returns a token for it.
func (ts *TestServer) CreateUser(t *testing.T, email, password string) (*models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleUser,
	}
	if err := ts.DB.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	token, err := auth.GenerateToken(user, ts.Config.JWT.Secret, time.Duration(ts.Config.JWT.TTL)*time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	return user, token
}

// SendRequest performs one HTTP call against the test server and returns the
// response together with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
