package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bcpartners_backend/database"
	"bcpartners_backend/internal/app"
	"bcpartners_backend/internal/config"
	"bcpartners_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer wraps the router and the test database. Requests are served
// in-process so each test can pin its own transaction to the request
// context; nothing a test writes survives the rollback.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer connects to the test database from DATABASE_URL, runs the
// migrations and assembles the router with a mock mail provider.
func NewTestServer(t *testing.T) *TestServer {
	config.LoadConfig()
	cfg := config.GetConfig()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(db, app.NewMockEmailProvider())

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// BeginTransaction opens the per-test transaction.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Failed to begin test transaction: %v", tx.Error)
	}
	return tx
}

// RollbackTransaction discards everything the test wrote.
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("Rollback returned: %v", err)
	}
}

// SendRequest serves one request in-process with tx pinned to the request
// context, so the handlers operate inside the test's transaction.
// Redirects are not followed; the recorder reports them as-is.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	res := rec.Result()
	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}
