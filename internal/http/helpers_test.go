package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/spndy/spndy-api/internal/auth"
	"github.com/spndy/spndy-api/internal/config"
	"github.com/spndy/spndy-api/internal/database"
	"github.com/spndy/spndy-api/internal/database/categories"
	"github.com/spndy/spndy-api/internal/database/entries"
	"github.com/spndy/spndy-api/internal/database/expenses"
	"github.com/spndy/spndy-api/internal/database/ledgers"
	"github.com/spndy/spndy-api/internal/database/reports"
	"github.com/spndy/spndy-api/internal/database/tours"
	"github.com/spndy/spndy-api/internal/database/users"
)

type testEnv struct {
	router *gin.Engine
	db     *database.Database
	auth   *auth.Service
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	authCfg := config.Auth{
		AccessSecret:      "test-access-secret",
		RefreshSecret:     "test-refresh-secret",
		AccessTokenTTL:    15 * time.Minute,
		RefreshTokenTTL:   time.Hour,
		BcryptCost:        4,
		MinPasswordLength: 8,
	}

	userRepo := users.NewRepository(db.DB)
	tokenManager := auth.NewTokenManager(authCfg)
	authService := auth.NewService(userRepo, tokenManager, authCfg)

	router := NewRouter(RouterConfig{
		Database:       db,
		AuthController: auth.NewController(authService, authCfg),
		AuthMiddleware: auth.NewMiddleware(tokenManager, userRepo),
		CategoryStore:  categories.NewRepository(db.DB),
		ExpenseStore:   expenses.NewRepository(db.DB),
		LedgerStore:    ledgers.NewRepository(db.DB),
		TourStore:      tours.NewRepository(db.DB),
		EntryStore:     entries.NewRepository(db.DB),
		ReportStore:    reports.NewRepository(db.DB),
		AllowedOrigins: []string{"http://localhost:3000"},
		Version:        "test",
	})

	return &testEnv{router: router, db: db, auth: authService}
}

// signupUser registers a user through the service and returns an access
// token for request helpers.
func (env *testEnv) signupUser(t *testing.T, username, email string) string {
	t.Helper()
	_, pair, err := env.auth.Signup(username, email, "password12345")
	require.NoError(t, err)
	return pair.Access
}

func (env *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
