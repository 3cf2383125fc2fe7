package http

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedReportData creates two users with expenses in two categories across
// two months and returns their tokens.
func seedReportData(t *testing.T, env *testEnv) (alice, bob string) {
	t.Helper()
	alice = env.signupUser(t, "alice", "alice@example.com")
	bob = env.signupUser(t, "bob", "bob@example.com")

	groceries := createCategory(t, env, "Groceries")
	transport := createCategory(t, env, "Transport")

	createExpense(t, env, alice, gin.H{
		"description": "shop", "amount": 40.0, "date": "2025-05-10", "categoryId": groceries.ID,
	})
	createExpense(t, env, alice, gin.H{
		"description": "bus", "amount": 10.0, "date": "2025-05-20", "categoryId": transport.ID,
	})
	createExpense(t, env, bob, gin.H{
		"description": "shop", "amount": 25.0, "date": "2025-05-15", "categoryId": groceries.ID,
	})
	createExpense(t, env, alice, gin.H{
		"description": "june shop", "amount": 99.0, "date": "2025-06-01", "categoryId": groceries.ID,
	})
	return alice, bob
}

func TestReportsController_Monthly(t *testing.T) {
	env := setupTestEnv(t)
	alice, _ := seedReportData(t, env)

	t.Run("anonymous sees all users", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/monthly/2025/5", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, float64(5), resp["month"])
		assert.Equal(t, float64(2025), resp["year"])
		assert.Equal(t, 75.0, resp["totalExpense"])
		assert.Len(t, resp["categoricalExpenses"], 2)
	})

	t.Run("authenticated caller is scoped", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/monthly/2025/5", alice, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 50.0, decodeBody(t, w)["totalExpense"])
	})

	t.Run("empty month totals zero", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/monthly/2025/1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, 0.0, resp["totalExpense"])
		assert.Empty(t, resp["categoricalExpenses"])
	})

	t.Run("invalid month or year", func(t *testing.T) {
		for _, path := range []string{
			"/api/reports/monthly/2025/13",
			"/api/reports/monthly/2025/0",
			"/api/reports/monthly/abcd/5",
		} {
			w := env.request(t, "GET", path, "", nil)
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
		}
	})
}

func TestReportsController_MonthlyList(t *testing.T) {
	env := setupTestEnv(t)
	seedReportData(t, env)

	w := env.request(t, "GET", "/api/reports/monthly/list/2025/5", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeBody(t, w)
	expenses, ok := resp["expenses"].([]any)
	require.True(t, ok)
	assert.Len(t, expenses, 3)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestReportsController_Yearly(t *testing.T) {
	env := setupTestEnv(t)
	seedReportData(t, env)

	t.Run("sums the whole year", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/yearly/2025", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 174.0, decodeBody(t, w)["totalExpense"])
	})

	t.Run("invalid year", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/yearly/abcd", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReportsController_Range(t *testing.T) {
	env := setupTestEnv(t)
	seedReportData(t, env)

	t.Run("aggregates inside the window", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/range?fromDate=2025-05-01&toDate=2025-05-31", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		assert.Equal(t, 75.0, resp["totalExpense"])
		assert.Contains(t, resp, "dateRange")
		assert.Len(t, resp["expenses"], 3)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/range?fromDate=05/01/2025&toDate=2025-05-31", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/range?fromDate=2025-06-01&toDate=2025-05-01", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Start date must be before end date")
	})
}

func TestReportsController_MyRange(t *testing.T) {
	env := setupTestEnv(t)
	alice, bob := seedReportData(t, env)

	t.Run("requires auth", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/myexpense/range?fromDate=2025-05-01&toDate=2025-05-31", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("scopes to the caller", func(t *testing.T) {
		w := env.request(t, "GET", "/api/reports/myexpense/range?fromDate=2025-05-01&toDate=2025-05-31", alice, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 50.0, decodeBody(t, w)["totalExpense"])

		w = env.request(t, "GET", "/api/reports/myexpense/range?fromDate=2025-05-01&toDate=2025-05-31", bob, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 25.0, decodeBody(t, w)["totalExpense"])
	})
}
