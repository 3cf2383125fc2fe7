package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spndy/spndy-api/internal/entities"
)

func createEntry(t *testing.T, env *testEnv, token string, body gin.H) entities.TourEntry {
	t.Helper()
	w := env.request(t, "POST", "/api/entries", token, body)
	require.Equal(t, http.StatusCreated, w.Code)
	var entry entities.TourEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	return entry
}

func getTour(t *testing.T, env *testEnv, id string) entities.Tour {
	t.Helper()
	w := env.request(t, "GET", "/api/tours/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tour entities.Tour
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tour))
	return tour
}

func TestEntriesController_Create(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "alice", "alice@example.com")
	tour := createTour(t, env, gin.H{
		"name": "Alps 2025", "startDate": "2025-07-01", "endDate": "2025-07-10",
	})

	t.Run("requires auth", func(t *testing.T) {
		w := env.request(t, "POST", "/api/entries", "", gin.H{
			"description": "lunch", "date": "2025-07-02", "amount": 12.0,
			"type": "food", "tourId": tour.ID,
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("type is case-insensitive", func(t *testing.T) {
		entry := createEntry(t, env, token, gin.H{
			"description": "lunch", "date": "2025-07-02", "amount": 12.0,
			"type": "Food", "tourId": tour.ID,
		})
		assert.Equal(t, entities.EntryTypeFood, entry.Type)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		w := env.request(t, "POST", "/api/entries", token, gin.H{
			"description": "lunch", "date": "2025-07-02", "amount": 12.0,
			"type": "souvenir", "tourId": tour.ID,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid entry type")
	})

	t.Run("rejects unknown tour", func(t *testing.T) {
		w := env.request(t, "POST", "/api/entries", token, gin.H{
			"description": "lunch", "date": "2025-07-02", "amount": 12.0,
			"type": "food", "tourId": "no-such-tour",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestEntriesController_TotalCostTracksEntries(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "alice", "alice@example.com")
	tour := createTour(t, env, gin.H{
		"name": "Alps 2025", "startDate": "2025-07-01", "endDate": "2025-07-10",
	})

	lunch := createEntry(t, env, token, gin.H{
		"description": "lunch", "date": "2025-07-02", "amount": 12.0,
		"type": "food", "tourId": tour.ID,
	})
	createEntry(t, env, token, gin.H{
		"description": "hotel", "date": "2025-07-02", "amount": 88.0,
		"type": "hotel", "tourId": tour.ID,
	})
	assert.Equal(t, 100.0, getTour(t, env, tour.ID).TotalCost)

	w := env.request(t, "PUT", "/api/entries/"+lunch.ID, token, gin.H{"amount": 20.0})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 108.0, getTour(t, env, tour.ID).TotalCost)

	w = env.request(t, "DELETE", "/api/entries/"+tour.ID+"/"+lunch.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 88.0, getTour(t, env, tour.ID).TotalCost)
}

func TestEntriesController_OwnershipIsEnforced(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.signupUser(t, "alice", "alice@example.com")
	bob := env.signupUser(t, "bob", "bob@example.com")
	tour := createTour(t, env, gin.H{
		"name": "Alps 2025", "startDate": "2025-07-01", "endDate": "2025-07-10",
	})

	entry := createEntry(t, env, alice, gin.H{
		"description": "lunch", "date": "2025-07-02", "amount": 12.0,
		"type": "food", "tourId": tour.ID,
	})

	t.Run("update by a non-owner", func(t *testing.T) {
		w := env.request(t, "PUT", "/api/entries/"+entry.ID, bob, gin.H{"amount": 1.0})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("delete by a non-owner", func(t *testing.T) {
		w := env.request(t, "DELETE", "/api/entries/"+tour.ID+"/"+entry.ID, bob, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown entry", func(t *testing.T) {
		w := env.request(t, "PUT", "/api/entries/no-such-entry", alice, gin.H{"amount": 1.0})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
