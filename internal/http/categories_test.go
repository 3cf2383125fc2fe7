package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spndy/spndy-api/internal/entities"
)

func TestCategoriesController_Create(t *testing.T) {
	env := setupTestEnv(t)

	t.Run("creates a category", func(t *testing.T) {
		w := env.request(t, "POST", "/api/categories", "", gin.H{"name": "Groceries"})
		require.Equal(t, http.StatusCreated, w.Code)

		var category entities.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &category))
		assert.NotZero(t, category.ID)
		assert.Equal(t, "Groceries", category.Name)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		w := env.request(t, "POST", "/api/categories", "", gin.H{"name": "Groceries"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Category already exists")
	})

	t.Run("rejects empty name", func(t *testing.T) {
		w := env.request(t, "POST", "/api/categories", "", gin.H{"name": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoriesController_ListAndGet(t *testing.T) {
	env := setupTestEnv(t)

	for _, name := range []string{"Transport", "Groceries"} {
		w := env.request(t, "POST", "/api/categories", "", gin.H{"name": name})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("list is ordered by name", func(t *testing.T) {
		w := env.request(t, "GET", "/api/categories", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var all []entities.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
		require.Len(t, all, 2)
		assert.Equal(t, "Groceries", all[0].Name)
		assert.Equal(t, "Transport", all[1].Name)
	})

	t.Run("get by id", func(t *testing.T) {
		w := env.request(t, "GET", "/api/categories/1", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := env.request(t, "GET", "/api/categories/999", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		w := env.request(t, "GET", "/api/categories/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCategoriesController_Update(t *testing.T) {
	env := setupTestEnv(t)

	created := env.request(t, "POST", "/api/categories", "", gin.H{"name": "Groceries"})
	require.Equal(t, http.StatusCreated, created.Code)
	env.request(t, "POST", "/api/categories", "", gin.H{"name": "Transport"})

	var category entities.Category
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &category))
	path := fmt.Sprintf("/api/categories/%d", category.ID)

	t.Run("renames", func(t *testing.T) {
		w := env.request(t, "PUT", path, "", gin.H{"name": "Food"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Food")
	})

	t.Run("rejects a taken name", func(t *testing.T) {
		w := env.request(t, "PUT", path, "", gin.H{"name": "Transport"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Category name already exists")
	})

	t.Run("unknown id", func(t *testing.T) {
		w := env.request(t, "PUT", "/api/categories/999", "", gin.H{"name": "Whatever"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoriesController_Delete(t *testing.T) {
	env := setupTestEnv(t)
	token := env.signupUser(t, "alice", "alice@example.com")

	created := env.request(t, "POST", "/api/categories", "", gin.H{"name": "Groceries"})
	require.Equal(t, http.StatusCreated, created.Code)
	var category entities.Category
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &category))
	path := fmt.Sprintf("/api/categories/%d", category.ID)

	t.Run("refused while expenses reference it", func(t *testing.T) {
		w := env.request(t, "POST", "/api/expenses", token, gin.H{
			"description": "weekly shop",
			"amount":      42.5,
			"date":        "2025-05-01",
			"categoryId":  category.ID,
		})
		require.Equal(t, http.StatusCreated, w.Code)

		del := env.request(t, "DELETE", path, "", nil)
		assert.Equal(t, http.StatusBadRequest, del.Code)
		assert.Contains(t, del.Body.String(), "cannot be deleted")
	})

	t.Run("deletes once unreferenced", func(t *testing.T) {
		w := env.request(t, "GET", "/api/expenses", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var all []entities.Expense
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
		for _, expense := range all {
			del := env.request(t, "DELETE", fmt.Sprintf("/api/expenses/%d", expense.ID), token, nil)
			require.Equal(t, http.StatusOK, del.Code)
		}

		del := env.request(t, "DELETE", path, "", nil)
		assert.Equal(t, http.StatusOK, del.Code)
		assert.Contains(t, del.Body.String(), "Category deleted")
	})
}
