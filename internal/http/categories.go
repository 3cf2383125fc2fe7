package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/database/categories"
)

// CategoriesController serves the shared expense category catalogue.
type CategoriesController struct {
	store CategoryStore
}

func NewCategoriesController(store CategoryStore) *CategoriesController {
	return &CategoriesController{store: store}
}

type categoryRequest struct {
	Name string `json:"name"`
}

// CreateCategory handles POST /api/categories.
func (controller *CategoriesController) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondBadRequest(c, "Category name is required")
		return
	}

	category, err := controller.store.CreateCategory(req.Name)
	if err != nil {
		if errors.Is(err, categories.ErrNameTaken) {
			respondBadRequest(c, "Category already exists")
			return
		}
		respondInternalError(c, err, "create category")
		return
	}
	respondCreated(c, category)
}

// GetCategories handles GET /api/categories.
func (controller *CategoriesController) GetCategories(c *gin.Context) {
	all, err := controller.store.GetAllCategories()
	if err != nil {
		respondInternalError(c, err, "list categories")
		return
	}
	respondOK(c, all)
}

// GetCategoryByID handles GET /api/categories/:id.
func (controller *CategoriesController) GetCategoryByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := controller.store.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			respondNotFound(c, "Category")
			return
		}
		respondInternalError(c, err, "get category")
		return
	}
	respondOK(c, category)
}

// UpdateCategory handles PUT /api/categories/:id.
func (controller *CategoriesController) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondBadRequest(c, "Category name is required")
		return
	}

	category, err := controller.store.UpdateCategory(id, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, categories.ErrNotFound):
			respondNotFound(c, "Category")
		case errors.Is(err, categories.ErrNameTaken):
			respondBadRequest(c, "Category name already exists")
		default:
			respondInternalError(c, err, "update category")
		}
		return
	}
	respondOK(c, category)
}

// DeleteCategory handles DELETE /api/categories/:id. Deletion is refused
// while any expense still references the category.
func (controller *CategoriesController) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, categories.ErrNotFound):
			respondNotFound(c, "Category")
		case errors.Is(err, categories.ErrInUse):
			respondBadRequest(c, "This category has one or more linked expenses and cannot be deleted")
		default:
			respondInternalError(c, err, "delete category")
		}
		return
	}
	respondSuccess(c, "Category deleted")
}
