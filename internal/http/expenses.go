package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/database/expenses"
	"github.com/spndy/spndy-api/internal/entities"
)

// ExpensesController serves the per-user expense records. All routes sit
// behind the auth middleware, so GetUserID never returns zero here.
type ExpensesController struct {
	store ExpenseStore
}

func NewExpensesController(store ExpenseStore) *ExpensesController {
	return &ExpensesController{store: store}
}

type expenseRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
	CategoryID  *uint    `json:"categoryId"`
}

// CreateExpense handles POST /api/expenses.
func (controller *ExpensesController) CreateExpense(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if req.Description == "" || req.Amount == nil || req.Date == "" || req.CategoryID == nil {
		respondBadRequest(c, "Description, amount, date and categoryId are required")
		return
	}
	if !validDate(req.Date) {
		respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
		return
	}

	exists, err := controller.store.CategoryExists(*req.CategoryID)
	if err != nil {
		respondInternalError(c, err, "create expense")
		return
	}
	if !exists {
		respondBadRequest(c, "Category not found")
		return
	}

	expense, err := controller.store.CreateExpense(&entities.Expense{
		Description: req.Description,
		Amount:      *req.Amount,
		Date:        req.Date,
		CategoryID:  *req.CategoryID,
		UserID:      GetUserID(c),
	})
	if err != nil {
		respondInternalError(c, err, "create expense")
		return
	}
	respondCreated(c, expense)
}

// GetExpenses handles GET /api/expenses. Rows are scoped to the
// authenticated user, newest date first.
func (controller *ExpensesController) GetExpenses(c *gin.Context) {
	all, err := controller.store.GetExpensesForUser(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list expenses")
		return
	}
	respondOK(c, all)
}

// GetExpenseByID handles GET /api/expenses/:id.
func (controller *ExpensesController) GetExpenseByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	expense, err := controller.store.GetExpenseByID(id, GetUserID(c))
	if err != nil {
		if errors.Is(err, expenses.ErrNotFound) {
			respondNotFound(c, "Expense")
			return
		}
		respondInternalError(c, err, "get expense")
		return
	}
	respondOK(c, expense)
}

// UpdateExpense handles PUT /api/expenses/:id. Absent fields keep their
// stored values.
func (controller *ExpensesController) UpdateExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Date != "" {
		if !validDate(req.Date) {
			respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
			return
		}
		updates["date"] = req.Date
	}
	if req.CategoryID != nil {
		exists, err := controller.store.CategoryExists(*req.CategoryID)
		if err != nil {
			respondInternalError(c, err, "update expense")
			return
		}
		if !exists {
			respondBadRequest(c, "Category not found")
			return
		}
		updates["category_id"] = *req.CategoryID
	}

	expense, err := controller.store.UpdateExpense(id, GetUserID(c), updates)
	if err != nil {
		if errors.Is(err, expenses.ErrNotFound) {
			respondNotFound(c, "Expense")
			return
		}
		respondInternalError(c, err, "update expense")
		return
	}
	respondOK(c, expense)
}

// DeleteExpense handles DELETE /api/expenses/:id.
func (controller *ExpensesController) DeleteExpense(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.store.DeleteExpense(id, GetUserID(c)); err != nil {
		if errors.Is(err, expenses.ErrNotFound) {
			respondNotFound(c, "Expense")
			return
		}
		respondInternalError(c, err, "delete expense")
		return
	}
	respondSuccess(c, "Expense removed")
}
