package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/database/ledgers"
	"github.com/spndy/spndy-api/internal/entities"
)

// LedgersController serves the lend/borrow records. All routes are
// protected; rows are scoped to the authenticated user.
type LedgersController struct {
	store LedgerStore
}

func NewLedgersController(store LedgerStore) *LedgersController {
	return &LedgersController{store: store}
}

type ledgerRequest struct {
	From        string   `json:"from"`
	To          string   `json:"to"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
}

// CreateLedger handles POST /api/ledgers.
func (controller *LedgersController) CreateLedger(c *gin.Context) {
	var req ledgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if !entities.LedgerType(req.Type).Valid() {
		respondBadRequest(c, "Type must be either LEND or BORROW")
		return
	}
	if req.Amount == nil || req.Date == "" {
		respondBadRequest(c, "Amount and date are required")
		return
	}
	if !validDate(req.Date) {
		respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
		return
	}

	ledger, err := controller.store.CreateLedger(&entities.Ledger{
		From:        req.From,
		To:          req.To,
		Type:        entities.LedgerType(req.Type),
		Description: req.Description,
		Amount:      *req.Amount,
		Date:        req.Date,
		UserID:      GetUserID(c),
	})
	if err != nil {
		respondInternalError(c, err, "create ledger")
		return
	}
	respondCreated(c, ledger)
}

// GetLedgers handles GET /api/ledgers.
func (controller *LedgersController) GetLedgers(c *gin.Context) {
	all, err := controller.store.GetLedgersForUser(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list ledgers")
		return
	}
	respondOK(c, all)
}

// GetLedgerByID handles GET /api/ledgers/:id.
func (controller *LedgersController) GetLedgerByID(c *gin.Context) {
	ledger, err := controller.store.GetLedgerByID(c.Param("id"), GetUserID(c))
	if err != nil {
		if errors.Is(err, ledgers.ErrNotFound) {
			respondNotFound(c, "Ledger")
			return
		}
		respondInternalError(c, err, "get ledger")
		return
	}
	respondOK(c, ledger)
}

// UpdateLedger handles PUT /api/ledgers/:id. Absent fields keep their
// stored values.
func (controller *LedgersController) UpdateLedger(c *gin.Context) {
	var req ledgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.From != "" {
		updates["from"] = req.From
	}
	if req.To != "" {
		updates["to"] = req.To
	}
	if req.Type != "" {
		if !entities.LedgerType(req.Type).Valid() {
			respondBadRequest(c, "Type must be either LEND or BORROW")
			return
		}
		updates["type"] = req.Type
	}
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

	ledger, err := controller.store.UpdateLedger(c.Param("id"), GetUserID(c), updates)
	if err != nil {
		if errors.Is(err, ledgers.ErrNotFound) {
			respondNotFound(c, "Ledger")
			return
		}
		respondInternalError(c, err, "update ledger")
		return
	}
	respondOK(c, ledger)
}

// DeleteLedger handles DELETE /api/ledgers/:id.
func (controller *LedgersController) DeleteLedger(c *gin.Context) {
	if err := controller.store.DeleteLedger(c.Param("id"), GetUserID(c)); err != nil {
		if errors.Is(err, ledgers.ErrNotFound) {
			respondNotFound(c, "Ledger")
			return
		}
		respondInternalError(c, err, "delete ledger")
		return
	}
	respondSuccess(c, "Ledger deleted")
}
