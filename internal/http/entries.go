package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/database/entries"
	"github.com/spndy/spndy-api/internal/entities"
)

// EntriesController serves the per-day records inside a tour. Routes are
// protected and mutations are restricted to the entry's creator. Every
// mutation recomputes the owning tour's total cost in the store.
type EntriesController struct {
	store EntryStore
	tours TourStore
}

func NewEntriesController(store EntryStore, tours TourStore) *EntriesController {
	return &EntriesController{store: store, tours: tours}
}

type entryRequest struct {
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"`
	TourID      string   `json:"tourId"`
}

// CreateEntry handles POST /api/entries.
func (controller *EntriesController) CreateEntry(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if req.TourID == "" || req.Date == "" || req.Amount == nil {
		respondBadRequest(c, "TourId, date and amount are required")
		return
	}
	if !validDate(req.Date) {
		respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
		return
	}
	entryType := entities.EntryType(strings.ToLower(req.Type))
	if !entryType.Valid() {
		respondBadRequest(c, "Invalid entry type")
		return
	}
	if _, err := controller.tours.GetTourByID(req.TourID); err != nil {
		respondNotFound(c, "Tour")
		return
	}

	entry, err := controller.store.CreateEntry(&entities.TourEntry{
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Amount:      *req.Amount,
		Type:        entryType,
		TourID:      req.TourID,
		UserID:      GetUserID(c),
	})
	if err != nil {
		respondInternalError(c, err, "create entry")
		return
	}
	respondCreated(c, entry)
}

// UpdateEntry handles PUT /api/entries/:entryId. Only the creator may
// change an entry.
func (controller *EntriesController) UpdateEntry(c *gin.Context) {
	entry, err := controller.store.GetEntryByID(c.Param("entryId"))
	if err != nil {
		if errors.Is(err, entries.ErrNotFound) {
			respondNotFound(c, "Entry")
			return
		}
		respondInternalError(c, err, "update entry")
		return
	}
	if entry.UserID != GetUserID(c) {
		respondForbidden(c, "User must be authorized to update the entry")
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Date != "" {
		if !validDate(req.Date) {
			respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
			return
		}
		updates["date"] = req.Date
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Type != "" {
		entryType := entities.EntryType(strings.ToLower(req.Type))
		if !entryType.Valid() {
			respondBadRequest(c, "Invalid entry type")
			return
		}
		updates["type"] = string(entryType)
	}

	updated, err := controller.store.UpdateEntry(entry.ID, updates)
	if err != nil {
		respondInternalError(c, err, "update entry")
		return
	}
	respondOK(c, updated)
}

// DeleteEntry handles DELETE /api/entries/:tourId/:entryId. Only the
// creator may remove an entry.
func (controller *EntriesController) DeleteEntry(c *gin.Context) {
	entry, err := controller.store.GetEntryByID(c.Param("entryId"))
	if err != nil {
		if errors.Is(err, entries.ErrNotFound) {
			respondNotFound(c, "Entry")
			return
		}
		respondInternalError(c, err, "delete entry")
		return
	}
	if entry.UserID != GetUserID(c) {
		respondForbidden(c, "User must be authorized to delete the entry")
		return
	}

	if err := controller.store.DeleteEntry(entry.ID); err != nil {
		respondInternalError(c, err, "delete entry")
		return
	}
	respondSuccess(c, "The entry \""+entry.Description+"\" deleted successfully")
}
