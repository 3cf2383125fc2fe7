package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/database/tours"
	"github.com/spndy/spndy-api/internal/entities"
)

// ToursController serves multi-day tours and their share links.
type ToursController struct {
	store TourStore
}

func NewToursController(store TourStore) *ToursController {
	return &ToursController{store: store}
}

type tourRequest struct {
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	TotalCost *float64 `json:"totalCost"`
	IsPublic  *bool    `json:"isPublic"`
}

type shareRequest struct {
	IsPublic *bool `json:"isPublic"`
}

// CreateTour handles POST /api/tours. Tour names are globally unique.
func (controller *ToursController) CreateTour(c *gin.Context) {
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}
	if req.Name == "" || req.StartDate == "" || req.EndDate == "" {
		respondBadRequest(c, "Name, startDate and endDate are required")
		return
	}
	if !validDate(req.StartDate) || !validDate(req.EndDate) {
		respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
		return
	}

	tour := &entities.Tour{
		Name:      req.Name,
		Location:  req.Location,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.TotalCost != nil {
		tour.TotalCost = *req.TotalCost
	}
	if req.IsPublic != nil {
		tour.IsPublic = *req.IsPublic
	}

	created, err := controller.store.CreateTour(tour)
	if err != nil {
		if errors.Is(err, tours.ErrNameTaken) {
			respondBadRequest(c, "The tour already exists")
			return
		}
		respondInternalError(c, err, "create tour")
		return
	}
	respondCreated(c, created)
}

// GetTours handles GET /api/tours. Entries are embedded and tours come
// back newest end date first.
func (controller *ToursController) GetTours(c *gin.Context) {
	all, err := controller.store.GetAllTours()
	if err != nil {
		respondInternalError(c, err, "list tours")
		return
	}
	respondOK(c, all)
}

// GetTourByID handles GET /api/tours/:id.
func (controller *ToursController) GetTourByID(c *gin.Context) {
	tour, err := controller.store.GetTourByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			respondNotFound(c, "Tour")
			return
		}
		respondInternalError(c, err, "get tour")
		return
	}
	respondOK(c, tour)
}

// UpdateTour handles PUT /api/tours/:id. Absent fields keep their stored
// values.
func (controller *ToursController) UpdateTour(c *gin.Context) {
	var req tourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.StartDate != "" {
		if !validDate(req.StartDate) {
			respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
			return
		}
		updates["start_date"] = req.StartDate
	}
	if req.EndDate != "" {
		if !validDate(req.EndDate) {
			respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
			return
		}
		updates["end_date"] = req.EndDate
	}
	if req.TotalCost != nil {
		updates["total_cost"] = *req.TotalCost
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}

	tour, err := controller.store.UpdateTour(c.Param("id"), updates)
	if err != nil {
		switch {
		case errors.Is(err, tours.ErrNotFound):
			respondNotFound(c, "Tour")
		case errors.Is(err, tours.ErrNameTaken):
			respondBadRequest(c, "The tour already exists")
		default:
			respondInternalError(c, err, "update tour")
		}
		return
	}
	respondOK(c, tour)
}

// DeleteTour handles DELETE /api/tours/:id. Deletion is refused while
// the tour still has entries.
func (controller *ToursController) DeleteTour(c *gin.Context) {
	if err := controller.store.DeleteTour(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, tours.ErrNotFound):
			respondNotFound(c, "Tour")
		case errors.Is(err, tours.ErrHasEntries):
			respondBadRequest(c, "This tour has one or more linked entries and cannot be deleted")
		default:
			respondInternalError(c, err, "delete tour")
		}
		return
	}
	respondSuccess(c, "The tour is deleted")
}

// ShareTour handles POST /api/tours/:id/share. Making a tour public mints
// a fresh share code; making it private clears the code.
func (controller *ToursController) ShareTour(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsPublic == nil {
		respondBadRequest(c, "`isPublic` must be true or false")
		return
	}

	link, err := controller.store.SetShareLink(c.Param("id"), *req.IsPublic)
	if err != nil {
		if errors.Is(err, tours.ErrNotFound) {
			respondNotFound(c, "Tour")
			return
		}
		respondInternalError(c, err, "share tour")
		return
	}

	verb := "unshared"
	if *req.IsPublic {
		verb = "shared"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Tour %s successfully", verb),
		"link":    link,
	})
}

// GetSharedTour handles GET /api/tours/shared/:code. Unknown codes,
// private links and deleted tours all answer 404.
func (controller *ToursController) GetSharedTour(c *gin.Context) {
	tour, err := controller.store.GetTourByShareCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, tours.ErrLinkNotFound) || errors.Is(err, tours.ErrNotFound) {
			respondNotFound(c, "Tour")
			return
		}
		respondInternalError(c, err, "get shared tour")
		return
	}
	respondOK(c, tour)
}
