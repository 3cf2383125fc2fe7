package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spndy/spndy-api/internal/database/reports"
	"github.com/spndy/spndy-api/internal/entities"
)

// ReportsController serves expense aggregations. Routes run behind the
// optional auth middleware: an authenticated caller sees their own
// numbers, an anonymous one sees the household-wide totals. The
// myexpense variant sits behind required auth instead.
type ReportsController struct {
	store ReportStore
}

func NewReportsController(store ReportStore) *ReportsController {
	return &ReportsController{store: store}
}

type summaryReport struct {
	Month               int                     `json:"month,omitempty"`
	Year                int                     `json:"year"`
	TotalExpense        float64                 `json:"totalExpense"`
	CategoricalExpenses []reports.CategoryTotal `json:"categoricalExpenses"`
}

type rangeReport struct {
	DateRange           dateRange               `json:"dateRange"`
	TotalExpense        float64                 `json:"totalExpense"`
	CategoricalExpenses []reports.CategoryTotal `json:"categoricalExpenses"`
	Expenses            []entities.Expense      `json:"expenses"`
}

type dateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// monthBounds returns the first and last day of the month as ISO dates.
func monthBounds(year, month int) (string, string) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(dateLayout), last.Format(dateLayout)
}

// parseYearMonth validates the :year/:month path parameters.
func parseYearMonth(c *gin.Context) (year, month int, ok bool) {
	year, errY := strconv.Atoi(c.Param("year"))
	month, errM := strconv.Atoi(c.Param("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		respondBadRequest(c, "Invalid month or year")
		return 0, 0, false
	}
	return year, month, true
}

// parseRange validates the fromDate/toDate query parameters.
func parseRange(c *gin.Context) (from, to string, ok bool) {
	from = c.Query("fromDate")
	to = c.Query("toDate")
	if !validDate(from) || !validDate(to) {
		respondBadRequest(c, "Invalid date format. Use YYYY-MM-DD format")
		return "", "", false
	}
	if from > to {
		respondBadRequest(c, "Start date must be before end date")
		return "", "", false
	}
	return from, to, true
}

func (controller *ReportsController) summarize(c *gin.Context, userID uint, from, to string) (float64, []reports.CategoryTotal, bool) {
	total, err := controller.store.TotalBetween(userID, from, to)
	if err != nil {
		respondInternalError(c, err, "report total")
		return 0, nil, false
	}
	byCategory, err := controller.store.CategoryTotalsBetween(userID, from, to)
	if err != nil {
		respondInternalError(c, err, "report breakdown")
		return 0, nil, false
	}
	return total, byCategory, true
}

// GetMonthlyExpense handles GET /api/reports/monthly/:year/:month.
func (controller *ReportsController) GetMonthlyExpense(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	from, to := monthBounds(year, month)

	total, byCategory, ok := controller.summarize(c, GetUserID(c), from, to)
	if !ok {
		return
	}
	respondOK(c, summaryReport{
		Month:               month,
		Year:                year,
		TotalExpense:        total,
		CategoricalExpenses: byCategory,
	})
}

// GetMonthlyExpenseList handles GET /api/reports/monthly/list/:year/:month.
func (controller *ReportsController) GetMonthlyExpenseList(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	from, to := monthBounds(year, month)

	expenses, err := controller.store.ExpensesBetween(GetUserID(c), from, to)
	if err != nil {
		respondInternalError(c, err, "report list")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"month":    month,
		"year":     year,
		"expenses": expenses,
	})
}

// GetYearlyExpense handles GET /api/reports/yearly/:year.
func (controller *ReportsController) GetYearlyExpense(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		respondBadRequest(c, "Invalid year")
		return
	}
	from := fmt.Sprintf("%04d-01-01", year)
	to := fmt.Sprintf("%04d-12-31", year)

	total, byCategory, ok := controller.summarize(c, GetUserID(c), from, to)
	if !ok {
		return
	}
	respondOK(c, summaryReport{
		Year:                year,
		TotalExpense:        total,
		CategoricalExpenses: byCategory,
	})
}

// GetDateRangeExpense handles GET /api/reports/range.
func (controller *ReportsController) GetDateRangeExpense(c *gin.Context) {
	controller.rangeReport(c, GetUserID(c))
}

// GetMyDateRangeExpense handles GET /api/reports/myexpense/range. The
// required-auth middleware guarantees a non-zero user here.
func (controller *ReportsController) GetMyDateRangeExpense(c *gin.Context) {
	controller.rangeReport(c, GetUserID(c))
}

func (controller *ReportsController) rangeReport(c *gin.Context, userID uint) {
	from, to, ok := parseRange(c)
	if !ok {
		return
	}

	total, byCategory, ok := controller.summarize(c, userID, from, to)
	if !ok {
		return
	}
	expenses, err := controller.store.ExpensesBetween(userID, from, to)
	if err != nil {
		respondInternalError(c, err, "report list")
		return
	}
	respondOK(c, rangeReport{
		DateRange:           dateRange{StartDate: from, EndDate: to},
		TotalExpense:        total,
		CategoricalExpenses: byCategory,
		Expenses:            expenses,
	})
}
