package http

import (
	"github.com/spndy/spndy-api/internal/auth"
	"github.com/spndy/spndy-api/internal/database"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router. This replaces a long parameter list in
// NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database

	// Authentication
	AuthController *auth.Controller
	AuthMiddleware *auth.Middleware

	// Stores
	CategoryStore CategoryStore
	ExpenseStore  ExpenseStore
	LedgerStore   LedgerStore
	TourStore     TourStore
	EntryStore    EntryStore
	ReportStore   ReportStore

	// CORS
	AllowedOrigins []string

	// Application info
	Version string
}
