package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tannerhall/floorman/internal/api/handler"
	apimiddleware "github.com/tannerhall/floorman/internal/api/middleware"
	"github.com/tannerhall/floorman/internal/middleware"
	"github.com/tannerhall/floorman/internal/services/directory"
	"github.com/tannerhall/floorman/internal/services/registration"
	"github.com/tannerhall/floorman/internal/services/seating"
	"github.com/tannerhall/floorman/internal/services/tables"
	"github.com/tannerhall/floorman/internal/storage"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	Storage            storage.Storage
	DirectoryService   *directory.Service
	RegistrationEngine *registration.Engine
	SeatingEngine      *seating.Engine
	TablesPolicy       *tables.Policy
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.DirectoryService, cfg.RegistrationEngine, cfg.SeatingEngine)
	registrationHandler := handler.NewRegistrationHandler(cfg.RegistrationEngine, cfg.SeatingEngine)
	seatingHandler := handler.NewSeatingHandler(cfg.SeatingEngine)
	tablesHandler := handler.NewTablesHandler(cfg.TablesPolicy)
	tournamentHandler := handler.NewTournamentHandler(cfg.Storage)

	// Create middleware
	terminalMiddleware := apimiddleware.Terminal()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	events := api.PathPrefix("/events/{event}").Subrouter()

	// Player directory routes
	events.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	events.HandleFunc("/players", playerHandler.Replace).Methods(http.MethodPut)
	events.HandleFunc("/players/{account}", playerHandler.Get).Methods(http.MethodGet)

	// Registration routes
	events.HandleFunc("/search", registrationHandler.Search).Methods(http.MethodPost)
	events.HandleFunc("/registrations", registrationHandler.Ledger).Methods(http.MethodGet)

	// Routes that open a seating session need to know which terminal is
	// asking
	events.Handle("/players",
		terminalMiddleware(http.HandlerFunc(playerHandler.Create))).Methods(http.MethodPost)
	events.Handle("/registrations",
		terminalMiddleware(http.HandlerFunc(registrationHandler.Submit))).Methods(http.MethodPost)

	// Seating routes (all scoped to the calling terminal)
	seatingRoutes := events.PathPrefix("/seating").Subrouter()
	seatingRoutes.Use(terminalMiddleware)
	seatingRoutes.HandleFunc("", seatingHandler.Pending).Methods(http.MethodGet)
	seatingRoutes.HandleFunc("/available", seatingHandler.Available).Methods(http.MethodGet)
	seatingRoutes.HandleFunc("/random", seatingHandler.Random).Methods(http.MethodPost)
	seatingRoutes.HandleFunc("/select", seatingHandler.Select).Methods(http.MethodPost)
	seatingRoutes.HandleFunc("/conflict", seatingHandler.Conflict).Methods(http.MethodPost)
	seatingRoutes.HandleFunc("/confirm", seatingHandler.Confirm).Methods(http.MethodPost)
	seatingRoutes.HandleFunc("/abandon", seatingHandler.Abandon).Methods(http.MethodPost)

	// Table availability routes
	events.HandleFunc("/tables", tablesHandler.Status).Methods(http.MethodGet)
	events.HandleFunc("/tables/toggle", tablesHandler.Toggle).Methods(http.MethodPost)

	// Tournament config routes
	events.HandleFunc("/tournament", tournamentHandler.Get).Methods(http.MethodGet)
	events.HandleFunc("/tournament", tournamentHandler.Save).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
