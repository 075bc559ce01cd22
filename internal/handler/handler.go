package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/mtlprog/goodwill/docs" // Import generated docs
	"github.com/mtlprog/goodwill/internal/database"
	"github.com/mtlprog/goodwill/internal/domain"
	"github.com/mtlprog/goodwill/internal/handler/dto"
	"github.com/mtlprog/goodwill/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Database is the part of the database handle the health checks need.
type Database interface {
	Status() database.Status
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	db               Database
	valuationService *service.ValuationService
}

// New creates a new Handler instance with all dependencies.
func New(db Database, valuationService *service.ValuationService) *Handler {
	return &Handler{
		db:               db,
		valuationService: valuationService,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	// Health checks
	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyz)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Route("/api/valuations", func(r chi.Router) {
		r.Get("/", h.handleListValuations)
		r.Post("/investment", h.handleCreateInvestment)
		r.Post("/insurance", h.handleCreateInsurance)
		r.Get("/{id}", h.handleGetValuation)
		r.Delete("/{id}", h.handleDeleteValuation)
	})
}

// handleHealthz reports that the process is up. It never touches the database.
// @Summary Liveness check
// @Tags ops
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /healthz [get]
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// handleReadyz returns 200 once the database is connected and answers a ping.
// @Summary Readiness check
// @Tags ops
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /readyz [get]
func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	status := h.db.Status()
	if status != database.StatusConnected {
		respondJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: string(status)})
		return
	}

	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("database health check failed", "error", err)
		respondJSON(w, http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Database: string(status)})
		return
	}

	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Database: string(status)})
}

// respondJSON writes a JSON response with the given status code.
// The body is encoded before any header is sent, so an encoding failure
// still reaches the client as a 500.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		status = http.StatusInternalServerError
		body, _ = json.Marshal(dto.NewErrorResponse("INTERNAL_ERROR", "Internal server error"))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondDomainError writes the error response mapped from a domain error.
func respondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// extractValuationID extracts and validates the valuation ID path parameter.
// Returns (id, true) if valid, ("", false) if invalid (error already sent to client).
func extractValuationID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		respondDomainError(w, domain.ErrInvalidID)
		return "", false
	}

	return id, true
}
