package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mtlprog/goodwill/internal/domain"
	"github.com/mtlprog/goodwill/internal/handler/dto"
	"github.com/mtlprog/goodwill/internal/service"
)

// handleCreateInvestment computes and stores an investment valuation.
// @Summary Calculate an investment
// @Description Computes a future value, or the present value needed to reach a target, and stores the result.
// @Tags valuations
// @Accept json
// @Produce json
// @Param request body dto.CreateInvestmentRequest true "Investment parameters"
// @Success 201 {object} dto.ValuationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/valuations/investment [post]
func (h *Handler) handleCreateInvestment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	valuation, err := h.valuationService.CreateInvestment(r.Context(), req.Title, req.InvestmentInput)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToValuationResponse(valuation))
}

// handleCreateInsurance computes and stores an insurance needs valuation.
// @Summary Calculate insurance needs
// @Description Estimates life, disability and critical illness coverage needs and compares them with current coverage.
// @Tags valuations
// @Accept json
// @Produce json
// @Param request body dto.CreateInsuranceRequest true "Household profile"
// @Success 201 {object} dto.ValuationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/valuations/insurance [post]
func (h *Handler) handleCreateInsurance(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInsuranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	valuation, err := h.valuationService.CreateInsurance(r.Context(), req.Title, req.InsuranceInput)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToValuationResponse(valuation))
}

// handleGetValuation returns a stored valuation.
// @Summary Get a valuation
// @Tags valuations
// @Produce json
// @Param id path string true "Valuation ID"
// @Success 200 {object} dto.ValuationResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/valuations/{id} [get]
func (h *Handler) handleGetValuation(w http.ResponseWriter, r *http.Request) {
	id, ok := extractValuationID(w, r)
	if !ok {
		return
	}

	valuation, err := h.valuationService.Get(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToValuationResponse(valuation))
}

// handleDeleteValuation removes a stored valuation.
// @Summary Delete a valuation
// @Tags valuations
// @Param id path string true "Valuation ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/valuations/{id} [delete]
func (h *Handler) handleDeleteValuation(w http.ResponseWriter, r *http.Request) {
	id, ok := extractValuationID(w, r)
	if !ok {
		return
	}

	if err := h.valuationService.Delete(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListValuations lists stored valuations, newest first.
// @Summary List valuations
// @Tags valuations
// @Produce json
// @Param kind query string false "Filter by kind (investment, insurance)"
// @Param limit query int false "Page size (1-100, default 20)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.ValuationsListResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/valuations [get]
func (h *Handler) handleListValuations(w http.ResponseWriter, r *http.Request) {
	filters := parseListFilters(r)

	filter := service.NormalizeFilter(domain.ValuationFilter{
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
	if filters.Kind != nil {
		kind := domain.ValuationKind(*filters.Kind)
		filter.Kind = &kind
	}

	valuations, total, err := h.valuationService.List(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToValuationsListResponse(valuations, total, filter.Limit, filter.Offset))
}

// parseListFilters reads the list query. Malformed numbers fall back to the defaults.
func parseListFilters(r *http.Request) dto.ListValuationsFilters {
	query := r.URL.Query()
	var filters dto.ListValuationsFilters

	if kind := query.Get("kind"); kind != "" {
		filters.Kind = &kind
	}

	if limitParam := query.Get("limit"); limitParam != "" {
		if n, err := strconv.Atoi(limitParam); err == nil && n > 0 {
			filters.Limit = n
		}
	}

	if offsetParam := query.Get("offset"); offsetParam != "" {
		if n, err := strconv.Atoi(offsetParam); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	return filters
}
