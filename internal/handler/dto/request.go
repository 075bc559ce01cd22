package dto

import "github.com/mtlprog/goodwill/internal/domain"

// CreateInvestmentRequest represents the request body for POST /valuations/investment.
type CreateInvestmentRequest struct {
	Title string `json:"title,omitempty"`
	domain.InvestmentInput
}

// CreateInsuranceRequest represents the request body for POST /valuations/insurance.
type CreateInsuranceRequest struct {
	Title string `json:"title,omitempty"`
	domain.InsuranceInput
}

// ListValuationsFilters represents query parameters for GET /valuations.
type ListValuationsFilters struct {
	Kind   *string // ?kind=investment
	Limit  int     // ?limit=20
	Offset int     // ?offset=0
}
