package dto

import (
	"time"

	"github.com/mtlprog/goodwill/internal/domain"
)

// ValuationResponse represents a stored valuation with its input and result.
type ValuationResponse struct {
	ID         string                      `json:"id"`
	Kind       string                      `json:"kind"`
	Title      string                      `json:"title"`
	Investment *domain.InvestmentValuation `json:"investment,omitempty"`
	Insurance  *domain.InsuranceValuation  `json:"insurance,omitempty"`
	CreatedAt  time.Time                   `json:"created_at"`
}

// ValuationListItem represents a valuation in the list view (headline figures only).
type ValuationListItem struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	Title        string    `json:"title"`
	FutureValue  *float64  `json:"future_value,omitempty"`
	PresentValue *float64  `json:"present_value,omitempty"`
	TotalNeed    *float64  `json:"total_need,omitempty"`
	TotalGap     *float64  `json:"total_gap,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValuationsListResponse represents the response for GET /valuations.
type ValuationsListResponse struct {
	Valuations []ValuationListItem `json:"valuations"`
	Total      int64               `json:"total"`
	Limit      int                 `json:"limit"`
	Offset     int                 `json:"offset"`
}

// HealthResponse represents the body of the health and readiness checks.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

// ToValuationResponse converts a domain valuation to its response form.
func ToValuationResponse(v *domain.Valuation) ValuationResponse {
	return ValuationResponse{
		ID:         v.ID,
		Kind:       string(v.Kind),
		Title:      v.Title,
		Investment: v.Investment,
		Insurance:  v.Insurance,
		CreatedAt:  v.CreatedAt,
	}
}

// ToValuationListItem converts a domain valuation to a list item.
func ToValuationListItem(v *domain.Valuation) ValuationListItem {
	item := ValuationListItem{
		ID:        v.ID,
		Kind:      string(v.Kind),
		Title:     v.Title,
		CreatedAt: v.CreatedAt,
	}

	if v.Investment != nil {
		fv, pv := v.Investment.Result.FutureValue, v.Investment.Result.PresentValue
		item.FutureValue = &fv
		item.PresentValue = &pv
	}
	if v.Insurance != nil {
		need, gap := v.Insurance.Result.TotalNeed, v.Insurance.Result.TotalGap
		item.TotalNeed = &need
		item.TotalGap = &gap
	}

	return item
}

// ToValuationsListResponse builds the list response, always with a non-nil slice.
func ToValuationsListResponse(valuations []*domain.Valuation, total int64, limit, offset int) ValuationsListResponse {
	items := make([]ValuationListItem, 0, len(valuations))
	for _, v := range valuations {
		items = append(items, ToValuationListItem(v))
	}

	return ValuationsListResponse{
		Valuations: items,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}
}
