package domain

import "time"

// ValuationKind identifies which calculator produced a valuation.
type ValuationKind string

const (
	ValuationKindInvestment ValuationKind = "investment"
	ValuationKindInsurance  ValuationKind = "insurance"
)

// IsValid checks if the kind is one of the allowed values.
func (k ValuationKind) IsValid() bool {
	switch k {
	case ValuationKindInvestment, ValuationKindInsurance:
		return true
	default:
		return false
	}
}

// Valuation is one persisted calculator run: the input it was given and the result computed from it.
// Exactly one of Investment and Insurance is set, matching Kind.
type Valuation struct {
	ID         string               `json:"id" bson:"_id"`
	Kind       ValuationKind        `json:"kind" bson:"kind"`
	Title      string               `json:"title,omitempty" bson:"title,omitempty"`
	Investment *InvestmentValuation `json:"investment,omitempty" bson:"investment,omitempty"`
	Insurance  *InsuranceValuation  `json:"insurance,omitempty" bson:"insurance,omitempty"`
	CreatedAt  time.Time            `json:"created_at" bson:"created_at"`
}

// ValuationFilter narrows a valuation listing.
type ValuationFilter struct {
	Kind   *ValuationKind
	Limit  int
	Offset int
}
