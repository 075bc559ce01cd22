package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mtlprog/goodwill/internal/domain"
	"github.com/mtlprog/goodwill/internal/metrics"
)

const (
	// DefaultListLimit is used when a listing does not specify a limit.
	DefaultListLimit = 20
	// MaxListLimit caps the page size of a listing.
	MaxListLimit = 100

	maxTitleLength = 200
)

// ValuationStore persists valuations.
type ValuationStore interface {
	Create(ctx context.Context, valuation *domain.Valuation) error
	GetByID(ctx context.Context, id string) (*domain.Valuation, error)
	List(ctx context.Context, filter domain.ValuationFilter) ([]*domain.Valuation, int64, error)
	Delete(ctx context.Context, id string) error
}

// ValuationService runs the calculators and records each run as a valuation.
type ValuationService struct {
	store     ValuationStore
	validator *Validator
	now       func() time.Time
}

// NewValuationService creates a new ValuationService.
func NewValuationService(store ValuationStore) *ValuationService {
	return &ValuationService{
		store:     store,
		validator: NewValidator(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateInvestment validates the input, computes the investment result and persists it.
func (s *ValuationService) CreateInvestment(ctx context.Context, title string, in domain.InvestmentInput) (*domain.Valuation, error) {
	in = NormalizeInvestmentInput(in)
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	result := CalculateInvestment(in)
	if !investmentFinite(result) {
		return nil, fmt.Errorf("%w: investment result is out of range", domain.ErrValidation)
	}

	valuation := s.newValuation(domain.ValuationKindInvestment, title)
	valuation.Investment = &domain.InvestmentValuation{
		Input:  in,
		Result: result,
	}

	return s.persist(ctx, valuation)
}

// CreateInsurance validates the input, computes the coverage needs and persists them.
func (s *ValuationService) CreateInsurance(ctx context.Context, title string, in domain.InsuranceInput) (*domain.Valuation, error) {
	if in.ChildrenAges == nil {
		in.ChildrenAges = []int{}
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	result := CalculateInsurance(in)
	if !insuranceFinite(result) {
		return nil, fmt.Errorf("%w: insurance result is out of range", domain.ErrValidation)
	}

	valuation := s.newValuation(domain.ValuationKindInsurance, title)
	valuation.Insurance = &domain.InsuranceValuation{
		Input:  in,
		Result: result,
	}

	return s.persist(ctx, valuation)
}

// Get returns a single valuation.
func (s *ValuationService) Get(ctx context.Context, id string) (*domain.Valuation, error) {
	return s.store.GetByID(ctx, id)
}

// List returns a page of valuations, newest first, and the total number matching the filter.
func (s *ValuationService) List(ctx context.Context, filter domain.ValuationFilter) ([]*domain.Valuation, int64, error) {
	if filter.Kind != nil && !filter.Kind.IsValid() {
		return nil, 0, fmt.Errorf("%w: %q", domain.ErrInvalidKind, *filter.Kind)
	}

	return s.store.List(ctx, NormalizeFilter(filter))
}

// NormalizeFilter applies the default page size and keeps limit and offset in range.
func NormalizeFilter(filter domain.ValuationFilter) domain.ValuationFilter {
	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	filter.Limit = min(filter.Limit, MaxListLimit)
	filter.Offset = max(filter.Offset, 0)
	return filter
}

// Delete removes a valuation.
func (s *ValuationService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("valuation deleted", "valuation_id", id)
	return nil
}

func (s *ValuationService) newValuation(kind domain.ValuationKind, title string) *domain.Valuation {
	title = strings.TrimSpace(title)
	if runes := []rune(title); len(runes) > maxTitleLength {
		title = string(runes[:maxTitleLength])
	}

	return &domain.Valuation{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     title,
		CreatedAt: s.now().Truncate(time.Millisecond),
	}
}

func (s *ValuationService) persist(ctx context.Context, valuation *domain.Valuation) (*domain.Valuation, error) {
	if err := s.store.Create(ctx, valuation); err != nil {
		return nil, fmt.Errorf("create valuation: %w", err)
	}

	metrics.ValuationsCreated.WithLabelValues(string(valuation.Kind)).Inc()
	slog.Info("valuation created", "valuation_id", valuation.ID, "kind", valuation.Kind)

	return valuation, nil
}

// finite reports whether none of vs is NaN or infinite. Such values cannot be
// encoded as JSON and must never be stored.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func investmentFinite(r domain.InvestmentResult) bool {
	if !finite(r.AnnualRatePercent, r.EffectiveMonthlyRate, r.MonthlyContribution, r.FutureValue,
		r.PresentValue, r.TotalContributions, r.TotalInvested, r.Gain, r.GainPercent,
		r.LumpSumGrowth, r.ContributionGrowth) {
		return false
	}
	for _, sc := range r.Scenarios {
		if !finite(sc.InitialInvestment, sc.MonthlyContribution, sc.AnnualRatePercent) {
			return false
		}
	}
	for _, row := range r.Schedule {
		if !finite(row.Principal, row.Gain, row.Balance) {
			return false
		}
	}
	return true
}

func insuranceFinite(r domain.InsuranceResult) bool {
	if !finite(r.TotalAssets, r.LiquidAssets, r.AvailableLiquidAssets, r.EmergencyFund,
		r.IncomeReplacement, r.EducationCosts, r.TotalNeed, r.TotalCurrent, r.TotalGap,
		r.TotalGapPercent, r.DebtRatioPercent, r.LiquidityRatioPercent, r.EmergencyMonths,
		r.PremiumBurdenPercent) {
		return false
	}
	for _, line := range r.Coverage {
		if !finite(line.Need, line.Current, line.Gap, line.GapPercent) {
			return false
		}
	}
	for _, rec := range r.Recommendations {
		if !finite(rec.Amount) {
			return false
		}
	}
	return true
}
