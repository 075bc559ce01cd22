package service_test

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/mtlprog/goodwill/internal/domain"
	"github.com/mtlprog/goodwill/internal/service"
	"github.com/stretchr/testify/suite"
)

// memoryStore is an in-memory ValuationStore.
type memoryStore struct {
	mu         sync.Mutex
	valuations map[string]*domain.Valuation
	lastFilter domain.ValuationFilter
	createErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{valuations: make(map[string]*domain.Valuation)}
}

func (m *memoryStore) Create(_ context.Context, v *domain.Valuation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.valuations[v.ID] = v
	return nil
}

func (m *memoryStore) GetByID(_ context.Context, id string) (*domain.Valuation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.valuations[id]
	if !ok {
		return nil, domain.ErrValuationNotFound
	}
	return v, nil
}

func (m *memoryStore) List(_ context.Context, filter domain.ValuationFilter) ([]*domain.Valuation, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter

	all := make([]*domain.Valuation, 0, len(m.valuations))
	for _, v := range m.valuations {
		if filter.Kind == nil || v.Kind == *filter.Kind {
			all = append(all, v)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := min(filter.Offset, len(all))
	end := min(start+filter.Limit, len(all))
	return all[start:end], total, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.valuations[id]; !ok {
		return domain.ErrValuationNotFound
	}
	delete(m.valuations, id)
	return nil
}

// ValuationServiceTestSuite is the test suite for ValuationService.
type ValuationServiceTestSuite struct {
	suite.Suite
	store   *memoryStore
	service *service.ValuationService
}

// SetupTest runs before each test.
func (s *ValuationServiceTestSuite) SetupTest() {
	s.store = newMemoryStore()
	s.service = service.NewValuationService(s.store)
}

func validInsuranceInput() domain.InsuranceInput {
	return domain.InsuranceInput{
		Age:             40,
		AnnualIncome:    60_000_000,
		MonthlyExpenses: 3_000_000,
		Assets:          domain.AssetHoldings{Cash: 30_000_000},
	}
}

func (s *ValuationServiceTestSuite) TestCreateInvestment_Success() {
	ctx := context.Background()

	v, err := s.service.CreateInvestment(ctx, "  Retirement  ", domain.InvestmentInput{
		Mode:              domain.InvestmentModeFutureValue,
		InitialInvestment: 1000,
		Contribution:      100,
		Period:            1,
	})
	s.Require().NoError(err)

	s.NotEmpty(v.ID)
	s.Equal(domain.ValuationKindInvestment, v.Kind)
	s.Equal("Retirement", v.Title)
	s.False(v.CreatedAt.IsZero())
	s.Nil(v.Insurance)
	s.Require().NotNil(v.Investment)
	s.Equal(domain.PeriodUnitYears, v.Investment.Input.PeriodUnit)
	s.InDelta(2200, v.Investment.Result.FutureValue, tolerance)

	stored, err := s.service.Get(ctx, v.ID)
	s.Require().NoError(err)
	s.Equal(v, stored)
}

func (s *ValuationServiceTestSuite) TestCreateInvestment_ValidationError() {
	_, err := s.service.CreateInvestment(context.Background(), "", domain.InvestmentInput{
		Mode:         "sideways",
		Contribution: -5,
	})

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "mode must satisfy oneof")
	s.Contains(err.Error(), "contribution must satisfy min=0")
	s.Empty(s.store.valuations)
}

func (s *ValuationServiceTestSuite) TestCreateInvestment_MissingMode() {
	_, err := s.service.CreateInvestment(context.Background(), "", domain.InvestmentInput{Period: 1})
	s.ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "mode must satisfy required")
}

func (s *ValuationServiceTestSuite) TestCreateInvestment_TitleTruncated() {
	v, err := s.service.CreateInvestment(context.Background(), strings.Repeat("é", 250), domain.InvestmentInput{
		Mode: domain.InvestmentModeFutureValue,
	})
	s.Require().NoError(err)
	s.Equal(strings.Repeat("é", 200), v.Title)
}

func (s *ValuationServiceTestSuite) TestCreateInsurance_Success() {
	v, err := s.service.CreateInsurance(context.Background(), "Household", validInsuranceInput())
	s.Require().NoError(err)

	s.Equal(domain.ValuationKindInsurance, v.Kind)
	s.Require().NotNil(v.Insurance)
	s.NotNil(v.Insurance.Input.ChildrenAges)
	s.Len(v.Insurance.Result.Coverage, 3)
	s.NotEmpty(v.Insurance.Result.Recommendations)
}

func (s *ValuationServiceTestSuite) TestCreateInsurance_ValidationError() {
	in := validInsuranceInput()
	in.Age = 15
	in.MonthlyExpenses = 0
	in.ChildrenAges = []int{3, 40}
	in.Spouse = &domain.SpouseInfo{Age: 50, RetirementAge: 45}

	_, err := s.service.CreateInsurance(context.Background(), "", in)

	s.Require().ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "age must satisfy min=20")
	s.Contains(err.Error(), "monthly_expenses must satisfy gt=0")
	s.Contains(err.Error(), "children_ages[1] must satisfy max=30")
	s.Contains(err.Error(), "spouse.retirement_age must satisfy gtefield=Age")
}

func (s *ValuationServiceTestSuite) TestCreate_StoreFailure() {
	s.store.createErr = domain.ErrDatabaseUnavailable

	_, err := s.service.CreateInsurance(context.Background(), "", validInsuranceInput())

	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrDatabaseUnavailable)
}

func (s *ValuationServiceTestSuite) TestList_DefaultsAndClamps() {
	ctx := context.Background()

	_, _, err := s.service.List(ctx, domain.ValuationFilter{})
	s.Require().NoError(err)
	s.Equal(service.DefaultListLimit, s.store.lastFilter.Limit)
	s.Equal(0, s.store.lastFilter.Offset)

	_, _, err = s.service.List(ctx, domain.ValuationFilter{Limit: 1000, Offset: -4})
	s.Require().NoError(err)
	s.Equal(service.MaxListLimit, s.store.lastFilter.Limit)
	s.Equal(0, s.store.lastFilter.Offset)
}

func (s *ValuationServiceTestSuite) TestList_FilterByKind() {
	ctx := context.Background()

	_, err := s.service.CreateInsurance(ctx, "", validInsuranceInput())
	s.Require().NoError(err)
	_, err = s.service.CreateInvestment(ctx, "", domain.InvestmentInput{Mode: domain.InvestmentModeFutureValue})
	s.Require().NoError(err)

	kind := domain.ValuationKindInsurance
	valuations, total, err := s.service.List(ctx, domain.ValuationFilter{Kind: &kind})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(valuations, 1)
	s.Equal(domain.ValuationKindInsurance, valuations[0].Kind)
}

func (s *ValuationServiceTestSuite) TestList_InvalidKind() {
	kind := domain.ValuationKind("mortgage")

	_, _, err := s.service.List(context.Background(), domain.ValuationFilter{Kind: &kind})

	s.ErrorIs(err, domain.ErrInvalidKind)
}

func (s *ValuationServiceTestSuite) TestDelete() {
	ctx := context.Background()

	v, err := s.service.CreateInsurance(ctx, "", validInsuranceInput())
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(ctx, v.ID))

	_, err = s.service.Get(ctx, v.ID)
	s.True(errors.Is(err, domain.ErrValuationNotFound))

	s.ErrorIs(s.service.Delete(ctx, v.ID), domain.ErrValuationNotFound)
}

func (s *ValuationServiceTestSuite) TestCreateInvestment_AmountAboveCapRejected() {
	_, err := s.service.CreateInvestment(context.Background(), "", domain.InvestmentInput{
		Mode:              domain.InvestmentModeFutureValue,
		InitialInvestment: 1.7e308,
		Rate:              30,
		Period:            50,
	})

	s.Require().ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "initial_investment must satisfy max=1e15")
	s.Empty(s.store.valuations)
}

func (s *ValuationServiceTestSuite) TestCreateInvestment_LargestAmountsStayFinite() {
	v, err := s.service.CreateInvestment(context.Background(), "", domain.InvestmentInput{
		Mode:              domain.InvestmentModeFutureValue,
		InitialInvestment: 1e15,
		Contribution:      1e15,
		Rate:              30,
		Period:            50,
	})
	s.Require().NoError(err)

	result := v.Investment.Result
	s.False(math.IsInf(result.FutureValue, 0))
	s.False(math.IsNaN(result.GainPercent))
	s.False(math.IsInf(result.Schedule[len(result.Schedule)-1].Balance, 0))
}

func (s *ValuationServiceTestSuite) TestCreateInsurance_AmountAboveCapRejected() {
	in := validInsuranceInput()
	in.Assets.Cash = math.MaxFloat64
	in.Coverage.Life = math.MaxFloat64

	_, err := s.service.CreateInsurance(context.Background(), "", in)

	s.Require().ErrorIs(err, domain.ErrValidation)
	s.Contains(err.Error(), "assets.cash must satisfy max=1e15")
	s.Empty(s.store.valuations)
}

func TestValuationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValuationServiceTestSuite))
}
