package domain

// CoverageCategory is one kind of insurance protection.
type CoverageCategory string

const (
	CoverageLife            CoverageCategory = "life"
	CoverageDisability      CoverageCategory = "disability"
	CoverageCriticalIllness CoverageCategory = "critical_illness"
)

// SpouseInfo describes the policyholder's spouse.
type SpouseInfo struct {
	Age           int `json:"age" bson:"age" validate:"min=20,max=80"`
	RetirementAge int `json:"retirement_age" bson:"retirement_age" validate:"gtefield=Age,max=90"`
}

// AssetHoldings lists the household assets by class.
// Like every amount in the insurance input, each class is capped at 1e15.
type AssetHoldings struct {
	Cash       float64 `json:"cash" bson:"cash" validate:"min=0,max=1e15"`
	Stocks     float64 `json:"stocks" bson:"stocks" validate:"min=0,max=1e15"`
	Bonds      float64 `json:"bonds" bson:"bonds" validate:"min=0,max=1e15"`
	RealEstate float64 `json:"real_estate" bson:"real_estate" validate:"min=0,max=1e15"`
	Retirement float64 `json:"retirement" bson:"retirement" validate:"min=0,max=1e15"`
	Other      float64 `json:"other" bson:"other" validate:"min=0,max=1e15"`
}

// Total returns the sum of all asset classes.
func (a AssetHoldings) Total() float64 {
	return a.Cash + a.Stocks + a.Bonds + a.RealEstate + a.Retirement + a.Other
}

// Liquid returns the assets available at short notice.
// Stocks count at 70% and bonds at 90% of their value.
func (a AssetHoldings) Liquid() float64 {
	return a.Cash + a.Stocks*0.7 + a.Bonds*0.9
}

// CurrentCoverage is the insurance the household already holds.
type CurrentCoverage struct {
	Life              float64 `json:"life" bson:"life" validate:"min=0,max=1e15"`
	DisabilityMonthly float64 `json:"disability_monthly" bson:"disability_monthly" validate:"min=0,max=1e15"`
	CriticalIllness   float64 `json:"critical_illness" bson:"critical_illness" validate:"min=0,max=1e15"`
	MonthlyPremium    float64 `json:"monthly_premium" bson:"monthly_premium" validate:"min=0,max=1e15"`
}

// InsuranceInput holds the household profile for a coverage needs calculation.
type InsuranceInput struct {
	Age             int             `json:"age" bson:"age" validate:"min=20,max=80"`
	AnnualIncome    float64         `json:"annual_income" bson:"annual_income" validate:"min=0,max=1e15"`
	MonthlyExpenses float64         `json:"monthly_expenses" bson:"monthly_expenses" validate:"gt=0,max=1e15"`
	Debt            float64         `json:"debt" bson:"debt" validate:"min=0,max=1e15"`
	ChildrenAges    []int           `json:"children_ages" bson:"children_ages" validate:"max=10,dive,min=0,max=30"`
	Spouse          *SpouseInfo     `json:"spouse,omitempty" bson:"spouse,omitempty"`
	Assets          AssetHoldings   `json:"assets" bson:"assets"`
	Coverage        CurrentCoverage `json:"coverage" bson:"coverage"`
}

// CoverageLine compares the need for one category with what is held.
// A positive Gap means the household is under-insured.
type CoverageLine struct {
	Category   CoverageCategory `json:"category" bson:"category"`
	Need       float64          `json:"need" bson:"need"`
	Current    float64          `json:"current" bson:"current"`
	Gap        float64          `json:"gap" bson:"gap"`
	GapPercent float64          `json:"gap_percent" bson:"gap_percent"`
}

// Recommendation is one suggested follow-up.
type Recommendation struct {
	Code     string           `json:"code" bson:"code"`
	Category CoverageCategory `json:"category,omitempty" bson:"category,omitempty"`
	Amount   float64          `json:"amount,omitempty" bson:"amount,omitempty"`
	Message  string           `json:"message" bson:"message"`
}

// InsuranceResult is the outcome of a coverage needs calculation.
type InsuranceResult struct {
	TotalAssets              float64          `json:"total_assets" bson:"total_assets"`
	LiquidAssets             float64          `json:"liquid_assets" bson:"liquid_assets"`
	AvailableLiquidAssets    float64          `json:"available_liquid_assets" bson:"available_liquid_assets"`
	EmergencyFund            float64          `json:"emergency_fund" bson:"emergency_fund"`
	IncomeReplacement        float64          `json:"income_replacement" bson:"income_replacement"`
	EducationCosts           float64          `json:"education_costs" bson:"education_costs"`
	Coverage                 []CoverageLine   `json:"coverage" bson:"coverage"`
	TotalNeed                float64          `json:"total_need" bson:"total_need"`
	TotalCurrent             float64          `json:"total_current" bson:"total_current"`
	TotalGap                 float64          `json:"total_gap" bson:"total_gap"`
	TotalGapPercent          float64          `json:"total_gap_percent" bson:"total_gap_percent"`
	DebtRatioPercent         float64          `json:"debt_ratio_percent" bson:"debt_ratio_percent"`
	LiquidityRatioPercent    float64          `json:"liquidity_ratio_percent" bson:"liquidity_ratio_percent"`
	EmergencyMonths          float64          `json:"emergency_months" bson:"emergency_months"`
	EmergencyFundSufficient  bool             `json:"emergency_fund_sufficient" bson:"emergency_fund_sufficient"`
	PremiumBurdenPercent     float64          `json:"premium_burden_percent" bson:"premium_burden_percent"`
	PremiumBurdenAppropriate bool             `json:"premium_burden_appropriate" bson:"premium_burden_appropriate"`
	Recommendations          []Recommendation `json:"recommendations" bson:"recommendations"`
}

// InsuranceValuation pairs an insurance input with its result.
type InsuranceValuation struct {
	Input  InsuranceInput  `json:"input" bson:"input"`
	Result InsuranceResult `json:"result" bson:"result"`
}
