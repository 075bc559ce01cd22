package domain

// InvestmentMode selects between solving for the future or the present value.
type InvestmentMode string

const (
	InvestmentModeFutureValue  InvestmentMode = "future_value"
	InvestmentModePresentValue InvestmentMode = "present_value"
)

// ContributionPeriod is how often the regular contribution is paid.
type ContributionPeriod string

const (
	ContributionMonthly ContributionPeriod = "monthly"
	ContributionYearly  ContributionPeriod = "yearly"
)

// PeriodUnit is the unit of the investment horizon.
type PeriodUnit string

const (
	PeriodUnitYears  PeriodUnit = "years"
	PeriodUnitMonths PeriodUnit = "months"
)

// RateUnit is the unit of the expected rate of return.
type RateUnit string

const (
	RateUnitAnnual  RateUnit = "annual"
	RateUnitMonthly RateUnit = "monthly"
)

// Compounding is the interest compounding frequency.
type Compounding string

const (
	CompoundingMonthly    Compounding = "monthly"
	CompoundingQuarterly  Compounding = "quarterly"
	CompoundingSemiannual Compounding = "semiannual"
	CompoundingAnnual     Compounding = "annual"
)

// PeriodsPerYear returns how many times interest compounds per year.
func (c Compounding) PeriodsPerYear() int {
	switch c {
	case CompoundingQuarterly:
		return 4
	case CompoundingSemiannual:
		return 2
	case CompoundingAnnual:
		return 1
	default:
		return 12
	}
}

// ScheduleInterval controls which months of the growth schedule are reported.
type ScheduleInterval string

const (
	ScheduleYearly    ScheduleInterval = "yearly"
	ScheduleQuarterly ScheduleInterval = "quarterly"
	ScheduleMonthly   ScheduleInterval = "monthly"
)

// Step returns the number of months between reported schedule rows.
func (i ScheduleInterval) Step() int {
	switch i {
	case ScheduleQuarterly:
		return 3
	case ScheduleMonthly:
		return 1
	default:
		return 12
	}
}

// Unit returns the label used for the period column of the schedule.
func (i ScheduleInterval) Unit() string {
	switch i {
	case ScheduleQuarterly:
		return "quarter"
	case ScheduleMonthly:
		return "month"
	default:
		return "year"
	}
}

// InvestmentInput holds the parameters of an investment calculation.
// InitialInvestment is used in future value mode, TargetAmount in present value mode.
// Amounts are capped at 1e15 so every result stays finite.
type InvestmentInput struct {
	Mode               InvestmentMode     `json:"mode" bson:"mode" validate:"required,oneof=future_value present_value"`
	InitialInvestment  float64            `json:"initial_investment" bson:"initial_investment" validate:"min=0,max=1e15"`
	TargetAmount       float64            `json:"target_amount" bson:"target_amount" validate:"min=0,max=1e15"`
	Contribution       float64            `json:"contribution" bson:"contribution" validate:"min=0,max=1e15"`
	ContributionPeriod ContributionPeriod `json:"contribution_period" bson:"contribution_period" validate:"oneof=monthly yearly"`
	Period             int                `json:"period" bson:"period"`
	PeriodUnit         PeriodUnit         `json:"period_unit" bson:"period_unit" validate:"oneof=years months"`
	Rate               float64            `json:"rate" bson:"rate"`
	RateUnit           RateUnit           `json:"rate_unit" bson:"rate_unit" validate:"oneof=annual monthly"`
	Compounding        Compounding        `json:"compounding" bson:"compounding" validate:"oneof=monthly quarterly semiannual annual"`
	ScheduleInterval   ScheduleInterval   `json:"schedule_interval" bson:"schedule_interval" validate:"oneof=yearly quarterly monthly"`
}

// InvestmentScenario is an alternative way of reaching the same target amount.
type InvestmentScenario struct {
	Name                string  `json:"name" bson:"name"`
	InitialInvestment   float64 `json:"initial_investment" bson:"initial_investment"`
	MonthlyContribution float64 `json:"monthly_contribution" bson:"monthly_contribution"`
	AnnualRatePercent   float64 `json:"annual_rate_percent" bson:"annual_rate_percent"`
}

// ScheduleRow is the state of the investment at the end of a month.
type ScheduleRow struct {
	Month     int     `json:"month" bson:"month"`
	Period    int     `json:"period" bson:"period"`
	Unit      string  `json:"unit" bson:"unit"`
	Principal float64 `json:"principal" bson:"principal"`
	Gain      float64 `json:"gain" bson:"gain"`
	Balance   float64 `json:"balance" bson:"balance"`
}

// InvestmentResult is the outcome of an investment calculation.
//
// In future value mode PresentValue echoes the initial investment and TotalInvested includes it.
// In present value mode FutureValue echoes the target and TotalInvested is the total required.
type InvestmentResult struct {
	TotalMonths          int                  `json:"total_months" bson:"total_months"`
	AnnualRatePercent    float64              `json:"annual_rate_percent" bson:"annual_rate_percent"`
	EffectiveMonthlyRate float64              `json:"effective_monthly_rate" bson:"effective_monthly_rate"`
	MonthlyContribution  float64              `json:"monthly_contribution" bson:"monthly_contribution"`
	FutureValue          float64              `json:"future_value" bson:"future_value"`
	PresentValue         float64              `json:"present_value" bson:"present_value"`
	TotalContributions   float64              `json:"total_contributions" bson:"total_contributions"`
	TotalInvested        float64              `json:"total_invested" bson:"total_invested"`
	Gain                 float64              `json:"gain" bson:"gain"`
	GainPercent          float64              `json:"gain_percent" bson:"gain_percent"`
	LumpSumGrowth        float64              `json:"lump_sum_growth" bson:"lump_sum_growth"`
	ContributionGrowth   float64              `json:"contribution_growth" bson:"contribution_growth"`
	Scenarios            []InvestmentScenario `json:"scenarios,omitempty" bson:"scenarios,omitempty"`
	Schedule             []ScheduleRow        `json:"schedule" bson:"schedule"`
}

// InvestmentValuation pairs an investment input with its result.
type InvestmentValuation struct {
	Input  InvestmentInput  `json:"input" bson:"input"`
	Result InvestmentResult `json:"result" bson:"result"`
}
