package service

import (
	"math"

	"github.com/mtlprog/goodwill/internal/domain"
)

const (
	defaultPeriodYears  = 10
	defaultPeriodMonths = 120
	maxPeriodYears      = 50
	maxPeriodMonths     = 600

	maxAnnualRatePercent  = 30.0
	maxMonthlyRatePercent = 5.0
)

// Scenario names reported in present value mode.
const (
	ScenarioLumpSumOnly       = "lump_sum_only"
	ScenarioContributionsOnly = "contributions_only"
	ScenarioCurrentPlan       = "current_plan"
)

// NormalizeInvestmentInput fills unset options with their defaults and clamps
// the horizon and rate into the supported ranges.
func NormalizeInvestmentInput(in domain.InvestmentInput) domain.InvestmentInput {
	if in.ContributionPeriod == "" {
		in.ContributionPeriod = domain.ContributionMonthly
	}
	if in.PeriodUnit == "" {
		in.PeriodUnit = domain.PeriodUnitYears
	}
	if in.RateUnit == "" {
		in.RateUnit = domain.RateUnitAnnual
	}
	if in.Compounding == "" {
		in.Compounding = domain.CompoundingMonthly
	}
	if in.ScheduleInterval == "" {
		in.ScheduleInterval = domain.ScheduleYearly
	}

	if in.PeriodUnit == domain.PeriodUnitMonths {
		if in.Period == 0 {
			in.Period = defaultPeriodMonths
		}
		in.Period = clampInt(in.Period, 1, maxPeriodMonths)
	} else {
		if in.Period == 0 {
			in.Period = defaultPeriodYears
		}
		in.Period = clampInt(in.Period, 1, maxPeriodYears)
	}

	if in.RateUnit == domain.RateUnitMonthly {
		in.Rate = clampFloat(in.Rate, 0, maxMonthlyRatePercent)
	} else {
		in.Rate = clampFloat(in.Rate, 0, maxAnnualRatePercent)
	}

	return in
}

// CalculateInvestment computes a future or present value with regular contributions.
// The input is normalized first, so callers may pass it as received.
func CalculateInvestment(in domain.InvestmentInput) domain.InvestmentResult {
	in = NormalizeInvestmentInput(in)

	totalMonths := in.Period
	if in.PeriodUnit == domain.PeriodUnitYears {
		totalMonths = in.Period * 12
	}

	var annualPercent, monthlyRate float64
	if in.RateUnit == domain.RateUnitMonthly {
		monthlyRate = in.Rate / 100
		annualPercent = monthlyRate * 12 * 100
	} else {
		annualPercent = in.Rate
		monthlyRate = annualPercent / 12 / 100
	}
	rate := EffectiveMonthlyRate(annualPercent, monthlyRate, in.Compounding)

	contribution := in.Contribution
	if in.ContributionPeriod == domain.ContributionYearly {
		contribution = in.Contribution / 12
	}

	growth := math.Pow(1+rate, float64(totalMonths))
	annuity := annuityFactor(rate, totalMonths)
	contributionValue := contribution * annuity
	contributed := contribution * float64(totalMonths)

	result := domain.InvestmentResult{
		TotalMonths:          totalMonths,
		AnnualRatePercent:    annualPercent,
		EffectiveMonthlyRate: rate,
		MonthlyContribution:  contribution,
		TotalContributions:   contributed,
		ContributionGrowth:   contributionValue,
	}

	var start float64
	switch in.Mode {
	case domain.InvestmentModePresentValue:
		start = math.Max(0, (in.TargetAmount-contributionValue)/growth)

		result.FutureValue = in.TargetAmount
		result.PresentValue = start
		result.TotalInvested = start + contributed
		result.Gain = in.TargetAmount - result.TotalInvested
		result.LumpSumGrowth = start * growth
		result.Scenarios = []domain.InvestmentScenario{
			{
				Name:              ScenarioLumpSumOnly,
				InitialInvestment: in.TargetAmount / growth,
				AnnualRatePercent: annualPercent,
			},
			{
				Name:                ScenarioContributionsOnly,
				MonthlyContribution: in.TargetAmount / annuity,
				AnnualRatePercent:   annualPercent,
			},
			{
				Name:                ScenarioCurrentPlan,
				InitialInvestment:   start,
				MonthlyContribution: in.Contribution,
				AnnualRatePercent:   annualPercent,
			},
		}
	default:
		start = in.InitialInvestment

		result.FutureValue = start*growth + contributionValue
		result.PresentValue = start
		result.TotalInvested = start + contributed
		result.Gain = result.FutureValue - result.TotalInvested
		result.LumpSumGrowth = start * growth
	}
	result.GainPercent = percentOf(result.Gain, result.TotalInvested)

	result.Schedule = BuildSchedule(start, contribution, rate, totalMonths, in.ContributionPeriod, in.ScheduleInterval)

	return result
}

// EffectiveMonthlyRate converts the nominal rate into the monthly rate that
// compounds to the same annual yield. For monthly compounding it is the
// nominal monthly rate unchanged.
func EffectiveMonthlyRate(annualPercent, monthlyRate float64, compounding domain.Compounding) float64 {
	periods := compounding.PeriodsPerYear()
	if periods >= 12 {
		return monthlyRate
	}
	periodic := annualPercent / 100 / float64(periods)
	return math.Pow(1+periodic, float64(periods)/12) - 1
}

// BuildSchedule simulates the balance month by month and keeps the rows that
// fall on the requested interval. Month zero is always included.
//
// contribution is the monthly equivalent; yearly plans pay twelve of them at
// the start of each year (months 1, 13, 25, ...).
func BuildSchedule(
	start float64,
	contribution float64,
	rate float64,
	totalMonths int,
	period domain.ContributionPeriod,
	interval domain.ScheduleInterval,
) []domain.ScheduleRow {
	step := interval.Step()
	rows := make([]domain.ScheduleRow, 0, totalMonths/step+1)

	balance, invested := start, start
	for month := 0; month <= totalMonths; month++ {
		if month > 0 {
			interest := balance * rate
			switch {
			case period != domain.ContributionYearly:
				balance += interest + contribution
				invested += contribution
			case month%12 == 1:
				balance += interest + contribution*12
				invested += contribution * 12
			default:
				balance += interest
			}
		}

		if month%step == 0 {
			rows = append(rows, domain.ScheduleRow{
				Month:     month,
				Period:    month / step,
				Unit:      interval.Unit(),
				Principal: invested,
				Gain:      balance - invested,
				Balance:   balance,
			})
		}
	}

	return rows
}

// annuityFactor is the future value of one unit paid at the end of each month.
func annuityFactor(rate float64, months int) float64 {
	if rate > 0 {
		return (math.Pow(1+rate, float64(months)) - 1) / rate
	}
	return float64(months)
}

// percentOf returns part as a percentage of whole, or 0 when whole is 0.
func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
