package service

import (
	"math"

	"github.com/mtlprog/goodwill/internal/domain"
)

const (
	retirementAge           = 65
	maxIncomeReplacementYrs = 20
	incomeReplacementRatio  = 0.7
	educationAgeLimit       = 19
	educationCostPerChild   = 100_000_000
	emergencyFundMonths     = 6
	emergencyFundYield      = 0.03
	disabilityIncomeRatio   = 0.6
	criticalTreatmentCost   = 50_000_000
	criticalIncomeLossYears = 3
	criticalLiquidShare     = 0.5
	maxPremiumBurdenPercent = 15.0
	minEmergencyFundMonths  = 6.0
)

// Recommendation codes.
const (
	RecLifeCoverageGap       = "LIFE_COVERAGE_GAP"
	RecLifeCoverDebt         = "LIFE_COVER_DEBT"
	RecLifeCoverEducation    = "LIFE_COVER_EDUCATION"
	RecDisabilityCoverageGap = "DISABILITY_COVERAGE_GAP"
	RecCriticalIllnessGap    = "CRITICAL_ILLNESS_COVERAGE_GAP"
	RecPremiumReview         = "PREMIUM_REVIEW"
	RecCoverageSufficient    = "COVERAGE_SUFFICIENT"
	RecEmergencyFundLow      = "EMERGENCY_FUND_LOW"
	RecPremiumBurdenHigh     = "PREMIUM_BURDEN_HIGH"
)

// CalculateInsurance estimates the household's coverage needs and compares
// them with the coverage already held.
func CalculateInsurance(in domain.InsuranceInput) domain.InsuranceResult {
	totalAssets := in.Assets.Total()
	liquid := in.Assets.Liquid()

	years := min(max(retirementAge-in.Age, 0), maxIncomeReplacementYrs)
	incomeReplacement := in.AnnualIncome * incomeReplacementRatio * float64(years)

	var education float64
	for _, age := range in.ChildrenAges {
		if age < educationAgeLimit {
			education += educationCostPerChild
		}
	}

	emergencyFund := in.MonthlyExpenses * emergencyFundMonths
	available := math.Max(0, liquid-emergencyFund)

	lifeNeed := math.Max(0, incomeReplacement+in.Debt+education-available)
	disabilityNeed := math.Max(0, in.AnnualIncome*disabilityIncomeRatio-emergencyFund*emergencyFundYield/12) * 12
	criticalNeed := math.Max(0, criticalTreatmentCost+in.AnnualIncome*criticalIncomeLossYears-available*criticalLiquidShare)

	lines := []domain.CoverageLine{
		coverageLine(domain.CoverageLife, lifeNeed, in.Coverage.Life),
		coverageLine(domain.CoverageDisability, disabilityNeed, in.Coverage.DisabilityMonthly*12),
		coverageLine(domain.CoverageCriticalIllness, criticalNeed, in.Coverage.CriticalIllness),
	}

	result := domain.InsuranceResult{
		TotalAssets:           totalAssets,
		LiquidAssets:          liquid,
		AvailableLiquidAssets: available,
		EmergencyFund:         emergencyFund,
		IncomeReplacement:     incomeReplacement,
		EducationCosts:        education,
		Coverage:              lines,
	}
	for _, line := range lines {
		result.TotalNeed += line.Need
		result.TotalCurrent += line.Current
	}
	result.TotalGap = result.TotalNeed - result.TotalCurrent
	result.TotalGapPercent = percentOf(result.TotalGap, result.TotalNeed)

	result.DebtRatioPercent = percentOf(in.Debt, totalAssets)
	result.LiquidityRatioPercent = percentOf(liquid, totalAssets)
	if in.MonthlyExpenses > 0 {
		result.EmergencyMonths = liquid / in.MonthlyExpenses
	}
	result.EmergencyFundSufficient = result.EmergencyMonths >= minEmergencyFundMonths
	result.PremiumBurdenPercent = percentOf(in.Coverage.MonthlyPremium, in.MonthlyExpenses)
	result.PremiumBurdenAppropriate = result.PremiumBurdenPercent <= maxPremiumBurdenPercent

	result.Recommendations = recommend(in, result)

	return result
}

func coverageLine(category domain.CoverageCategory, need, current float64) domain.CoverageLine {
	gap := need - current
	return domain.CoverageLine{
		Category:   category,
		Need:       need,
		Current:    current,
		Gap:        gap,
		GapPercent: percentOf(gap, need),
	}
}

func recommend(in domain.InsuranceInput, result domain.InsuranceResult) []domain.Recommendation {
	recs := make([]domain.Recommendation, 0)
	underInsured := false

	for _, line := range result.Coverage {
		if line.Gap <= 0 {
			continue
		}
		underInsured = true

		switch line.Category {
		case domain.CoverageLife:
			recs = append(recs, domain.Recommendation{
				Code:     RecLifeCoverageGap,
				Category: line.Category,
				Amount:   line.Gap,
				Message:  "Strengthen protection with term life insurance, especially for the main earner.",
			})
			if in.Debt > 0 {
				recs = append(recs, domain.Recommendation{
					Code:     RecLifeCoverDebt,
					Category: line.Category,
					Amount:   in.Debt,
					Message:  "Life cover should at least repay the outstanding debt.",
				})
			}
			if result.EducationCosts > 0 {
				recs = append(recs, domain.Recommendation{
					Code:     RecLifeCoverEducation,
					Category: line.Category,
					Amount:   result.EducationCosts,
					Message:  "Expected education costs for children still in school.",
				})
			}
		case domain.CoverageDisability:
			recs = append(recs, domain.Recommendation{
				Code:     RecDisabilityCoverageGap,
				Category: line.Category,
				Amount:   in.MonthlyExpenses,
				Message:  "Income protection should cover at least the monthly living expenses.",
			})
		case domain.CoverageCriticalIllness:
			recs = append(recs, domain.Recommendation{
				Code:     RecCriticalIllnessGap,
				Category: line.Category,
				Amount:   line.Gap,
				Message:  "Cover treatment costs and lost income during recovery from a critical illness.",
			})
		}
	}

	if underInsured {
		recs = append(recs, domain.Recommendation{
			Code:    RecPremiumReview,
			Message: "Review policies with an adviser to keep coverage while lowering premiums.",
		})
	} else {
		recs = append(recs, domain.Recommendation{
			Code:    RecCoverageSufficient,
			Message: "Coverage is sufficient in every category; review it when circumstances change.",
		})
	}

	if !result.EmergencyFundSufficient {
		recs = append(recs, domain.Recommendation{
			Code:    RecEmergencyFundLow,
			Amount:  result.EmergencyFund,
			Message: "Keep at least six months of living expenses in liquid assets.",
		})
	}
	if !result.PremiumBurdenAppropriate {
		recs = append(recs, domain.Recommendation{
			Code:    RecPremiumBurdenHigh,
			Message: "Monthly premiums exceed 15% of living expenses.",
		})
	}

	return recs
}
