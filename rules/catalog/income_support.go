package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/rules"
)

func init() {
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R007",
		Desc:        "Supplemental Nutrition Assistance Program (SNAP/Food Stamps) (HRA) - Food assistance program",
		Predicate:   snap,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R010",
		Desc:        "Cash Assistance (HRA) - Financial assistance program with income-based eligibility",
		Predicate:   cashAssistance,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R021",
		Desc:        "New York State Unemployment Insurance (NYS Department of Labor) - Financial assistance for those who lost their job",
		Predicate:   nysUnemploymentInsurance,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R025",
		Desc:        "Older Adult Employment Program (DFTA) - Employment assistance for seniors aged 55+",
		Predicate:   olderAdultEmploymentProgram,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R034",
		Desc:        "Fair Fares NYC - Half-price MetroCards for low-income New Yorkers",
		Predicate:   fairFares,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R043",
		Desc:        "Lifeline - Discounted phone service for low-income households",
		Predicate:   lifelinePhone,
	})
}

func snapCategoricallyEligible(b *aggregate.Bundle) bool {
	if len(b.Person) == 0 {
		return false
	}
	for _, p := range b.Person {
		hasSSI, hasCA := false, false
		for _, inc := range p.Incomes {
			if inc.Type == ssiType {
				hasSSI = true
			}
			if inc.Type == cashAssistanceType {
				hasCA = true
			}
		}
		if !(hasSSI || hasCA) {
			return false
		}
	}
	return true
}

func snapNetIncome(b *aggregate.Bundle) float64 {
	grossIncome := b.IncomeHouseholdWageSelfEmploymentMonthly + b.IncomeHouseholdBoarderMonthly +
		b.IncomeHouseholdUnearnedMonthly - b.ExpenseHouseholdChildSupportMonthly

	var deductions float64
	earned := b.IncomeHouseholdWageSelfEmploymentMonthly + b.IncomeHouseholdBoarderMonthly
	deductions += earned * 0.20

	size := len(b.Person) + b.MembersPregnant
	switch {
	case size <= 3:
		deductions += 198
	case size == 4:
		deductions += 208
	case size == 5:
		deductions += 244
	default:
		deductions += 279
	}

	if b.Household.LivingShelter {
		deductions += 179.66
	}

	deductions += b.ExpenseHouseholdChildDependentCareMonthly

	if b.ExpenseHouseholdMedicalMonthly > 35 {
		deductions += b.ExpenseHouseholdMedicalMonthly - 35
	}

	adjustedIncome := grossIncome - deductions
	if adjustedIncome < 0 {
		adjustedIncome = 0
	}

	shelterCosts := b.ExpenseHouseholdRentMortgageMonthly + 992
	excessShelter := shelterCosts - adjustedIncome/2
	if excessShelter < 0 {
		excessShelter = 0
	}

	netIncome := adjustedIncome - excessShelter
	if netIncome < 0 {
		netIncome = 0
	}
	return netIncome
}

func snapFPLMultiplier(b *aggregate.Bundle) float64 {
	hasElderly, hasDisabledOrBlind := false, false
	for _, p := range b.Person {
		if p.Age >= 60 {
			hasElderly = true
		}
		if p.Disabled || p.Blind {
			hasDisabledOrBlind = true
		}
	}
	if b.ExpenseHouseholdHasChildOrDependentCare || hasElderly || hasDisabledOrBlind {
		return 2.0
	}
	if b.IncomeHouseholdWageSelfEmploymentMonthly > 0 || b.IncomeHouseholdBoarderMonthly > 0 {
		return 1.5
	}
	return 1.3
}

var snapBaseFPL = map[int]float64{
	1: 1255, 2: 1704, 3: 2152, 4: 2600, 5: 3049, 6: 3497, 7: 3945, 8: 4394,
}

func snapFPLLimit(size int, multiplier float64) float64 {
	var limit float64
	if size > 8 {
		limit = snapBaseFPL[8] + float64(size-8)*449
	} else if v, ok := snapBaseFPL[size]; ok {
		limit = v
	} else {
		limit = snapBaseFPL[1]
	}
	return limit * multiplier
}

func snap(b *aggregate.Bundle) bool {
	size := len(b.Person) + b.MembersPregnant

	if snapCategoricallyEligible(b) {
		return true
	}

	netIncome := snapNetIncome(b)
	multiplier := snapFPLMultiplier(b)
	limit := snapFPLLimit(size, multiplier)

	return netIncome <= limit
}

var cashAssistanceChildPregnantThresholds = map[int]float64{
	1: 460.10, 2: 574.50, 3: 789.00, 4: 951.70, 5: 1119.70, 6: 1238.20, 7: 1357.70, 8: 1455.20,
}

var cashAssistanceGeneralThresholds = map[int]float64{
	1: 398.10, 2: 541.50, 3: 675.00, 4: 813.70, 5: 955.70, 6: 1063.20, 7: 1214.70, 8: 1330.20,
}

func cashAssistance(b *aggregate.Bundle) bool {
	size := len(b.Person) + b.MembersPregnant

	hasChildOrPregnant := false
	for _, p := range b.Person {
		if p.Age <= 18 || p.Pregnant {
			hasChildOrPregnant = true
			break
		}
	}

	monthlyIncome := b.IncomeHouseholdMonthlyCAMinusWorkExpense

	var threshold float64
	if hasChildOrPregnant {
		if size > 8 {
			threshold = cashAssistanceChildPregnantThresholds[8] + float64(size-8)*119.50
		} else if v, ok := cashAssistanceChildPregnantThresholds[size]; ok {
			threshold = v
		} else {
			threshold = cashAssistanceChildPregnantThresholds[1]
		}
	} else {
		if size > 8 {
			threshold = cashAssistanceGeneralThresholds[8] + float64(size-8)*115.50
		} else if v, ok := cashAssistanceGeneralThresholds[size]; ok {
			threshold = v
		} else {
			threshold = cashAssistanceGeneralThresholds[1]
		}
	}

	return monthlyIncome < threshold
}

func nysUnemploymentInsurance(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Unemployed && p.UnemployedWorkedLast18Months {
			return true
		}
	}
	return false
}

var olderAdultEmploymentThresholds = map[int]float64{
	1: 18825, 2: 25550, 3: 32275, 4: 39000, 5: 45725, 6: 52450, 7: 59175, 8: 65900,
}

func olderAdultEmploymentProgram(b *aggregate.Bundle) bool {
	hasEligibleSenior := false
	for _, p := range b.Person {
		if p.Age >= 55 && p.Unemployed {
			hasEligibleSenior = true
			break
		}
	}
	if !hasEligibleSenior {
		return false
	}

	size := len(b.Person) + b.MembersPregnant
	var threshold float64
	if size > 8 {
		threshold = olderAdultEmploymentThresholds[8] + float64(size-8)*6725
	} else if v, ok := olderAdultEmploymentThresholds[size]; ok {
		threshold = v
	} else {
		threshold = olderAdultEmploymentThresholds[1]
	}

	return b.IncomeHouseholdTotalYearly <= threshold
}

var fairFaresThresholds = map[int]float64{
	1: 21837, 2: 29638, 3: 37439, 4: 45240, 5: 53041, 6: 60842, 7: 68643, 8: 76444,
}

func fairFares(b *aggregate.Bundle) bool {
	hasEligibleAdult := false
	for _, p := range b.Person {
		if p.Age >= 18 && p.Age <= 64 {
			hasEligibleAdult = true
			break
		}
	}
	if !hasEligibleAdult {
		return false
	}
	size := len(b.Person)
	threshold, ok := fairFaresThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}

var lifelineThresholds = map[int]float64{
	1: 20331, 2: 27594, 3: 34857, 4: 42120, 5: 49383, 6: 56646, 7: 63909, 8: 71172,
}

func lifelinePhone(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.BenefitsMedicaid || p.BenefitsMedicaidDisability {
			return true
		}
	}
	if b.IncomeHouseholdHasBenefit {
		return true
	}
	if b.Household.LivingRenting && b.Household.LivingRentalType != nil && *b.Household.LivingRentalType == enums.NYCHA {
		return true
	}
	size := len(b.Person)
	threshold, ok := lifelineThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}
