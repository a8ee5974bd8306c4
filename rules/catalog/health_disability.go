package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/rules"
)

func init() {
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R019",
		Desc:        "Heating Assistance - Help with heating costs for vulnerable households",
		Predicate:   heatingAssistance,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R031",
		Desc:        "NYC Care - Low-cost healthcare for those without insurance",
		Predicate:   nycCare,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R033",
		Desc:        "Cooling Assistance Benefit (HRA) - Help with cooling costs for vulnerable households",
		Predicate:   coolingAssistanceBenefit,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R037",
		Desc:        "Home Care Services Program (HRA) - In-home care services for individuals with Medicaid",
		Predicate:   homeCareServicesProgram,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R047",
		Desc:        "NYC NY Connects (DFTA) - Information and assistance services for older adults and people with disabilities",
		Predicate:   nycNYConnects,
	})
}

func hasVulnerablePerson(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age <= 6 || p.Age >= 60 || p.Disabled || p.Blind {
			return true
		}
	}
	return false
}

var heatingCoolingThresholds = map[int]float64{
	1: 3322, 2: 4345, 3: 5367, 4: 6390, 5: 7412, 6: 8434, 7: 8626, 8: 8818,
}

func heatingAssistance(b *aggregate.Bundle) bool {
	if !hasVulnerablePerson(b) {
		return false
	}
	if b.IncomeHouseholdHasCashAssistance {
		return true
	}
	size := len(b.Person)
	threshold, ok := heatingCoolingThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeAdultsTotalMonthly <= threshold
}

var nycCareThresholds = map[int]float64{
	1: 2799, 2: 3799, 3: 4799, 4: 5598, 5: 6798, 6: 7798, 7: 8798, 8: 9798,
}

func nycCare(b *aggregate.Bundle) bool {
	hasUninsured := false
	for _, p := range b.Person {
		if !p.BenefitsMedicaid && !p.BenefitsMedicaidDisability {
			hasUninsured = true
			break
		}
	}
	if !hasUninsured {
		return false
	}
	size := len(b.Person)
	threshold, ok := nycCareThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalMonthly <= threshold
}

var coolingAssistanceThresholds = map[int]float64{
	1: 3035, 2: 3970, 3: 4904, 4: 5838, 5: 6772, 6: 7706, 7: 7881, 8: 8056,
}

func coolingAssistanceBenefit(b *aggregate.Bundle) bool {
	if !hasVulnerablePerson(b) {
		return false
	}
	if b.IncomeHouseholdHasCashAssistance {
		return true
	}
	size := len(b.Person)
	if size == 1 && b.IncomeHouseholdHasSSI {
		return true
	}
	threshold, ok := coolingAssistanceThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalMonthly <= threshold
}

func homeCareServicesProgram(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.BenefitsMedicaid {
			return true
		}
	}
	return false
}

func nycNYConnects(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Blind || p.Disabled || p.BenefitsMedicaidDisability {
			return true
		}
	}
	for _, p := range b.Person {
		for _, inc := range p.Incomes {
			if inc.Type == enums.DisabilityMedicaid {
				return true
			}
		}
	}
	return false
}
