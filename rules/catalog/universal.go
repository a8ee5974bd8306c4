package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/rules"
)

func init() {
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R011",
		Desc:        "Universal program - all households may be eligible",
		Predicate:   universalEligibility,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R026",
		Desc:        "Workforce1 (SBS) - Job training and employment services for adults",
		Predicate:   workforce1,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R027",
		Desc:        "Commodity Supplemental Food Program (CSFP) (NYS DOH) - Food assistance for seniors",
		Predicate:   commoditySupplementalFoodProgram,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R032",
		Desc:        "IDNYC (HRA) - Free municipal ID card for NYC residents",
		Predicate:   idnyc,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R045",
		Desc:        "NYC Free Tax Prep - Free tax preparation services",
		Predicate:   freeTaxPrep,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R046",
		Desc:        "NYC Library Card - Free library services and resources",
		Predicate:   libraryCard,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R053",
		Desc:        "Affordable Connectivity Program - Internet service discount (program closed as of Feb 8, 2024)",
		Predicate:   affordableConnectivityProgram,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R056",
		Desc:        "NYC Benefit Information - General information about available benefits",
		Predicate:   universalBenefitInfo,
	})
}

func universalEligibility(b *aggregate.Bundle) bool {
	return true
}

func workforce1(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 18 {
			return true
		}
	}
	return false
}

var commoditySupplementalFoodThresholds = map[int]float64{
	1: 19578, 2: 26572, 3: 33566, 4: 40560, 5: 47554, 6: 54548, 7: 61542, 8: 68536,
}

func commoditySupplementalFoodProgram(b *aggregate.Bundle) bool {
	hasSenior := false
	for _, p := range b.Person {
		if p.Age >= 60 {
			hasSenior = true
			break
		}
	}
	if !hasSenior {
		return false
	}
	size := len(b.Person)
	threshold, ok := commoditySupplementalFoodThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}

func idnyc(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 10 {
			return true
		}
	}
	return false
}

func freeTaxPrep(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 18 {
			return true
		}
	}
	return false
}

func libraryCard(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 5 {
			return true
		}
	}
	return false
}

// affordableConnectivityProgram is closed to new applicants as of 2024-02-08;
// the original multi-pathway eligibility check was retired in favor of a
// constant false.
func affordableConnectivityProgram(b *aggregate.Bundle) bool {
	return false
}

func universalBenefitInfo(b *aggregate.Bundle) bool {
	return true
}
