// Package catalog holds the ~45 program-rule predicates. Each rule
// registers itself with rules.Default from an init() function, the Go
// equivalent of the source's decorator-based registration.
package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/rules"
)

func init() {
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R001",
		Desc:        "Child and Dependent Care Tax Credit (DCA/IRS) - Assistance with child or dependent care expenses",
		Predicate:   childDependentCareTaxCredit,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R004",
		Desc:        "Child Tax Credit for households with children under 17",
		Predicate:   childTaxCredit,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R006",
		Desc:        "Earned Income Tax Credit (EITC) (DCA/IRS) - Tax credit based on marital status, children, and income",
		Predicate:   earnedIncomeTaxCredit,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R012",
		Desc:        "School Tax Relief (STAR) (DOF) - Property tax relief for homeowners",
		Predicate:   schoolTaxRelief,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R014",
		Desc:        "Senior Citizen Homeowners' Exemption (SCHE) (DOF) - Property tax exemption for senior homeowners",
		Predicate:   seniorCitizenHomeownersExemption,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R015",
		Desc:        "SCRIE - Senior Citizen Rent Increase Exemption for eligible rental types",
		Predicate:   scrie,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R017",
		Desc:        "Disability/Blind Homeowner Exemption - Property tax relief for disabled/blind homeowners",
		Predicate:   disabilityHomeownerExemption,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R018",
		Desc:        "Veterans' Property Tax Exemption (DOF) - Property tax exemption for veteran homeowners",
		Predicate:   veteransPropertyTaxExemption,
	})
}

func childDependentCareTaxCredit(b *aggregate.Bundle) bool {
	hasEligiblePerson := false
	for _, p := range b.Person {
		if p.Age < 13 || p.Disabled || p.Blind {
			hasEligiblePerson = true
			break
		}
	}
	if !hasEligiblePerson {
		return false
	}
	if !b.ExpenseHouseholdHasChildOrDependentCare {
		return false
	}
	return b.IncomeHeadAndSpouseEarnedYearly > 0
}

func childTaxCredit(b *aggregate.Bundle) bool {
	hasEligibleChild := false
	for _, p := range b.Person {
		if p.Age < 17 {
			hasEligibleChild = true
			break
		}
	}
	if !hasEligibleChild {
		return false
	}
	yearly := b.IncomeHouseholdTotalYearly
	if yearly < 2500 {
		return false
	}
	if b.HeadOfHouseholdMarried {
		return yearly <= 400000
	}
	return yearly <= 200000
}

func marriedEITCThreshold(numChildren int) float64 {
	switch {
	case numChildren == 0:
		return 24210
	case numChildren == 1:
		return 53120
	case numChildren == 2:
		return 59478
	default:
		return 63398
	}
}

func singleEITCThreshold(numChildren int) float64 {
	switch {
	case numChildren == 0:
		return 17640
	case numChildren == 1:
		return 46560
	case numChildren == 2:
		return 52918
	default:
		return 56838
	}
}

func eitcIndividualEligibility(b *aggregate.Bundle) bool {
	for i, p := range b.Person {
		if p.HouseholdMemberType == headOfHouseholdType || p.HouseholdMemberType == spouseType {
			continue
		}
		if p.Age >= 25 && p.Age <= 64 {
			earned := b.IncomePersonEarnedYearly[i]
			if earned > 0 && earned <= 17640 {
				return true
			}
		}
	}
	return false
}

func earnedIncomeTaxCredit(b *aggregate.Bundle) bool {
	var totalInvestment float64
	for _, v := range b.IncomePersonInvestmentYearly {
		totalInvestment += v
	}
	if totalInvestment >= 11000 {
		return false
	}

	numChildren := b.ChildrenStudentBlindDisabledEITC

	headIndex := -1
	for i, p := range b.Person {
		if p.HouseholdMemberType == headOfHouseholdType {
			headIndex = i
			break
		}
	}

	if headIndex != -1 {
		head := b.Person[headIndex]
		if b.HeadOfHouseholdMarried {
			threshold := marriedEITCThreshold(numChildren)
			if numChildren == 0 {
				spouseIndex := -1
				for i, p := range b.Person {
					if p.HouseholdMemberType == spouseType {
						spouseIndex = i
						break
					}
				}
				headOK := head.Age >= 25 && head.Age <= 64
				spouseOK := spouseIndex != -1 && b.Person[spouseIndex].Age >= 25 && b.Person[spouseIndex].Age <= 64
				if !headOK || !spouseOK {
					return eitcIndividualEligibility(b)
				}
			}
			combined := b.IncomeHeadAndSpouseEarnedYearly
			if combined > 0 && combined <= threshold {
				return true
			}
		} else {
			threshold := singleEITCThreshold(numChildren)
			if numChildren == 0 && !(head.Age >= 25 && head.Age <= 64) {
				return eitcIndividualEligibility(b)
			}
			headEarned := b.IncomePersonEarnedYearly[headIndex]
			if headEarned > 0 && headEarned <= threshold {
				return true
			}
		}
	}

	return eitcIndividualEligibility(b)
}

func schoolTaxRelief(b *aggregate.Bundle) bool {
	if !b.Household.LivingOwner {
		return false
	}
	return b.IncomeOwnersTotalYearly <= 500000
}

func seniorCitizenHomeownersExemption(b *aggregate.Bundle) bool {
	if !b.Household.LivingOwner {
		return false
	}
	if b.IncomeOwnersTotalYearly > 58399 {
		return false
	}
	for _, p := range b.Person {
		if p.LivingOwnerOnDeed && p.Age >= 65 {
			return true
		}
	}
	return false
}

// scrie reproduces the source's literal income metric
// (yearly total minus monthly-less-gifts*12), which subtracts a monthly
// value from a yearly value. Kept as-is per the design note flagging it.
func scrie(b *aggregate.Bundle) bool {
	if !b.Household.LivingRenting {
		return false
	}
	if !scrieEligibleRentalType(b.Household.LivingRentalType) {
		return false
	}
	head := findHead(b)
	if head == nil {
		return false
	}
	if head.Age < 62 || !head.LivingRentalOnLease {
		return false
	}
	if b.IncomeHouseholdTotalYearly-b.IncomeHouseholdTotalMonthlyLessGifts*12 > 50000 {
		return false
	}
	return true
}

func disabilityHomeownerExemption(b *aggregate.Bundle) bool {
	if !b.Household.LivingOwner {
		return false
	}
	if b.IncomeOwnersTotalYearly > 58399 {
		return false
	}
	for _, p := range b.Person {
		if p.LivingOwnerOnDeed && (p.Disabled || p.Blind) {
			return true
		}
	}
	for _, p := range b.Person {
		if !p.LivingOwnerOnDeed {
			continue
		}
		for _, inc := range p.Incomes {
			if inc.Type == ssiType || inc.Type == ssDisabilityType {
				return true
			}
		}
	}
	return false
}

func veteransPropertyTaxExemption(b *aggregate.Bundle) bool {
	if !b.Household.LivingOwner {
		return false
	}
	for _, p := range b.Person {
		if p.Veteran && p.LivingOwnerOnDeed {
			return true
		}
	}
	return false
}
