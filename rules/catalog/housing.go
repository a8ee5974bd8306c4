package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/rules"
)

func init() {
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R005",
		Desc:        "Rental Assistance for specific housing types with income requirements",
		Predicate:   rentalAssistance,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R013",
		Desc:        "NYC Housing Program - Affordable housing assistance",
		Predicate:   housingProgram,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R024",
		Desc:        "NYCHA Resident Employment Program - Job training for NYCHA residents",
		Predicate:   nychaResidentEmployment,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R035",
		Desc:        "Public Housing (NYCHA) - Affordable housing for low and moderate income residents",
		Predicate:   publicHousing,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R054",
		Desc:        "NYCHA Connected - Free or low-cost internet for NYCHA residents",
		Predicate:   nychaInternet,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R055",
		Desc:        "NYC Housing Connect (HPD) - Affordable housing lottery and application portal",
		Predicate:   nycHousingConnect,
	})
}

var rentalAssistanceQualifyingIncomeTypes = map[enums.IncomeType]bool{
	enums.Wages: true, enums.SelfEmployment: true, enums.Pension: true,
	enums.SSRetirement: true, enums.SSDisability: true, enums.SSSurvivor: true,
	enums.Unemployment: true, enums.WorkersComp: true, enums.Veteran: true,
	enums.Rental: true, enums.Investment: true, enums.Alimony: true,
	enums.ChildSupportIncome: true,
}

func rentalAssistance(b *aggregate.Bundle) bool {
	if !b.Household.LivingRenting {
		return false
	}
	t := b.Household.LivingRentalType
	if t == nil {
		return false
	}
	switch *t {
	case enums.RentControlled, enums.HDFC, enums.MitchellLama, enums.Section213:
	default:
		return false
	}

	head := findHead(b)
	if head == nil {
		return false
	}
	if head.Age < 18 || !head.LivingRentalOnLease {
		return false
	}

	qualifies := false
	for _, inc := range head.Incomes {
		if rentalAssistanceQualifyingIncomeTypes[inc.Type] {
			qualifies = true
			break
		}
	}
	if !qualifies {
		return false
	}

	return b.IncomeHouseholdTotalYearly <= 50000
}

var housingProgramThresholds = map[int]float64{
	1: 54350, 2: 62150, 3: 69900, 4: 77650, 5: 83850, 6: 90050, 7: 96300, 8: 102500,
}

func housingProgram(b *aggregate.Bundle) bool {
	hasAdultHead := false
	for _, p := range b.Person {
		if p.HouseholdMemberType == headOfHouseholdType && p.Age >= 18 {
			hasAdultHead = true
			break
		}
	}
	if !hasAdultHead {
		return false
	}
	size := len(b.Person)
	threshold, ok := housingProgramThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}

func nychaResidentEmployment(b *aggregate.Bundle) bool {
	if !(b.Household.LivingRenting && b.Household.LivingRentalType != nil && *b.Household.LivingRentalType == enums.NYCHA) {
		return false
	}
	for _, p := range b.Person {
		if p.Age >= 18 {
			return true
		}
	}
	return false
}

var publicHousingFamilyRelations = map[enums.HouseholdMemberType]bool{
	enums.Spouse: true, enums.Child: true, enums.FosterChild: true, enums.Parent: true,
	enums.Grandparent: true, enums.FosterParent: true, enums.SisterBrother: true,
	enums.DomesticPartner: true, enums.StepChild: true, enums.StepParent: true,
	enums.StepSisterStepBrother: true,
}

var publicHousingFamilyThresholds = map[int]float64{
	2: 99550, 3: 111950, 4: 124400, 5: 134350, 6: 144300, 7: 154250, 8: 164200,
}

func publicHousing(b *aggregate.Bundle) bool {
	hasFamilyRelations := false
	for _, p := range b.Person {
		if publicHousingFamilyRelations[p.HouseholdMemberType] {
			hasFamilyRelations = true
			break
		}
	}
	head := findHead(b)

	if hasFamilyRelations && head != nil && head.Age >= 18 {
		hasMinorSpousePartner := false
		for _, p := range b.Person {
			if p.Age < 18 && (p.HouseholdMemberType == enums.Spouse || p.HouseholdMemberType == enums.DomesticPartner) {
				hasMinorSpousePartner = true
				break
			}
		}
		if !hasMinorSpousePartner {
			size := len(b.Person)
			if threshold, ok := publicHousingFamilyThresholds[size]; ok {
				if b.IncomeHouseholdTotalYearly <= threshold {
					return true
				}
			}
		}
	}

	if b.HouseholdAllAdults && !hasFamilyRelations {
		for i := range b.Person {
			if b.IncomePersonYearly[i] <= 87100 {
				return true
			}
		}
	}

	return false
}

func nychaInternet(b *aggregate.Bundle) bool {
	return b.Household.LivingRenting && b.Household.LivingRentalType != nil && *b.Household.LivingRentalType == enums.NYCHA
}

var housingConnectThresholds = map[int]float64{
	1: 179355, 2: 205095, 3: 230670, 4: 256245, 5: 276705, 6: 297165, 7: 317790, 8: 338250,
}

func nycHousingConnect(b *aggregate.Bundle) bool {
	hasAdult := false
	for _, p := range b.Person {
		if p.Age >= 18 {
			hasAdult = true
			break
		}
	}
	if !hasAdult {
		return false
	}
	if b.Household.CashOnHand != nil && *b.Household.CashOnHand > 256245 {
		return false
	}
	size := len(b.Person)
	threshold, ok := housingConnectThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}
