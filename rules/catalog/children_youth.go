package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/request"
	"github.com/nycopportunity/benefits-screener/rules"
)

func init() {
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R003",
		Desc:        "Infants & Toddlers (DOE) - Early intervention services for children under 3 years old",
		Predicate:   infantsToddlers,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R008",
		Desc:        "Head Start (DOE) - Free early childhood education for children aged 3-4",
		Predicate:   headStart,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R009",
		Desc:        "School Breakfast and Lunch - Free meals for NYC public school students",
		Predicate:   schoolMeals,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R016",
		Desc:        "Pre-K for All - Free pre-kindergarten for 4-year-olds",
		Predicate:   preKForAll,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R022",
		Desc:        "Women, Infants and Children (WIC) (NYS DOH) - Nutrition assistance for pregnant women and young children",
		Predicate:   womenInfantsChildren,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R023",
		Desc:        "Summer Meals (DOE) - Free meals for children during summer months",
		Predicate:   summerMeals,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R028",
		Desc:        "Learn & Earn (DYCD) - Educational and employment programs for youth",
		Predicate:   learnEarn,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R029",
		Desc:        "Nurse-Family Partnership (DOHMH) - Prenatal and postnatal support for first-time mothers",
		Predicate:   nurseFamilyPartnership,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R030",
		Desc:        "Summer Youth Employment Program (SYEP) (DYCD) - Summer employment opportunities for youth",
		Predicate:   summerYouthEmploymentProgram,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R036",
		Desc:        "Youth Workforce Development - Job training for unemployed youth not in school",
		Predicate:   youthWorkforce,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R038",
		Desc:        "Medicaid for Pregnant Women (HRA) - Healthcare coverage for pregnant women",
		Predicate:   medicaidPregnantWomen,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R039",
		Desc:        "NYC Free Tax Prep (DCA) - Free tax preparation services for low-income households",
		Predicate:   nycFreeTaxPrep,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R040",
		Desc:        "Child Care Voucher (ACS) - Financial assistance for child care expenses",
		Predicate:   childCareVoucher,
	})
	rules.Default.Register(rules.Func{
		ProgramCode: "S2R085",
		Desc:        "NYC program for households with 3-year-old children",
		Predicate:   threeYearOldProgram,
	})
}

func infantsToddlersHeadOrSpouseHasBenefits(persons []request.Person) bool {
	for _, p := range persons {
		if p.HouseholdMemberType != headOfHouseholdType && p.HouseholdMemberType != spouseType {
			continue
		}
		for _, inc := range p.Incomes {
			if inc.Type == ssiType || inc.Type == cashAssistanceType {
				return true
			}
		}
	}
	return false
}

var infantsToddlersThresholds = map[int]float64{
	2: 5624.0, 3: 6948.0, 4: 8271.0, 5: 9594.0, 6: 10918.0, 7: 11166.0, 8: 11414.0,
}

func infantsToddlersThreshold(size int) float64 {
	if size > 8 {
		return infantsToddlersThresholds[8]
	}
	if v, ok := infantsToddlersThresholds[size]; ok {
		return v
	}
	return infantsToddlersThresholds[2]
}

func infantsToddlers(b *aggregate.Bundle) bool {
	persons := b.Person
	for i, p := range persons {
		if p.Age >= 3 {
			continue
		}
		if p.HouseholdMemberType == fosterChildType {
			return true
		}
		if infantsToddlersHeadOrSpouseHasBenefits(persons) {
			return true
		}
		if p.HouseholdMemberType == childType || p.HouseholdMemberType == stepChildType {
			size := len(persons) + b.MembersPregnant
			if b.IncomeAdultsChildrenTotalMonthly <= infantsToddlersThreshold(size) {
				return true
			}
		}
		if p.HouseholdMemberType != childType && p.HouseholdMemberType != stepChildType {
			if b.IncomePersonMonthly[i] <= 4301.0 {
				return true
			}
		}
	}
	return false
}

var childYouthStandardThresholds = map[int]float64{
	1: 15060, 2: 20440, 3: 25820, 4: 31200, 5: 36580, 6: 41960, 7: 47340, 8: 52720,
}

func headStart(b *aggregate.Bundle) bool {
	persons := b.Person
	size := len(persons)

	hasEligibleChild := false
	for _, p := range persons {
		if p.Age > 2 && p.Age < 5 {
			hasEligibleChild = true
			break
		}
	}

	if hasEligibleChild {
		if threshold, ok := childYouthStandardThresholds[size]; ok {
			if b.IncomeHouseholdTotalYearly <= threshold {
				return true
			}
		}
	}

	if b.IncomeHouseholdHasCashAssistance || b.IncomeHouseholdHasSSI {
		return true
	}

	return b.FosterChildren > 0
}

func schoolMeals(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 5 && p.Age <= 21 && p.Student {
			return true
		}
	}
	return false
}

func preKForAll(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 3 && p.Age < 5 {
			return true
		}
	}
	return false
}

var womenInfantsChildrenThresholds = map[int]float64{
	1: 27861, 2: 37814, 3: 47767, 4: 57720, 5: 67673, 6: 77626, 7: 87579, 8: 97532,
}

func womenInfantsChildren(b *aggregate.Bundle) bool {
	persons := b.Person
	hasEligiblePerson := false
	for _, p := range persons {
		if p.Pregnant || p.Age < 5 {
			hasEligiblePerson = true
			break
		}
	}
	if !hasEligiblePerson {
		return false
	}
	size := len(persons)
	threshold, ok := womenInfantsChildrenThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}

func summerMeals(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age < 19 {
			return true
		}
	}
	return false
}

func youthProgramShared(b *aggregate.Bundle, eligibleYouth []request.Person) bool {
	persons := b.Person

	if b.Household.LivingShelter {
		return true
	}

	for _, youth := range eligibleYouth {
		if youth.HouseholdMemberType == fosterChildType {
			return true
		}
		if youth.HouseholdMemberType == headOfHouseholdType {
			for _, p := range persons {
				if p.HouseholdMemberType == fosterParentType {
					return true
				}
			}
		}
	}

	for _, youth := range eligibleYouth {
		if youth.Disabled || youth.Blind {
			return true
		}
	}

	for _, youth := range eligibleYouth {
		if youth.Pregnant {
			return true
		}
		if youth.HouseholdMemberType == headOfHouseholdType {
			for _, p := range persons {
				if p.HouseholdMemberType == childType || p.HouseholdMemberType == stepChildType {
					return true
				}
			}
		}
	}

	if b.IncomeHouseholdHasCashAssistance || b.IncomeHouseholdHasSSI {
		return true
	}

	size := len(persons)
	if threshold, ok := childYouthStandardThresholds[size]; ok {
		if b.IncomeHouseholdTotalYearly <= threshold {
			return true
		}
	}

	return false
}

func learnEarn(b *aggregate.Bundle) bool {
	var eligibleYouth []request.Person
	for _, p := range b.Person {
		if p.Age >= 14 && p.Age <= 21 {
			eligibleYouth = append(eligibleYouth, p)
		}
	}
	if len(eligibleYouth) == 0 {
		return false
	}
	return youthProgramShared(b, eligibleYouth)
}

func youthWorkforce(b *aggregate.Bundle) bool {
	var eligibleYouth []request.Person
	for _, p := range b.Person {
		if p.Age >= 16 && p.Age <= 24 && !p.Student && p.Unemployed {
			eligibleYouth = append(eligibleYouth, p)
		}
	}
	if len(eligibleYouth) == 0 {
		return false
	}
	return youthProgramShared(b, eligibleYouth)
}

var nurseFamilyPartnershipThresholds = map[int]float64{
	2: 2960, 3: 3733, 4: 4606, 5: 5280, 6: 6053, 7: 6826, 8: 7599,
}

func nurseFamilyPartnership(b *aggregate.Bundle) bool {
	hasPregnant := false
	for _, p := range b.Person {
		if p.Pregnant {
			hasPregnant = true
			break
		}
	}
	if !hasPregnant {
		return false
	}
	threshold, ok := nurseFamilyPartnershipThresholds[b.MembersPlusPregnant]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalMonthly <= threshold
}

func summerYouthEmploymentProgram(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age >= 14 && p.Age <= 24 {
			return true
		}
	}
	return false
}

var medicaidPregnantWomenThresholds = map[int]float64{
	1: 33584, 2: 45581, 3: 57579, 4: 69576, 5: 81573, 6: 93571, 7: 105568, 8: 117566,
}

func medicaidPregnantWomen(b *aggregate.Bundle) bool {
	hasPregnant := false
	for _, p := range b.Person {
		if p.Pregnant {
			hasPregnant = true
			break
		}
	}
	if !hasPregnant {
		return false
	}
	size := len(b.Person)
	threshold, ok := medicaidPregnantWomenThresholds[size]
	if !ok {
		return false
	}
	return b.IncomeHouseholdTotalYearly <= threshold
}

func nycFreeTaxPrep(b *aggregate.Bundle) bool {
	persons := b.Person
	size := len(persons)

	if size == 1 {
		if b.IncomeHouseholdTotalYearly <= 59000 {
			return true
		}
	}

	if size > 1 {
		hasChildRelation := false
		for _, p := range persons {
			if p.HouseholdMemberType == childType || p.HouseholdMemberType == stepChildType {
				hasChildRelation = true
				break
			}
		}
		if hasChildRelation && b.IncomeHouseholdTotalYearly <= 85000 {
			return true
		}
	}

	return false
}

var childCareVoucherThresholds = map[int]float64{
	2: 6156, 3: 7604, 4: 9053, 5: 10501, 6: 11949, 7: 12221, 8: 12493,
}

func childCareVoucher(b *aggregate.Bundle) bool {
	hasEligibleDependent := false
	for _, p := range b.Person {
		if p.Age <= 12 {
			hasEligibleDependent = true
			break
		}
		if p.Age <= 17 && (p.Disabled || p.Blind) {
			hasEligibleDependent = true
			break
		}
		if p.Age == 18 && p.StudentFulltime && (p.Disabled || p.Blind) {
			hasEligibleDependent = true
			break
		}
	}
	if !hasEligibleDependent {
		return false
	}

	threshold, ok := childCareVoucherThresholds[b.ChildCareVoucherHouseholdMembers]
	if !ok {
		return false
	}
	return b.IncomeChildCareVoucherTotalMonthly <= threshold
}

func threeYearOldProgram(b *aggregate.Bundle) bool {
	for _, p := range b.Person {
		if p.Age == 3 {
			return true
		}
	}
	return false
}

