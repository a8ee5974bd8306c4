// Package aggregate computes the immutable bundle of derived household and
// person fields that program rules consume. It is a pure function of a
// validated request: the same request always produces the same bundle, and
// no field is ever mutated after the bundle is built.
package aggregate

import (
	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/request"
)

// monthlyFactor converts an amount at a given frequency to its monthly
// equivalent. These literals are part of the contract and must not be
// rounded or approximated differently.
var monthlyFactor = map[enums.Frequency]float64{
	enums.Weekly:      4.3333333333333,
	enums.Biweekly:    2.166666666667,
	enums.Semimonthly: 2.0,
	enums.Monthly:     1.0,
	enums.Yearly:      1.0 / 12.0,
}

func toMonthly(amount float64, freq enums.Frequency) float64 {
	f, ok := monthlyFactor[freq]
	if !ok {
		f = 1.0
	}
	return amount * f
}

func toYearly(amount float64, freq enums.Frequency) float64 {
	return toMonthly(amount, freq) * 12.0
}

var nuclearFamilyTypes = map[enums.HouseholdMemberType]bool{
	enums.HeadOfHousehold: true,
	enums.Spouse:          true,
	enums.Child:           true,
	enums.StepChild:       true,
}

var childTypes = map[enums.HouseholdMemberType]bool{
	enums.Child:     true,
	enums.StepChild: true,
}

var isyExcludedIncomeTypes = map[enums.IncomeType]bool{
	enums.ChildSupportIncome: true,
	enums.CashAssistance:     true,
	enums.SSSurvivor:         true,
	enums.SSI:                true,
	enums.Unemployment:       true,
}

var earnedIncomeTypes = map[enums.IncomeType]bool{
	enums.Wages:          true,
	enums.SelfEmployment: true,
}

var cashAssistanceIncomeTypes = map[enums.IncomeType]bool{
	enums.Alimony:        true,
	enums.Boarder:        true,
	enums.CashAssistance: true,
	enums.ChildSupportIncome: true,
	enums.Gifts:          true,
	enums.Investment:     true,
	enums.Pension:        true,
	enums.Rental:         true,
	enums.SelfEmployment: true,
	enums.SSDependent:    true,
	enums.SSDisability:   true,
	enums.SSRetirement:   true,
	enums.SSSurvivor:     true,
	enums.SSI:            true,
	enums.Unemployment:   true,
	enums.Veteran:        true,
	enums.Wages:          true,
	enums.WorkersComp:    true,
}

var benefitIncomeTypes = map[enums.IncomeType]bool{
	enums.Veteran:      true,
	enums.SSI:          true,
	enums.SSRetirement: true,
	enums.SSDisability: true,
	enums.SSSurvivor:   true,
}

// Bundle is the immutable set of derived fields computed from a validated
// request. Rule predicates read it but never mutate it.
type Bundle struct {
	// Composition
	MembersNuclearOnly             int
	FosterChildren                 int
	MembersPregnant                int
	MembersPregnantNotFoster        int
	MembersPlusPregnant             int
	MembersPlusPregnantMinusFoster  int
	ChildrenStudentBlindDisabledEITC int
	ChildCareVoucherHouseholdMembers int
	HouseholdAllAdults              bool
	HeadOfHouseholdMarried          bool

	// Per-person income maps, keyed by request-list index.
	IncomePersonWageSelfEmploymentMonthly        map[int]float64
	IncomePersonWageSelfEmploymentBoarderMonthly map[int]float64
	IncomePersonEarnedYearly                     map[int]float64
	IncomePersonInvestmentYearly                 map[int]float64
	IncomePersonGiftsMonthly                     map[int]float64
	IncomePersonMonthly                          map[int]float64
	IncomePersonYearly                           map[int]float64
	IncomePersonISYMonthly                       map[int]float64
	IncomePersonISYYearly                        map[int]float64
	IncomePersonSESMonthly                       map[int]float64

	// Household income scalars.
	IncomeHouseholdTotalMonthly            float64
	IncomeHouseholdTotalYearly             float64
	IncomeHouseholdTotalMonthlyLessFoster  float64
	IncomeHouseholdTotalMonthlyLessGifts   float64
	IncomeHouseholdWageSelfEmploymentMonthly float64
	IncomeHouseholdUnearnedMonthly         float64
	IncomeHouseholdBoarderMonthly          float64
	IncomeHouseholdNuclearISYYearly        float64
	IncomeHouseholdMonthlyCA               float64
	IncomeHouseholdMonthlyCAMinusWorkExpense float64
	IncomeHeadEarnedYearly                 float64
	IncomeHeadAndSpouseEarnedYearly        float64
	IncomeHeadAndSpouseSESMonthly          float64
	IncomeOwnersTotalYearly                float64
	IncomeAdultsChildrenTotalMonthly       float64
	IncomeChildCareVoucherTotalMonthly     float64
	IncomeAdultsTotalMonthly               float64
	IncomeHouseholdHasCashAssistance       bool
	IncomeHouseholdHasUI                   bool
	IncomeHouseholdHasBenefit              bool
	IncomeHouseholdHasSSI                  bool

	// Expense scalars.
	ExpenseHouseholdChildDependentCareMonthly float64
	ExpenseHouseholdMedicalMonthly            float64
	ExpenseHouseholdRentMortgageMonthly        float64
	ExpenseHouseholdRentMonthly                 float64
	ExpenseHouseholdChildSupportMonthly         float64
	ExpenseHouseholdHasHeating                  bool
	ExpenseHouseholdHasDependentCare             bool
	ExpenseHouseholdHasChildOrDependentCare      bool

	// Carried through from the request for rules that need raw fields.
	Household request.Household
	Person    []request.Person
}

// Compute derives the aggregate bundle from a validated request. It never
// fails: missing optional fields behave as zero/empty.
func Compute(req *request.Eligibility) *Bundle {
	persons := req.Person
	b := &Bundle{
		Household: req.Household[0],
		Person:    persons,

		IncomePersonWageSelfEmploymentMonthly:        map[int]float64{},
		IncomePersonWageSelfEmploymentBoarderMonthly: map[int]float64{},
		IncomePersonEarnedYearly:                     map[int]float64{},
		IncomePersonInvestmentYearly:                 map[int]float64{},
		IncomePersonGiftsMonthly:                     map[int]float64{},
		IncomePersonMonthly:                          map[int]float64{},
		IncomePersonYearly:                           map[int]float64{},
		IncomePersonISYMonthly:                       map[int]float64{},
		IncomePersonISYYearly:                        map[int]float64{},
		IncomePersonSESMonthly:                       map[int]float64{},
	}

	headIndex, spouseIndex := -1, -1
	for i, p := range persons {
		switch p.HouseholdMemberType {
		case enums.HeadOfHousehold:
			if headIndex == -1 {
				headIndex = i
			}
		case enums.Spouse:
			if spouseIndex == -1 {
				spouseIndex = i
			}
		}
	}
	b.HeadOfHouseholdMarried = spouseIndex != -1

	computeComposition(b, persons)
	computePersonIncome(b, persons)
	computeHouseholdIncome(b, persons, headIndex, spouseIndex)
	computeExpenses(b, persons)

	return b
}

func computeComposition(b *Bundle, persons []request.Person) {
	total := len(persons)

	for _, p := range persons {
		if nuclearFamilyTypes[p.HouseholdMemberType] {
			b.MembersNuclearOnly++
		}
		if p.HouseholdMemberType == enums.FosterChild {
			b.FosterChildren++
		}
		if p.Pregnant {
			b.MembersPregnant++
			if p.HouseholdMemberType != enums.FosterChild {
				b.MembersPregnantNotFoster++
			}
		}
	}

	b.MembersPlusPregnantMinusFoster = total + b.MembersPregnant - b.FosterChildren
	b.MembersPlusPregnant = total + b.MembersPregnant

	for _, p := range persons {
		if !childTypes[p.HouseholdMemberType] {
			continue
		}
		if p.Age < 19 || (p.Age < 24 && p.Student) || p.Blind || p.Disabled {
			b.ChildrenStudentBlindDisabledEITC++
		}
	}

	b.ChildCareVoucherHouseholdMembers = total - b.FosterChildren

	allAdults := true
	for _, p := range persons {
		if p.Age < 18 {
			allAdults = false
			break
		}
	}
	b.HouseholdAllAdults = allAdults
}

func computePersonIncome(b *Bundle, persons []request.Person) {
	for i, p := range persons {
		var wageSE, boarder, investmentYearly, gifts, totalMonthly float64

		for _, inc := range p.Incomes {
			monthly := toMonthly(inc.Amount, inc.Frequency)
			yearly := toYearly(inc.Amount, inc.Frequency)
			totalMonthly += monthly

			switch {
			case earnedIncomeTypes[inc.Type]:
				wageSE += monthly
			case inc.Type == enums.Boarder:
				boarder += monthly
			case inc.Type == enums.Investment || inc.Type == enums.Rental:
				investmentYearly += yearly
			case inc.Type == enums.Gifts:
				gifts += monthly
			}
		}

		b.IncomePersonWageSelfEmploymentMonthly[i] = wageSE
		b.IncomePersonWageSelfEmploymentBoarderMonthly[i] = wageSE + boarder
		b.IncomePersonEarnedYearly[i] = wageSE * 12.0
		b.IncomePersonInvestmentYearly[i] = investmentYearly
		b.IncomePersonGiftsMonthly[i] = gifts
		b.IncomePersonMonthly[i] = totalMonthly
		b.IncomePersonYearly[i] = totalMonthly * 12.0

		var isyMonthly float64
		for _, inc := range p.Incomes {
			if !isyExcludedIncomeTypes[inc.Type] {
				isyMonthly += toMonthly(inc.Amount, inc.Frequency)
			}
		}
		b.IncomePersonISYMonthly[i] = isyMonthly
		b.IncomePersonISYYearly[i] = isyMonthly * 12.0

		var ses float64
		for _, inc := range p.Incomes {
			monthly := toMonthly(inc.Amount, inc.Frequency)
			if inc.Type == enums.SSRetirement || inc.Type == enums.SSSurvivor {
				ses += monthly * 0.75
			} else {
				ses += monthly
			}
		}
		b.IncomePersonSESMonthly[i] = ses
	}
}

func computeHouseholdIncome(b *Bundle, persons []request.Person, headIndex, spouseIndex int) {
	for _, v := range b.IncomePersonMonthly {
		b.IncomeHouseholdTotalMonthly += v
	}
	b.IncomeHouseholdTotalYearly = b.IncomeHouseholdTotalMonthly * 12.0

	for i, p := range persons {
		if p.HouseholdMemberType != enums.FosterChild {
			b.IncomeHouseholdTotalMonthlyLessFoster += b.IncomePersonMonthly[i]
		}
	}

	for i := range persons {
		b.IncomeHouseholdTotalMonthlyLessGifts += b.IncomePersonMonthly[i] - b.IncomePersonGiftsMonthly[i]
	}

	for _, v := range b.IncomePersonWageSelfEmploymentMonthly {
		b.IncomeHouseholdWageSelfEmploymentMonthly += v
	}

	for _, p := range persons {
		for _, inc := range p.Incomes {
			if inc.Type != enums.Wages && inc.Type != enums.SelfEmployment && inc.Type != enums.Boarder {
				b.IncomeHouseholdUnearnedMonthly += toMonthly(inc.Amount, inc.Frequency)
			}
			if inc.Type == enums.Boarder {
				b.IncomeHouseholdBoarderMonthly += toMonthly(inc.Amount, inc.Frequency)
			}
		}
	}

	for i, p := range persons {
		if nuclearFamilyTypes[p.HouseholdMemberType] {
			b.IncomeHouseholdNuclearISYYearly += b.IncomePersonISYYearly[i]
		}
	}

	var employedPersons int
	for _, p := range persons {
		var personCA float64
		hasEmployment := false
		for _, inc := range p.Incomes {
			if cashAssistanceIncomeTypes[inc.Type] {
				personCA += toMonthly(inc.Amount, inc.Frequency)
			}
			if earnedIncomeTypes[inc.Type] {
				hasEmployment = true
			}
		}
		b.IncomeHouseholdMonthlyCA += personCA
		if hasEmployment {
			employedPersons++
		}
	}
	b.IncomeHouseholdMonthlyCAMinusWorkExpense = b.IncomeHouseholdMonthlyCA - 150.0*float64(employedPersons)

	if headIndex != -1 {
		b.IncomeHeadEarnedYearly = b.IncomePersonEarnedYearly[headIndex]
	}
	headSpouseEarned := b.IncomeHeadEarnedYearly
	if spouseIndex != -1 {
		headSpouseEarned += b.IncomePersonEarnedYearly[spouseIndex]
	}
	b.IncomeHeadAndSpouseEarnedYearly = headSpouseEarned

	var headSpouseSES float64
	if headIndex != -1 {
		headSpouseSES += b.IncomePersonSESMonthly[headIndex]
	}
	if spouseIndex != -1 {
		headSpouseSES += b.IncomePersonSESMonthly[spouseIndex]
	}
	b.IncomeHeadAndSpouseSESMonthly = headSpouseSES

	for i, p := range persons {
		if p.LivingOwnerOnDeed {
			b.IncomeOwnersTotalYearly += b.IncomePersonYearly[i]
		}
	}

	for i, p := range persons {
		if nuclearFamilyTypes[p.HouseholdMemberType] {
			b.IncomeAdultsChildrenTotalMonthly += b.IncomePersonMonthly[i]
		}
	}

	for i, p := range persons {
		if p.HouseholdMemberType != enums.FosterChild {
			b.IncomeChildCareVoucherTotalMonthly += b.IncomePersonMonthly[i]
		}
	}

	b.IncomeAdultsTotalMonthly = b.IncomeHouseholdTotalMonthly
	for i, p := range persons {
		if childTypes[p.HouseholdMemberType] {
			b.IncomeAdultsTotalMonthly -= b.IncomePersonWageSelfEmploymentMonthly[i]
		}
	}

	for _, p := range persons {
		for _, inc := range p.Incomes {
			switch inc.Type {
			case enums.CashAssistance:
				b.IncomeHouseholdHasCashAssistance = true
			case enums.Unemployment:
				b.IncomeHouseholdHasUI = true
			case enums.SSI:
				b.IncomeHouseholdHasSSI = true
			}
			if benefitIncomeTypes[inc.Type] {
				b.IncomeHouseholdHasBenefit = true
			}
		}
	}
}

func computeExpenses(b *Bundle, persons []request.Person) {
	for _, p := range persons {
		for _, exp := range p.Expenses {
			monthly := toMonthly(exp.Amount, exp.Frequency)

			if exp.Type == enums.ChildCare || exp.Type == enums.DependentCare {
				b.ExpenseHouseholdChildDependentCareMonthly += monthly
			}
			if exp.Type == enums.Medical {
				b.ExpenseHouseholdMedicalMonthly += monthly
			}
			if exp.Type == enums.Rent || exp.Type == enums.Mortgage {
				b.ExpenseHouseholdRentMortgageMonthly += monthly
			}
			if exp.Type == enums.Rent {
				b.ExpenseHouseholdRentMonthly += monthly
			}
			if exp.Type == enums.ChildSupportExp {
				b.ExpenseHouseholdChildSupportMonthly += monthly
			}
			if exp.Type == enums.Heating {
				b.ExpenseHouseholdHasHeating = true
			}
			if exp.Type == enums.DependentCare {
				b.ExpenseHouseholdHasDependentCare = true
			}
		}
	}
	b.ExpenseHouseholdHasChildOrDependentCare = b.ExpenseHouseholdChildDependentCareMonthly > 0
}
