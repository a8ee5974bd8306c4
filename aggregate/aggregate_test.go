package aggregate

import (
	"testing"

	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/request"
)

func baseRequest() *request.Eligibility {
	return &request.Eligibility{
		Household: []request.Household{{}},
		Person: []request.Person{
			{HouseholdMemberType: enums.HeadOfHousehold, Age: 40},
			{HouseholdMemberType: enums.Child, Age: 8},
		},
	}
}

func TestCompute_IsPure(t *testing.T) {
	req := baseRequest()
	b1 := Compute(req)
	b2 := Compute(req)

	if b1.IncomeHouseholdTotalMonthly != b2.IncomeHouseholdTotalMonthly {
		t.Error("Compute() produced different results for identical input")
	}
	if len(req.Person) != 2 {
		t.Error("Compute() mutated the input request")
	}
}

func TestCompute_MonthlyFrequencyConversion(t *testing.T) {
	req := baseRequest()
	req.Person[0].Incomes = []request.Income{
		{Amount: 100, Type: enums.Wages, Frequency: enums.Weekly},
	}
	b := Compute(req)

	want := 100 * (4.3333333333333)
	got := b.IncomePersonWageSelfEmploymentMonthly[0]
	if diff := got - want; diff > 0.0001 || diff < -0.0001 {
		t.Errorf("weekly wage monthly conversion = %v, want %v", got, want)
	}
}

func TestCompute_YearlyEqualsMonthlyTimesTwelve(t *testing.T) {
	req := baseRequest()
	req.Person[0].Incomes = []request.Income{
		{Amount: 500, Type: enums.Wages, Frequency: enums.Monthly},
	}
	b := Compute(req)

	if b.IncomeHouseholdTotalYearly != b.IncomeHouseholdTotalMonthly*12.0 {
		t.Errorf("yearly total %v != monthly total %v * 12", b.IncomeHouseholdTotalYearly, b.IncomeHouseholdTotalMonthly)
	}
}

func TestCompute_MonotonicOnEarnedIncome(t *testing.T) {
	lowReq := baseRequest()
	lowReq.Person[0].Incomes = []request.Income{{Amount: 100, Type: enums.Wages, Frequency: enums.Monthly}}

	highReq := baseRequest()
	highReq.Person[0].Incomes = []request.Income{{Amount: 1000, Type: enums.Wages, Frequency: enums.Monthly}}

	low := Compute(lowReq)
	high := Compute(highReq)

	if high.IncomeHouseholdTotalMonthly <= low.IncomeHouseholdTotalMonthly {
		t.Error("higher reported wages should not decrease total household income")
	}
}

func TestCompute_FosterChildExcludedFromCareVoucherCount(t *testing.T) {
	req := baseRequest()
	req.Person = append(req.Person, request.Person{HouseholdMemberType: enums.FosterChild, Age: 5})

	b := Compute(req)

	if b.FosterChildren != 1 {
		t.Fatalf("FosterChildren = %d, want 1", b.FosterChildren)
	}
	if b.ChildCareVoucherHouseholdMembers != len(req.Person)-1 {
		t.Errorf("ChildCareVoucherHouseholdMembers = %d, want %d", b.ChildCareVoucherHouseholdMembers, len(req.Person)-1)
	}
}

func TestCompute_HeadAndSpouseEarnedYearly(t *testing.T) {
	req := baseRequest()
	req.Person[0].Incomes = []request.Income{{Amount: 1000, Type: enums.Wages, Frequency: enums.Monthly}}
	req.Person = append(req.Person, request.Person{HouseholdMemberType: enums.Spouse, Age: 38, Incomes: []request.Income{
		{Amount: 500, Type: enums.SelfEmployment, Frequency: enums.Monthly},
	}})

	b := Compute(req)

	want := (1000.0 * 12.0) + (500.0 * 12.0)
	if b.IncomeHeadAndSpouseEarnedYearly != want {
		t.Errorf("IncomeHeadAndSpouseEarnedYearly = %v, want %v", b.IncomeHeadAndSpouseEarnedYearly, want)
	}
}
