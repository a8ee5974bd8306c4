package request

import "testing"

func TestParsePerson_RequiresAge(t *testing.T) {
	_, errs := ParsePerson([]byte(`{"householdMemberType": "Child"}`), "person[0]")
	if len(errs) == 0 {
		t.Fatal("expected an error when age is missing")
	}
}

func TestParsePerson_RejectsAgeOutOfRange(t *testing.T) {
	_, errs := ParsePerson([]byte(`{"age": 200, "householdMemberType": "Child"}`), "person[0]")
	if len(errs) == 0 {
		t.Fatal("expected an error for age above 150")
	}
}

func TestParsePerson_IncomeAndExpenseLists(t *testing.T) {
	p, errs := ParsePerson([]byte(`{
		"age": 40,
		"householdMemberType": "HeadOfHousehold",
		"incomes": [{"amount": "500.00", "type": "Wages", "frequency": "Monthly"}],
		"expenses": [{"amount": "100.00", "type": "Rent", "frequency": "Monthly"}]
	}`), "person[0]")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(p.Incomes) != 1 || p.Incomes[0].Amount != 500.00 {
		t.Errorf("unexpected incomes: %+v", p.Incomes)
	}
	if len(p.Expenses) != 1 || p.Expenses[0].Amount != 100.00 {
		t.Errorf("unexpected expenses: %+v", p.Expenses)
	}
}

func TestParseHousehold_CaseIDPattern(t *testing.T) {
	_, errs := ParseHousehold([]byte(`{"caseId": "not valid! chars"}`), "household[0]")
	if len(errs) == 0 {
		t.Fatal("expected an error for a caseId with invalid characters")
	}
}

func TestValidateInvariants_PreferNotToSayExcludesOtherFlags(t *testing.T) {
	req := Eligibility{
		Household: []Household{{LivingPreferNotToSay: true, LivingRenting: true}},
		Person:    []Person{{HouseholdMemberType: "HeadOfHousehold"}},
	}
	errs := validateInvariants(&req)
	if len(errs) == 0 {
		t.Fatal("expected an invariant error when livingPreferNotToSay conflicts with livingRenting")
	}
}
