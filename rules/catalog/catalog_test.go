package catalog

import (
	"testing"

	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/request"
	"github.com/nycopportunity/benefits-screener/rules"
)

func emptyBundle() *aggregate.Bundle {
	req := &request.Eligibility{
		Household: []request.Household{{}},
		Person:    []request.Person{{HouseholdMemberType: enums.HeadOfHousehold, Age: 40}},
	}
	return aggregate.Compute(req)
}

func TestRegistry_HasNoDuplicateCodes(t *testing.T) {
	list := rules.Default.List()
	seen := make(map[string]bool, len(list))
	for _, r := range list {
		if seen[r.Code()] {
			t.Errorf("duplicate registration for program code %s", r.Code())
		}
		seen[r.Code()] = true
	}
}

func TestRegistry_UniversalRulesAlwaysTrue(t *testing.T) {
	b := emptyBundle()
	for _, code := range []string{"S2R011", "S2R056"} {
		found := false
		for _, r := range rules.Default.List() {
			if r.Code() == code {
				found = true
				if !r.Evaluate(b) {
					t.Errorf("%s should be eligible for every household", code)
				}
			}
		}
		if !found {
			t.Errorf("expected %s to be registered", code)
		}
	}
}

func TestAffordableConnectivityProgram_ClosedProgramNeverEligible(t *testing.T) {
	b := emptyBundle()
	for _, r := range rules.Default.List() {
		if r.Code() == "S2R053" {
			if r.Evaluate(b) {
				t.Error("S2R053 is a closed program and must never be eligible")
			}
			return
		}
	}
	t.Error("expected S2R053 to be registered")
}

func TestRegistry_IsDeterministic(t *testing.T) {
	b := emptyBundle()
	list := rules.Default.List()

	firstPass := make(map[string]bool, len(list))
	for _, r := range list {
		firstPass[r.Code()] = r.Evaluate(b)
	}
	for _, r := range list {
		if r.Evaluate(b) != firstPass[r.Code()] {
			t.Errorf("%s is not deterministic across repeated evaluations", r.Code())
		}
	}
}

func TestSnapCategoricallyEligible(t *testing.T) {
	req := &request.Eligibility{
		Household: []request.Household{{}},
		Person: []request.Person{
			{HouseholdMemberType: enums.HeadOfHousehold, Age: 40, Incomes: []request.Income{
				{Amount: 200, Type: enums.SSI, Frequency: enums.Monthly},
			}},
		},
	}
	b := aggregate.Compute(req)
	if !snapCategoricallyEligible(b) {
		t.Error("a household entirely on SSI should be categorically SNAP-eligible")
	}
}

func TestWorkforce1_RequiresAdult(t *testing.T) {
	noAdult := &aggregate.Bundle{Person: []request.Person{{Age: 10, HouseholdMemberType: enums.Child}}}
	if workforce1(noAdult) {
		t.Error("workforce1 should not be eligible with no adult present")
	}

	withAdult := &aggregate.Bundle{Person: []request.Person{{Age: 25, HouseholdMemberType: enums.HeadOfHousehold}}}
	if !workforce1(withAdult) {
		t.Error("workforce1 should be eligible when an adult is present")
	}
}
