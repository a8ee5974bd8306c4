package request

import (
	"fmt"
	"testing"
)

func validPayload() string {
	return `{
		"household": [{"livingRenting": true, "livingRentalType": "MarketRate"}],
		"person": [
			{"age": 35, "householdMemberType": "HeadOfHousehold"},
			{"age": 8, "householdMemberType": "Child"}
		]
	}`
}

func TestParse_ValidPayload(t *testing.T) {
	req, errs := Parse([]byte(validPayload()))
	if errs != nil {
		t.Fatalf("Parse() returned errors: %v", errs)
	}
	if len(req.Person) != 2 {
		t.Fatalf("len(Person) = %d, want 2", len(req.Person))
	}
	if req.Person[0].Age != 35 {
		t.Errorf("Person[0].Age = %d, want 35", req.Person[0].Age)
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	_, errs := Parse([]byte(`not json`))
	if errs == nil {
		t.Fatal("expected errors for invalid JSON")
	}
}

func TestParse_MissingHeadOfHousehold(t *testing.T) {
	body := `{
		"household": [{}],
		"person": [{"age": 10, "householdMemberType": "Child"}]
	}`
	_, errs := Parse([]byte(body))
	if errs == nil {
		t.Fatal("expected an invariant error when no HeadOfHousehold is present")
	}
}

func TestParse_TwoHeadsOfHousehold(t *testing.T) {
	body := `{
		"household": [{}],
		"person": [
			{"age": 40, "householdMemberType": "HeadOfHousehold"},
			{"age": 41, "householdMemberType": "HeadOfHousehold"}
		]
	}`
	_, errs := Parse([]byte(body))
	if errs == nil {
		t.Fatal("expected an invariant error for two HeadOfHousehold entries")
	}
}

func TestParse_PersonCountBounds(t *testing.T) {
	// Nine persons exceeds the 8-person maximum.
	persons := `{"age": 20, "householdMemberType": "HeadOfHousehold"},`
	body := fmt.Sprintf(`{"household":[{}],"person":[%s%s%s%s%s%s%s%s%s]}`,
		persons, persons, persons, persons, persons, persons, persons, persons,
		`{"age":20,"householdMemberType":"Child"}`)

	_, errs := Parse([]byte(body))
	if errs == nil {
		t.Fatal("expected an error when household exceeds 8 persons")
	}
}

func TestParse_RentalTypeRequiresRenting(t *testing.T) {
	body := `{
		"household": [{"livingRenting": false, "livingRentalType": "MarketRate"}],
		"person": [{"age": 30, "householdMemberType": "HeadOfHousehold"}]
	}`
	_, errs := Parse([]byte(body))
	if errs == nil {
		t.Fatal("expected an error when livingRentalType is set without livingRenting")
	}
}

func TestParse_SnakeCaseAliasAccepted(t *testing.T) {
	body := `{
		"household": [{"living_renting": true}],
		"person": [{"age": 30, "household_member_type": "HeadOfHousehold"}]
	}`
	req, errs := Parse([]byte(body))
	if errs != nil {
		t.Fatalf("Parse() with snake_case aliases returned errors: %v", errs)
	}
	if !req.Household[0].LivingRenting {
		t.Error("expected livingRenting to be true via snake_case alias")
	}
}

func TestParse_AmountPrecisionRejected(t *testing.T) {
	body := `{
		"household": [{}],
		"person": [{
			"age": 30,
			"householdMemberType": "HeadOfHousehold",
			"incomes": [{"amount": "100.999", "type": "Wages", "frequency": "Monthly"}]
		}]
	}`
	_, errs := Parse([]byte(body))
	if errs == nil {
		t.Fatal("expected an error for an amount with three decimal places")
	}
}

func TestParse_IsDeterministic(t *testing.T) {
	body := []byte(validPayload())
	req1, errs1 := Parse(body)
	req2, errs2 := Parse(body)
	if errs1 != nil || errs2 != nil {
		t.Fatalf("unexpected errors: %v / %v", errs1, errs2)
	}
	if req1.Person[0].Age != req2.Person[0].Age {
		t.Error("Parse() is not deterministic across repeated calls")
	}
}
