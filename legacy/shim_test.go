package legacy

import (
	"encoding/json"
	"testing"
)

func TestDetect_RecognizesCommandList(t *testing.T) {
	body := []byte(`{"commands": [{"insert": {"object": {}}}]}`)
	if !Detect(body) {
		t.Error("Detect() should recognize a commands array payload")
	}
}

func TestDetect_RejectsCanonicalPayload(t *testing.T) {
	body := []byte(`{"household": [], "person": []}`)
	if Detect(body) {
		t.Error("Detect() should not flag a canonical-shape payload as legacy")
	}
}

func TestConvert_ExtractsHouseholdAndPersons(t *testing.T) {
	body := []byte(`{
		"commands": [
			{"insert": {"object": {"accessnyc.request.Household": {
				"cashOnHand": "150.00",
				"livingShelter": "true"
			}}}},
			{"insert": {"object": {"accessnyc.request.Person": {
				"age": "35",
				"applicant": "true",
				"disabled": "false",
				"incomes": [{"amount": "500.00", "type": "Wages", "frequency": "monthly"}]
			}}}}
		]
	}`)

	out, ok := Convert(body)
	if !ok {
		t.Fatal("Convert() should succeed for a payload with household and person data")
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("Convert() produced invalid JSON: %v", err)
	}

	households, _ := decoded["household"].([]any)
	if len(households) != 1 {
		t.Fatalf("expected one household, got %d", len(households))
	}
	h := households[0].(map[string]any)
	if h["cashOnHand"].(float64) != 150.0 {
		t.Errorf("cashOnHand = %v, want 150.0", h["cashOnHand"])
	}
	if h["livingShelter"] != true {
		t.Errorf("livingShelter = %v, want true", h["livingShelter"])
	}

	persons, _ := decoded["person"].([]any)
	if len(persons) != 1 {
		t.Fatalf("expected one person, got %d", len(persons))
	}
	p := persons[0].(map[string]any)
	if p["householdMemberType"] != "HeadOfHousehold" {
		t.Errorf("householdMemberType = %v, want HeadOfHousehold", p["householdMemberType"])
	}
	incomes, _ := p["incomes"].([]any)
	if len(incomes) != 1 {
		t.Fatalf("expected one income entry, got %d", len(incomes))
	}
	income := incomes[0].(map[string]any)
	if income["frequency"] != "Monthly" {
		t.Errorf("frequency = %v, want capitalized Monthly", income["frequency"])
	}
}

func TestConvert_NothingToConvert(t *testing.T) {
	body := []byte(`{"commands": [{"insert": {"object": {}}}]}`)
	_, ok := Convert(body)
	if ok {
		t.Error("Convert() should fail when no household or person data is present")
	}
}

func TestConvertIncomeExpenseList_DropsIncomeWithoutAmount(t *testing.T) {
	items := []any{
		map[string]any{"type": "Wages", "frequency": "monthly"},
	}
	out := convertIncomeExpenseList(items, true)
	if len(out) != 0 {
		t.Errorf("expected income without an amount to be dropped, got %v", out)
	}
}

func TestConvertIncomeExpenseList_KeepsExpenseWithoutAmount(t *testing.T) {
	items := []any{
		map[string]any{"type": "Rent", "frequency": "monthly"},
	}
	out := convertIncomeExpenseList(items, false)
	if len(out) != 1 {
		t.Errorf("expected expense without an amount to be kept, got %v", out)
	}
}
