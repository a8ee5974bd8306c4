package screening

import (
	"encoding/json"
	"testing"

	"github.com/nycopportunity/benefits-screener/aggregate"
	_ "github.com/nycopportunity/benefits-screener/rules/catalog"
)

func validBody() []byte {
	return []byte(`{
		"household": [{"livingRenting": true}],
		"person": [
			{"age": 35, "householdMemberType": "HeadOfHousehold"},
			{"age": 8, "householdMemberType": "Child", "student": true}
		]
	}`)
}

func TestScreen_SuccessPopulatesResponse(t *testing.T) {
	resp := Screen(validBody())
	if !resp.Success {
		t.Fatalf("Screen() failed: %v", resp.Errors)
	}
	if resp.TotalProgramsEligible != len(resp.EligiblePrograms) {
		t.Errorf("TotalProgramsEligible = %d, want %d", resp.TotalProgramsEligible, len(resp.EligiblePrograms))
	}
	found := false
	for _, code := range resp.EligiblePrograms {
		if code == "S2R011" {
			found = true
		}
	}
	if !found {
		t.Error("expected the universal program S2R011 to always be eligible")
	}
}

func TestScreen_IsDeterministic(t *testing.T) {
	body := validBody()
	r1 := Screen(body)
	r2 := Screen(body)
	if len(r1.EligiblePrograms) != len(r2.EligiblePrograms) {
		t.Error("Screen() produced different results for identical input")
	}
}

func TestScreen_ValidationErrorsSurfaced(t *testing.T) {
	resp := Screen([]byte(`{"household": [{}], "person": []}`))
	if resp.Success {
		t.Fatal("expected Screen() to fail for an empty person list")
	}
	if len(resp.Errors) == 0 {
		t.Error("expected validation errors to be populated")
	}
}

func TestScreen_MalformedJSON(t *testing.T) {
	resp := Screen([]byte(`not json at all`))
	if resp.Success {
		t.Fatal("expected Screen() to fail for malformed JSON")
	}
}

func TestScreen_LegacyPayloadIsConverted(t *testing.T) {
	// No household command is present, so legacy.Convert emits an empty
	// household list and Parse rejects it for failing the min-length-1
	// invariant: the conversion runs, but the converted payload is still
	// an invalid request.
	legacyBody := []byte(`{
		"commands": [
			{"insert": {"object": {"accessnyc.request.Person": {
				"age": "30",
				"applicant": "true"
			}}}}
		]
	}`)
	resp := Screen(legacyBody)
	if resp.Success {
		t.Fatal("expected conversion to succeed but validation to fail for a missing household")
	}
	found := false
	for _, e := range resp.Errors {
		if e == "household -> must contain exactly one entry" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a household min-length error, got: %v", resp.Errors)
	}
}

func TestEvaluateOne_IsolatesPanickingRule(t *testing.T) {
	panicking := panicRule{}
	b := &aggregate.Bundle{}
	if evaluateOne(panicking, b) {
		t.Error("a panicking rule should be treated as not eligible, not as true")
	}
}

type panicRule struct{}

func (panicRule) Code() string        { return "TEST_PANIC" }
func (panicRule) Description() string { return "always panics" }
func (panicRule) Evaluate(_ *aggregate.Bundle) bool {
	panic("boom")
}

func TestValidBody_IsValidJSON(t *testing.T) {
	var decoded map[string]any
	if err := json.Unmarshal(validBody(), &decoded); err != nil {
		t.Fatalf("fixture body is not valid JSON: %v", err)
	}
}
