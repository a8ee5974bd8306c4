// Package legacy rewrites the older Drools command-list payload shape into
// the canonical eligibility request shape, so the rest of the pipeline
// never has to know the legacy format existed.
package legacy

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cast"
)

// Detect reports whether raw is a legacy command-list payload: the
// top-level key "commands" is present and is a JSON array.
func Detect(raw []byte) bool {
	var probe struct {
		Commands json.RawMessage `json:"commands"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil || probe.Commands == nil {
		return false
	}
	var arr []json.RawMessage
	return json.Unmarshal(probe.Commands, &arr) == nil && arr != nil
}

type insertCommand struct {
	Insert struct {
		Object map[string]map[string]any `json:"object"`
	} `json:"insert"`
}

// Convert rewrites a legacy payload into canonical-shape JSON bytes. It
// returns ok=false when neither a household nor any persons could be
// extracted, matching the source's "nothing to convert" failure.
func Convert(raw []byte) ([]byte, bool) {
	var payload struct {
		Commands []insertCommand `json:"commands"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}

	var householdData map[string]any
	var personsData []map[string]any

	for _, cmd := range payload.Commands {
		if obj, ok := cmd.Insert.Object["accessnyc.request.Household"]; ok {
			householdData = obj
		}
		if obj, ok := cmd.Insert.Object["accessnyc.request.Person"]; ok {
			personsData = append(personsData, obj)
		}
	}

	if householdData == nil && len(personsData) == 0 {
		return nil, false
	}

	out := map[string]any{"withholdPayload": true}

	if householdData != nil {
		out["household"] = []any{convertHousehold(householdData)}
	} else {
		out["household"] = []any{}
	}

	if len(personsData) > 0 {
		persons := make([]any, 0, len(personsData))
		for _, p := range personsData {
			persons = append(persons, convertPerson(p))
		}
		out["person"] = persons
	} else {
		out["person"] = []any{}
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return nil, false
	}
	return encoded, true
}

func boolFromString(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return strings.EqualFold(t, "true")
	default:
		return false
	}
}

func numberFrom(v any) (float64, bool) {
	if v == nil || v == "" {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, false
	}
	return f, true
}

var householdBooleanFields = []string{
	"livingPreferNotToSay", "livingRenting", "livingOwner",
	"livingStayingWithFriend", "livingHotel", "livingShelter",
}

func convertHousehold(old map[string]any) map[string]any {
	h := map[string]any{}

	if raw, ok := old["cashOnHand"]; ok {
		if cash, ok := numberFrom(raw); ok {
			h["cashOnHand"] = cash
		}
	}

	if raw, ok := old["livingRentalType"]; ok {
		h["livingRentalType"] = raw
	}

	for _, field := range householdBooleanFields {
		if raw, ok := old[field]; ok {
			h[field] = boolFromString(raw)
		}
	}

	return h
}

var personBooleanFields = []string{
	"student", "pregnant", "studentFulltime", "blind", "disabled",
	"veteran", "unemployed", "unemployedWorkedLast18Months",
	"benefitsMedicaid", "benefitsMedicaidDisability",
	"livingOwnerOnDeed", "livingRentalOnLease",
}

func convertPerson(old map[string]any) map[string]any {
	p := map[string]any{}

	if raw, ok := old["age"]; ok {
		if age, ok := numberFrom(raw); ok {
			p["age"] = int(age)
		}
	}

	_, hasApplicant := old["applicant"]
	_, hasHeadOfHousehold := old["headOfHousehold"]
	if hasApplicant || hasHeadOfHousehold {
		isHoH := boolFromString(old["applicant"]) || boolFromString(old["headOfHousehold"])
		if isHoH {
			p["householdMemberType"] = "HeadOfHousehold"
		} else {
			p["householdMemberType"] = "HouseholdMember"
		}
	}

	for _, field := range personBooleanFields {
		if raw, ok := old[field]; ok {
			p[field] = boolFromString(raw)
		}
	}

	if raw, ok := old["incomes"]; ok {
		if items, ok := raw.([]any); ok {
			incomes := convertIncomeExpenseList(items, true)
			if len(incomes) > 0 {
				p["incomes"] = incomes
			}
		}
	}

	if raw, ok := old["expenses"]; ok {
		if items, ok := raw.([]any); ok {
			expenses := convertIncomeExpenseList(items, false)
			if len(expenses) > 0 {
				p["expenses"] = expenses
			}
		}
	}

	return p
}

// convertIncomeExpenseList converts a legacy income/expense list. Income
// entries with no usable amount are dropped entirely; expenses are kept
// even without an amount, matching the source's asymmetric filter.
func convertIncomeExpenseList(items []any, requireAmount bool) []any {
	out := make([]any, 0, len(items))
	for _, raw := range items {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		converted := map[string]any{}
		hasAmount := false
		if amountRaw, ok := entry["amount"]; ok {
			if amount, ok := numberFrom(amountRaw); ok {
				converted["amount"] = amount
				hasAmount = true
			}
		}
		if t, ok := entry["type"]; ok {
			converted["type"] = t
		}
		if freqRaw, ok := entry["frequency"]; ok {
			if freq, ok := freqRaw.(string); ok && freq != "" {
				converted["frequency"] = capitalize(freq)
			} else {
				converted["frequency"] = freqRaw
			}
		}
		if requireAmount && !hasAmount {
			continue
		}
		if len(converted) == 0 {
			continue
		}
		out = append(out, converted)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
