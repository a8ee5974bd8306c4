package request

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nycopportunity/benefits-screener/enums"
)

// ParseHousehold decodes a single household entry with alias support.
func ParseHousehold(data []byte, path string) (Household, []error) {
	var errs []error
	fields, err := rawFields(data)
	if err != nil {
		return Household{}, []error{newErr(path, "expected an object")}
	}

	var h Household

	if raw, ok := lookup(fields, "caseId", "case_id"); ok {
		s, e := decodeTrimmedString(raw, path+".caseId")
		if e != nil {
			errs = append(errs, e)
		} else if verr := validation.Validate(s, validation.Match(caseIDPattern), validation.Length(0, 64)); verr != nil {
			errs = append(errs, newErr(path+".caseId", "%s", verr))
		} else {
			h.CaseID = s
		}
	}

	if raw, ok := lookup(fields, "cashOnHand", "cash_on_hand"); ok {
		v, e := decodeAmount(raw, path+".cashOnHand", cashOnHandPattern, 9999999.99)
		if e != nil {
			errs = append(errs, e)
		} else {
			h.CashOnHand = &v
		}
	}

	if raw, ok := lookup(fields, "livingRentalType", "living_rental_type"); ok {
		s, e := decodeTrimmedString(raw, path+".livingRentalType")
		if e != nil {
			errs = append(errs, e)
		} else {
			t, perr := enums.ParseLivingRentalType(s)
			if perr != nil {
				errs = append(errs, newErr(path+".livingRentalType", "%s", perr))
			} else {
				h.LivingRentalType = &t
			}
		}
	}

	boolFields := []struct {
		dst     *bool
		path    string
		aliases []string
	}{
		{&h.LivingRenting, path + ".livingRenting", []string{"livingRenting", "living_renting"}},
		{&h.LivingOwner, path + ".livingOwner", []string{"livingOwner", "living_owner"}},
		{&h.LivingStayingWithFriend, path + ".livingStayingWithFriend", []string{"livingStayingWithFriend", "living_staying_with_friend"}},
		{&h.LivingHotel, path + ".livingHotel", []string{"livingHotel", "living_hotel"}},
		{&h.LivingShelter, path + ".livingShelter", []string{"livingShelter", "living_shelter"}},
		{&h.LivingPreferNotToSay, path + ".livingPreferNotToSay", []string{"livingPreferNotToSay", "living_prefer_not_to_say"}},
	}
	for _, bf := range boolFields {
		if raw, ok := lookup(fields, bf.aliases...); ok {
			v, e := decodeBool(raw, bf.path)
			if e != nil {
				errs = append(errs, e)
			} else {
				*bf.dst = v
			}
		}
	}

	return h, errs
}

// ParsePerson decodes a single person entry with alias support.
func ParsePerson(data []byte, path string) (Person, []error) {
	var errs []error
	fields, err := rawFields(data)
	if err != nil {
		return Person{}, []error{newErr(path, "expected an object")}
	}

	var p Person

	if raw, ok := lookup(fields, "age"); ok {
		var age int
		if e := json.Unmarshal(raw, &age); e != nil {
			errs = append(errs, newErr(path+".age", "expected an integer"))
		} else if verr := validation.Validate(age, validation.Min(0), validation.Max(150)); verr != nil {
			errs = append(errs, newErr(path+".age", "%s", verr))
		} else {
			p.Age = age
		}
	} else {
		errs = append(errs, newErr(path+".age", "required"))
	}

	boolFields := []struct {
		dst     *bool
		path    string
		aliases []string
	}{
		{&p.Student, path + ".student", []string{"student"}},
		{&p.StudentFulltime, path + ".studentFulltime", []string{"studentFulltime", "student_fulltime"}},
		{&p.Pregnant, path + ".pregnant", []string{"pregnant"}},
		{&p.Unemployed, path + ".unemployed", []string{"unemployed"}},
		{&p.UnemployedWorkedLast18Months, path + ".unemployedWorkedLast18Months", []string{"unemployedWorkedLast18Months", "unemployed_worked_last_18_months"}},
		{&p.Blind, path + ".blind", []string{"blind"}},
		{&p.Disabled, path + ".disabled", []string{"disabled"}},
		{&p.Veteran, path + ".veteran", []string{"veteran"}},
		{&p.BenefitsMedicaid, path + ".benefitsMedicaid", []string{"benefitsMedicaid", "benefits_medicaid"}},
		{&p.BenefitsMedicaidDisability, path + ".benefitsMedicaidDisability", []string{"benefitsMedicaidDisability", "benefits_medicaid_disability"}},
		{&p.LivingOwnerOnDeed, path + ".livingOwnerOnDeed", []string{"livingOwnerOnDeed", "living_owner_on_deed"}},
		{&p.LivingRentalOnLease, path + ".livingRentalOnLease", []string{"livingRentalOnLease", "living_rental_on_lease"}},
	}
	for _, bf := range boolFields {
		if raw, ok := lookup(fields, bf.aliases...); ok {
			v, e := decodeBool(raw, bf.path)
			if e != nil {
				errs = append(errs, e)
			} else {
				*bf.dst = v
			}
		}
	}

	if raw, ok := lookup(fields, "householdMemberType", "household_member_type"); ok {
		s, e := decodeTrimmedString(raw, path+".householdMemberType")
		if e != nil {
			errs = append(errs, e)
		} else {
			t, perr := enums.ParseHouseholdMemberType(s)
			if perr != nil {
				errs = append(errs, newErr(path+".householdMemberType", "%s", perr))
			} else {
				p.HouseholdMemberType = t
			}
		}
	} else {
		errs = append(errs, newErr(path+".householdMemberType", "required"))
	}

	if raw, ok := lookup(fields, "incomes"); ok {
		var items []json.RawMessage
		if e := json.Unmarshal(raw, &items); e != nil {
			errs = append(errs, newErr(path+".incomes", "expected an array"))
		} else {
			for i, item := range items {
				inc, ierrs := ParseIncome(item, pathIndex(path+".incomes", i))
				errs = append(errs, ierrs...)
				p.Incomes = append(p.Incomes, inc)
			}
		}
	}

	if raw, ok := lookup(fields, "expenses"); ok {
		var items []json.RawMessage
		if e := json.Unmarshal(raw, &items); e != nil {
			errs = append(errs, newErr(path+".expenses", "expected an array"))
		} else {
			for i, item := range items {
				exp, eerrs := ParseExpense(item, pathIndex(path+".expenses", i))
				errs = append(errs, eerrs...)
				p.Expenses = append(p.Expenses, exp)
			}
		}
	}

	return p, errs
}

func pathIndex(base string, i int) string {
	return base + "[" + itoa(i) + "]"
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// Parse decodes and validates a raw canonical-shape JSON body, returning a
// validated, immutable request or the ordered list of "path -> diagnostic"
// errors §4.B requires. No partial request is ever returned on failure.
func Parse(raw []byte) (*Eligibility, []string) {
	fields, err := rawFields(raw)
	if err != nil {
		return nil, []string{"body -> invalid JSON object"}
	}

	var errs []error
	var req Eligibility

	if rawVal, ok := lookup(fields, "withholdPayload", "withhold_payload"); ok {
		v, e := decodeBool(rawVal, "withholdPayload")
		if e != nil {
			errs = append(errs, e)
		} else {
			req.WithholdPayload = v
		}
	}

	if rawVal, ok := lookup(fields, "household"); ok {
		var items []json.RawMessage
		if e := json.Unmarshal(rawVal, &items); e != nil {
			errs = append(errs, newErr("household", "expected an array"))
		} else if len(items) < 1 || len(items) > 1 {
			errs = append(errs, newErr("household", "must contain exactly one entry"))
		} else {
			h, herrs := ParseHousehold(items[0], "household[0]")
			errs = append(errs, herrs...)
			req.Household = []Household{h}
		}
	} else {
		errs = append(errs, newErr("household", "required"))
	}

	if rawVal, ok := lookup(fields, "person"); ok {
		var items []json.RawMessage
		if e := json.Unmarshal(rawVal, &items); e != nil {
			errs = append(errs, newErr("person", "expected an array"))
		} else if len(items) < 1 || len(items) > 8 {
			errs = append(errs, newErr("person", "must contain between 1 and 8 entries"))
		} else {
			for i, item := range items {
				p, perrs := ParsePerson(item, pathIndex("person", i))
				errs = append(errs, perrs...)
				req.Person = append(req.Person, p)
			}
		}
	} else {
		errs = append(errs, newErr("person", "required"))
	}

	if len(errs) > 0 {
		return nil, toMessages(errs)
	}

	if invErrs := validateInvariants(&req); len(invErrs) > 0 {
		return nil, toMessages(invErrs)
	}

	return &req, nil
}

func toMessages(errs []error) []string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return msgs
}

// validateInvariants checks the five cross-field rules in the order §3
// lists them, producing one error per violated invariant.
func validateInvariants(req *Eligibility) []error {
	var errs []error

	headCount := 0
	for _, p := range req.Person {
		if p.HouseholdMemberType == enums.HeadOfHousehold {
			headCount++
		}
	}
	if headCount != 1 {
		errs = append(errs, newErr("person", "exactly one person's householdMemberType must be HeadOfHousehold"))
	}

	if len(req.Household) == 1 {
		h := req.Household[0]

		if h.LivingRentalType != nil && !h.LivingRenting {
			errs = append(errs, newErr("household.livingRentalType", "livingRenting must be true if livingRentalType is specified"))
		}

		if h.LivingPreferNotToSay {
			if h.LivingRenting || h.LivingOwner || h.LivingStayingWithFriend || h.LivingHotel || h.LivingShelter {
				errs = append(errs, newErr("household.livingPreferNotToSay", "other living flags must be false when livingPreferNotToSay is true"))
			}
		}

		if !h.LivingRenting {
			for i, p := range req.Person {
				if p.LivingRentalOnLease {
					errs = append(errs, newErr(pathIndex("person", i)+".livingRentalOnLease", "must be false when household.livingRenting is false"))
					break
				}
			}
		}

		if !h.LivingOwner {
			for i, p := range req.Person {
				if p.LivingOwnerOnDeed {
					errs = append(errs, newErr(pathIndex("person", i)+".livingOwnerOnDeed", "must be false when household.livingOwner is false"))
					break
				}
			}
		}
	}

	return errs
}
