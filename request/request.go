// Package request defines the canonical eligibility request shape and its
// JSON decoding, including dual canonical/alias field names and the
// amount-precision rules enforced at the wire boundary.
package request

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/nycopportunity/benefits-screener/enums"
)

var (
	amountPattern    = regexp.MustCompile(`^\d{0,12}(\.\d{1,2})?$`)
	cashOnHandPattern = regexp.MustCompile(`^\d{1,7}(\.\d{1,2})?$`)
	caseIDPattern    = regexp.MustCompile(`^[a-zA-Z0-9/.\-]{0,64}$`)
)

// Income is a single source of income reported for a person.
type Income struct {
	Amount    float64
	Type      enums.IncomeType
	Frequency enums.Frequency
}

// Expense is a single expense reported for a person.
type Expense struct {
	Amount    float64
	Type      enums.ExpenseType
	Frequency enums.Frequency
}

// Household carries household-level living-situation fields.
type Household struct {
	CaseID               string
	CashOnHand           *float64
	LivingRentalType     *enums.LivingRentalType
	LivingRenting        bool
	LivingOwner          bool
	LivingStayingWithFriend bool
	LivingHotel          bool
	LivingShelter        bool
	LivingPreferNotToSay bool
}

// Person carries a single household member's demographic, benefit, and
// income/expense fields.
type Person struct {
	Age                          int
	Student                      bool
	StudentFulltime              bool
	Pregnant                     bool
	Unemployed                   bool
	UnemployedWorkedLast18Months bool
	Blind                        bool
	Disabled                     bool
	Veteran                      bool
	BenefitsMedicaid             bool
	BenefitsMedicaidDisability   bool
	LivingOwnerOnDeed            bool
	LivingRentalOnLease          bool
	Incomes                      []Income
	Expenses                     []Expense
	HouseholdMemberType          enums.HouseholdMemberType
}

// Eligibility is the canonical top-level request.
type Eligibility struct {
	WithholdPayload bool
	Household       []Household
	Person          []Person
}

// fieldErr is one path -> diagnostic validation failure, in the wire format
// §4.B mandates ("path -> diagnostic").
type fieldErr struct {
	path string
	msg  string
}

func (e fieldErr) Error() string { return fmt.Sprintf("%s -> %s", e.path, e.msg) }

func newErr(path, format string, args ...any) fieldErr {
	return fieldErr{path: path, msg: fmt.Sprintf(format, args...)}
}

// rawFields decodes a JSON object into a lookup keyed by its literal keys,
// so alias resolution can try several candidate names against one payload.
func rawFields(data []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func lookup(m map[string]json.RawMessage, names ...string) (json.RawMessage, bool) {
	for _, n := range names {
		if v, ok := m[n]; ok {
			return v, true
		}
	}
	return nil, false
}

func decodeBool(raw json.RawMessage, path string) (bool, error) {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false, newErr(path, "expected a boolean")
	}
	return v, nil
}

func decodeTrimmedString(raw json.RawMessage, path string) (string, error) {
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", newErr(path, "expected a string")
	}
	return strings.TrimSpace(v), nil
}

// decodeAmount accepts either a JSON number or string token and validates
// that it carries at most two decimal places, matching the source's
// Decimal-exponent precision check without relying on float64 provenance.
func decodeAmount(raw json.RawMessage, path string, pattern *regexp.Regexp, max float64) (float64, error) {
	token := strings.TrimSpace(string(raw))
	token = strings.Trim(token, `"`)
	if err := validation.Validate(token, validation.Match(pattern)); err != nil {
		return 0, newErr(path, "must match pattern %q", pattern.String())
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, newErr(path, "not a valid number")
	}
	if err := validation.Validate(v, validation.Min(0.0), validation.Max(max)); err != nil {
		return 0, newErr(path, "%s", err)
	}
	return v, nil
}

// ParseIncome decodes a single income entry with alias support.
func ParseIncome(data []byte, path string) (Income, []error) {
	var errs []error
	fields, err := rawFields(data)
	if err != nil {
		return Income{}, []error{newErr(path, "expected an object")}
	}

	var inc Income
	if raw, ok := lookup(fields, "amount"); ok {
		v, e := decodeAmount(raw, path+".amount", amountPattern, 999999999999.99)
		if e != nil {
			errs = append(errs, e)
		}
		inc.Amount = v
	} else {
		errs = append(errs, newErr(path+".amount", "required"))
	}

	if raw, ok := lookup(fields, "type"); ok {
		s, e := decodeTrimmedString(raw, path+".type")
		if e == nil {
			t, perr := enums.ParseIncomeType(s)
			if perr != nil {
				errs = append(errs, newErr(path+".type", "%s", perr))
			}
			inc.Type = t
		} else {
			errs = append(errs, e)
		}
	} else {
		errs = append(errs, newErr(path+".type", "required"))
	}

	if raw, ok := lookup(fields, "frequency"); ok {
		s, e := decodeTrimmedString(raw, path+".frequency")
		if e == nil {
			f, perr := enums.ParseFrequency(s)
			if perr != nil {
				errs = append(errs, newErr(path+".frequency", "%s", perr))
			}
			inc.Frequency = f
		} else {
			errs = append(errs, e)
		}
	} else {
		errs = append(errs, newErr(path+".frequency", "required"))
	}

	return inc, errs
}

// ParseExpense decodes a single expense entry with alias support.
func ParseExpense(data []byte, path string) (Expense, []error) {
	var errs []error
	fields, err := rawFields(data)
	if err != nil {
		return Expense{}, []error{newErr(path, "expected an object")}
	}

	var exp Expense
	if raw, ok := lookup(fields, "amount"); ok {
		v, e := decodeAmount(raw, path+".amount", amountPattern, 999999999999.99)
		if e != nil {
			errs = append(errs, e)
		}
		exp.Amount = v
	} else {
		errs = append(errs, newErr(path+".amount", "required"))
	}

	if raw, ok := lookup(fields, "type"); ok {
		s, e := decodeTrimmedString(raw, path+".type")
		if e == nil {
			t, perr := enums.ParseExpenseType(s)
			if perr != nil {
				errs = append(errs, newErr(path+".type", "%s", perr))
			}
			exp.Type = t
		} else {
			errs = append(errs, e)
		}
	} else {
		errs = append(errs, newErr(path+".type", "required"))
	}

	if raw, ok := lookup(fields, "frequency"); ok {
		s, e := decodeTrimmedString(raw, path+".frequency")
		if e == nil {
			f, perr := enums.ParseFrequency(s)
			if perr != nil {
				errs = append(errs, newErr(path+".frequency", "%s", perr))
			}
			exp.Frequency = f
		} else {
			errs = append(errs, e)
		}
	} else {
		errs = append(errs, newErr(path+".frequency", "required"))
	}

	return exp, errs
}
