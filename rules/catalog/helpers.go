package catalog

import (
	"github.com/nycopportunity/benefits-screener/aggregate"
	"github.com/nycopportunity/benefits-screener/enums"
	"github.com/nycopportunity/benefits-screener/request"
)

// Short local aliases kept for readability in threshold-heavy rule bodies.
const (
	headOfHouseholdType = enums.HeadOfHousehold
	spouseType          = enums.Spouse
	childType           = enums.Child
	stepChildType       = enums.StepChild
	fosterChildType     = enums.FosterChild
	fosterParentType    = enums.FosterParent

	ssiType          = enums.SSI
	ssDisabilityType = enums.SSDisability
	cashAssistanceType = enums.CashAssistance
	disabilityMedicaidType = enums.DisabilityMedicaid
)

func findHead(b *aggregate.Bundle) *request.Person {
	for i := range b.Person {
		if b.Person[i].HouseholdMemberType == headOfHouseholdType {
			return &b.Person[i]
		}
	}
	return nil
}

func scrieEligibleRentalType(t *enums.LivingRentalType) bool {
	if t == nil {
		return false
	}
	switch *t {
	case enums.RentControlled, enums.HDFC, enums.RentRegulatedHotel, enums.MitchellLama, enums.Section213:
		return true
	}
	return false
}

// thresholdBySize looks up a household-size-indexed table, extrapolating
// past the table's largest key using a fixed per-extra-member delta.
// If extraDelta is 0 and size exceeds the max key, the max key's value is
// used unchanged (matches program rules with no documented extrapolation).
func thresholdBySize(table map[int]float64, size int, maxKey int, extraDelta float64) float64 {
	if size > maxKey {
		return table[maxKey] + float64(size-maxKey)*extraDelta
	}
	if v, ok := table[size]; ok {
		return v
	}
	return table[maxKey]
}
