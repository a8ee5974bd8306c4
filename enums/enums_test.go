package enums

import "testing"

func TestParseFrequency(t *testing.T) {
	cases := []struct {
		raw     string
		wantErr bool
	}{
		{"Weekly", false},
		{"Biweekly", false},
		{"Semimonthly", false},
		{"Monthly", false},
		{"Yearly", false},
		{"weekly", true},
		{"", true},
		{"Daily", true},
	}

	for _, c := range cases {
		got, err := ParseFrequency(c.raw)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseFrequency(%q) = %v, want error", c.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFrequency(%q) returned error: %v", c.raw, err)
		}
		if string(got) != c.raw {
			t.Errorf("ParseFrequency(%q) = %q, want %q", c.raw, got, c.raw)
		}
	}
}

func TestParseIncomeType_RejectsUnknown(t *testing.T) {
	if _, err := ParseIncomeType("NotARealType"); err == nil {
		t.Error("expected error for unknown income type")
	}
}

func TestParseExpenseType_AcceptsAllDeclaredMembers(t *testing.T) {
	for et := range validExpenseTypes {
		if _, err := ParseExpenseType(string(et)); err != nil {
			t.Errorf("ParseExpenseType(%q) returned error: %v", et, err)
		}
	}
}

func TestParseHouseholdMemberType_AcceptsAllDeclaredMembers(t *testing.T) {
	for mt := range validHouseholdMemberTypes {
		if _, err := ParseHouseholdMemberType(string(mt)); err != nil {
			t.Errorf("ParseHouseholdMemberType(%q) returned error: %v", mt, err)
		}
	}
}

func TestParseLivingRentalType_RejectsUnknown(t *testing.T) {
	if _, err := ParseLivingRentalType("Co-op"); err == nil {
		t.Error("expected error for unknown rental type")
	}
}
