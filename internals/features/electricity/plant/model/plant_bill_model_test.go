package model

import "testing"

func TestClassifyBillTypePeriodic(t *testing.T) {
	for _, tag := range PeriodicBillTypes {
		if got := ClassifyBillType(tag); got != FamilyPeriodic {
			t.Errorf("ClassifyBillType(%q) = %v, want FamilyPeriodic", tag, got)
		}
	}
}

func TestClassifyBillTypeMonthly(t *testing.T) {
	for _, tag := range MonthlyBillTypes {
		if got := ClassifyBillType(tag); got != FamilyMonthly {
			t.Errorf("ClassifyBillType(%q) = %v, want FamilyMonthly", tag, got)
		}
	}
}

func TestClassifyBillTypeUnknown(t *testing.T) {
	for _, tag := range []string{"", "amc ", "AMC", "challans", "rent"} {
		if got := ClassifyBillType(tag); got != FamilyUnknown {
			t.Errorf("ClassifyBillType(%q) = %v, want FamilyUnknown", tag, got)
		}
	}
}

func TestAllBillTypes(t *testing.T) {
	all := AllBillTypes()
	if len(all) != 8 {
		t.Fatalf("len(AllBillTypes()) = %d, want 8", len(all))
	}
	seen := map[string]bool{}
	for _, tag := range all {
		if seen[tag] {
			t.Errorf("duplicate tag %q", tag)
		}
		seen[tag] = true
		if ClassifyBillType(tag) == FamilyUnknown {
			t.Errorf("tag %q does not classify", tag)
		}
	}
}
