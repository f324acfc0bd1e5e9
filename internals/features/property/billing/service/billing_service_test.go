package service

import "testing"

func TestComputeMonthlyBill(t *testing.T) {
	bill := ComputeMonthlyBill(10000, 500)

	if bill.GST != 1800.00 {
		t.Errorf("GST = %v, want 1800.00", bill.GST)
	}
	if bill.TDS != 1000.00 {
		t.Errorf("TDS = %v, want 1000.00", bill.TDS)
	}
	if bill.FinalAmount != 11300.00 {
		t.Errorf("FinalAmount = %v, want 11300.00", bill.FinalAmount)
	}
	if bill.AssessmentBill != 0 {
		t.Errorf("AssessmentBill = %v, want 0", bill.AssessmentBill)
	}
}

func TestComputeMonthlyBillRounding(t *testing.T) {
	// 0.18 * 1234.56 = 222.2208 -> 222.22; 0.10 * 1234.56 = 123.456 -> 123.46
	bill := ComputeMonthlyBill(1234.56, 0)

	if bill.GST != 222.22 {
		t.Errorf("GST = %v, want 222.22", bill.GST)
	}
	if bill.TDS != 123.46 {
		t.Errorf("TDS = %v, want 123.46", bill.TDS)
	}
	if bill.FinalAmount != 1333.32 {
		t.Errorf("FinalAmount = %v, want 1333.32", bill.FinalAmount)
	}
}

func TestComputeMonthlyBillZeroRent(t *testing.T) {
	bill := ComputeMonthlyBill(0, 750)
	if bill.GST != 0 || bill.TDS != 0 {
		t.Errorf("GST/TDS = %v/%v, want 0/0", bill.GST, bill.TDS)
	}
	if bill.FinalAmount != 750.00 {
		t.Errorf("FinalAmount = %v, want 750.00", bill.FinalAmount)
	}
}
