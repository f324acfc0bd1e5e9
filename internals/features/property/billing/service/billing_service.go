package service

import "github.com/shopspring/decimal"

var (
	gstRate = decimal.NewFromFloat(0.18)
	tdsRate = decimal.NewFromFloat(0.10)
)

// MonthlyBill holds the computed components of one property bill, all rounded
// to 2 decimals.
type MonthlyBill struct {
	Rent           float64
	Maintenance    float64
	GST            float64
	TDS            float64
	AssessmentBill float64
	FinalAmount    float64
}

// ComputeMonthlyBill derives gst and tds from the rent and folds everything
// into the final amount: rent + maintenance + gst - tds. The assessment
// component is a placeholder fixed at zero.
func ComputeMonthlyBill(rent, maintenance float64) MonthlyBill {
	r := decimal.NewFromFloat(rent)
	m := decimal.NewFromFloat(maintenance)

	gst := r.Mul(gstRate).Round(2)
	tds := r.Mul(tdsRate).Round(2)
	final := r.Add(m).Add(gst).Sub(tds).Round(2)

	return MonthlyBill{
		Rent:           r.Round(2).InexactFloat64(),
		Maintenance:    m.Round(2).InexactFloat64(),
		GST:            gst.InexactFloat64(),
		TDS:            tds.InexactFloat64(),
		AssessmentBill: 0,
		FinalAmount:    final.InexactFloat64(),
	}
}
