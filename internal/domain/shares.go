package domain

import "github.com/shopspring/decimal"

var (
	three = decimal.NewFromInt(3)
	two   = decimal.NewFromInt(2)
)

// RegionTotals holds summed income-project costs per classifier.
type RegionTotals struct {
	Saudi decimal.Decimal
	Mah   decimal.Decimal
	Egypt decimal.Decimal
}

// Shares is the fixed-ratio split of the regional totals.
type Shares struct {
	Total      decimal.Decimal
	Marketing  decimal.Decimal
	MainOffice decimal.Decimal
	Clearance  decimal.Decimal
}

// ComputeShares splits regional totals between stakeholders:
//
//	total      = saudi + mah + egypt
//	marketing  = mah + 2/3 saudi + 2/3 egypt
//	mainOffice = 1/3 saudi + 1/3 egypt
//	clearance  = 2/3 saudi + mah - 1/3 egypt
//
// Nothing is rounded here.
func ComputeShares(t RegionTotals) Shares {
	thirdSaudi := t.Saudi.Div(three)
	thirdEgypt := t.Egypt.Div(three)
	twoThirdsSaudi := t.Saudi.Mul(two).Div(three)
	twoThirdsEgypt := t.Egypt.Mul(two).Div(three)

	return Shares{
		Total:      t.Saudi.Add(t.Mah).Add(t.Egypt),
		Marketing:  t.Mah.Add(twoThirdsSaudi).Add(twoThirdsEgypt),
		MainOffice: thirdSaudi.Add(thirdEgypt),
		Clearance:  twoThirdsSaudi.Add(t.Mah).Sub(thirdEgypt),
	}
}

// SumByRegion folds income projects into per-region totals.
// Projects with an unknown region are ignored.
func SumByRegion(projects []IncomeProject) RegionTotals {
	totals := RegionTotals{Saudi: decimal.Zero, Mah: decimal.Zero, Egypt: decimal.Zero}
	for _, p := range projects {
		switch p.Region {
		case ProjectSaudi:
			totals.Saudi = totals.Saudi.Add(p.Cost)
		case ProjectMah:
			totals.Mah = totals.Mah.Add(p.Cost)
		case ProjectEgypt:
			totals.Egypt = totals.Egypt.Add(p.Cost)
		}
	}
	return totals
}
