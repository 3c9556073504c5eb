package ledger

import "github.com/shopspring/decimal"

// Summary holds the totals derived from a DayRecord. It is never stored.
type Summary struct {
	Distance           decimal.Decimal
	FuelCost           decimal.Decimal
	TotalEarnings      decimal.Decimal
	TotalExtraExpenses decimal.Decimal
	TotalExpenses      decimal.Decimal
	NetProfit          decimal.Decimal
}

// ComputeSummary derives the day's financial summary. It never fails:
// malformed readings fall back to zero or to the default fuel rate.
func ComputeSummary(r DayRecord) Summary {
	start := r.StartOdometer.odometer()
	end := r.EndOdometer.odometer()

	distance := decimal.Zero
	if end.GreaterThan(start) {
		distance = end.Sub(start)
	}
	fuel := distance.Mul(r.FuelRate())

	earnings := sum(r.Earnings)
	extra := sum(r.ExtraExpenses)
	expenses := fuel.Add(extra)

	return Summary{
		Distance:           distance,
		FuelCost:           fuel,
		TotalEarnings:      earnings,
		TotalExtraExpenses: extra,
		TotalExpenses:      expenses,
		NetProfit:          earnings.Sub(expenses),
	}
}

func sum(list []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range list {
		total = total.Add(tx.Amount)
	}
	return total
}
