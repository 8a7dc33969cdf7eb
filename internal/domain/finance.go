package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a signed monetary event in the base currency.
// Income is positive, expense negative.
type Transaction struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	DisplayDate *string
	CreatedAt   time.Time
}

// Kind derives the direction from the sign of the amount.
func (t Transaction) Kind() TransactionKind {
	if t.Amount.IsNegative() {
		return TransactionExpense
	}
	return TransactionIncome
}

// SignedAmount applies the direction of kind to a non-negative magnitude.
func SignedAmount(magnitude decimal.Decimal, kind TransactionKind) decimal.Decimal {
	magnitude = magnitude.Abs()
	if kind == TransactionExpense {
		return magnitude.Neg()
	}
	return magnitude
}

// Balance sums the signed amounts of all transactions.
func Balance(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// Sale is a revenue event with its associated expense, in the base currency.
type Sale struct {
	ID                 uuid.UUID
	SaleAmount         decimal.Decimal
	ExpenseAmount      decimal.Decimal
	ExpenseDescription string
	NetProfit          decimal.Decimal
	CreatedAt          time.Time
}

// NetProfit is the sale amount minus the expense amount.
func NetProfit(sale, expense decimal.Decimal) decimal.Decimal {
	return sale.Sub(expense)
}

// SalesTotals aggregates a list of sales.
type SalesTotals struct {
	Sales     decimal.Decimal
	Expenses  decimal.Decimal
	NetProfit decimal.Decimal
	Count     int
}

// SumSales totals sale amounts, expenses and net profit.
func SumSales(sales []Sale) SalesTotals {
	totals := SalesTotals{Sales: decimal.Zero, Expenses: decimal.Zero, NetProfit: decimal.Zero}
	for _, s := range sales {
		totals.Sales = totals.Sales.Add(s.SaleAmount)
		totals.Expenses = totals.Expenses.Add(s.ExpenseAmount)
		totals.NetProfit = totals.NetProfit.Add(s.NetProfit)
		totals.Count++
	}
	return totals
}

// IncomeProject is a cost entry booked under a region classifier.
type IncomeProject struct {
	ID          uuid.UUID
	Region      ProjectTag
	Name        string
	Cost        decimal.Decimal
	DisplayDate *string
	CreatedAt   time.Time
}
