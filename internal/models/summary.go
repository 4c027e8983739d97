package models

import (
	"time"

	"github.com/comptes-app/backend/internal/types"
)

// MonthSummary aggregates the realized activity of one month.
//
// All fields are nil for months without any operations. This
// distinguishes "no activity" from "net-zero activity" in reports: a
// month that only nets out to zero still shows its zeros.
type MonthSummary struct {
	Income   *types.Money `json:"income"`   // sum of positive, non-budget amounts
	Expenses *types.Money `json:"expenses"` // sum of non-positive, non-budget amounts
	Total    *types.Money `json:"total"`    // income + expenses
	Balance  *types.Money `json:"balance"`  // account balance at the end of the month
}

// YearSummary aggregates an account's activity over one year.
type YearSummary struct {
	Months   [12]MonthSummary `json:"months"`
	Income   types.Money      `json:"income"`
	Expenses types.Money      `json:"expenses"`
	Total    types.Money      `json:"total"` // equals the sum of the month totals
}

// YearSummary computes the month-by-month summary of an account for a
// year. Budget operations count as activity but are excluded from the
// income, expense and total sums.
func (p *Project) YearSummary(account *Account, year int) (YearSummary, error) {
	if p.Account(account.ID) == nil {
		return YearSummary{}, ErrForeignAccount
	}

	var summary YearSummary
	for i := 0; i < 12; i++ {
		month := time.Month(i + 1)

		operations := p.OperationsForMonth(account, year, month)
		if len(operations) == 0 {
			continue
		}

		var income, expenses types.Money
		for _, o := range operations {
			if o.IsBudget {
				continue
			}

			if o.Amount.IsPositive() {
				income = income.Add(o.Amount)
			} else {
				expenses = expenses.Add(o.Amount)
			}
		}
		total := income.Add(expenses)

		endOfMonth := types.LastDayOfMonth(year, month)
		balance, err := p.Balance(account, &endOfMonth)
		if err != nil {
			return YearSummary{}, err
		}

		summary.Months[i] = MonthSummary{
			Income:   &income,
			Expenses: &expenses,
			Total:    &total,
			Balance:  &balance,
		}

		summary.Income = summary.Income.Add(income)
		summary.Expenses = summary.Expenses.Add(expenses)
		summary.Total = summary.Total.Add(total)
	}

	return summary, nil
}

// CategorySummary holds the monthly sums of the operations matching one
// category or category group over a year.
type CategorySummary struct {
	Months [12]types.Money `json:"months"`
	Total  types.Money     `json:"total"` // the sum of the 12 month values
}

// MonthlyAverage returns the year total divided over 12 months. The
// division truncates toward zero, remainder cents are dropped.
func (s CategorySummary) MonthlyAverage() types.Money {
	return s.Total.Div(12)
}

// CategorySummary sums the non-budget operations of one category on an
// account per month of a year. The undefined category matches
// uncategorized operations.
func (p *Project) CategorySummary(category *Category, account *Account, year int) (CategorySummary, error) {
	if p.Account(account.ID) == nil {
		return CategorySummary{}, ErrForeignAccount
	}

	match := func(o *Operation) bool { return o.CategoryID == category.ID }
	if category.ID == p.undefined.ID {
		match = func(o *Operation) bool { return o.CategoryID == "" }
	}

	return p.categorySummary(match, account, year), nil
}

// GroupSummary sums the non-budget operations whose category falls under
// the group, per month of a year on an account.
func (p *Project) GroupSummary(group *CategoryGroup, account *Account, year int) (CategorySummary, error) {
	if p.Account(account.ID) == nil {
		return CategorySummary{}, ErrForeignAccount
	}

	members, err := p.CategoriesUnder(group)
	if err != nil {
		return CategorySummary{}, err
	}

	ids := make(map[string]bool, len(members))
	for _, c := range members {
		ids[c.ID] = true
	}

	return p.categorySummary(func(o *Operation) bool { return ids[o.CategoryID] }, account, year), nil
}

// categorySummary accumulates the months and derives the total from
// them, so that the total always equals the sum of its parts.
func (p *Project) categorySummary(match func(*Operation) bool, account *Account, year int) CategorySummary {
	var summary CategorySummary
	for _, o := range p.OperationsForYear(account, year) {
		if o.IsBudget || !match(o) {
			continue
		}

		summary.Months[int(o.Date.Month())-1] = summary.Months[int(o.Date.Month())-1].Add(o.Amount)
	}

	for _, month := range summary.Months {
		summary.Total = summary.Total.Add(month)
	}

	return summary
}
