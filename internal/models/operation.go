package models

import "github.com/comptes-app/backend/internal/types"

// Operation is a dated monetary movement on an account.
type Operation struct {
	ID        string      `json:"id"`
	AccountID string      `json:"accountId"` // id of the owning account
	Label     string      `json:"label"`
	Amount    types.Money `json:"amount"`
	// CategoryID is empty for uncategorized operations. Uncategorized is
	// a normal state, reports group those operations under the synthetic
	// undefined category.
	CategoryID string     `json:"categoryId"`
	Date       types.Date `json:"date"`
	Note       string     `json:"note"`
	// IsBudget marks a forecast entry. Budget operations are excluded
	// from the realized income and expense sums.
	IsBudget bool `json:"isBudget"`
	// LinkedOperationID is a weak link to a related operation, e.g. the
	// other half of a transfer. Deleting the target leaves the link
	// dangling, readers must not dereference it blindly.
	LinkedOperationID string `json:"linkedOperationId"`
}
