package models

import "fmt"

// Account represents a bank account operations belong to.
//
// An account does not store a balance. The balance is always derived
// from the operations that reference the account.
type Account struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"` // account number at the bank, may be empty
}

// String returns the display label of the account, e.g. "Joint (n°123456)".
func (a Account) String() string {
	if a.Number == "" {
		return a.Name
	}

	return fmt.Sprintf("%s (n°%s)", a.Name, a.Number)
}
