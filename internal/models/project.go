package models

import (
	"strconv"
	"time"

	"github.com/comptes-app/backend/internal/types"
	"golang.org/x/exp/slices"
)

// SchemaVersion is the snapshot schema tag written by new projects.
const SchemaVersion = "1"

// Project is the aggregate root. It owns all accounts, operations,
// categories and category groups. Entities reference each other by id
// and the ids only resolve within the collections of the same project.
//
// A Project is not safe for concurrent use, hosts synchronize access
// externally.
type Project struct {
	Version        string
	Accounts       []*Account
	Operations     []*Operation
	Categories     []*Category
	CategoryGroups []*CategoryGroup

	undefined *Category
}

// NewProject returns an empty project.
func NewProject() *Project {
	return &Project{
		Version: SchemaVersion,
		undefined: &Category{
			ID:    "undefined",
			Name:  "Undefined",
			Emoji: "❔",
		},
	}
}

// UndefinedCategory returns the synthetic category that reports use to
// label uncategorized operations. It is never stored in Categories and
// never referenced by an operation.
func (p *Project) UndefinedCategory() *Category {
	return p.undefined
}

// Account returns the account with the given id, or nil.
func (p *Project) Account(id string) *Account {
	for _, a := range p.Accounts {
		if a.ID == id {
			return a
		}
	}

	return nil
}

// Operation returns the operation with the given id, or nil.
func (p *Project) Operation(id string) *Operation {
	for _, o := range p.Operations {
		if o.ID == id {
			return o
		}
	}

	return nil
}

// Category returns the category with the given id, or nil.
func (p *Project) Category(id string) *Category {
	for _, c := range p.Categories {
		if c.ID == id {
			return c
		}
	}

	return nil
}

// CategoryGroup returns the category group with the given id, or nil.
func (p *Project) CategoryGroup(id string) *CategoryGroup {
	for _, g := range p.CategoryGroups {
		if g.ID == id {
			return g
		}
	}

	return nil
}

// AddAccount adds an account to the project, assigning an id if the
// account does not have one yet.
func (p *Project) AddAccount(a *Account) {
	if a.ID == "" {
		a.ID = newID()
	}
	p.Accounts = append(p.Accounts, a)
}

// AddOperation adds an operation to the project, assigning an id if the
// operation does not have one yet.
func (p *Project) AddOperation(o *Operation) {
	if o.ID == "" {
		o.ID = newID()
	}
	p.Operations = append(p.Operations, o)
}

// AddCategory adds a category to the project, assigning an id if the
// category does not have one yet.
func (p *Project) AddCategory(c *Category) {
	if c.ID == "" {
		c.ID = newID()
	}
	p.Categories = append(p.Categories, c)
}

// AddCategoryGroup adds a category group to the project, assigning an id
// if the group does not have one yet.
func (p *Project) AddCategoryGroup(g *CategoryGroup) {
	if g.ID == "" {
		g.ID = newID()
	}
	p.CategoryGroups = append(p.CategoryGroups, g)
}

// RemoveAccount removes the account with the given id. It reports
// whether an account was removed.
func (p *Project) RemoveAccount(id string) bool {
	for i, a := range p.Accounts {
		if a.ID == id {
			p.Accounts = slices.Delete(p.Accounts, i, i+1)
			return true
		}
	}

	return false
}

// RemoveOperation removes the operation with the given id. It reports
// whether an operation was removed.
//
// There is no cascade. Operations linking to the removed operation keep
// their now dangling LinkedOperationID.
func (p *Project) RemoveOperation(id string) bool {
	for i, o := range p.Operations {
		if o.ID == id {
			p.Operations = slices.Delete(p.Operations, i, i+1)
			return true
		}
	}

	return false
}

// RemoveCategory removes the category with the given id. It reports
// whether a category was removed.
func (p *Project) RemoveCategory(id string) bool {
	for i, c := range p.Categories {
		if c.ID == id {
			p.Categories = slices.Delete(p.Categories, i, i+1)
			return true
		}
	}

	return false
}

// RemoveCategoryGroup removes the category group with the given id. It
// reports whether a group was removed.
func (p *Project) RemoveCategoryGroup(id string) bool {
	for i, g := range p.CategoryGroups {
		if g.ID == id {
			p.CategoryGroups = slices.Delete(p.CategoryGroups, i, i+1)
			return true
		}
	}

	return false
}

// OperationsFor returns all operations of the account in project order.
func (p *Project) OperationsFor(account *Account) []*Operation {
	var operations []*Operation
	for _, o := range p.Operations {
		if o.AccountID == account.ID {
			operations = append(operations, o)
		}
	}

	return operations
}

// OperationsForYear returns all operations of the account in a year.
func (p *Project) OperationsForYear(account *Account, year int) []*Operation {
	var operations []*Operation
	for _, o := range p.OperationsFor(account) {
		if o.Date.Year() == year {
			operations = append(operations, o)
		}
	}

	return operations
}

// OperationsForMonth returns all operations of the account in a month.
func (p *Project) OperationsForMonth(account *Account, year int, month time.Month) []*Operation {
	var operations []*Operation
	for _, o := range p.OperationsForYear(account, year) {
		if o.Date.Month() == month {
			operations = append(operations, o)
		}
	}

	return operations
}

// Balance returns the balance of the account: the sum of all its
// operation amounts. With asOf set, only operations up to and including
// that date count. Integer addition is commutative, so the result does
// not depend on the order of the operations.
func (p *Project) Balance(account *Account, asOf *types.Date) (types.Money, error) {
	if p.Account(account.ID) == nil {
		return 0, ErrForeignAccount
	}

	var balance types.Money
	for _, o := range p.OperationsFor(account) {
		if asOf == nil || !o.Date.After(*asOf) {
			balance = balance.Add(o.Amount)
		}
	}

	return balance, nil
}

// Years returns the distinct years of all operations, most recent
// first. The years are strings, ready for display.
func (p *Project) Years() []string {
	var years []int
	for _, o := range p.Operations {
		if !slices.Contains(years, o.Date.Year()) {
			years = append(years, o.Date.Year())
		}
	}

	slices.SortFunc(years, func(a, b int) int { return b - a })

	display := make([]string, len(years))
	for i, y := range years {
		display[i] = strconv.Itoa(y)
	}

	return display
}
