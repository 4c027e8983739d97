package models

import (
	"fmt"

	"github.com/comptes-app/backend/internal/types"
)

// Snapshot is the plain serializable representation of a project. Its
// JSON shape is the persisted project file format and part of the
// contract with external tooling: cross-entity references are written
// as ".id" keys, amounts and dates as their formatted strings.
type Snapshot struct {
	Version        string              `json:"version"`
	Accounts       []AccountData       `json:"accounts"`
	CategoryGroups []CategoryGroupData `json:"category_groups"`
	Categories     []CategoryData      `json:"categories"`
	Operations     []OperationData     `json:"operations"`
}

type AccountData struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

type CategoryGroupData struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    Color   `json:"color"`
	Emoji    string  `json:"emoji"`
	ParentID *string `json:"parent_category_group.id,omitempty"` // absent for root groups
}

type CategoryData struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	GroupID  string   `json:"category_group.id"`
	Keywords []string `json:"keywords"`
}

type OperationData struct {
	ID                string      `json:"id"`
	Date              types.Date  `json:"date"`
	Amount            types.Money `json:"amount"`
	Label             string      `json:"label"`
	Note              string      `json:"note"`
	AccountID         string      `json:"account.id"`
	CategoryID        *string     `json:"category.id"`
	LinkedOperationID *string     `json:"linked_operation.id"`
	IsBudget          bool        `json:"is_budget"`
}

// Snapshot returns the snapshot of the project, preserving collection
// order.
func (p *Project) Snapshot() Snapshot {
	snapshot := Snapshot{
		Version:        p.Version,
		Accounts:       make([]AccountData, 0, len(p.Accounts)),
		CategoryGroups: make([]CategoryGroupData, 0, len(p.CategoryGroups)),
		Categories:     make([]CategoryData, 0, len(p.Categories)),
		Operations:     make([]OperationData, 0, len(p.Operations)),
	}

	for _, a := range p.Accounts {
		snapshot.Accounts = append(snapshot.Accounts, AccountData{
			ID:     a.ID,
			Name:   a.Name,
			Number: a.Number,
		})
	}

	for _, g := range p.CategoryGroups {
		data := CategoryGroupData{
			ID:    g.ID,
			Name:  g.Name,
			Color: g.Color,
			Emoji: g.Emoji,
		}
		if g.ParentID != "" {
			parent := g.ParentID
			data.ParentID = &parent
		}

		snapshot.CategoryGroups = append(snapshot.CategoryGroups, data)
	}

	for _, c := range p.Categories {
		snapshot.Categories = append(snapshot.Categories, CategoryData{
			ID:       c.ID,
			Name:     c.Name,
			Emoji:    c.Emoji,
			GroupID:  c.GroupID,
			Keywords: c.Keywords,
		})
	}

	for _, o := range p.Operations {
		data := OperationData{
			ID:        o.ID,
			Date:      o.Date,
			Amount:    o.Amount,
			Label:     o.Label,
			Note:      o.Note,
			AccountID: o.AccountID,
			IsBudget:  o.IsBudget,
		}
		if o.CategoryID != "" {
			category := o.CategoryID
			data.CategoryID = &category
		}
		if o.LinkedOperationID != "" {
			linked := o.LinkedOperationID
			data.LinkedOperationID = &linked
		}

		snapshot.Operations = append(snapshot.Operations, data)
	}

	return snapshot
}

// Load builds a project from a snapshot.
//
// Every ".id" reference must resolve against the sibling collections and
// the group hierarchy must be acyclic. On any violation the load fails
// as a whole, a partially resolved project is never returned.
func Load(snapshot Snapshot) (*Project, error) {
	p := NewProject()
	p.Version = snapshot.Version
	if p.Version == "" {
		p.Version = SchemaVersion
	}

	for _, data := range snapshot.Accounts {
		p.Accounts = append(p.Accounts, &Account{
			ID:     data.ID,
			Name:   data.Name,
			Number: data.Number,
		})
	}

	for _, data := range snapshot.CategoryGroups {
		group := &CategoryGroup{
			ID:    data.ID,
			Name:  data.Name,
			Color: data.Color,
			Emoji: data.Emoji,
		}
		if data.ParentID != nil {
			group.ParentID = *data.ParentID
		}

		p.CategoryGroups = append(p.CategoryGroups, group)
	}

	// Parents can be declared after their children, check once all
	// groups are known.
	for _, g := range p.CategoryGroups {
		if g.ParentID != "" && p.CategoryGroup(g.ParentID) == nil {
			return nil, fmt.Errorf("%w: parent_category_group.id %q of category group %q", ErrUnknownReference, g.ParentID, g.ID)
		}
	}
	for _, g := range p.CategoryGroups {
		if _, err := p.GroupAncestors(g); err != nil {
			return nil, err
		}
	}

	for _, data := range snapshot.Categories {
		if p.CategoryGroup(data.GroupID) == nil {
			return nil, fmt.Errorf("%w: category_group.id %q of category %q", ErrUnknownReference, data.GroupID, data.ID)
		}

		p.Categories = append(p.Categories, &Category{
			ID:       data.ID,
			Name:     data.Name,
			Emoji:    data.Emoji,
			GroupID:  data.GroupID,
			Keywords: data.Keywords,
		})
	}

	for _, data := range snapshot.Operations {
		if p.Account(data.AccountID) == nil {
			return nil, fmt.Errorf("%w: account.id %q of operation %q", ErrUnknownReference, data.AccountID, data.ID)
		}
		if data.Date.IsZero() {
			return nil, fmt.Errorf("%w: operation %q", ErrMissingDate, data.ID)
		}

		operation := &Operation{
			ID:        data.ID,
			AccountID: data.AccountID,
			Label:     data.Label,
			Amount:    data.Amount,
			Date:      data.Date,
			Note:      data.Note,
			IsBudget:  data.IsBudget,
		}
		if operation.ID == "" {
			operation.ID = newID()
		}
		if data.CategoryID != nil {
			if p.Category(*data.CategoryID) == nil {
				return nil, fmt.Errorf("%w: category.id %q of operation %q", ErrUnknownReference, *data.CategoryID, data.ID)
			}
			operation.CategoryID = *data.CategoryID
		}
		if data.LinkedOperationID != nil {
			operation.LinkedOperationID = *data.LinkedOperationID
		}

		p.Operations = append(p.Operations, operation)
	}

	// Linked operations may point forward in the collection, check once
	// all operations are known.
	for _, o := range p.Operations {
		if o.LinkedOperationID != "" && p.Operation(o.LinkedOperationID) == nil {
			return nil, fmt.Errorf("%w: linked_operation.id %q of operation %q", ErrUnknownReference, o.LinkedOperationID, o.ID)
		}
	}

	return p, nil
}
