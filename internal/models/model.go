// Package models implements the financial data model: accounts,
// operations, categories and category groups, owned by a Project
// aggregate that computes balances and summaries over them.
package models

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrUnknownReference is returned when an id in a snapshot does not
	// resolve to an entity in the same snapshot.
	ErrUnknownReference = errors.New("the id does not resolve to a loaded entity")

	// ErrGroupCycle is returned when a category group is its own ancestor.
	ErrGroupCycle = errors.New("the category group hierarchy contains a cycle")

	// ErrNoCategories is returned when a category guess is requested on a
	// project without categories.
	ErrNoCategories = errors.New("the project does not contain any categories")

	// ErrForeignAccount is returned for queries with an account that is
	// not part of the project.
	ErrForeignAccount = errors.New("the account is not part of this project")

	// ErrMissingDate is returned when a snapshot operation carries no
	// date.
	ErrMissingDate = errors.New("the operation has no date")
)

// newID returns an id for a new entity. Entity ids are opaque strings
// everywhere else, only generation uses UUIDs.
func newID() string {
	return uuid.NewString()
}
