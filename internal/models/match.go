package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GuessCategory assigns a category to the operation based on its label.
//
// The label is lowercased and the categories are checked in project
// order. The first category with any keyword contained in the label
// wins, there is no scoring. This makes guessing reproducible: the same
// project always assigns the same category.
//
// When nothing matches, the operation is left untouched and nil is
// returned. A project without categories returns ErrNoCategories, the
// caller asked for a guess that cannot be made.
func (p *Project) GuessCategory(operation *Operation) (*Category, error) {
	if len(p.Categories) == 0 {
		return nil, ErrNoCategories
	}

	lower := cases.Lower(language.French)
	label := lower.String(operation.Label)

	for _, category := range p.Categories {
		for _, keyword := range category.Keywords {
			if keyword == "" {
				continue
			}

			if strings.Contains(label, lower.String(keyword)) {
				operation.CategoryID = category.ID
				return category, nil
			}
		}
	}

	return nil, nil
}
