package models

import "fmt"

// GroupAncestors returns the ancestors of a category group, nearest
// first, by walking the parent links.
//
// Well-formed data never contains parent cycles, but the walk is still
// guarded by a visited set: on a cycle it stops and returns
// ErrGroupCycle instead of looping forever.
func (p *Project) GroupAncestors(group *CategoryGroup) ([]*CategoryGroup, error) {
	var ancestors []*CategoryGroup

	visited := map[string]bool{group.ID: true}
	for current := group; current.ParentID != ""; {
		parent := p.CategoryGroup(current.ParentID)
		if parent == nil {
			// dangling parent reference, nothing left to walk
			break
		}

		if visited[parent.ID] {
			return nil, fmt.Errorf("%w: %q", ErrGroupCycle, parent.ID)
		}
		visited[parent.ID] = true

		ancestors = append(ancestors, parent)
		current = parent
	}

	return ancestors, nil
}

// CategoryAncestors returns the ancestor groups of a category, nearest
// first: its own group followed by that group's ancestors.
func (p *Project) CategoryAncestors(category *Category) ([]*CategoryGroup, error) {
	group := p.CategoryGroup(category.GroupID)
	if group == nil {
		return nil, nil
	}

	ancestors, err := p.GroupAncestors(group)
	if err != nil {
		return nil, err
	}

	return append([]*CategoryGroup{group}, ancestors...), nil
}

// CategoriesUnder returns every category whose group is the given group
// or one of its descendants, in project order.
func (p *Project) CategoriesUnder(group *CategoryGroup) ([]*Category, error) {
	var categories []*Category
	for _, category := range p.Categories {
		ancestors, err := p.CategoryAncestors(category)
		if err != nil {
			return nil, err
		}

		for _, ancestor := range ancestors {
			if ancestor.ID == group.ID {
				categories = append(categories, category)
				break
			}
		}
	}

	return categories, nil
}

// CategoryColor returns the display color of a category: the color of
// its group, or a neutral grey when no group resolves.
func (p *Project) CategoryColor(category *Category) Color {
	if group := p.CategoryGroup(category.GroupID); group != nil {
		return group.Color
	}

	return defaultCategoryColor
}
