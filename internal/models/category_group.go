package models

// CategoryGroup is a hierarchical grouping node for categories.
type CategoryGroup struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    Color  `json:"color"`
	Emoji    string `json:"emoji"`
	ParentID string `json:"-"` // id of the parent group, empty for root groups
}

func (g CategoryGroup) String() string {
	return g.Name
}
