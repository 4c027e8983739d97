package models

// Color is an RGB triple used to display categories and groups.
type Color [3]uint8

// defaultCategoryColor is used for categories that cannot resolve a
// group color, including the synthetic undefined category.
var defaultCategoryColor = Color{100, 100, 100}

// Category tags operations. Every category belongs to exactly one group
// and inherits its display color from it.
type Category struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Emoji    string   `json:"emoji"`
	GroupID  string   `json:"-"`
	Keywords []string `json:"keywords"` // case-insensitive tokens for category guessing
}

func (c Category) String() string {
	return c.Name
}
