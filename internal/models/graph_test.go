package models_test

import (
	"github.com/comptes-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestGroupAncestors() {
	p := models.NewProject()
	root := suite.createTestCategoryGroup(p, "Vie courante", "")
	middle := suite.createTestCategoryGroup(p, "Alimentation", root.ID)
	leaf := suite.createTestCategoryGroup(p, "Restaurants", middle.ID)

	ancestors, err := p.GroupAncestors(leaf)
	suite.Require().Nil(err)
	suite.Require().Len(ancestors, 2)

	// Nearest ancestor first
	suite.Assert().Same(middle, ancestors[0])
	suite.Assert().Same(root, ancestors[1])

	ancestors, err = p.GroupAncestors(root)
	suite.Require().Nil(err)
	suite.Assert().Empty(ancestors)
}

func (suite *TestSuiteStandard) TestGroupAncestorsCycle() {
	p := models.NewProject()
	first := suite.createTestCategoryGroup(p, "First", "")
	second := suite.createTestCategoryGroup(p, "Second", first.ID)
	first.ParentID = second.ID

	_, err := p.GroupAncestors(first)
	suite.Assert().ErrorIs(err, models.ErrGroupCycle)

	// A group that is its own parent is the smallest cycle
	self := suite.createTestCategoryGroup(p, "Self", "")
	self.ParentID = self.ID
	_, err = p.GroupAncestors(self)
	suite.Assert().ErrorIs(err, models.ErrGroupCycle)
}

func (suite *TestSuiteStandard) TestGroupAncestorsDanglingParent() {
	p := models.NewProject()
	group := suite.createTestCategoryGroup(p, "Orphan", "GONE")

	ancestors, err := p.GroupAncestors(group)
	suite.Require().Nil(err)
	suite.Assert().Empty(ancestors)
}

func (suite *TestSuiteStandard) TestCategoryAncestors() {
	p := models.NewProject()
	root := suite.createTestCategoryGroup(p, "Vie courante", "")
	child := suite.createTestCategoryGroup(p, "Alimentation", root.ID)
	category := suite.createTestCategory(p, "Courses", child.ID)

	ancestors, err := p.CategoryAncestors(category)
	suite.Require().Nil(err)
	suite.Require().Len(ancestors, 2)
	suite.Assert().Same(child, ancestors[0])
	suite.Assert().Same(root, ancestors[1])
}

func (suite *TestSuiteStandard) TestCategoriesUnder() {
	p := models.NewProject()
	root := suite.createTestCategoryGroup(p, "Vie courante", "")
	food := suite.createTestCategoryGroup(p, "Alimentation", root.ID)
	other := suite.createTestCategoryGroup(p, "Logement", "")

	groceries := suite.createTestCategory(p, "Courses", food.ID)
	restaurants := suite.createTestCategory(p, "Restaurants", food.ID)
	rent := suite.createTestCategory(p, "Loyer", other.ID)

	categories, err := p.CategoriesUnder(food)
	suite.Require().Nil(err)
	suite.Assert().Equal([]*models.Category{groceries, restaurants}, categories)

	// Descendant group members are included from the root
	categories, err = p.CategoriesUnder(root)
	suite.Require().Nil(err)
	suite.Assert().Equal([]*models.Category{groceries, restaurants}, categories)

	categories, err = p.CategoriesUnder(other)
	suite.Require().Nil(err)
	suite.Assert().Equal([]*models.Category{rent}, categories)
}

func (suite *TestSuiteStandard) TestCategoryColor() {
	p := models.NewProject()
	group := suite.createTestCategoryGroup(p, "Alimentation", "")
	category := suite.createTestCategory(p, "Courses", group.ID)

	suite.Assert().Equal(group.Color, p.CategoryColor(category))

	// Without a resolvable group the neutral grey is used
	suite.Assert().Equal(models.Color{100, 100, 100}, p.CategoryColor(p.UndefinedCategory()))
}
