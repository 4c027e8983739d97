package models_test

import (
	"github.com/comptes-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestGuessCategory() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	group := suite.createTestCategoryGroup(p, "Vie courante", "")

	groceries := suite.createTestCategory(p, "Courses", group.ID, "carrefour")
	suite.createTestCategory(p, "Transport", group.ID, "uber")

	operation := suite.createTestOperation(p, account, "15/01/2025", -350)
	operation.Label = "SUPER MARCHE CARREFOUR"

	category, err := p.GuessCategory(operation)
	suite.Require().Nil(err)
	suite.Assert().Same(groceries, category)
	suite.Assert().Equal(groceries.ID, operation.CategoryID)
}

// TestGuessCategoryFirstWins verifies the tie-break: the first category
// in project order wins, keywords are not scored.
func (suite *TestSuiteStandard) TestGuessCategoryFirstWins() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	group := suite.createTestCategoryGroup(p, "Vie courante", "")

	first := suite.createTestCategory(p, "First", group.ID, "market")
	suite.createTestCategory(p, "Second", group.ID, "super market")

	operation := suite.createTestOperation(p, account, "15/01/2025", -350)
	operation.Label = "SUPER MARKET"

	category, err := p.GuessCategory(operation)
	suite.Require().Nil(err)
	suite.Assert().Same(first, category)
}

func (suite *TestSuiteStandard) TestGuessCategoryNoMatch() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	group := suite.createTestCategoryGroup(p, "Vie courante", "")
	groceries := suite.createTestCategory(p, "Courses", group.ID, "carrefour")

	// An uncategorized operation stays uncategorized
	operation := suite.createTestOperation(p, account, "15/01/2025", -350)
	operation.Label = "VIREMENT"

	category, err := p.GuessCategory(operation)
	suite.Require().Nil(err)
	suite.Assert().Nil(category)
	suite.Assert().Empty(operation.CategoryID)

	// An already categorized operation keeps its category
	operation.CategoryID = groceries.ID
	category, err = p.GuessCategory(operation)
	suite.Require().Nil(err)
	suite.Assert().Nil(category)
	suite.Assert().Equal(groceries.ID, operation.CategoryID)
}

func (suite *TestSuiteStandard) TestGuessCategoryNoCategories() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	operation := suite.createTestOperation(p, account, "15/01/2025", -350)

	_, err := p.GuessCategory(operation)
	suite.Assert().ErrorIs(err, models.ErrNoCategories)
}

func (suite *TestSuiteStandard) TestGuessCategoryCaseInsensitive() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	group := suite.createTestCategoryGroup(p, "Vie courante", "")
	groceries := suite.createTestCategory(p, "Courses", group.ID, "CarreFour")

	operation := suite.createTestOperation(p, account, "15/01/2025", -350)
	operation.Label = "carrefour market 42"

	category, err := p.GuessCategory(operation)
	suite.Require().Nil(err)
	suite.Assert().Same(groceries, category)
}
