package models_test

import (
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/types"
)

func (suite *TestSuiteStandard) TestYearSummary() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")

	suite.createTestOperation(p, account, "05/01/2025", 200000)
	suite.createTestOperation(p, account, "15/01/2025", -350)
	suite.createTestOperation(p, account, "10/03/2025", -50000)

	summary, err := p.YearSummary(account, 2025)
	suite.Require().Nil(err)

	january := summary.Months[0]
	suite.Require().NotNil(january.Income)
	suite.Assert().Equal(types.Money(200000), *january.Income)
	suite.Assert().Equal(types.Money(-350), *january.Expenses)
	suite.Assert().Equal(types.Money(199650), *january.Total)
	suite.Assert().Equal(types.Money(199650), *january.Balance)

	// February has no operations: no data, not zero
	february := summary.Months[1]
	suite.Assert().Nil(february.Income)
	suite.Assert().Nil(february.Expenses)
	suite.Assert().Nil(february.Total)
	suite.Assert().Nil(february.Balance)

	march := summary.Months[2]
	suite.Assert().Equal(types.Money(-50000), *march.Expenses)
	suite.Assert().Equal(types.Money(149650), *march.Balance)

	suite.Assert().Equal(types.Money(200000), summary.Income)
	suite.Assert().Equal(types.Money(-50350), summary.Expenses)
	suite.Assert().Equal(types.Money(149650), summary.Total)
}

// TestYearSummaryTotals verifies that the month totals add up to the
// year total, counting no-data months as zero.
func (suite *TestSuiteStandard) TestYearSummaryTotals() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")

	suite.createTestOperation(p, account, "05/01/2025", 123456)
	suite.createTestOperation(p, account, "28/02/2025", -65432)
	suite.createTestOperation(p, account, "31/12/2025", -111)

	summary, err := p.YearSummary(account, 2025)
	suite.Require().Nil(err)

	var total types.Money
	for _, month := range summary.Months {
		if month.Total != nil {
			total = total.Add(*month.Total)
		}
	}

	suite.Assert().Equal(summary.Total, total)
}

// TestYearSummaryNetZeroMonth verifies the three-state signal: a month
// whose operations net out to zero reports zeros, not no-data.
func (suite *TestSuiteStandard) TestYearSummaryNetZeroMonth() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")

	suite.createTestOperation(p, account, "05/01/2025", 5000)
	suite.createTestOperation(p, account, "20/01/2025", -5000)

	summary, err := p.YearSummary(account, 2025)
	suite.Require().Nil(err)

	january := summary.Months[0]
	suite.Require().NotNil(january.Total)
	suite.Assert().Equal(types.Money(0), *january.Total)
	suite.Assert().Equal(types.Money(5000), *january.Income)
	suite.Assert().Equal(types.Money(-5000), *january.Expenses)
}

func (suite *TestSuiteStandard) TestYearSummaryExcludesBudget() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")

	suite.createTestOperation(p, account, "05/01/2025", 10000)
	budget := suite.createTestOperation(p, account, "10/01/2025", -99999)
	budget.IsBudget = true

	summary, err := p.YearSummary(account, 2025)
	suite.Require().Nil(err)

	january := summary.Months[0]
	suite.Assert().Equal(types.Money(10000), *january.Income)
	suite.Assert().Equal(types.Money(0), *january.Expenses)
	suite.Assert().Equal(types.Money(10000), *january.Total)
	suite.Assert().Equal(types.Money(10000), summary.Income)
}

func (suite *TestSuiteStandard) TestYearSummaryForeignAccount() {
	p := models.NewProject()

	_, err := p.YearSummary(&models.Account{ID: "ELSEWHERE"}, 2025)
	suite.Assert().ErrorIs(err, models.ErrForeignAccount)
}

func (suite *TestSuiteStandard) TestCategorySummary() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	group := suite.createTestCategoryGroup(p, "Alimentation", "")
	groceries := suite.createTestCategory(p, "Courses", group.ID)

	first := suite.createTestOperation(p, account, "05/01/2025", -2050)
	first.CategoryID = groceries.ID
	second := suite.createTestOperation(p, account, "20/01/2025", -1000)
	second.CategoryID = groceries.ID
	third := suite.createTestOperation(p, account, "10/03/2025", -4200)
	third.CategoryID = groceries.ID

	// Not counted: other category, other year, budget entry
	suite.createTestOperation(p, account, "05/01/2025", -7777)
	suite.createTestOperation(p, account, "05/01/2024", -1111).CategoryID = groceries.ID
	budget := suite.createTestOperation(p, account, "06/01/2025", -2222)
	budget.CategoryID = groceries.ID
	budget.IsBudget = true

	summary, err := p.CategorySummary(groceries, account, 2025)
	suite.Require().Nil(err)

	suite.Assert().Equal(types.Money(-3050), summary.Months[0])
	suite.Assert().Equal(types.Money(0), summary.Months[1])
	suite.Assert().Equal(types.Money(-4200), summary.Months[2])
	suite.Assert().Equal(types.Money(-7250), summary.Total)
}

func (suite *TestSuiteStandard) TestCategorySummaryUndefined() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")
	group := suite.createTestCategoryGroup(p, "Alimentation", "")
	groceries := suite.createTestCategory(p, "Courses", group.ID)

	suite.createTestOperation(p, account, "05/01/2025", -1500)
	categorized := suite.createTestOperation(p, account, "06/01/2025", -9999)
	categorized.CategoryID = groceries.ID

	summary, err := p.CategorySummary(p.UndefinedCategory(), account, 2025)
	suite.Require().Nil(err)

	suite.Assert().Equal(types.Money(-1500), summary.Months[0])
	suite.Assert().Equal(types.Money(-1500), summary.Total)
}

// TestGroupSummary verifies that a group sums everything under it and
// equals the sum of the per-category summaries.
func (suite *TestSuiteStandard) TestGroupSummary() {
	p := models.NewProject()
	account := suite.createTestAccount(p, "Courant")

	root := suite.createTestCategoryGroup(p, "Vie courante", "")
	food := suite.createTestCategoryGroup(p, "Alimentation", root.ID)
	groceries := suite.createTestCategory(p, "Courses", food.ID)
	restaurants := suite.createTestCategory(p, "Restaurants", food.ID)

	suite.createTestOperation(p, account, "05/01/2025", -2000).CategoryID = groceries.ID
	suite.createTestOperation(p, account, "10/02/2025", -3000).CategoryID = restaurants.ID
	suite.createTestOperation(p, account, "11/02/2025", -500).CategoryID = groceries.ID

	groupSummary, err := p.GroupSummary(root, account, 2025)
	suite.Require().Nil(err)
	suite.Assert().Equal(types.Money(-5500), groupSummary.Total)
	suite.Assert().Equal(types.Money(-2000), groupSummary.Months[0])
	suite.Assert().Equal(types.Money(-3500), groupSummary.Months[1])

	members, err := p.CategoriesUnder(root)
	suite.Require().Nil(err)

	var total types.Money
	for _, category := range members {
		summary, err := p.CategorySummary(category, account, 2025)
		suite.Require().Nil(err)
		total = total.Add(summary.Total)
	}

	suite.Assert().Equal(groupSummary.Total, total)
}

func (suite *TestSuiteStandard) TestMonthlyAverage() {
	summary := models.CategorySummary{Total: types.Money(10000)}

	// 10000 / 12 = 833.33…, truncated
	suite.Assert().Equal(types.Money(833), summary.MonthlyAverage())
}
