package v1_test

import (
	"net/http"

	v1 "github.com/comptes-app/backend/internal/controllers/v1"
	"github.com/comptes-app/backend/test"
)

func (suite *TestSuiteStandard) TestCategoryCreate() {
	group := suite.createTestCategoryGroup("Vie courante", "")

	category := suite.createTestCategory("Courses", group.ID, "carrefour", "lidl")

	suite.Assert().NotEmpty(category.ID)
	suite.Assert().Equal(group.ID, category.GroupID)
	// The color is inherited from the group
	suite.Assert().Equal(group.Color, category.Color)
}

func (suite *TestSuiteStandard) TestCategoryCreateUnknownGroup() {
	recorder := suite.request(http.MethodPost, "/v1/categories", map[string]any{
		"name":    "Courses",
		"groupId": "missing",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCategoryUpdateKeywords() {
	group := suite.createTestCategoryGroup("Vie courante", "")
	category := suite.createTestCategory("Courses", group.ID, "carrefour")

	recorder := suite.request(http.MethodPatch, "/v1/categories/"+category.ID, map[string]any{
		"keywords": []string{"carrefour", "lidl"},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated v1.Category
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal([]string{"carrefour", "lidl"}, updated.Keywords)
	suite.Assert().Equal("Courses", updated.Name)
}

func (suite *TestSuiteStandard) TestCategoryDeleteUncategorizesOperations() {
	account := suite.createTestAccount("Courant")
	group := suite.createTestCategoryGroup("Vie courante", "")
	category := suite.createTestCategory("Courses", group.ID)

	operation := suite.createTestOperation(account.ID, "15/01/2025", "-3,50")
	recorder := suite.request(http.MethodPatch, "/v1/operations/"+operation.ID, map[string]any{
		"categoryId": category.ID,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	recorder = suite.request(http.MethodDelete, "/v1/categories/"+category.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = suite.request(http.MethodGet, "/v1/operations/"+operation.ID, nil)
	var unchanged operationResponse
	test.DecodeResponse(suite.T(), &recorder, &unchanged)
	suite.Assert().Empty(unchanged.CategoryID)
}

func (suite *TestSuiteStandard) TestUndefinedCategory() {
	recorder := suite.request(http.MethodGet, "/v1/categories/undefined", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var category v1.Category
	test.DecodeResponse(suite.T(), &recorder, &category)
	suite.Assert().Equal("undefined", category.ID)
	// The synthetic category has no group, its color is the neutral grey
	suite.Assert().Equal([3]uint8{100, 100, 100}, [3]uint8(category.Color))
}

func (suite *TestSuiteStandard) TestCategorySummary() {
	account := suite.createTestAccount("Courant")
	group := suite.createTestCategoryGroup("Vie courante", "")
	category := suite.createTestCategory("Courses", group.ID)

	for _, date := range []string{"05/01/2025", "20/01/2025", "10/03/2025"} {
		operation := suite.createTestOperation(account.ID, date, "-10,00")
		recorder := suite.request(http.MethodPatch, "/v1/operations/"+operation.ID, map[string]any{
			"categoryId": category.ID,
		})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	}

	recorder := suite.request(http.MethodGet, "/v1/categories/"+category.ID+"/summary/2025?account="+account.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary struct {
		Months         []string `json:"months"`
		Total          string   `json:"total"`
		MonthlyAverage string   `json:"monthlyAverage"`
	}
	test.DecodeResponse(suite.T(), &recorder, &summary)

	suite.Require().Len(summary.Months, 12)
	suite.Assert().Equal("-20,00 €", summary.Months[0])
	suite.Assert().Equal("-10,00 €", summary.Months[2])
	suite.Assert().Equal("-30,00 €", summary.Total)
	// -3000 / 12 = -250
	suite.Assert().Equal("-2,50 €", summary.MonthlyAverage)
}

func (suite *TestSuiteStandard) TestCategorySummaryUndefined() {
	account := suite.createTestAccount("Courant")
	suite.createTestOperation(account.ID, "05/01/2025", "-15,00")

	recorder := suite.request(http.MethodGet, "/v1/categories/undefined/summary/2025?account="+account.ID, nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var summary struct {
		Total string `json:"total"`
	}
	test.DecodeResponse(suite.T(), &recorder, &summary)
	suite.Assert().Equal("-15,00 €", summary.Total)
}

func (suite *TestSuiteStandard) TestCategorySummaryUnknownAccount() {
	group := suite.createTestCategoryGroup("Vie courante", "")
	category := suite.createTestCategory("Courses", group.ID)

	recorder := suite.request(http.MethodGet, "/v1/categories/"+category.ID+"/summary/2025?account=missing", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
