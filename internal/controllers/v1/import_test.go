package v1_test

import (
	"bytes"
	"mime/multipart"
	"net/http"

	"github.com/comptes-app/backend/test"
)

func (suite *TestSuiteStandard) importFile(name, content string) (*bytes.Buffer, map[string]string) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", name)
	suite.Require().Nil(err)

	_, err = part.Write([]byte(content))
	suite.Require().Nil(err)
	suite.Require().Nil(writer.Close())

	return body, map[string]string{"Content-Type": writer.FormDataContentType()}
}

const importFixture = `Compte de chèques n° 12345;;;;
01/01/2025;Coffee;3,50;;
05/01/2025;SALAIRE;;2 000,00;
`

func (suite *TestSuiteStandard) TestImport() {
	account := suite.createTestAccount("Courant")

	body, headers := suite.importFile("statement.csv", importFixture)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/import?accountId="+account.ID, body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response struct {
		AccountName string              `json:"accountName"`
		Operations  []operationResponse `json:"operations"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Compte de chèques n° 12345", response.AccountName)
	suite.Require().Len(response.Operations, 2)
	suite.Assert().Equal("-3,50 €", response.Operations[0].Amount)
	suite.Assert().Equal("2 000,00 €", response.Operations[1].Amount)

	// The operations are now part of the project
	recorder = suite.request(http.MethodGet, "/v1/operations?account="+account.ID, nil)
	var operations []operationResponse
	test.DecodeResponse(suite.T(), &recorder, &operations)
	suite.Assert().Len(operations, 2)
}

func (suite *TestSuiteStandard) TestImportGuess() {
	account := suite.createTestAccount("Courant")
	group := suite.createTestCategoryGroup("Vie courante", "")
	category := suite.createTestCategory("Courses", group.ID, "coffee")

	body, headers := suite.importFile("statement.csv", importFixture)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/import?accountId="+account.ID+"&guess=true", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response struct {
		Operations []operationResponse `json:"operations"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Operations, 2)
	suite.Assert().Equal(category.ID, response.Operations[0].CategoryID)
	suite.Assert().Empty(response.Operations[1].CategoryID)
}

func (suite *TestSuiteStandard) TestImportAtomic() {
	account := suite.createTestAccount("Courant")

	// The second transaction row is broken, nothing must be imported
	broken := "01/01/2025;Coffee;3,50;;\n02/01/2025;Broken;;;\n"

	body, headers := suite.importFile("statement.csv", broken)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/import?accountId="+account.ID, body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	getRecorder := suite.request(http.MethodGet, "/v1/operations?account="+account.ID, nil)
	var operations []operationResponse
	test.DecodeResponse(suite.T(), &getRecorder, &operations)
	suite.Assert().Empty(operations)
}

func (suite *TestSuiteStandard) TestImportUnknownAccount() {
	body, headers := suite.importFile("statement.csv", importFixture)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/import?accountId=missing", body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	account := suite.createTestAccount("Courant")

	recorder := suite.request(http.MethodPost, "/v1/import?accountId="+account.ID, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportWrongSuffix() {
	account := suite.createTestAccount("Courant")

	body, headers := suite.importFile("statement.pdf", importFixture)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/import?accountId="+account.ID, body, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
