package v1_test

import (
	"net/http"
	"path/filepath"

	"github.com/comptes-app/backend/test"
)

func (suite *TestSuiteStandard) TestProjectInfo() {
	suite.createTestAccount("Courant")

	recorder := suite.request(http.MethodGet, "/v1/project", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Version  string `json:"version"`
		Path     string `json:"path"`
		Accounts int    `json:"accounts"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("1", response.Version)
	suite.Assert().Empty(response.Path)
	suite.Assert().Equal(1, response.Accounts)
}

func (suite *TestSuiteStandard) TestProjectNew() {
	suite.createTestAccount("Courant")

	recorder := suite.request(http.MethodPost, "/v1/project/new", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = suite.request(http.MethodGet, "/v1/accounts", nil)
	suite.Assert().Equal("[]", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestProjectSaveOpenRoundTrip() {
	path := filepath.Join(suite.T().TempDir(), "project.json")

	account := suite.createTestAccount("Courant")
	suite.createTestOperation(account.ID, "15/01/2025", "-3,50")

	recorder := suite.request(http.MethodPost, "/v1/project/save", map[string]string{"path": path})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Start over, then open the saved file again
	recorder = suite.request(http.MethodPost, "/v1/project/new", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = suite.request(http.MethodPost, "/v1/project/open", map[string]string{"path": path})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		Path       string `json:"path"`
		Accounts   int    `json:"accounts"`
		Operations int    `json:"operations"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(path, response.Path)
	suite.Assert().Equal(1, response.Accounts)
	suite.Assert().Equal(1, response.Operations)
}

func (suite *TestSuiteStandard) TestProjectSaveRemembersPath() {
	path := filepath.Join(suite.T().TempDir(), "project.json")

	recorder := suite.request(http.MethodPost, "/v1/project/save", map[string]string{"path": path})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Saving again without a path reuses the one from the first save
	recorder = suite.request(http.MethodPost, "/v1/project/save", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

func (suite *TestSuiteStandard) TestProjectSaveWithoutPath() {
	recorder := suite.request(http.MethodPost, "/v1/project/save", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectOpenMissingFile() {
	path := filepath.Join(suite.T().TempDir(), "does-not-exist.json")

	recorder := suite.request(http.MethodPost, "/v1/project/open", map[string]string{"path": path})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectExport() {
	account := suite.createTestAccount("Courant")
	suite.createTestOperation(account.ID, "15/01/2025", "-3,50")

	recorder := suite.request(http.MethodGet, "/v1/project/export", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Header().Get("Content-Disposition"), "attachment")

	var snapshot struct {
		Version    string `json:"version"`
		Operations []struct {
			Amount string `json:"amount"`
			Date   string `json:"date"`
		} `json:"operations"`
	}
	test.DecodeResponse(suite.T(), &recorder, &snapshot)

	suite.Assert().Equal("1", snapshot.Version)
	suite.Require().Len(snapshot.Operations, 1)
	suite.Assert().Equal("-3,50 €", snapshot.Operations[0].Amount)
	suite.Assert().Equal("15/01/2025", snapshot.Operations[0].Date)
}

func (suite *TestSuiteStandard) TestRecentFilesWithoutStore() {
	recorder := suite.request(http.MethodGet, "/v1/project/recent-files", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response struct {
		RecentFiles []string `json:"recentFiles"`
	}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.RecentFiles)
}
