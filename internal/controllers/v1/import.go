package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/importer/parser/creditagricole"
	"github.com/comptes-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports the following file suffix")
)

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func (co *Controller) RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", co.ImportStatement)
}

type ImportQuery struct {
	AccountID string `form:"accountId" binding:"required"` // ID of the account to import the operations for
	Guess     bool   `form:"guess"`                        // Guess the category of imported operations
}

// ImportResponse reports what an import added to the project.
type ImportResponse struct {
	AccountName string              `json:"accountName"` // account name found in the file, empty if none
	Operations  []*models.Operation `json:"operations"`
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	return formFile.Open()
}

// @Summary		Import operations
// @Description	Imports a Crédit Agricole CSV statement into an account. Either the whole file imports or nothing does.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	ImportResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		412			{object}	httputil.HTTPError
// @Param			file		formData	file	true	"File to import"
// @Param			accountId	query		string	true	"ID of the account to import the operations for"
// @Param			guess		query		bool	false	"Guess the category of imported operations"
// @Router			/v1/import [post]
func (co *Controller) ImportStatement(c *gin.Context) {
	var query ImportQuery
	if err := c.BindQuery(&query); err != nil {
		httputil.NewError(c, http.StatusBadRequest, errors.New("the accountId query parameter is required"))
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}
	defer f.Close()

	co.write(func(p *models.Project) {
		account := p.Account(query.AccountID)
		if account == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		statement, err := creditagricole.Parse(f, account)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		// Guess before adding anything so that a guessing error leaves
		// the project untouched
		if query.Guess {
			for _, operation := range statement.Operations {
				if _, err := p.GuessCategory(operation); err != nil {
					httputil.ErrorHandler(c, err)
					return
				}
			}
		}

		for _, operation := range statement.Operations {
			p.AddOperation(operation)
		}

		operations := statement.Operations
		if operations == nil {
			operations = make([]*models.Operation, 0)
		}

		c.JSON(http.StatusCreated, ImportResponse{
			AccountName: statement.AccountName,
			Operations:  operations,
		})
	})
}
