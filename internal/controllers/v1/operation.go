package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterOperationRoutes registers the routes for operations with
// the RouterGroup that is passed.
func (co *Controller) RegisterOperationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetOperations)
		r.POST("", co.CreateOperation)
		r.GET("/years", co.GetYears)
	}

	// Operation with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetOperation)
		r.PATCH("/:id", co.UpdateOperation)
		r.DELETE("/:id", co.DeleteOperation)

		r.POST("/:id/guess", co.GuessOperationCategory)
	}
}

// OperationEditable contains the fields of an operation a client can
// set. On PATCH, absent fields keep their value.
type OperationEditable struct {
	AccountID         *string      `json:"accountId"`
	Label             *string      `json:"label"`
	Amount            *types.Money `json:"amount"`
	CategoryID        *string      `json:"categoryId"`
	Date              *types.Date  `json:"date"`
	Note              *string      `json:"note"`
	IsBudget          *bool        `json:"isBudget"`
	LinkedOperationID *string      `json:"linkedOperationId"`
}

func (e OperationEditable) apply(operation *models.Operation) {
	if e.AccountID != nil {
		operation.AccountID = *e.AccountID
	}
	if e.Label != nil {
		operation.Label = *e.Label
	}
	if e.Amount != nil {
		operation.Amount = *e.Amount
	}
	if e.CategoryID != nil {
		operation.CategoryID = *e.CategoryID
	}
	if e.Date != nil {
		operation.Date = *e.Date
	}
	if e.Note != nil {
		operation.Note = *e.Note
	}
	if e.IsBudget != nil {
		operation.IsBudget = *e.IsBudget
	}
	if e.LinkedOperationID != nil {
		operation.LinkedOperationID = *e.LinkedOperationID
	}
}

// validate checks that the references of the operation resolve within
// the project. The linked operation is a weak link and not checked.
func validateOperation(p *models.Project, operation *models.Operation) error {
	if p.Account(operation.AccountID) == nil {
		return models.ErrUnknownReference
	}

	if operation.CategoryID != "" && p.Category(operation.CategoryID) == nil {
		return models.ErrUnknownReference
	}

	return nil
}

// @Summary		List operations
// @Description	Returns operations of the open project, optionally filtered by account, year and month
// @Tags			Operations
// @Produce		json
// @Success		200		{array}		models.Operation
// @Failure		400		{object}	httputil.HTTPError
// @Param			account	query		string	false	"Filter by account ID"
// @Param			year	query		int		false	"Filter by year, requires account"
// @Param			month	query		int		false	"Filter by month (1-12), requires year"
// @Router			/v1/operations [get]
func (co *Controller) GetOperations(c *gin.Context) {
	co.read(func(p *models.Project) {
		operations := p.Operations

		if accountID, ok := c.GetQuery("account"); ok {
			account := p.Account(accountID)
			if account == nil {
				httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
				return
			}

			operations = p.OperationsFor(account)

			if raw, ok := c.GetQuery("year"); ok {
				year, err := strconv.Atoi(raw)
				if err != nil {
					httputil.ErrorHandler(c, httputil.ErrInvalidBody)
					return
				}

				if rawMonth, ok := c.GetQuery("month"); ok {
					month, err := strconv.Atoi(rawMonth)
					if err != nil || month < 1 || month > 12 {
						httputil.ErrorHandler(c, httputil.ErrInvalidBody)
						return
					}
					operations = p.OperationsForMonth(account, year, time.Month(month))
				} else {
					operations = p.OperationsForYear(account, year)
				}
			}
		}

		if operations == nil {
			operations = make([]*models.Operation, 0)
		}
		c.JSON(http.StatusOK, operations)
	})
}

// @Summary		Create operation
// @Description	Creates a new operation
// @Tags			Operations
// @Produce		json
// @Success		201			{object}	models.Operation
// @Failure		400			{object}	httputil.HTTPError
// @Param			operation	body		OperationEditable	true	"Operation"
// @Router			/v1/operations [post]
func (co *Controller) CreateOperation(c *gin.Context) {
	var editable OperationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		var operation models.Operation
		editable.apply(&operation)

		if err := validateOperation(p, &operation); err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		p.AddOperation(&operation)
		c.JSON(http.StatusCreated, operation)
	})
}

// @Summary		Get operation
// @Description	Returns a specific operation
// @Tags			Operations
// @Produce		json
// @Success		200	{object}	models.Operation
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the operation"
// @Router			/v1/operations/{id} [get]
func (co *Controller) GetOperation(c *gin.Context) {
	co.read(func(p *models.Project) {
		operation := p.Operation(c.Param("id"))
		if operation == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		c.JSON(http.StatusOK, operation)
	})
}

// @Summary		Update operation
// @Description	Updates an operation. Only values to be updated need to be specified.
// @Tags			Operations
// @Produce		json
// @Success		200			{object}	models.Operation
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Param			id			path		string				true	"ID of the operation"
// @Param			operation	body		OperationEditable	true	"Operation"
// @Router			/v1/operations/{id} [patch]
func (co *Controller) UpdateOperation(c *gin.Context) {
	var editable OperationEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		operation := p.Operation(c.Param("id"))
		if operation == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		updated := *operation
		editable.apply(&updated)

		if err := validateOperation(p, &updated); err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		*operation = updated
		c.JSON(http.StatusOK, operation)
	})
}

// @Summary		Delete operation
// @Description	Deletes an operation
// @Tags			Operations
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the operation"
// @Router			/v1/operations/{id} [delete]
func (co *Controller) DeleteOperation(c *gin.Context) {
	co.write(func(p *models.Project) {
		if !p.RemoveOperation(c.Param("id")) {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		c.Status(http.StatusNoContent)
	})
}

// @Summary		Guess category
// @Description	Guesses the category of an uncategorized operation from the category keywords
// @Tags			Operations
// @Produce		json
// @Success		200	{object}	models.Operation
// @Failure		404	{object}	httputil.HTTPError
// @Failure		412	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the operation"
// @Router			/v1/operations/{id}/guess [post]
func (co *Controller) GuessOperationCategory(c *gin.Context) {
	co.write(func(p *models.Project) {
		operation := p.Operation(c.Param("id"))
		if operation == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		if _, err := p.GuessCategory(operation); err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		c.JSON(http.StatusOK, operation)
	})
}

// YearsResponse lists the years that have operations.
type YearsResponse struct {
	Years []string `json:"years" example:"2025,2024"`
}

// @Summary		List years
// @Description	Returns the distinct years of all operations, most recent first
// @Tags			Operations
// @Produce		json
// @Success		200	{object}	YearsResponse
// @Router			/v1/operations/years [get]
func (co *Controller) GetYears(c *gin.Context) {
	co.read(func(p *models.Project) {
		years := p.Years()
		if years == nil {
			years = make([]string, 0)
		}

		c.JSON(http.StatusOK, YearsResponse{Years: years})
	})
}
