package v1

import (
	"net/http"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts with
// the RouterGroup that is passed.
func (co *Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetAccounts)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetAccount)
		r.PATCH("/:id", co.UpdateAccount)
		r.DELETE("/:id", co.DeleteAccount)

		r.GET("/:id/balance", co.GetAccountBalance)
		r.GET("/:id/summary/:year", co.GetAccountYearSummary)
	}
}

// Account is the API representation of an account.
type Account struct {
	models.Account
	Label string `json:"label"` // display label, e.g. "Joint (n°123456)"
}

func newAccount(account *models.Account) Account {
	return Account{
		Account: *account,
		Label:   account.String(),
	}
}

// AccountEditable contains the fields of an account a client can set.
// On PATCH, absent fields keep their value.
type AccountEditable struct {
	Name   *string `json:"name"`
	Number *string `json:"number"`
}

func (e AccountEditable) apply(account *models.Account) {
	if e.Name != nil {
		account.Name = *e.Name
	}
	if e.Number != nil {
		account.Number = *e.Number
	}
}

// @Summary		List accounts
// @Description	Returns all accounts of the open project
// @Tags			Accounts
// @Produce		json
// @Success		200	{array}	Account
// @Router			/v1/accounts [get]
func (co *Controller) GetAccounts(c *gin.Context) {
	co.read(func(p *models.Project) {
		accounts := make([]Account, 0, len(p.Accounts))
		for _, account := range p.Accounts {
			accounts = append(accounts, newAccount(account))
		}

		c.JSON(http.StatusOK, accounts)
	})
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Produce		json
// @Success		201		{object}	Account
// @Failure		400		{object}	httputil.HTTPError
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co *Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		var account models.Account
		editable.apply(&account)
		p.AddAccount(&account)

		c.JSON(http.StatusCreated, newAccount(&account))
	})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	Account
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [get]
func (co *Controller) GetAccount(c *gin.Context) {
	co.read(func(p *models.Project) {
		account := p.Account(c.Param("id"))
		if account == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		c.JSON(http.StatusOK, newAccount(account))
	})
}

// @Summary		Update account
// @Description	Updates an account. Only values to be updated need to be specified.
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	Account
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string			true	"ID of the account"
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts/{id} [patch]
func (co *Controller) UpdateAccount(c *gin.Context) {
	var editable AccountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		account := p.Account(c.Param("id"))
		if account == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		editable.apply(account)
		c.JSON(http.StatusOK, newAccount(account))
	})
}

// @Summary		Delete account
// @Description	Deletes an account
// @Tags			Accounts
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the account"
// @Router			/v1/accounts/{id} [delete]
func (co *Controller) DeleteAccount(c *gin.Context) {
	co.write(func(p *models.Project) {
		if !p.RemoveAccount(c.Param("id")) {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		c.Status(http.StatusNoContent)
	})
}

// BalanceResponse is the balance of an account at a point in time.
type BalanceResponse struct {
	Balance types.Money `json:"balance" example:"1 234,56 €"`
}

// @Summary		Account balance
// @Description	Returns the balance of an account, optionally as of a date
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	BalanceResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string	true	"ID of the account"
// @Param			asOf	query		string	false	"Only count operations up to this date (DD/MM/YYYY)"
// @Router			/v1/accounts/{id}/balance [get]
func (co *Controller) GetAccountBalance(c *gin.Context) {
	co.read(func(p *models.Project) {
		account := p.Account(c.Param("id"))
		if account == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		var asOf *types.Date
		if raw, ok := c.GetQuery("asOf"); ok {
			date, err := types.ParseDate(raw)
			if err != nil {
				httputil.ErrorHandler(c, err)
				return
			}
			asOf = &date
		}

		balance, err := p.Balance(account, asOf)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		c.JSON(http.StatusOK, BalanceResponse{Balance: balance})
	})
}

// @Summary		Account year summary
// @Description	Returns the month-by-month summary of an account for a year
// @Tags			Accounts
// @Produce		json
// @Success		200		{object}	models.YearSummary
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string	true	"ID of the account"
// @Param			year	path		int		true	"Year to summarize"
// @Router			/v1/accounts/{id}/summary/{year} [get]
func (co *Controller) GetAccountYearSummary(c *gin.Context) {
	co.read(func(p *models.Project) {
		account := p.Account(c.Param("id"))
		if account == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		year, err := parseYear(c)
		if err != nil {
			return
		}

		summary, err := p.YearSummary(account, year)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		c.JSON(http.StatusOK, summary)
	})
}
