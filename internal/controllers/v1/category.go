package v1

import (
	"net/http"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co *Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
		r.GET("/undefined", co.GetUndefinedCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetCategory)
		r.PATCH("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)

		r.GET("/:id/summary/:year", co.GetCategorySummary)
	}
}

// Category is the API representation of a category. It adds the fields
// the model does not carry in its own JSON: the group reference and the
// display color inherited from the group.
type Category struct {
	models.Category
	GroupID string       `json:"groupId"`
	Color   models.Color `json:"color"`
}

func newCategory(p *models.Project, category *models.Category) Category {
	return Category{
		Category: *category,
		GroupID:  category.GroupID,
		Color:    p.CategoryColor(category),
	}
}

// CategoryEditable contains the fields of a category a client can set.
// On PATCH, absent fields keep their value.
type CategoryEditable struct {
	Name     *string   `json:"name"`
	Emoji    *string   `json:"emoji"`
	GroupID  *string   `json:"groupId"`
	Keywords *[]string `json:"keywords"`
}

func (e CategoryEditable) apply(category *models.Category) {
	if e.Name != nil {
		category.Name = *e.Name
	}
	if e.Emoji != nil {
		category.Emoji = *e.Emoji
	}
	if e.GroupID != nil {
		category.GroupID = *e.GroupID
	}
	if e.Keywords != nil {
		category.Keywords = *e.Keywords
	}
}

// @Summary		List categories
// @Description	Returns all categories of the open project
// @Tags			Categories
// @Produce		json
// @Success		200	{array}	Category
// @Router			/v1/categories [get]
func (co *Controller) GetCategories(c *gin.Context) {
	co.read(func(p *models.Project) {
		categories := make([]Category, 0, len(p.Categories))
		for _, category := range p.Categories {
			categories = append(categories, newCategory(p, category))
		}

		c.JSON(http.StatusOK, categories)
	})
}

// @Summary		Undefined category
// @Description	Returns the synthetic category that reports use for uncategorized operations
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Category
// @Router			/v1/categories/undefined [get]
func (co *Controller) GetUndefinedCategory(c *gin.Context) {
	co.read(func(p *models.Project) {
		c.JSON(http.StatusOK, newCategory(p, p.UndefinedCategory()))
	})
}

// @Summary		Create category
// @Description	Creates a new category
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	Category
// @Failure		400			{object}	httputil.HTTPError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co *Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		var category models.Category
		editable.apply(&category)

		if p.CategoryGroup(category.GroupID) == nil {
			httputil.ErrorHandler(c, models.ErrUnknownReference)
			return
		}

		p.AddCategory(&category)
		c.JSON(http.StatusCreated, newCategory(p, &category))
	})
}

// @Summary		Get category
// @Description	Returns a specific category
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	Category
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co *Controller) GetCategory(c *gin.Context) {
	co.read(func(p *models.Project) {
		category := p.Category(c.Param("id"))
		if category == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		c.JSON(http.StatusOK, newCategory(p, category))
	})
}

// @Summary		Update category
// @Description	Updates a category. Only values to be updated need to be specified.
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	Category
// @Failure		400			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func (co *Controller) UpdateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		category := p.Category(c.Param("id"))
		if category == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		updated := *category
		editable.apply(&updated)

		if p.CategoryGroup(updated.GroupID) == nil {
			httputil.ErrorHandler(c, models.ErrUnknownReference)
			return
		}

		*category = updated
		c.JSON(http.StatusOK, newCategory(p, category))
	})
}

// @Summary		Delete category
// @Description	Deletes a category. Operations referencing it become uncategorized.
// @Tags			Categories
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func (co *Controller) DeleteCategory(c *gin.Context) {
	co.write(func(p *models.Project) {
		id := c.Param("id")
		if !p.RemoveCategory(id) {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		for _, operation := range p.Operations {
			if operation.CategoryID == id {
				operation.CategoryID = ""
			}
		}

		c.Status(http.StatusNoContent)
	})
}

// CategorySummaryResponse is the per-month breakdown of a category or a
// category group over one year.
type CategorySummaryResponse struct {
	models.CategorySummary
	MonthlyAverage types.Money `json:"monthlyAverage"`
}

// @Summary		Category year summary
// @Description	Returns the monthly sums of a category on an account for a year. The ID "undefined" summarizes uncategorized operations.
// @Tags			Categories
// @Produce		json
// @Success		200		{object}	CategorySummaryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		412		{object}	httputil.HTTPError
// @Param			id		path		string	true	"ID of the category"
// @Param			year	path		int		true	"Year to summarize"
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/categories/{id}/summary/{year} [get]
func (co *Controller) GetCategorySummary(c *gin.Context) {
	co.read(func(p *models.Project) {
		category := p.Category(c.Param("id"))
		if category == nil {
			if c.Param("id") != p.UndefinedCategory().ID {
				httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
				return
			}
			category = p.UndefinedCategory()
		}

		account := p.Account(c.Query("account"))
		if account == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		year, err := parseYear(c)
		if err != nil {
			return
		}

		summary, err := p.CategorySummary(category, account, year)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		c.JSON(http.StatusOK, CategorySummaryResponse{
			CategorySummary: summary,
			MonthlyAverage:  summary.MonthlyAverage(),
		})
	})
}
