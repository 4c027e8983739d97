package v1

import (
	"net/http"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryGroupRoutes registers the routes for category groups
// with the RouterGroup that is passed.
func (co *Controller) RegisterCategoryGroupRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetCategoryGroups)
		r.POST("", co.CreateCategoryGroup)
	}

	// Category group with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetCategoryGroup)
		r.PATCH("/:id", co.UpdateCategoryGroup)
		r.DELETE("/:id", co.DeleteCategoryGroup)

		r.GET("/:id/categories", co.GetCategoryGroupCategories)
		r.GET("/:id/ancestors", co.GetCategoryGroupAncestors)
		r.GET("/:id/summary/:year", co.GetCategoryGroupSummary)
	}
}

// CategoryGroup is the API representation of a category group.
type CategoryGroup struct {
	models.CategoryGroup
	ParentID string `json:"parentId,omitempty"`
}

func newCategoryGroup(group *models.CategoryGroup) CategoryGroup {
	return CategoryGroup{
		CategoryGroup: *group,
		ParentID:      group.ParentID,
	}
}

// CategoryGroupEditable contains the fields of a category group a
// client can set. On PATCH, absent fields keep their value.
type CategoryGroupEditable struct {
	Name     *string       `json:"name"`
	Color    *models.Color `json:"color"`
	Emoji    *string       `json:"emoji"`
	ParentID *string       `json:"parentId"`
}

func (e CategoryGroupEditable) apply(group *models.CategoryGroup) {
	if e.Name != nil {
		group.Name = *e.Name
	}
	if e.Color != nil {
		group.Color = *e.Color
	}
	if e.Emoji != nil {
		group.Emoji = *e.Emoji
	}
	if e.ParentID != nil {
		group.ParentID = *e.ParentID
	}
}

// validateCategoryGroup checks the parent reference and that the group
// does not become its own ancestor.
func validateCategoryGroup(p *models.Project, group *models.CategoryGroup) error {
	if group.ParentID == "" {
		return nil
	}

	if p.CategoryGroup(group.ParentID) == nil {
		return models.ErrUnknownReference
	}

	_, err := p.GroupAncestors(group)
	return err
}

// @Summary		List category groups
// @Description	Returns all category groups of the open project
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{array}	CategoryGroup
// @Router			/v1/category-groups [get]
func (co *Controller) GetCategoryGroups(c *gin.Context) {
	co.read(func(p *models.Project) {
		groups := make([]CategoryGroup, 0, len(p.CategoryGroups))
		for _, group := range p.CategoryGroups {
			groups = append(groups, newCategoryGroup(group))
		}

		c.JSON(http.StatusOK, groups)
	})
}

// @Summary		Create category group
// @Description	Creates a new category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		201		{object}	CategoryGroup
// @Failure		400		{object}	httputil.HTTPError
// @Param			group	body		CategoryGroupEditable	true	"CategoryGroup"
// @Router			/v1/category-groups [post]
func (co *Controller) CreateCategoryGroup(c *gin.Context) {
	var editable CategoryGroupEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		var group models.CategoryGroup
		editable.apply(&group)

		if err := validateCategoryGroup(p, &group); err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		p.AddCategoryGroup(&group)
		c.JSON(http.StatusCreated, newCategoryGroup(&group))
	})
}

// @Summary		Get category group
// @Description	Returns a specific category group
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{object}	CategoryGroup
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category group"
// @Router			/v1/category-groups/{id} [get]
func (co *Controller) GetCategoryGroup(c *gin.Context) {
	co.read(func(p *models.Project) {
		group := p.CategoryGroup(c.Param("id"))
		if group == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		c.JSON(http.StatusOK, newCategoryGroup(group))
	})
}

// @Summary		Update category group
// @Description	Updates a category group. Only values to be updated need to be specified.
// @Tags			CategoryGroups
// @Produce		json
// @Success		200		{object}	CategoryGroup
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Param			id		path		string					true	"ID of the category group"
// @Param			group	body		CategoryGroupEditable	true	"CategoryGroup"
// @Router			/v1/category-groups/{id} [patch]
func (co *Controller) UpdateCategoryGroup(c *gin.Context) {
	var editable CategoryGroupEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	co.write(func(p *models.Project) {
		group := p.CategoryGroup(c.Param("id"))
		if group == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		// Validate against the project with the update in place, a cycle
		// only shows up once the group points to its new parent. Restore
		// the old state when validation fails.
		previous := *group
		editable.apply(group)

		if err := validateCategoryGroup(p, group); err != nil {
			*group = previous
			httputil.ErrorHandler(c, err)
			return
		}

		c.JSON(http.StatusOK, newCategoryGroup(group))
	})
}

// @Summary		Delete category group
// @Description	Deletes a category group. Its categories and child groups become unparented.
// @Tags			CategoryGroups
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category group"
// @Router			/v1/category-groups/{id} [delete]
func (co *Controller) DeleteCategoryGroup(c *gin.Context) {
	co.write(func(p *models.Project) {
		id := c.Param("id")
		if !p.RemoveCategoryGroup(id) {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		for _, group := range p.CategoryGroups {
			if group.ParentID == id {
				group.ParentID = ""
			}
		}
		for _, category := range p.Categories {
			if category.GroupID == id {
				category.GroupID = ""
			}
		}

		c.Status(http.StatusNoContent)
	})
}

// @Summary		Categories of a group
// @Description	Returns the categories of the group and all its descendant groups
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{array}		Category
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category group"
// @Router			/v1/category-groups/{id}/categories [get]
func (co *Controller) GetCategoryGroupCategories(c *gin.Context) {
	co.read(func(p *models.Project) {
		group := p.CategoryGroup(c.Param("id"))
		if group == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		members, err := p.CategoriesUnder(group)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		categories := make([]Category, 0, len(members))
		for _, category := range members {
			categories = append(categories, newCategory(p, category))
		}

		c.JSON(http.StatusOK, categories)
	})
}

// @Summary		Ancestors of a group
// @Description	Returns the ancestor groups, nearest first
// @Tags			CategoryGroups
// @Produce		json
// @Success		200	{array}		CategoryGroup
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path		string	true	"ID of the category group"
// @Router			/v1/category-groups/{id}/ancestors [get]
func (co *Controller) GetCategoryGroupAncestors(c *gin.Context) {
	co.read(func(p *models.Project) {
		group := p.CategoryGroup(c.Param("id"))
		if group == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
		}

		ancestors, err := p.GroupAncestors(group)
		if err != nil {
			httputil.ErrorHandler(c, err)
			return
		}

		groups := make([]CategoryGroup, 0, len(ancestors))
		for _, ancestor := range ancestors {
			groups = append(groups, newCategoryGroup(ancestor))
		}

		c.JSON(http.StatusOK, groups)
	})
}

// @Summary		Category group year summary
// @Description	Returns the monthly sums of all categories under the group on an account for a year
// @Tags			CategoryGroups
// @Produce		json
// @Success		200		{object}	CategorySummaryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		404		{object}	httputil.HTTPError
// @Failure		412		{object}	httputil.HTTPError
// @Param			id		path		string	true	"ID of the category group"
// @Param			year	path		int		true	"Year to summarize"
// @Param			account	query		string	true	"ID of the account"
// @Router			/v1/category-groups/{id}/summary/{year} [get]
func (co *Controller) GetCategoryGroupSummary(c *gin.Context) {
	co.read(func(p *models.Project) {
		group := p.CategoryGroup(c.Param("id"))
		if group == nil {
			httputil.ErrorHandler(c, httputil.ErrResourceNotFound)
			return
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

		summary, err := p.GroupSummary(group, account, year)
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
