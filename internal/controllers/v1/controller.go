// Package v1 implements the v1 API.
//
// All endpoints operate on the currently open project. The project is
// held in memory and only touches the disk when it is explicitly opened
// or saved.
package v1

import (
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/settings"
	"github.com/gin-gonic/gin"
)

// Controller holds the open project and the settings store.
//
// Handlers run concurrently, the mutex serializes access to the project.
type Controller struct {
	mu      sync.RWMutex
	project *models.Project
	path    string

	store *settings.Store
}

// NewController returns a controller with an empty project. The store
// may be nil, recent file tracking is skipped in that case.
func NewController(store *settings.Store) *Controller {
	return &Controller{
		project: models.NewProject(),
		store:   store,
	}
}

// read runs fn with the project under the read lock.
func (co *Controller) read(fn func(p *models.Project)) {
	co.mu.RLock()
	defer co.mu.RUnlock()
	fn(co.project)
}

// write runs fn with the project under the write lock.
func (co *Controller) write(fn func(p *models.Project)) {
	co.mu.Lock()
	defer co.mu.Unlock()
	fn(co.project)
}

// parseYear reads the year path parameter. On failure it writes the
// error response, callers only need to return.
func parseYear(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errors.New("the year must be an integer"))
		return 0, err
	}

	return year, nil
}

// RegisterRoutes registers all v1 routes on the passed group.
func (co *Controller) RegisterRoutes(v1 *gin.RouterGroup) {
	co.RegisterAccountRoutes(v1.Group("/accounts"))
	co.RegisterOperationRoutes(v1.Group("/operations"))
	co.RegisterCategoryRoutes(v1.Group("/categories"))
	co.RegisterCategoryGroupRoutes(v1.Group("/category-groups"))
	co.RegisterImportRoutes(v1.Group("/import"))
	co.RegisterProjectRoutes(v1.Group("/project"))
}
