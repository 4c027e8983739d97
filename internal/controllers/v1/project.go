package v1

import (
	"errors"
	"net/http"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var errNoProjectPath = errors.New("the project has no file yet, specify a path to save it to")

// RegisterProjectRoutes registers the routes for the project lifecycle
// with the RouterGroup that is passed.
func (co *Controller) RegisterProjectRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetProject)

	r.POST("/new", co.NewProject)
	r.POST("/open", co.OpenProject)
	r.POST("/save", co.SaveProject)
	r.GET("/export", co.ExportProject)
	r.GET("/recent-files", co.GetRecentFiles)
}

// ProjectResponse describes the currently open project.
type ProjectResponse struct {
	Version        string `json:"version"`
	Path           string `json:"path"` // file the project was opened from or saved to, empty for unsaved projects
	Accounts       int    `json:"accounts"`
	Operations     int    `json:"operations"`
	Categories     int    `json:"categories"`
	CategoryGroups int    `json:"categoryGroups"`
}

// ProjectFileQuery names the project file to open or save.
type ProjectFileQuery struct {
	Path string `json:"path"`
}

// touchRecent records the path in the recent files list. A failure is
// logged but does not fail the request, the project operation itself
// already succeeded.
func (co *Controller) touchRecent(path string) {
	if co.store == nil {
		return
	}

	if err := co.store.Touch(path); err != nil {
		log.Error().Err(err).Str("path", path).Msg("could not record recent file")
	}
}

// @Summary		Project info
// @Description	Returns information about the currently open project
// @Tags			Project
// @Produce		json
// @Success		200	{object}	ProjectResponse
// @Router			/v1/project [get]
func (co *Controller) GetProject(c *gin.Context) {
	co.read(func(p *models.Project) {
		c.JSON(http.StatusOK, ProjectResponse{
			Version:        p.Version,
			Path:           co.path,
			Accounts:       len(p.Accounts),
			Operations:     len(p.Operations),
			Categories:     len(p.Categories),
			CategoryGroups: len(p.CategoryGroups),
		})
	})
}

// @Summary		New project
// @Description	Replaces the open project with an empty one. Unsaved changes are lost.
// @Tags			Project
// @Produce		json
// @Success		201	{object}	ProjectResponse
// @Router			/v1/project/new [post]
func (co *Controller) NewProject(c *gin.Context) {
	co.mu.Lock()
	defer co.mu.Unlock()

	co.project = models.NewProject()
	co.path = ""

	c.JSON(http.StatusCreated, ProjectResponse{Version: co.project.Version})
}

// @Summary		Open project
// @Description	Opens a project file, replacing the open project. Unsaved changes are lost.
// @Tags			Project
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			project	body		ProjectFileQuery	true	"File to open"
// @Router			/v1/project/open [post]
func (co *Controller) OpenProject(c *gin.Context) {
	var query ProjectFileQuery
	if err := httputil.BindData(c, &query); err != nil {
		return
	}

	if query.Path == "" {
		httputil.NewError(c, http.StatusBadRequest, errors.New("the path must not be empty"))
		return
	}

	project, err := storage.Open(query.Path)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.mu.Lock()
	co.project = project
	co.path = query.Path
	co.mu.Unlock()

	co.touchRecent(query.Path)
	co.GetProject(c)
}

// @Summary		Save project
// @Description	Saves the open project. Without a path in the body, the file it was opened from is used.
// @Tags			Project
// @Produce		json
// @Success		200		{object}	ProjectResponse
// @Failure		400		{object}	httputil.HTTPError
// @Param			project	body		ProjectFileQuery	false	"File to save to"
// @Router			/v1/project/save [post]
func (co *Controller) SaveProject(c *gin.Context) {
	var query ProjectFileQuery
	// The body is optional, ignore binding problems and fall back to the
	// current path
	_ = c.ShouldBindJSON(&query)

	co.mu.Lock()
	path := query.Path
	if path == "" {
		path = co.path
	}

	if path == "" {
		co.mu.Unlock()
		httputil.NewError(c, http.StatusBadRequest, errNoProjectPath)
		return
	}

	err := storage.Save(path, co.project)
	if err == nil {
		co.path = path
	}
	co.mu.Unlock()

	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	co.touchRecent(path)
	co.GetProject(c)
}

// @Summary		Export project
// @Description	Returns the whole project in its file format
// @Tags			Project
// @Produce		json
// @Success		200	{object}	models.Snapshot
// @Router			/v1/project/export [get]
func (co *Controller) ExportProject(c *gin.Context) {
	co.read(func(p *models.Project) {
		c.Header("Content-Disposition", `attachment; filename="project.json"`)
		c.JSON(http.StatusOK, p.Snapshot())
	})
}

// RecentFilesResponse lists recently opened project files.
type RecentFilesResponse struct {
	RecentFiles []string `json:"recentFiles"`
}

// @Summary		Recent files
// @Description	Returns the recently opened project files, most recent first
// @Tags			Project
// @Produce		json
// @Success		200	{object}	RecentFilesResponse
// @Failure		500	{object}	httputil.HTTPError
// @Router			/v1/project/recent-files [get]
func (co *Controller) GetRecentFiles(c *gin.Context) {
	if co.store == nil {
		c.JSON(http.StatusOK, RecentFilesResponse{RecentFiles: make([]string, 0)})
		return
	}

	paths, err := co.store.RecentFiles()
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	if paths == nil {
		paths = make([]string, 0)
	}
	c.JSON(http.StatusOK, RecentFilesResponse{RecentFiles: paths})
}
