package httputil

import (
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/comptes-app/backend/internal/importer"
	"github.com/comptes-app/backend/internal/models"
	"github.com/comptes-app/backend/internal/types"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler writes the error response matching err.
//
// Errors from reading client supplied data, money amounts, dates, CSV
// rows and project files, map to 400. Missing resources map to 404 and
// domain preconditions to 412. Everything else is an internal error,
// its details are logged but not shared with the client.
func ErrorHandler(c *gin.Context, err error) {
	var rowErr importer.RowError

	switch {
	case errors.Is(err, ErrResourceNotFound),
		errors.Is(err, fs.ErrNotExist):
		NewError(c, http.StatusNotFound, err)

	case errors.Is(err, models.ErrNoCategories),
		errors.Is(err, models.ErrForeignAccount):
		NewError(c, http.StatusPreconditionFailed, err)

	case errors.Is(err, types.ErrMoneyFormat),
		errors.Is(err, models.ErrUnknownReference),
		errors.Is(err, models.ErrGroupCycle),
		errors.Is(err, models.ErrMissingDate),
		errors.Is(err, ErrInvalidBody),
		errors.Is(err, ErrRequestBodyEmpty),
		errors.As(err, &rowErr),
		errors.As(err, new(*time.ParseError)):
		NewError(c, http.StatusBadRequest, err)

	default:
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusInternalServerError, errors.New("an error occurred on the server during your request, the request id '"+requestid.Get(c)+"' helps your server administrator to find the problem"))
	}
}

// NewError creates an HTTPError instance and returns it.
func NewError(c *gin.Context, status int, err error) {
	e := HTTPError{
		Error: err.Error(),
	}
	c.JSON(status, e)
}

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"there is no resource for the specified ID"`
}
