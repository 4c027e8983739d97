// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/comptes-app/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// A Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping() error
}

// RegisterRoutes registers the routes for the healthz endpoint. The
// pinger may be nil, the application is then healthy whenever it
// responds.
func RegisterRoutes(r *gin.RouterGroup, pinger Pinger) {
	r.OPTIONS("", Options)
	r.GET("", Get(pinger))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(pinger Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if pinger != nil {
			if err := pinger.Ping(); err != nil {
				httputil.ErrorHandler(c, err)
				return
			}
		}

		c.Status(http.StatusNoContent)
	}
}
