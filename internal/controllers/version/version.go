// Package version serves the version of the running backend.
package version

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/httputil"
)

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                                               // Release version, set at build time
	Revision  string `json:"revision,omitempty" example:"4b6a1f0c4c1e7d0b2f3e9a8d7c6b5a4f3e2d1c0b"` // VCS revision the binary was built from
	GoVersion string `json:"goVersion" example:"go1.25.5"`
}

// current is the version reported by Get. It is set by RegisterRoutes.
var current Object

// RegisterRoutes registers the version endpoint. version is the release
// version reported to clients.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	current = Object{
		Version:   version,
		Revision:  revision(),
		GoVersion: runtime.Version(),
	}

	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the release version, the VCS revision and the Go version of the running backend
// @Tags			General
// @Produce		json
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Data: current})
}

func revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}

	return ""
}
