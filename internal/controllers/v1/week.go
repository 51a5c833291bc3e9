package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/httputil"
)

type WeekResponse struct {
	Data budget.View `json:"data"` // The current week
}

// RegisterWeekRoutes registers the routes for the current week with
// the RouterGroup that is passed.
func (co Controller) RegisterWeekRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetWeek)
}

// @Summary		Get the current week
// @Description	Returns rates, spending, carryover and the remaining budget of the current week. The transfer of last week's balance is recorded if it is due.
// @Tags			Week
// @Produce		json
// @Success		200	{object}	WeekResponse
// @Failure		500	{object}	HTTPError
// @Param			lang	query	string	false	"Language of error messages"
// @Router			/v1/week [get]
func (co Controller) GetWeek(c *gin.Context) {
	view, err := co.Service.WeeklyView(c.Request.Context(), co.Service.Now())
	if err != nil {
		co.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, WeekResponse{Data: view})
}
