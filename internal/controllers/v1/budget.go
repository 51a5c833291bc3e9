package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/httputil"
	"github.com/weekbudget/backend/internal/i18n"
)

const confirmClearBudgets = "yes-please-reset-budgets"

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsDelete)
	r.DELETE("", co.DeleteBudgets)
}

// @Summary		Reset budgets
// @Description	Resets the monthly budget to zero and deletes all transfers. The activation date is kept. The confirm parameter must be set to "yes-please-reset-budgets".
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	Message
// @Failure		400		{object}	HTTPError
// @Failure		500		{object}	HTTPError
// @Param			confirm	query		string	true	"Confirmation to reset the budgets"
// @Router			/v1/budgets [delete]
func (co Controller) DeleteBudgets(c *gin.Context) {
	if c.Query("confirm") != confirmClearBudgets {
		co.abort(c, errConfirmation, confirmClearBudgets)
		return
	}

	err := co.Service.ClearBudgets(c.Request.Context())
	if err != nil {
		co.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Message{Message: *co.translate(c, i18n.BudgetsCleared)})
}
