package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/weekbudget/backend/internal/cycle"
	"github.com/weekbudget/backend/internal/httputil"
	"github.com/weekbudget/backend/internal/i18n"
	"github.com/weekbudget/backend/internal/models"
	"github.com/weekbudget/backend/internal/types"
)

const confirmClearExpenses = "yes-please-delete-all-expenses"

type ExpenseEditable struct {
	Amount      Text   `json:"amount" example:"12,50"`       // The amount spent. The sign is ignored
	Description string `json:"description" example:"Coffee"` // What the money was spent on
}

type ExpenseListResponse struct {
	Data []models.Expense `json:"data"` // List of expenses, newest first
}

type ExpenseCreated struct {
	ID uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the created expense
}

type ExpenseCreateResponse struct {
	Data    ExpenseCreated `json:"data"`
	Message string         `json:"message" example:"Ausgabe hinzugefügt."` // Translated notice
}

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func (co Controller) RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPostDelete)
		r.GET("", co.GetExpenses)
		r.POST("", co.CreateExpense)
		r.DELETE("", co.DeleteExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", co.DeleteExpense)
	}
}

// @Summary		List expenses
// @Description	Returns the expenses in a date range, newest first. The range defaults to the current week.
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	HTTPError
// @Failure		500		{object}	HTTPError
// @Param			from	query		string	false	"First day, inclusive (YYYY-MM-DD)"
// @Param			to		query		string	false	"Last day, inclusive (YYYY-MM-DD)"
// @Router			/v1/expenses [get]
func (co Controller) GetExpenses(c *gin.Context) {
	from, to := cycle.WeekOf(co.Service.Today())

	for param, target := range map[string]*types.Date{"from": &from, "to": &to} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}

		d, err := types.ParseDate(raw)
		if err != nil {
			co.abort(c, errInvalidDate, raw)
			return
		}
		*target = d
	}

	expenses, err := co.Service.Expenses(c.Request.Context(), from, to)
	if err != nil {
		co.abort(c, err)
		return
	}

	if expenses == nil {
		expenses = make([]models.Expense, 0)
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// @Summary		Create expense
// @Description	Records an expense for today. Both "," and "." are accepted as decimal separator, the sign is ignored.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseCreateResponse
// @Failure		400		{object}	HTTPError
// @Failure		500		{object}	HTTPError
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func (co Controller) CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		co.abort(c, err)
		return
	}

	id, err := co.Service.AddExpense(c.Request.Context(), string(editable.Amount), editable.Description)
	if err != nil {
		co.abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, ExpenseCreateResponse{
		Data:    ExpenseCreated{ID: id},
		Message: *co.translate(c, i18n.ExpenseAdded),
	})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Unknown IDs are ignored.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	HTTPError
// @Failure		500	{object}	HTTPError
// @Param			id	path		string	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func (co Controller) DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		co.abort(c, errInvalidID, c.Param("id"))
		return
	}

	err = co.Service.DeleteExpense(c.Request.Context(), id)
	if err != nil {
		co.abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Delete all expenses
// @Description	Deletes all expenses. The confirm parameter must be set to "yes-please-delete-all-expenses".
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	Message
// @Failure		400		{object}	HTTPError
// @Failure		500		{object}	HTTPError
// @Param			confirm	query		string	true	"Confirmation to delete all expenses"
// @Router			/v1/expenses [delete]
func (co Controller) DeleteExpenses(c *gin.Context) {
	if c.Query("confirm") != confirmClearExpenses {
		co.abort(c, errConfirmation, confirmClearExpenses)
		return
	}

	err := co.Service.ClearExpenses(c.Request.Context())
	if err != nil {
		co.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, Message{Message: *co.translate(c, i18n.ExpensesCleared)})
}
