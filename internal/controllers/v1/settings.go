package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/httputil"
	"github.com/weekbudget/backend/internal/i18n"
)

// SettingsEditable holds the settings that can be changed. Fields that
// are not set are not changed.
type SettingsEditable struct {
	StartDay      *Text `json:"startDay" example:"27"`        // First day of the billing cycle
	EndDay        *Text `json:"endDay" example:"26"`          // Last day of the billing cycle
	MonthlyBudget *Text `json:"monthlyBudget" example:"1200"` // Budget for a full cycle
	Currency      *Text `json:"currency" example:"€"`         // ISO code or symbol of the currency
}

type SettingsResponse struct {
	Data     budget.Settings `json:"data"`
	Messages []string        `json:"messages"` // Translated notices for the changed settings
}

// RegisterSettingsRoutes registers the routes for settings with
// the RouterGroup that is passed.
func (co Controller) RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPatch)
	r.GET("", co.GetSettings)
	r.PATCH("", co.UpdateSettings)
}

// @Summary		Get settings
// @Description	Returns the billing cycle, the monthly budget, the activation date and the currency
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	HTTPError
// @Router			/v1/settings [get]
func (co Controller) GetSettings(c *gin.Context) {
	settings, err := co.Service.Settings(c.Request.Context())
	if err != nil {
		co.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings, Messages: []string{}})
}

// @Summary		Update settings
// @Description	Updates the settings that are set in the body. Settings are applied one by one, if one is rejected, the ones before it stay changed.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	HTTPError
// @Failure		500			{object}	HTTPError
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func (co Controller) UpdateSettings(c *gin.Context) {
	var editable SettingsEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		co.abort(c, err)
		return
	}

	ctx := c.Request.Context()
	messages := []string{}

	switch {
	case editable.StartDay != nil && editable.EndDay != nil:
		err = co.Service.UpdateCycle(ctx, string(*editable.StartDay), string(*editable.EndDay))
		if err != nil {
			co.abort(c, err)
			return
		}
		messages = append(messages, *co.translate(c, i18n.StartDaySaved), *co.translate(c, i18n.EndDaySaved))

	case editable.StartDay != nil:
		err = co.Service.UpdateStartDay(ctx, string(*editable.StartDay))
		if err != nil {
			co.abort(c, err)
			return
		}
		messages = append(messages, *co.translate(c, i18n.StartDaySaved))

	case editable.EndDay != nil:
		err = co.Service.UpdateEndDay(ctx, string(*editable.EndDay))
		if err != nil {
			co.abort(c, err)
			return
		}
		messages = append(messages, *co.translate(c, i18n.EndDaySaved))
	}

	if editable.MonthlyBudget != nil {
		err = co.Service.UpdateMonthlyBudget(ctx, string(*editable.MonthlyBudget))
		if err != nil {
			co.abort(c, err)
			return
		}
		messages = append(messages, *co.translate(c, i18n.BudgetSaved))
	}

	if editable.Currency != nil {
		err = co.Service.UpdateCurrency(ctx, string(*editable.Currency))
		if err != nil {
			co.abort(c, err)
			return
		}
		messages = append(messages, *co.translate(c, i18n.CurrencySaved))
	}

	settings, err := co.Service.Settings(ctx)
	if err != nil {
		co.abort(c, err)
		return
	}

	c.JSON(http.StatusOK, SettingsResponse{Data: settings, Messages: messages})
}
