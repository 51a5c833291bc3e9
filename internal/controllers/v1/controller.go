package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/httputil"
	"github.com/weekbudget/backend/internal/i18n"
	"golang.org/x/text/language"
)

// Controller handles all v1 API requests.
type Controller struct {
	Service *budget.Service
	Locales *i18n.Localizer
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetRoot)
	}

	co.RegisterWeekRoutes(r.Group("/week"))
	co.RegisterExpenseRoutes(r.Group("/expenses"))
	co.RegisterSettingsRoutes(r.Group("/settings"))
	co.RegisterBudgetRoutes(r.Group("/budgets"))
	co.RegisterCurrencyRoutes(r.Group("/currencies"))
	co.RegisterLanguageRoutes(r)
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Week       string `json:"week" example:"https://example.com/api/v1/week"`             // The current week
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses"`     // Expense list endpoint
	Settings   string `json:"settings" example:"https://example.com/api/v1/settings"`     // Settings endpoint
	Budgets    string `json:"budgets" example:"https://example.com/api/v1/budgets"`       // Endpoint to reset the budgets
	Currencies string `json:"currencies" example:"https://example.com/api/v1/currencies"` // Supported currencies
	Languages  string `json:"languages" example:"https://example.com/api/v1/languages"`   // Supported languages
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	RootResponse
// @Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := httputil.BaseURL(c) + "/v1"

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Week:       url + "/week",
			Expenses:   url + "/expenses",
			Settings:   url + "/settings",
			Budgets:    url + "/budgets",
			Currencies: url + "/currencies",
			Languages:  url + "/languages",
		},
	})
}

// language returns the language for the request.
func (co Controller) language(c *gin.Context) language.Tag {
	session, _ := c.Cookie(languageCookie)
	return co.Locales.Resolve(c.Query("lang"), session, c.GetHeader("Accept-Language"))
}

// translate returns the message for the key in the language of the request.
func (co Controller) translate(c *gin.Context, key string, args ...any) *string {
	s := co.Locales.Translate(co.language(c), key, args...)
	return &s
}
