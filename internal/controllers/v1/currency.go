package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/httputil"
)

type CurrencyListResponse struct {
	Data []budget.Currency `json:"data"` // List of supported currencies
}

// RegisterCurrencyRoutes registers the routes for currencies with
// the RouterGroup that is passed.
func (co Controller) RegisterCurrencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetCurrencies)
}

// @Summary		List currencies
// @Description	Returns the supported currencies
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyListResponse
// @Router			/v1/currencies [get]
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, CurrencyListResponse{Data: budget.Currencies()})
}
