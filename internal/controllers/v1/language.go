package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/weekbudget/backend/internal/httputil"
	"github.com/weekbudget/backend/internal/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageCookie stores the language chosen by the user.
const languageCookie = "lang"

// One year
const languageCookieMaxAge = 365 * 24 * 60 * 60

type Language struct {
	Code string `json:"code" example:"de"`      // Language code
	Name string `json:"name" example:"Deutsch"` // Name of the language in the language itself
}

type LanguageListResponse struct {
	Data    []Language `json:"data"`                 // Supported languages
	Current string     `json:"current" example:"de"` // Language used for this request
}

type LanguageResponse struct {
	Data    Language `json:"data"`
	Message string   `json:"message" example:"Sprache gespeichert."`
}

// RegisterLanguageRoutes registers the routes for languages with
// the RouterGroup that is passed.
func (co Controller) RegisterLanguageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/languages", httputil.OptionsGet)
	r.GET("/languages", co.GetLanguages)
	r.OPTIONS("/lang", httputil.OptionsGet)
	r.GET("/lang", co.SetLanguage)
}

func newLanguage(tag language.Tag) Language {
	return Language{
		Code: tag.String(),
		Name: display.Self.Name(tag),
	}
}

// @Summary		List languages
// @Description	Returns the supported languages and the language used for this request
// @Tags			Languages
// @Produce		json
// @Success		200	{object}	LanguageListResponse
// @Router			/v1/languages [get]
func (co Controller) GetLanguages(c *gin.Context) {
	languages := make([]Language, 0, len(i18n.Languages))
	for _, tag := range i18n.Languages {
		languages = append(languages, newLanguage(tag))
	}

	c.JSON(http.StatusOK, LanguageListResponse{
		Data:    languages,
		Current: co.language(c).String(),
	})
}

// @Summary		Set language
// @Description	Stores the language in the "lang" cookie
// @Tags			Languages
// @Produce		json
// @Success		200		{object}	LanguageResponse
// @Failure		400		{object}	HTTPError
// @Param			lang	query		string	true	"Language code"
// @Router			/v1/lang [get]
func (co Controller) SetLanguage(c *gin.Context) {
	raw := c.Query("lang")

	tag, ok := co.Locales.Supported(raw)
	if !ok {
		co.abort(c, errUnsupportedLanguage, raw)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(languageCookie, tag.String(), languageCookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, LanguageResponse{
		Data:    newLanguage(tag),
		Message: co.Locales.Translate(tag, i18n.LanguageSaved),
	})
}
