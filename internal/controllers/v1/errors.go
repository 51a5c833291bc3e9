package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/httputil"
	"github.com/weekbudget/backend/internal/i18n"
	"github.com/weekbudget/backend/internal/models"
)

var (
	errConfirmation        = errors.New("the confirmation for the operation was incorrect")
	errInvalidDate         = errors.New("the date is not a valid YYYY-MM-DD date")
	errInvalidID           = errors.New("the ID is not a valid UUID")
	errUnsupportedLanguage = errors.New("the language is not supported")
)

// HTTPError is used for error responses.
type HTTPError struct {
	Error string `json:"error" example:"Ungültiger Betrag."`
}

// status returns the HTTP status for an error.
func status(err error) int {
	switch {
	case errors.Is(err, budget.ErrInvalidAmount),
		errors.Is(err, budget.ErrInvalidCycle),
		errors.Is(err, budget.ErrInvalidCurrency),
		errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, errConfirmation),
		errors.Is(err, errInvalidDate),
		errors.Is(err, errInvalidID),
		errors.Is(err, errUnsupportedLanguage):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

// messageKey returns the translation key for an error.
func messageKey(err error) string {
	switch {
	case errors.Is(err, budget.ErrInvalidAmount):
		return i18n.InvalidAmount
	case errors.Is(err, budget.ErrInvalidCycle):
		return i18n.InvalidCycle
	case errors.Is(err, budget.ErrInvalidCurrency):
		return i18n.InvalidCurrency
	case errors.Is(err, httputil.ErrInvalidBody), errors.Is(err, httputil.ErrRequestBodyEmpty):
		return i18n.InvalidRequest
	case errors.Is(err, errConfirmation):
		return i18n.ConfirmationRequired
	case errors.Is(err, errInvalidDate):
		return i18n.InvalidDate
	case errors.Is(err, errInvalidID):
		return i18n.InvalidID
	case errors.Is(err, errUnsupportedLanguage):
		return i18n.UnsupportedLanguage
	case errors.Is(err, models.ErrResourceNotFound):
		return i18n.NotFound
	}

	return i18n.GeneralError
}

// abort responds with the translated error. The arguments are used
// to format the message.
//
// Server side errors are logged with the request ID.
func (co Controller) abort(c *gin.Context, err error, args ...any) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(s, HTTPError{
		Error: *co.translate(c, messageKey(err), args...),
	})
}
