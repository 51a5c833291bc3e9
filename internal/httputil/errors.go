package httputil

import "errors"

// Errors returned by BindData. Controllers translate them for the client,
// the texts here only appear in logs.
var (
	ErrInvalidBody      = errors.New("request body is not valid JSON for this endpoint")
	ErrRequestBodyEmpty = errors.New("request body is empty")
)
