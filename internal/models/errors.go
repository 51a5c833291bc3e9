package models

import (
	"errors"
)

var (
	// ErrGeneral replaces all database errors that are not caused by the request.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrResourceNotFound is wrapped with the name of the missing resource,
	// e.g. "there is no Expense matching your query".
	ErrResourceNotFound = errors.New("there is no")
)
