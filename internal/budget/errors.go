package budget

import "errors"

var (
	ErrInvalidAmount   = errors.New("the amount is not a valid number")
	ErrInvalidCycle    = errors.New("there must be at least 7 days between start and end day")
	ErrInvalidCurrency = errors.New("the currency is not supported")
)
