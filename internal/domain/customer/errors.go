package customer

import "errors"

var (
	ErrNotFound     = errors.New("customer not found")
	ErrMissingField = errors.New("required field is missing")
)
