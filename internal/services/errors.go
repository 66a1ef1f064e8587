package services

import "errors"

// Sentinel errors the handlers translate to HTTP statuses.
var (
	ErrValidation   = errors.New("missing required fields")
	ErrCityNotFound = errors.New("city not found")
	ErrLeadNotFound = errors.New("lead not found")
)
