package services

import "errors"

var (
	// ErrRestaurantNotFound is returned when the requested restaurant does not exist
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrValidationFailed is returned when a restaurant pizza cannot be created,
	// whether because of its price, a missing field or an unknown reference
	ErrValidationFailed = errors.New("validation failed")
)
