package geo

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")

	// ErrLengthMismatch is the cause when candidate longitude and latitude
	// slices differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrLongitudeRange is the cause when the reference longitude is outside [-180, 180].
	ErrLongitudeRange = errors.New("longitude out of range")

	// ErrLatitudeRange is the cause when the reference latitude is outside [-90, 90].
	ErrLatitudeRange = errors.New("latitude out of range")
)

// ValidationError reports a rejected distance request.
//
// Cause is one of ErrLengthMismatch, ErrLongitudeRange or ErrLatitudeRange and
// can be tested with errors.Is.
type ValidationError struct {
	Cause  error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.Cause, e.Detail)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func lengthMismatch(nLon, nLat int) error {
	return &ValidationError{
		Cause:  ErrLengthMismatch,
		Detail: fmt.Sprintf("%d longitudes, %d latitudes", nLon, nLat),
	}
}

func longitudeRange(lon float64) error {
	return &ValidationError{
		Cause:  ErrLongitudeRange,
		Detail: fmt.Sprintf("%v not in [-180, 180]", lon),
	}
}

func latitudeRange(lat float64) error {
	return &ValidationError{
		Cause:  ErrLatitudeRange,
		Detail: fmt.Sprintf("%v not in [-90, 90]", lat),
	}
}
