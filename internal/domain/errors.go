package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrSpaceNotFound       = errors.New("space not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrReservationConflict = errors.New("space is already reserved for the requested time period")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrDirectoryUnavailable = errors.New("directory service unavailable")
)
