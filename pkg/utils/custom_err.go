package utils

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrNotAssigned        = errors.New("officer not assigned to patrol")
	ErrPatrolNotFound     = errors.New("patrol not found")
	ErrCheckpointNotFound = errors.New("checkpoint not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrLocationNotFound   = errors.New("location not found")
	ErrLogNotFound        = errors.New("log entry not found")
	ErrInvalidState       = errors.New("operation not allowed in current patrol state")
	ErrVersionConflict    = errors.New("patrol was modified concurrently")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
)
