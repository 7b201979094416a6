package devserver

import "errors"

var (
	ErrInvalidConfig   = errors.New("invalid dev server configuration")
	ErrRouteConflict   = errors.New("proxy prefix collides with public path")
	ErrDuplicatePrefix = errors.New("duplicate proxy prefix")
)
