package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrBundleNotFound      = errors.New("bundle not found")
)
