package services

import "errors"

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrInvalidCost      = errors.New("invalid cost")
	ErrCostUserNotFound = errors.New("user does not exist")
)
