package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateEmail   = errors.New("email already subscribed")
	ErrProcessorFailure = errors.New("payment processor failure")
)
