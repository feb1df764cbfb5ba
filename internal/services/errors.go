package services

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotReady      = errors.New("assessment has not been reviewed yet")
)
