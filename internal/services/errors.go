package services

import "errors"

// Common service errors
var (
	ErrZeroAcreage  = errors.New("total acres must be greater than zero")
	ErrLogoNotFound = errors.New("logo asset not found")
)
