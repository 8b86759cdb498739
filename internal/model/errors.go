package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("proctor account not found")

	// Code errors
	ErrCodeNotFound         = errors.New("access code not found")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired access code")
	ErrUnknownCode          = errors.New("cannot submit report for unknown code")

	// Report errors
	ErrReportNotFound = errors.New("report not found")
)
