package domain

import "errors"

const (
	StyleNeutral = ""
	StyleSuccess = "success"
	StyleError   = "error"
	StyleInfo    = "info"
	StyleWarning = "warning"
)

var ErrInvalidStyle = errors.New("invalid toast style")

func IsValidStyle(value string) bool {
	switch value {
	case StyleNeutral, StyleSuccess, StyleError, StyleInfo, StyleWarning:
		return true
	default:
		return false
	}
}

var ErrEmptyText = errors.New("toast text is empty")

var ErrNegativeTimeout = errors.New("toast timeout is negative")
