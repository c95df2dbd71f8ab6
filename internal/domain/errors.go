package domain

import "errors"

// Reviewer errors
var (
	ErrReviewerNotFound    = errors.New("reviewer not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document contains no text")
)
