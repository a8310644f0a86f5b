package analyzer

import "errors"

var (
	// ErrFileNotFound reports that the log file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrFileUnreadable reports any other failure to open the log file.
	ErrFileUnreadable = errors.New("file unreadable")
)
