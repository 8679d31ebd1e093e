package models

import "errors"

var (
	ErrNotFound            = errors.New("file not found")
	ErrNoFiles             = errors.New("no files in request")
	ErrTooManyFiles        = errors.New("too many files in request")
	ErrFileTooLarge        = errors.New("file exceeds size limit")
	ErrExtensionNotAllowed = errors.New("file extension not allowed")
)
