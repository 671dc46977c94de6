package services

import "errors"

// Common errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrFolderNotFound = errors.New("folder not found")
	ErrNoteNotFound   = errors.New("note not found")
	ErrTagNotFound    = errors.New("tag not found")

	ErrInvalidID        = errors.New("the id is not valid")
	ErrMissingField     = errors.New("missing field in request body")
	ErrInvalidReference = errors.New("invalid reference")
	ErrValidation       = errors.New("validation error")
	ErrDuplicateName    = errors.New("name already exists")
	ErrUserExists       = errors.New("username already exists")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
