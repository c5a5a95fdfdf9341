package models

import "errors"

// Domain-specific errors for document operations
var (
	// ErrUnknownField indicates a field name that is not part of the document
	ErrUnknownField = errors.New("unknown field")

	// ErrProjectNotFound indicates no project in the sequence has the given ID
	ErrProjectNotFound = errors.New("project not found")

	// ErrDuplicateProject indicates a project ID that is already in use
	ErrDuplicateProject = errors.New("project id already exists")

	// ErrMissingProjectID indicates a stored project without an ID
	ErrMissingProjectID = errors.New("project id is empty")
)
