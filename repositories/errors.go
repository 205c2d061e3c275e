package repositories

import "errors"

var (
	ErrNotFound = errors.New("record not found")

	// ErrRootAdminProtected is returned when a delete targets the master
	// administrator record.
	ErrRootAdminProtected = errors.New("the root administrator cannot be removed")
)
