package model

import "errors"

// Returned by every repository so usecases do not depend on driver errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
