package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrAlreadyReserved    = errors.New("already reserved")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidYear        = errors.New("year must be a number between 0 and 9999")
	ErrInvalidForm        = errors.New("required field is empty")
)
