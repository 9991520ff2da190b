package utils

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email and/or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileLimitReached  = errors.New("profile limits reached for your account type")
	ErrPlanNotAssigned      = errors.New("no plan assigned to this account")
	ErrPasswordConfirmation = errors.New("password and confirmation do not match")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrDuplicateRecord      = errors.New("record already exists")
	ErrRecordNotFound       = errors.New("record not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
)
