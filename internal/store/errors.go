package store

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already registered")
	ErrDocumentAlreadyExists = errors.New("document number already registered")
	ErrMfaConfigNotFound     = errors.New("mfa configuration not found")
	ErrPetNotFound           = errors.New("pet not found")
	ErrAdoptionNotFound      = errors.New("adoption not found")
	ErrRequestNotFound       = errors.New("adoption request not found")
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrReminderTypeNotFound  = errors.New("reminder type not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrDatabaseInternal      = errors.New("internal database error")
)
