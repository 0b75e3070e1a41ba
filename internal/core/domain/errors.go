package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrSessionExpired     = errors.New("session expired or revoked")
	ErrChangeTokenInvalid = errors.New("email change token invalid or expired")
	ErrGoogleNotLinked    = errors.New("google account not linked")
	ErrForbidden          = errors.New("access forbidden")

	ErrResidentNotFound  = errors.New("resident not found")
	ErrDuplicateResident = errors.New("resident already exists")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrDuplicateResource = errors.New("resource already exists")
	ErrCondoNotFound     = errors.New("condominium not found")
)
