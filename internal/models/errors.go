package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrDuplicateEmail     = errors.New("models: duplicate email")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrClaimNotFound      = errors.New("claim not found")
	ErrNotOwner           = errors.New("caller is not the owner")
	ErrSelfClaim          = errors.New("cannot claim own item")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidCode        = errors.New("invalid or expired verification code")
	ErrSessionExpired     = errors.New("session expired")
)
