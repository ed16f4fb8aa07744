package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("username already exists")
	ErrSelfDelete   = errors.New("cannot delete your own account")

	ErrPatientNotFound     = errors.New("patient not found")
	ErrProcedureNotFound   = errors.New("procedure not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrVisitNotFound       = errors.New("visit not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrImageNotFound       = errors.New("image not found")
)
