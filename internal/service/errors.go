package service

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrValidation         = errors.New("validation failed")
	ErrActiveSubscription = errors.New("active subscription exists")
	ErrInvalidSignature   = errors.New("invalid payment signature")
	ErrInvalidOTP         = errors.New("invalid otp")
	ErrExpiredOTP         = errors.New("otp expired")
)
