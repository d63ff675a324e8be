package service

import "errors"

var (
	ErrWrongCredentials       = errors.New("wrong email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrSessionExpired         = errors.New("session is expired")
	ErrAccessDenied           = errors.New("access denied")
	ErrNotFoundOnServer       = errors.New("requested record was not found")
	ErrServerFailure          = errors.New("server failure")

	ErrNoFilesProvided = errors.New("no files provided for upload")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
