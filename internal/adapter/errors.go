package adapter

import "errors"

// Transport-level sentinel errors produced by [mapHTTPError]. Services
// translate these into user-facing notices; pages never see raw HTTP
// status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)
