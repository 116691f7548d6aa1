package usecase

import "github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"

var (
	ErrInvalidCredentials = apperr.Unauthorized("wrong username or password")
	ErrIdentityNotFound   = apperr.Unauthorized("could not validate credentials")
	ErrUserNotFound       = apperr.NotFound("user not found")
	ErrPersistence        = apperr.Internal("identity persistence error")
)
