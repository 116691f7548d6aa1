package usecase

import "github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"

var (
	ErrChatNotFound = apperr.NotFound("chat not found")
	ErrPeerNotFound = apperr.NotFound("no user with this username")
	ErrPersistence  = apperr.Internal("chat persistence error")
)
