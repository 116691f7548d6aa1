package usecase

import "github.com/AnastasiaYuhimenko/simple-messanger/pkg/apperr"

var (
	ErrGroupNotFound  = apperr.NotFound("group chat not found")
	ErrNotAChatMember = apperr.Forbidden("you are not a member of this group")
	ErrForbidden      = apperr.Forbidden("you do not have permission to do this")
	ErrOwnerImmutable = apperr.Forbidden("the group owner cannot be removed")
	ErrUserNotFound   = apperr.NotFound("no user with this username")
	ErrPersistence    = apperr.Internal("group persistence error")
)
