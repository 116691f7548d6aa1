package apperr

import (
	"errors"
	"net/http"
)

// HTTPStatus maps an error's Code to the status the request boundary should
// answer with. Unknown errors deliberately collapse to 500 so callers never
// leak internals by accident.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the presentable message for err. Non-AppErrors get a
// generic message instead of their raw text.
func Message(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "internal server error"
}
