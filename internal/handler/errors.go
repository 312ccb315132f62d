package handler

import (
	"errors"
	"net/http"

	"github.com/ForoVideo/comment-service/internal/service"
)

var (
	errNotAuthorized = errors.New("user is not authorized")
	errInvalidPostID = errors.New("invalid post ID")
	errInvalidID     = errors.New("invalid ID")
)

func statusForServiceError(err error) int {
	switch {
	case errors.Is(err, service.ErrSignInToComment),
		errors.Is(err, service.ErrSignInToLike),
		errors.Is(err, service.ErrNotAuthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrContentTooShort),
		errors.Is(err, service.ErrContentTooLong):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrParentGone):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
