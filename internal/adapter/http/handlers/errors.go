package handlers

import (
	"errors"
	"log"
	"net/http"

	"outfitter_billing/internal/adapter/http/middleware"
	"outfitter_billing/internal/domain/entities"
	"outfitter_billing/internal/usecase"
	"outfitter_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errNoCaller       = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// mapUseCaseError maps the four error kinds to HTTP. Validation and state
// messages are passed through since they name the legal values.
func mapUseCaseError(err error, stateCode string) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrStaffOnly):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Action requires outfitter staff", http.StatusForbidden)
	case errors.Is(err, usecase.ErrAuthorization):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrState):
		return pkg.NewDomainErrorSimple(stateCode, err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrCollaborator):
		return pkg.NewDomainError("UPSTREAM_UNAVAILABLE", "A dependent service failed, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func callerOrAbort(c *gin.Context) (entities.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		log.Printf("[http][handler] no caller on request path=%s", c.FullPath())
		writeError(c, errNoCaller)
		return entities.Caller{}, false
	}
	return caller, true
}
