package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/gateway"
)

var badRequest = []error{
	domain.ErrInvalidDate,
	domain.ErrEmptyItemCode,
	domain.ErrEmptyEquipID,
	domain.ErrEmptyAuthor,
	domain.ErrUnknownSheet,
	domain.ErrInvalidPage,
	domain.ErrEmptyLine,
	domain.ErrNoResults,
	domain.ErrEmptyCheckItem,
	domain.ErrEmptySigner,
	domain.ErrEmptySignature,
	domain.ErrInvalidBounds,
}

// mapErrorToHTTP converts use case errors to a status code and a client
// message.
func mapErrorToHTTP(err error) (int, string) {
	for _, target := range badRequest {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	switch {
	case errors.Is(err, domain.ErrRowCountChanged):
		return http.StatusConflict, domain.ErrRowCountChanged.Error()

	// A partial write wraps the backend error as well; it must win.
	case errors.Is(err, domain.ErrPartialWrite):
		return http.StatusInternalServerError, domain.ErrPartialWrite.Error()

	case errors.Is(err, gateway.ErrBackendUnavailable):
		return http.StatusServiceUnavailable, gateway.ErrBackendUnavailable.Error()

	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// abortWithError records err for the access log and writes the fail-closed body.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	code, msg := mapErrorToHTTP(err)
	c.AbortWithStatusJSON(code, OKResponse{OK: false, Error: msg})
}
