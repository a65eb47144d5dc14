package controllers

import (
	"errors"
	"net/http"

	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError translates a service-layer error into an HTTP status and a
// typed API error. Every failure is recovered here, right next to the
// operation that produced it; nothing bubbles past the controller.
func respondError(ctx *gin.Context, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, models.ErrValidation):
		status, code = http.StatusBadRequest, models.ErrCodeValidationFailed
	case errors.Is(err, models.ErrEmptyCart):
		status, code = http.StatusBadRequest, models.ErrCodeEmptyCart
	case errors.Is(err, models.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, models.ErrCodeInvalidCredentials
	case errors.Is(err, models.ErrNotFound):
		status, code = http.StatusNotFound, models.ErrCodeNotFound
	case errors.Is(err, models.ErrDuplicateName):
		status, code = http.StatusConflict, models.ErrCodeDuplicateName
	case errors.Is(err, models.ErrReferentialConflict):
		status, code = http.StatusConflict, models.ErrCodeReferentialBlock
	default:
		status, code = http.StatusInternalServerError, models.ErrCodeInternalServer
	}

	ctx.JSON(status, models.NewAPIError(code, err.Error()))
}
