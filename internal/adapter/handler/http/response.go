package http

import (
	"net/http"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/gin-gonic/gin"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrExpiredToken:               http.StatusUnauthorized,
	domain.ErrTokenCreation:              http.StatusInternalServerError,
	domain.ErrForbidden:                  http.StatusForbidden,

	domain.ErrNoUpdatedData: http.StatusBadRequest,
	domain.ErrBadRequest:    http.StatusBadRequest,

	domain.ErrUserNotFound:          http.StatusNotFound,
	domain.ErrCategoryNotFound:      http.StatusNotFound,
	domain.ErrProductNotFound:       http.StatusNotFound,
	domain.ErrOrderNotFound:         http.StatusNotFound,
	domain.ErrOrderNoItems:          http.StatusUnprocessableEntity,
	domain.ErrOrderBadQuantity:      http.StatusUnprocessableEntity,
	domain.ErrOrderDuplicateProduct: http.StatusConflict,
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleValidationError sends an error response for some specific request validation error
func handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

// handleAbort sends an error response and aborts the request with the specified status code and error message
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, errorResponse{Error: err.Error()})
}

// handleSuccess sends a success response with the specified status code and optional data
func handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func handleSuccess(ctx *gin.Context, data any) {
	handleSuccessWithStatus(ctx, data, http.StatusOK)
}
