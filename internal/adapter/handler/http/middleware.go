package http

import (
	"strings"

	"github.com/LudNieto/ecommerce-go/internal/core/domain"
	"github.com/LudNieto/ecommerce-go/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const authHeaderKey = "Authorization"
const authType = "Bearer"
const userPayloadKey = "user_payload"

const requestIDHeaderKey = "X-Request-Id"

func authCheck(tokenService port.TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get(authHeaderKey)
		if len(header) == 0 {
			handleAbort(ctx, domain.ErrEmptyAuthorizationHeader)
			return
		}

		words := strings.Split(header, " ")
		if len(words) != 2 {
			handleAbort(ctx, domain.ErrInvalidAuthorizationHeader)
			return
		}
		if words[0] != authType {
			handleAbort(ctx, domain.ErrInvalidAuthorizationType)
			return
		}
		token := words[1]
		payload, err := tokenService.VerifyToken(token)
		if err != nil {
			handleAbort(ctx, domain.ErrInvalidToken)
			return
		}

		ctx.Set(userPayloadKey, payload)

		ctx.Next()
	}
}

func getAuthPayload(ctx *gin.Context) *port.TokenPayload {
	return ctx.MustGet(userPayloadKey).(*port.TokenPayload)
}

// requestID propagates the incoming X-Request-Id or mints a new one.
func requestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Request.Header.Get(requestIDHeaderKey)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Header(requestIDHeaderKey, id)
		ctx.Set(requestIDHeaderKey, id)

		ctx.Next()
	}
}
