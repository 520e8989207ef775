package http

import (
	"net/http"
	"strings"

	"foodorder/internal/core/domain/model/identity"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key the auth middleware stores the
// authenticated actor under.
const actorContextKey = "actor"

// TokenParser turns a bearer token into the actor it was issued for.
type TokenParser interface {
	Parse(token string) (identity.Actor, error)
}

// AuthMiddleware extracts the bearer token from the Authorization header,
// parses it and stores the resulting actor in the request context. Requests
// without a valid token are rejected with 401.
func AuthMiddleware(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			actor, err := parser.Parse(token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom retrieves the actor the auth middleware placed in the context.
func actorFrom(ctx echo.Context) (identity.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(identity.Actor)
	return actor, ok
}
