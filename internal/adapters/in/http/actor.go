package http

import (
	"net/http"

	"travelorders/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the trusted gateway in front of this service.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUserName  = "X-User-Name"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the calling user from the gateway identity
// headers and stores the constructed actor in the request context. Requests
// without a valid identity are rejected before reaching any handler.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header

			id, err := kernel.UUIDFromString(header.Get(HeaderUserID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + HeaderUserID + " header",
				})
			}

			actor, err := kernel.NewActor(
				id,
				header.Get(HeaderUserName),
				header.Get(HeaderUserEmail),
				kernel.Role(header.Get(HeaderUserRole)),
			)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid identity headers: " + err.Error(),
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFromContext returns the actor resolved by ActorMiddleware.
func actorFromContext(ctx echo.Context) kernel.Actor {
	actor, _ := ctx.Get(actorContextKey).(kernel.Actor)
	return actor
}
