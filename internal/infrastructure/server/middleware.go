package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	httpHandlers "github.com/creativepulse/core/internal/adapters/http"
	"github.com/creativepulse/core/internal/ports"
)

// ActorHeader identifies the acting roster user on each request. The
// roster is static and trusted, so there is no credential check; role
// enforcement happens inside the services, not here.
const ActorHeader = "X-Actor-ID"

// actorMiddleware resolves the acting user from the roster and stores
// it on the request context for the handlers.
func (s *Server) actorMiddleware(roster ports.RosterService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actorID := c.Request().Header.Get(ActorHeader)
			if actorID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing "+ActorHeader+" header")
			}

			user, err := roster.GetUser(c.Request().Context(), actorID)
			if err != nil {
				s.logger.Warn("Unknown actor", "actor_id", actorID, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "Unknown actor")
			}

			httpHandlers.SetActor(c, user)

			return next(c)
		}
	}
}
