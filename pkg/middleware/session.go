package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	SessionCookie = "recs_session"
	sessionKey    = "sessionID"
)

// Session attaches an operator session id to every request, issuing a new
// cookie when the request has none or an unparsable one.
func Session(ttl time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Cookies(SessionCookie))
		if err != nil {
			id = uuid.New()
			logger.Debug("Issuing operator session", zap.String("session_id", id.String()))
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    id.String(),
				Path:     "/",
				Expires:  time.Now().Add(ttl),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionKey, id)
		return c.Next()
	}
}

// SessionID returns the id stored by Session, or uuid.Nil when the
// middleware did not run.
func SessionID(c *fiber.Ctx) uuid.UUID {
	id, ok := c.Locals(sessionKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
