package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// EnsureRequestID tags every request with an id so log lines from the
// same request can be correlated. A client-supplied X-Request-ID is kept;
// otherwise one is generated.
func EnsureRequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Check if requestID is already set
		if c.Locals("requestID") != nil {
			return c.Next()
		}

		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		// Store in context for this request and echo it back
		c.Locals("requestID", requestID)
		c.Set("X-Request-ID", requestID)
		return c.Next()
	}
}
