package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 5 * time.Second

// requestContext bounds store calls made on behalf of one request.
func requestContext(c *fiber.Ctx, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(c.UserContext(), timeout)
}
