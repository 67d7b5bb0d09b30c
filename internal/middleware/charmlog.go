package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs each request through the package level charm logger.
// Status queries are logged at debug level since clients poll them.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			fields := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"took", time.Since(start),
			}

			switch {
			case err != nil:
				log.Error("request failed", append(fields, "err", err)...)
			case req.URL.Path == "/status":
				log.Debug("request", fields...)
			default:
				log.Info("request", fields...)
			}
			return nil
		}
	}
}
