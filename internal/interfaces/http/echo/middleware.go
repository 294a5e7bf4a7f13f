package echo

import (
	"time"

	e "github.com/labstack/echo/v4"
	"github.com/mohammadpnp/user-registry/internal/logging"
	"github.com/sirupsen/logrus"
)

// RequestLogger attaches a request-scoped logrus entry to the request context
// and logs one line per completed request.
func RequestLogger(logger logrus.FieldLogger) e.MiddlewareFunc {
	return func(next e.HandlerFunc) e.HandlerFunc {
		return func(c e.Context) error {
			started := time.Now()
			req := c.Request()

			entry := logger.WithFields(logrus.Fields{
				"request_id": c.Response().Header().Get(e.HeaderXRequestID),
				"method":     req.Method,
				"route":      c.Path(),
			})
			c.SetRequest(req.WithContext(logging.WithLogger(req.Context(), entry)))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			fields := logrus.Fields{
				"status":  c.Response().Status,
				"latency": time.Since(started).String(),
				"bytes":   c.Response().Size,
			}
			if c.Response().Status >= 500 {
				entry.WithFields(fields).Warn("request completed with server error")
			} else {
				entry.WithFields(fields).Info("request completed")
			}
			return nil
		}
	}
}
