package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every processed request
func RequestLogger(logger logrus.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// lets error handler commit the response so the actual status is logged
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			logger.WithFields(logrus.Fields{
				"method":    req.Method,
				"uri":       req.RequestURI,
				"status":    res.Status,
				"latency":   time.Since(start).String(),
				"requestId": res.Header().Get(echo.HeaderXRequestID),
				"remoteIp":  c.RealIP(),
			}).Info("request processed")
			return nil
		}
	}
}
