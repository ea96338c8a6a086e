package middleware

import (
	"fmt"
	"log/slog"
	"time"

	deliverycontext "rituality/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware emits exactly one structured record per completed request
// and plants a request-scoped logger into the request context.
type LoggerMiddleware struct {
	logger *slog.Logger
}

// NewLoggerMiddleware creates a new logger middleware.
func NewLoggerMiddleware(logger *slog.Logger) *LoggerMiddleware {
	return &LoggerMiddleware{logger: logger}
}

// Handle assigns a request id, scopes the logger and logs the completed request.
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		requestLogger := m.logger.With(slog.String("requestID", requestID))
		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, requestLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		m.logRequest(c, requestLogger, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, logger *slog.Logger, start time.Time, err error) {
	req := c.Request()
	res := c.Response()
	durationMs := float64(time.Since(start).Microseconds()) / 1000.0

	fields := []any{
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("status", res.Status),
		slog.String("duration", fmt.Sprintf("%.2fms", durationMs)),
		slog.String("remoteIP", c.RealIP()),
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	switch {
	case res.Status >= 500:
		logger.Error("Request completed", fields...)
	case res.Status >= 400:
		logger.Warn("Request completed", fields...)
	default:
		logger.Info("Request completed", fields...)
	}
}
