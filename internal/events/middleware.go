package events

import (
	"net/http"

	"github.com/franciscosanchezn/tablekeeper/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// ErrorHandler renders every error as {"error": message}. Unexpected errors are logged and hidden from the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	} else {
		logrus.WithError(err).WithField("path", c.Path()).Error("Unhandled error")
	}

	_ = c.JSON(code, ErrorResponse{Error: msg})
}

// Validator adapts go-playground/validator to echo
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validation.New()}
}

func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// RequestLogger logs one line per request through logrus
func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("Request failed")
				return nil
			}
			entry.Info("Request handled")
			return nil
		},
	})
}

// NewServer builds the echo instance serving /events and /health
func NewServer(svc EventService, logger *logrus.Logger, origins []string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Validator = NewValidator()
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{AllowOrigins: origins}))
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "events"})
	})

	NewEventHandler(svc).RegisterRoutes(e.Group("/events"))
	return e
}
