package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Astemirdum/biblioteca/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
)

const LoginPath = "/login"

// PrincipalLoader resolves a session user id back to a principal.
type PrincipalLoader func(ctx context.Context, userID int) (auth.Principal, error)

// LoadPrincipal restores the principal from the session cookie. Any failure
// leaves the request anonymous.
func LoadPrincipal(sessions *auth.Sessions, load PrincipalLoader, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}
			userID, err := sessions.UserID(cookie.Value)
			if err != nil {
				return next(c)
			}
			req := c.Request()
			p, err := load(req.Context(), userID)
			if err != nil {
				log.Debug("session user not loaded", zap.Int("userID", userID), zap.Error(err))
				return next(c)
			}
			c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), p)))
			return next(c)
		}
	}
}

// Guard applies the guards before the handler: Redirect goes to the login page,
// Forbid answers 403 without saying why.
func Guard(guards ...auth.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := auth.PrincipalFrom(c.Request().Context())
			switch auth.Evaluate(p, guards...) {
			case auth.Redirect:
				target := LoginPath + "?" + url.Values{"next": []string{c.Request().URL.RequestURI()}}.Encode()
				return c.Redirect(http.StatusFound, target)
			case auth.Forbid:
				return echo.NewHTTPError(http.StatusForbidden, http.StatusText(http.StatusForbidden))
			}
			return next(c)
		}
	}
}

func NewRateLimiter(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}

func RequestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	log = log.Named("echo")
	c := middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
	return c
}
