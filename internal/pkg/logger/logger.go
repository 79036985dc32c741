package logger

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init builds the process logger and installs it as the zerolog global.
// Unknown levels fall back to info; any format other than "console" is JSON.
func Init(level, format string) zerolog.Logger {
	return New(os.Stdout, level, format)
}

func New(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(out).With().
		Timestamp().
		Str("service", "analytics").
		Logger().
		Level(lvl)

	log.Logger = l
	return l
}

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger(l zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()

		status := c.Response().StatusCode()
		if chainErr != nil {
			if fe, ok := chainErr.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := l.Info()
		if status >= fiber.StatusInternalServerError {
			ev = l.Error().Err(chainErr)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Int("status", status).
			Int("bytes", len(c.Response().Body())).
			Dur("duration", time.Since(start)).
			Msg("http_request")

		return chainErr
	}
}
