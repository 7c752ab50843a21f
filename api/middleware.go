package api

import (
	"log/slog"
	"time"

	"kucukaslan/nodeapp/metrics"
	"kucukaslan/nodeapp/validations"

	"github.com/gofiber/fiber/v2"
)

// BodyLocalKey is the request-local key holding the decoded JSON body
const BodyLocalKey = "body"

// JSONBody decodes JSON request bodies before dispatch and stores the result in
// c.Locals(BodyLocalKey). Only POST, PUT and PATCH bodies sent as application/json
// are parsed. A malformed body or a top-level primitive is rejected with 400, an
// oversized one with 413.
func JSONBody(limit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !validations.MethodHasBody(c.Method()) || !validations.HasJSONContentType(c.Get(fiber.HeaderContentType)) {
			return c.Next()
		}

		body := c.Body()
		if len(body) == 0 {
			return c.Next()
		}
		if err := validations.ValidateJSONBodySize(body, limit); err != nil {
			return err
		}
		if err := validations.ValidateJSONRoot(body); err != nil {
			return err
		}

		var payload any
		if err := c.App().Config().JSONDecoder(body, &payload); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body: "+err.Error())
		}
		c.Locals(BodyLocalKey, payload)

		return c.Next()
	}
}

// RequestLogger logs every request at debug level
func RequestLogger(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", metrics.ResponseStatus(c, err)),
			slog.Duration("latency", time.Since(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		logger.Debug("request", attrs...)
		return err
	}
}
