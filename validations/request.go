package validations

import (
	"mime"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// HasJSONContentType reports whether the Content-Type header is application/json
func HasJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == fiber.MIMEApplicationJSON
}

// MethodHasBody reports whether the method carries a request body worth parsing
func MethodHasBody(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch:
		return true
	default:
		return false
	}
}

// ValidateJSONRoot accepts only an object or array at the top level
func ValidateJSONRoot(body []byte) error {
	trimmed := strings.TrimLeft(string(body), " \t\r\n")
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return fiber.NewError(fiber.StatusBadRequest, "JSON body must be an object or array")
	}
	return nil
}

// ValidateJSONBodySize rejects bodies larger than limit bytes
func ValidateJSONBodySize(body []byte, limit int) error {
	if len(body) > limit {
		return fiber.NewError(fiber.StatusRequestEntityTooLarge, "request entity too large")
	}
	return nil
}
