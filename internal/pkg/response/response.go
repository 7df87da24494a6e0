package response

import "github.com/gofiber/fiber/v3"

// ErrorBody is the error wire contract: a status code and a human-readable
// detail string, nothing else.
type ErrorBody struct {
	Detail string `json:"detail"`
}

const (
	DetailBadRequest          = "Bad request"
	DetailUnauthorized        = "Not authenticated"
	DetailNotFound            = "Not found"
	DetailInternalServerError = "Internal server error"
)

// JSON writes a success payload as-is; handlers return plain documents and
// lists rather than an envelope.
func JSON(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Detail(c fiber.Ctx, status int, detail string) error {
	st := normalizeStatus(status)
	if detail == "" {
		detail = defaultDetailForStatus(st)
	}
	return c.Status(st).JSON(ErrorBody{Detail: detail})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func defaultDetailForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return DetailBadRequest
	case fiber.StatusUnauthorized:
		return DetailUnauthorized
	case fiber.StatusNotFound:
		return DetailNotFound
	default:
		return DetailInternalServerError
	}
}
