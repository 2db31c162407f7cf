package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// pathID reads a UUID path parameter. On a malformed value it writes the
// standardized error response and reports ok=false; the handler should
// return nil in that case.
func pathID(c *fiber.Ctx, name string) (id string, ok bool) {
	id = c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		_ = writeError(c, fiber.StatusBadRequest, "INVALID_ID", "El identificador no es válido")
		return "", false
	}
	return id, true
}
