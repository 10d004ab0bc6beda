package handlers

import (
	applog "bookworm/internal/log"
	"bookworm/internal/store"
	"bookworm/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type SupportHandler struct {
	Store *store.Store
}

func (h *SupportHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"requests": h.Store.SupportRequests()})
}

// Submit files a support request. The non-empty check lives here, mirroring
// the compose screen's disabled send button; the store itself accepts
// anything.
func (h *SupportHandler) Submit(c *fiber.Ctx) error {
	msg := c.FormValue("message")
	if msg == "" {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "message required"})
	}
	req := h.Store.SubmitSupportRequest(validate.SupportMessage(msg))
	applog.Audit(c, "support.submit", map[string]any{"id": req.ID})
	return c.Status(fiber.StatusCreated).JSON(req)
}
