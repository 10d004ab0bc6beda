package handlers

import (
	"bookworm/internal/domain"
	applog "bookworm/internal/log"
	"bookworm/internal/services"
	"bookworm/internal/store"

	"github.com/gofiber/fiber/v2"
)

type PhotoHandler struct {
	Store  *store.Store
	Camera services.Camera
}

// Capture asks the camera collaborator for the named slot. A cancelled
// capture stores nothing and is not an error.
func (h *PhotoHandler) Capture(c *fiber.Ctx) error {
	slot := domain.PhotoSlot(c.Params("slot"))
	if !slot.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown photo slot"})
	}
	data, ok := h.Camera.Capture(slot)
	if !ok {
		return c.JSON(fiber.Map{"captured": false})
	}
	h.Store.SetPhoto(slot, data)
	applog.Audit(c, "photo.capture", map[string]any{"slot": string(slot)})
	return c.JSON(fiber.Map{"captured": true})
}

func (h *PhotoHandler) Clear(c *fiber.Ctx) error {
	slot := domain.PhotoSlot(c.Params("slot"))
	if !slot.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown photo slot"})
	}
	h.Store.ClearPhoto(slot)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PhotoHandler) List(c *fiber.Ctx) error {
	captured := make([]string, 0)
	for slot := range h.Store.Photos() {
		captured = append(captured, string(slot))
	}
	return c.JSON(fiber.Map{"captured": captured})
}
