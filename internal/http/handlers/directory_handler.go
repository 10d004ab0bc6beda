package handlers

import (
	applog "bookworm/internal/log"
	"bookworm/internal/services"
	"bookworm/internal/store"
	"bookworm/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type DirectoryHandler struct {
	Dir   *services.DirectoryService
	Share *services.ShareService
	Store *store.Store
}

// ShareItems builds the share-sheet payload for the current store name.
func (h *DirectoryHandler) ShareItems(c *fiber.Ctx) error {
	name := h.Store.Profile().StoreName
	return c.JSON(fiber.Map{
		"url":   h.Share.StoreURL(name),
		"items": h.Share.Items(name),
	})
}

func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	sellers, err := h.Dir.List()
	if err != nil {
		applog.Error(c, "directory.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "directory unavailable"})
	}
	return c.JSON(fiber.Map{"sellers": sellers})
}

// Resolve handles the deep-link entry point: a known store id yields its
// overlay payload, an unknown one is silently ignored.
func (h *DirectoryHandler) Resolve(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	seller, err := h.Dir.Resolve(id)
	if err != nil {
		applog.Error(c, "directory.resolve.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "directory unavailable"})
	}
	if seller == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(seller)
}
