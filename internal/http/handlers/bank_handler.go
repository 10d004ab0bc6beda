package handlers

import (
	applog "bookworm/internal/log"
	"bookworm/internal/store"
	"bookworm/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type BankHandler struct {
	Store *store.Store
}

func (h *BankHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"banks":            h.Store.Banks(),
		"selected_bank_id": h.Store.SelectedBankID(),
	})
}

// Link records a completed bank-link flow. A name already on file is silently
// ignored rather than duplicated.
func (h *BankHandler) Link(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing name"})
	}
	h.Store.AddLinkedBank(name, c.FormValue("icon"))
	applog.Audit(c, "bank.link", map[string]any{"name": name})
	return c.JSON(fiber.Map{"banks": h.Store.Banks()})
}

func (h *BankHandler) Select(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	h.Store.SelectBank(id)
	return c.SendStatus(fiber.StatusNoContent)
}
