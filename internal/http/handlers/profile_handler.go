package handlers

import (
	applog "bookworm/internal/log"
	"bookworm/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	Store *store.Store
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"profile":        h.Store.Profile(),
		"return_address": h.Store.ReturnAddress(),
		"notifications":  h.Store.NotificationSettings(),
	})
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	p := store.Profile{
		FullName:     c.FormValue("full_name"),
		StoreName:    c.FormValue("store_name"),
		PrimaryEmail: c.FormValue("primary_email"),
		MobilePhone:  c.FormValue("mobile_phone"),
		Address:      c.FormValue("address"),
		Address2:     c.FormValue("address2"),
		City:         c.FormValue("city"),
		State:        c.FormValue("state"),
		ZipCode:      c.FormValue("zip_code"),
		Country:      c.FormValue("country", "United States"),
	}
	h.Store.SetProfile(p)
	applog.Audit(c, "profile.update", map[string]any{"store_name": p.StoreName})
	return c.JSON(fiber.Map{"ok": true, "can_proceed": h.Store.CanProceedFromSetup()})
}

// CompleteSetup finishes onboarding once the setup gate passes.
func (h *ProfileHandler) CompleteSetup(c *fiber.Ctx) error {
	if !h.Store.CanProceedFromSetup() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"ok": false})
	}
	h.Store.InitializeReturnAddress()
	h.Store.CompleteOnboarding()
	applog.Audit(c, "profile.setup.complete", nil)
	return c.JSON(fiber.Map{"ok": true})
}

func (h *ProfileHandler) UpdateReturnAddress(c *fiber.Ctx) error {
	h.Store.SetReturnAddress(store.Address{
		Address:  c.FormValue("address"),
		Address2: c.FormValue("address2"),
		City:     c.FormValue("city"),
		State:    c.FormValue("state"),
		ZipCode:  c.FormValue("zip_code"),
		Country:  c.FormValue("country", "United States"),
	})
	applog.Audit(c, "profile.return_address.update", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// InitReturnAddress applies the first-run default: the store address is
// copied in only while the return address is still empty.
func (h *ProfileHandler) InitReturnAddress(c *fiber.Ctx) error {
	h.Store.InitializeReturnAddress()
	return c.JSON(fiber.Map{"return_address": h.Store.ReturnAddress()})
}

func (h *ProfileHandler) UpdateNotifications(c *fiber.Ctx) error {
	h.Store.SetNotificationSettings(store.NotificationSettings{
		GeneralUpdates:  c.FormValue("general_updates") == "true",
		NewPurchases:    c.FormValue("new_purchases") == "true",
		ShippingUpdates: c.FormValue("shipping_updates") == "true",
	})
	applog.Audit(c, "profile.notifications.update", nil)
	return c.JSON(fiber.Map{"ok": true})
}
