package handlers

import (
	"bookworm/internal/domain"
	applog "bookworm/internal/log"
	"bookworm/internal/store"
	"bookworm/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ListingHandler struct {
	Store *store.Store
}

func (h *ListingHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"draft":                 h.Store.Draft(),
		"can_proceed_to_photos": h.Store.CanProceedToPhotos(),
	})
}

func (h *ListingHandler) UpdateDraft(c *fiber.Ctx) error {
	h.Store.SetDraft(store.Draft{
		Title:         c.FormValue("title"),
		Author:        c.FormValue("author"),
		ISBN:          c.FormValue("isbn"),
		Publisher:     c.FormValue("publisher"),
		DatePublished: c.FormValue("date_published"),
		Genre:         c.FormValue("genre"),
		Attributes:    c.FormValue("attributes"),
		Condition:     c.FormValue("condition"),
		Signature:     c.FormValue("signature"),
		BindingType:   c.FormValue("binding_type"),
		PriceText:     c.FormValue("price"),
	})
	return c.JSON(fiber.Map{"ok": true, "can_proceed_to_photos": h.Store.CanProceedToPhotos()})
}

// Submit commits the draft. There is no failure path: a bad price coerces to
// zero and the listing is created regardless.
func (h *ListingHandler) Submit(c *fiber.Ctx) error {
	listing := h.Store.SubmitListing()
	applog.Audit(c, "listing.submit", map[string]any{
		"id":    listing.ID,
		"order": listing.OrderNumber,
		"price": listing.Price.StringFixed(2),
	})
	return c.Status(fiber.StatusCreated).JSON(listingView(listing))
}

func (h *ListingHandler) List(c *fiber.Ctx) error {
	listings := h.Store.Listings()
	views := make([]fiber.Map, 0, len(listings))
	for _, l := range listings {
		views = append(views, listingView(l))
	}
	return c.JSON(fiber.Map{"listings": views})
}

// Groups returns the derived genre projection for the listings tab.
func (h *ListingHandler) Groups(c *fiber.Ctx) error {
	groups := h.Store.GenreGroups()
	out := make([]fiber.Map, 0, len(groups))
	for _, g := range groups {
		views := make([]fiber.Map, 0, len(g.Listings))
		for _, l := range g.Listings {
			views = append(views, listingView(l))
		}
		out = append(out, fiber.Map{"genre": g.Genre, "listings": views})
	}
	return c.JSON(fiber.Map{"groups": out})
}

func (h *ListingHandler) Snooze(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent) // silent, like an unknown id
	}
	h.Store.SnoozeListing(id)
	applog.Audit(c, "listing.snooze", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ListingHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	h.Store.DeleteListing(id)
	applog.Audit(c, "listing.delete", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ListingHandler) MarkSold(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	h.Store.MarkListingSold(id)
	applog.Audit(c, "listing.sold", map[string]any{"id": id})
	return c.SendStatus(fiber.StatusNoContent)
}

// listingView attaches the read-only formatted projections to a listing.
func listingView(l domain.BookListing) fiber.Map {
	photos := make([]string, 0, len(l.Photos))
	for slot := range l.Photos {
		photos = append(photos, string(slot))
	}
	return fiber.Map{
		"id":              l.ID,
		"title":           l.Title,
		"author":          l.Author,
		"isbn":            l.ISBN,
		"publisher":       l.Publisher,
		"date_published":  l.DatePublished,
		"genre":           l.GenreLabel(),
		"attributes":      l.Attributes,
		"condition":       l.Condition,
		"signature":       l.Signature,
		"binding_type":    l.BindingType,
		"price":           l.Price,
		"formatted_price": l.FormattedPrice(),
		"order_number":    l.OrderNumber,
		"created_at":      l.CreatedAt,
		"snoozed":         l.Snoozed,
		"snooze_until":    l.SnoozeUntil,
		"date_sold":       l.FormattedDateSold(),
		"photo_slots":     photos,
	}
}
