package handlers

import (
	"bookworm/internal/store"

	"github.com/gofiber/fiber/v2"
)

type EarningsHandler struct {
	Store *store.Store
}

func (h *EarningsHandler) Get(c *fiber.Ctx) error {
	balance := h.Store.Balance()
	txs := h.Store.Transactions()
	views := make([]fiber.Map, 0, len(txs))
	for _, t := range txs {
		views = append(views, fiber.Map{
			"id":               t.ID,
			"description":      t.Description,
			"amount":           t.Amount,
			"formatted_amount": t.FormattedAmount(),
			"type":             t.Type,
			"date":             t.FormattedDate(),
		})
	}
	return c.JSON(fiber.Map{
		"total_balance":     balance,
		"formatted_balance": "$" + balance.StringFixed(2),
		"has_funds":         balance.IsPositive(),
		"transactions":      views,
	})
}
