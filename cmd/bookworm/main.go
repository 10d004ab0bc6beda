package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"bookworm/internal/config"
	"bookworm/internal/http/handlers"
	applog "bookworm/internal/log"
	"bookworm/internal/repos"
	"bookworm/internal/services"
	"bookworm/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DirectoryDSN)
	if err != nil {
		log.Fatal(err)
	}

	// The domain store: one mutable aggregate, default collaborators. The
	// stub authenticator matches the prototype; swap in
	// services.LocalAuthenticator{Users: repos.NewUserRepo(db)} for real
	// credential checks.
	st := store.New(store.Options{Auth: services.StubAuthenticator{}})
	st.SeedDemoData()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Something went wrong. Please try again.",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, st)

	// Session & auth
	app.Get("/session", deps.AuthHandler.Session)
	app.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
	}), deps.AuthHandler.Login)
	app.Post("/auth/register", deps.AuthHandler.Register)
	app.Post("/auth/reset-password", deps.AuthHandler.ResetPassword)

	// Store profile & addresses
	app.Get("/profile", deps.ProfileHandler.Get)
	app.Post("/profile", deps.ProfileHandler.Update)
	app.Post("/profile/complete", deps.ProfileHandler.CompleteSetup)
	app.Post("/profile/return-address", deps.ProfileHandler.UpdateReturnAddress)
	app.Post("/profile/return-address/init", deps.ProfileHandler.InitReturnAddress)
	app.Post("/profile/notifications", deps.ProfileHandler.UpdateNotifications)

	// Sell flow
	app.Get("/drafts/listing", deps.ListingHandler.GetDraft)
	app.Post("/drafts/listing", deps.ListingHandler.UpdateDraft)
	app.Post("/listings", deps.ListingHandler.Submit)
	app.Get("/listings", deps.ListingHandler.List)
	app.Get("/listings/groups", deps.ListingHandler.Groups)
	app.Post("/listings/:id/snooze", deps.ListingHandler.Snooze)
	app.Post("/listings/:id/sold", deps.ListingHandler.MarkSold)
	app.Delete("/listings/:id", deps.ListingHandler.Delete)

	// Photos
	app.Get("/photos", deps.PhotoHandler.List)
	app.Post("/photos/:slot", deps.PhotoHandler.Capture)
	app.Delete("/photos/:slot", deps.PhotoHandler.Clear)

	// Banking, earnings, support
	app.Get("/banks", deps.BankHandler.List)
	app.Post("/banks", deps.BankHandler.Link)
	app.Post("/banks/:id/select", deps.BankHandler.Select)
	app.Get("/earnings", deps.EarningsHandler.Get)
	app.Get("/support", deps.SupportHandler.List)
	app.Post("/support", deps.SupportHandler.Submit)

	// Seller directory: share sheet payload + deep-link resolution
	app.Get("/store/share", deps.DirectoryHandler.ShareItems)
	app.Get("/store", deps.DirectoryHandler.List)
	app.Get("/store/:id", deps.DirectoryHandler.Resolve)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
