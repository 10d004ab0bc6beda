package handlers

import (
	applog "bookworm/internal/log"
	"bookworm/internal/store"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Store *store.Store
}

// Session reports the session flags and every composite gate, the fields a
// screen polls to enable its buttons.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"authenticated":          h.Store.Authenticated(),
		"onboarding_complete":    h.Store.OnboardingComplete(),
		"can_login":              h.Store.CanLogin(),
		"can_register":           h.Store.CanRegister(),
		"can_reset_password":     h.Store.CanResetPassword(),
		"can_proceed_to_photos":  h.Store.CanProceedToPhotos(),
		"can_proceed_from_setup": h.Store.CanProceedFromSetup(),
		"login_email_error":      h.Store.LoginEmailError(),
		"register_email_error":   h.Store.RegisterEmailError(),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	h.Store.SetLogin(c.FormValue("email"), c.FormValue("password"))
	if !h.Store.CanLogin() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"ok":          false,
			"email_error": h.Store.LoginEmailError(),
		})
	}
	if err := h.Store.Login(); err != nil {
		applog.Error(c, "auth.login.fail", err, map[string]any{"email": c.FormValue("email")})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false})
	}
	applog.Audit(c, "auth.login", map[string]any{"email": c.FormValue("email")})
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	agreed := c.FormValue("agreed_to_terms", "true") != "false"
	h.Store.SetRegistration(c.FormValue("name"), c.FormValue("email"), c.FormValue("password"), agreed)
	if !h.Store.CanRegister() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"ok":          false,
			"email_error": h.Store.RegisterEmailError(),
		})
	}
	if err := h.Store.CreateAccount(); err != nil {
		applog.Error(c, "auth.register.fail", err, map[string]any{"email": c.FormValue("email")})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false})
	}
	applog.Audit(c, "auth.register", map[string]any{"email": c.FormValue("email")})
	return c.JSON(fiber.Map{"ok": true, "authenticated": h.Store.Authenticated()})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	h.Store.SetForgotPasswordEmail(c.FormValue("email"))
	if !h.Store.CanResetPassword() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"ok": false})
	}
	if err := h.Store.ResetPassword(); err != nil {
		applog.Error(c, "auth.reset.fail", err, map[string]any{"email": c.FormValue("email")})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false})
	}
	applog.Audit(c, "auth.reset", map[string]any{"email": c.FormValue("email")})
	return c.JSON(fiber.Map{"ok": true})
}
