package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"bookworm/internal/config"
	"bookworm/internal/http/handlers"
	"bookworm/internal/repos"
	"bookworm/internal/services"
	"bookworm/internal/store"
)

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	cfg := config.Config{DirectoryDSN: ":memory:", ShareBaseURL: "https://bookworm.app"}
	db, err := repos.OpenDB(cfg.DirectoryDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	st := store.New(store.Options{Auth: services.StubAuthenticator{}})

	app := fiber.New()
	deps := handlers.NewDeps(db, cfg, st)

	app.Get("/session", deps.AuthHandler.Session)
	app.Post("/auth/login", deps.AuthHandler.Login)
	app.Post("/auth/register", deps.AuthHandler.Register)
	app.Post("/profile", deps.ProfileHandler.Update)
	app.Post("/profile/complete", deps.ProfileHandler.CompleteSetup)
	app.Get("/drafts/listing", deps.ListingHandler.GetDraft)
	app.Post("/drafts/listing", deps.ListingHandler.UpdateDraft)
	app.Post("/listings", deps.ListingHandler.Submit)
	app.Get("/listings", deps.ListingHandler.List)
	app.Get("/listings/groups", deps.ListingHandler.Groups)
	app.Post("/listings/:id/snooze", deps.ListingHandler.Snooze)
	app.Delete("/listings/:id", deps.ListingHandler.Delete)
	app.Post("/photos/:slot", deps.PhotoHandler.Capture)
	app.Get("/earnings", deps.EarningsHandler.Get)
	app.Get("/support", deps.SupportHandler.List)
	app.Post("/support", deps.SupportHandler.Submit)
	app.Get("/store/share", deps.DirectoryHandler.ShareItems)
	app.Get("/store/:id", deps.DirectoryHandler.Resolve)

	return app, st
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
	}
	return resp
}

func TestListingFlow(t *testing.T) {
	app, _ := newTestApp(t)

	// fill the draft
	resp := postForm(t, app, "/drafts/listing", url.Values{
		"title": {"The Hobbit"}, "author": {"J.R.R. Tolkien"}, "isbn": {"9780261103344"},
		"publisher": {"HarperCollins"}, "date_published": {"1937"}, "genre": {"Fantasy"},
		"condition": {"Good"}, "binding_type": {"Hardcover"}, "price": {"2500"},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("draft update: %d", resp.StatusCode)
	}

	// capture a cover photo through the stub camera
	resp = postForm(t, app, "/photos/cover", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("capture: %d", resp.StatusCode)
	}

	// submit
	resp = postForm(t, app, "/listings", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit: %d", resp.StatusCode)
	}
	var created map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created["formatted_price"] != "$25.00" {
		t.Fatalf("price = %v", created["formatted_price"])
	}
	order, _ := created["order_number"].(string)
	if len(order) != 7 || order[0] != '#' {
		t.Fatalf("order number %q should be # plus six digits", order)
	}

	// balance and ledger reflect the sale
	var earnings struct {
		FormattedBalance string `json:"formatted_balance"`
		Transactions     []struct {
			Type            string `json:"type"`
			FormattedAmount string `json:"formatted_amount"`
		} `json:"transactions"`
	}
	getJSON(t, app, "/earnings", &earnings)
	if earnings.FormattedBalance != "$25.00" {
		t.Fatalf("balance = %q", earnings.FormattedBalance)
	}
	if len(earnings.Transactions) != 1 || earnings.Transactions[0].Type != "sale" {
		t.Fatalf("bad ledger: %+v", earnings.Transactions)
	}

	// draft is cleared after submit
	var draft struct {
		Draft struct {
			Title string `json:"title"`
		} `json:"draft"`
	}
	getJSON(t, app, "/drafts/listing", &draft)
	if draft.Draft.Title != "" {
		t.Fatalf("draft not cleared: %q", draft.Draft.Title)
	}

	// snooze then delete round-trip
	id, _ := created["id"].(string)
	if resp := postForm(t, app, "/listings/"+id+"/snooze", nil); resp.StatusCode != http.StatusNoContent {
		t.Fatalf("snooze: %d", resp.StatusCode)
	}
	var listings struct {
		Listings []struct {
			Snoozed bool `json:"snoozed"`
		} `json:"listings"`
	}
	getJSON(t, app, "/listings", &listings)
	if len(listings.Listings) != 1 || !listings.Listings[0].Snoozed {
		t.Fatalf("listing not snoozed: %+v", listings.Listings)
	}

	req := httptest.NewRequest("DELETE", "/listings/"+id, nil)
	delResp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if delResp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: %d", delResp.StatusCode)
	}
	getJSON(t, app, "/listings", &listings)
	if len(listings.Listings) != 0 {
		t.Fatal("listing not deleted")
	}
}

func TestGenreGroupsEndpoint(t *testing.T) {
	app, st := newTestApp(t)
	for _, g := range []string{"Fiction", "", "Fiction"} {
		st.SetDraft(store.Draft{Title: "Book", Genre: g, PriceText: "100"})
		st.SubmitListing()
	}

	var out struct {
		Groups []struct {
			Genre    string           `json:"genre"`
			Listings []map[string]any `json:"listings"`
		} `json:"groups"`
	}
	getJSON(t, app, "/listings/groups", &out)
	if len(out.Groups) != 2 {
		t.Fatalf("want 2 groups, got %d", len(out.Groups))
	}
	if out.Groups[0].Genre != "Fiction" || out.Groups[1].Genre != "Other" {
		t.Fatalf("bad group order: %+v", out.Groups)
	}
}

func TestSupportEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	// the screen-level gate: empty messages are rejected before the store
	if resp := postForm(t, app, "/support", url.Values{"message": {""}}); resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("empty message: %d", resp.StatusCode)
	}

	if resp := postForm(t, app, "/support", url.Values{"message": {"Where is my payout?"}}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("submit: %d", resp.StatusCode)
	}
	var out struct {
		Requests []struct {
			Question string `json:"question"`
			Status   string `json:"status"`
		} `json:"requests"`
	}
	getJSON(t, app, "/support", &out)
	if len(out.Requests) != 1 || out.Requests[0].Status != "active" {
		t.Fatalf("bad requests: %+v", out.Requests)
	}
}
