package repos_test

import (
	"database/sql"
	"errors"
	"testing"

	"bookworm/internal/repos"
)

func TestOpenDBSeedsDirectory(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var sellers, listings int
	if err := db.Get(&sellers, `SELECT COUNT(*) FROM sellers`); err != nil {
		t.Fatal(err)
	}
	if err := db.Get(&listings, `SELECT COUNT(*) FROM seller_listings`); err != nil {
		t.Fatal(err)
	}
	if sellers != 3 || listings != 5 {
		t.Fatalf("seed counts: sellers=%d listings=%d", sellers, listings)
	}
}

func TestSellerRepoGet(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	r := repos.NewSellerRepo(db)

	s, err := r.Get("seller-chapter-two")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.StoreName != "Chapter Two Books" || s.Established == "" {
		t.Fatalf("bad seller: %+v", s)
	}
	if len(s.Listings) != 1 || s.Listings[0].Title != "Goodnight Moon" {
		t.Fatalf("bad listings: %+v", s.Listings)
	}

	if _, err := r.Get("seller-missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("missing seller: want ErrNoRows, got %v", err)
	}
}

func TestSeededUserHashIsNotPlaintext(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	var hash string
	if err := db.Get(&hash, `SELECT password_hash FROM users WHERE id='u-demo'`); err != nil {
		t.Fatal(err)
	}
	if hash == "" || hash == "Passw0rd!" {
		t.Fatalf("password must be stored hashed, got %q", hash)
	}
	if hash[0] != '$' {
		t.Fatalf("unexpected hash format: %q", hash)
	}
}
