package services_test

import (
	"testing"

	"bookworm/internal/repos"
	"bookworm/internal/services"
)

func TestDirectoryResolve(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	dir := services.NewDirectoryService(repos.NewSellerRepo(db))

	seller, err := dir.Resolve("seller-dusty-jackets")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if seller == nil || seller.StoreName != "Dusty Jackets" {
		t.Fatalf("bad seller: %+v", seller)
	}
	if len(seller.Listings) == 0 {
		t.Fatal("seller listings should be loaded")
	}

	// unknown ids resolve to nothing, not an error
	seller, err = dir.Resolve("seller-nope")
	if err != nil {
		t.Fatalf("unknown id must not error: %v", err)
	}
	if seller != nil {
		t.Fatalf("unknown id must resolve to nil, got %+v", seller)
	}
}

func TestDirectoryList(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	dir := services.NewDirectoryService(repos.NewSellerRepo(db))

	sellers, err := dir.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sellers) != 3 {
		t.Fatalf("want 3 seeded sellers, got %d", len(sellers))
	}
	for i := 1; i < len(sellers); i++ {
		if sellers[i].StoreName < sellers[i-1].StoreName {
			t.Fatal("sellers must come back sorted by store name")
		}
	}
}
