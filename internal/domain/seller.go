package domain

import "github.com/shopspring/decimal"

// SellerStore is an entry in the read-only seller directory that deep links
// resolve against.
type SellerStore struct {
	ID          string          `json:"id" db:"id"`
	StoreName   string          `json:"store_name" db:"store_name"`
	Established string          `json:"established" db:"established"`
	Listings    []SellerListing `json:"listings"`
}

// SellerListing is a book shown on another seller's store page.
type SellerListing struct {
	ID       string          `json:"id" db:"id"`
	SellerID string          `json:"-" db:"seller_id"`
	Title    string          `json:"title" db:"title"`
	Author   string          `json:"author" db:"author"`
	Genre    string          `json:"genre" db:"genre"`
	Price    decimal.Decimal `json:"price" db:"price"`
}

// User is a local account record for the pluggable authenticator. The default
// wiring never consults it; it exists so a real login can replace the stub
// without touching call sites.
type User struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
}
