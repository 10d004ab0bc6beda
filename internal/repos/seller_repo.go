package repos

import (
	"bookworm/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SellerRepo struct{ db *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{db: db} }

// Get loads one seller store with its listings.
func (r *SellerRepo) Get(id string) (*domain.SellerStore, error) {
	var s domain.SellerStore
	if err := r.db.Get(&s, `SELECT id, store_name, established FROM sellers WHERE id=?`, id); err != nil {
		return nil, err
	}
	if err := r.db.Select(&s.Listings, `
	  SELECT id, seller_id, title, author, genre, price
	  FROM seller_listings
	  WHERE seller_id = ?
	  ORDER BY title
	`, id); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns every seller without listings, for the browse screen.
func (r *SellerRepo) List() ([]domain.SellerStore, error) {
	var out []domain.SellerStore
	err := r.db.Select(&out, `SELECT id, store_name, established FROM sellers ORDER BY store_name`)
	return out, err
}
