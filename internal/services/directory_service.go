package services

import (
	"database/sql"
	"errors"

	"bookworm/internal/domain"
	"bookworm/internal/repos"
)

// DirectoryService resolves deep-link store ids against the seller directory.
type DirectoryService struct {
	Sellers *repos.SellerRepo
}

func NewDirectoryService(sellers *repos.SellerRepo) *DirectoryService {
	return &DirectoryService{Sellers: sellers}
}

// Resolve returns the seller store for an id, or (nil, nil) when the id is
// unknown, since deep links to unknown stores are silently ignored.
func (s *DirectoryService) Resolve(storeID string) (*domain.SellerStore, error) {
	seller, err := s.Sellers.Get(storeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return seller, nil
}

func (s *DirectoryService) List() ([]domain.SellerStore, error) {
	return s.Sellers.List()
}
