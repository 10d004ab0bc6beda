package handlers

import (
	"bookworm/internal/config"
	"bookworm/internal/repos"
	"bookworm/internal/services"
	"bookworm/internal/store"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AuthHandler      *AuthHandler
	ProfileHandler   *ProfileHandler
	ListingHandler   *ListingHandler
	PhotoHandler     *PhotoHandler
	BankHandler      *BankHandler
	EarningsHandler  *EarningsHandler
	SupportHandler   *SupportHandler
	DirectoryHandler *DirectoryHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, st *store.Store) *Deps {
	sellerRepo := repos.NewSellerRepo(db)

	dirSvc := services.NewDirectoryService(sellerRepo)
	shareSvc := services.NewShareService(cfg.ShareBaseURL)

	return &Deps{
		AuthHandler:      &AuthHandler{Store: st},
		ProfileHandler:   &ProfileHandler{Store: st},
		ListingHandler:   &ListingHandler{Store: st},
		PhotoHandler:     &PhotoHandler{Store: st, Camera: services.StubCamera{}},
		BankHandler:      &BankHandler{Store: st},
		EarningsHandler:  &EarningsHandler{Store: st},
		SupportHandler:   &SupportHandler{Store: st},
		DirectoryHandler: &DirectoryHandler{Dir: dirSvc, Share: shareSvc, Store: st},
	}
}
