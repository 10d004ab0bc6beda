package services

import "strings"

// ShareService builds the shareable lines handed to the OS share sheet.
type ShareService struct {
	BaseURL string // e.g. https://bookworm.app
}

func NewShareService(baseURL string) *ShareService {
	return &ShareService{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Slug lowercases a store name and swaps spaces for hyphens.
func (s *ShareService) Slug(storeName string) string {
	return strings.ReplaceAll(strings.ToLower(storeName), " ", "-")
}

// StoreURL is the public link for a store.
func (s *ShareService) StoreURL(storeName string) string {
	return s.BaseURL + "/store/" + s.Slug(storeName)
}

// Items returns the strings offered to the share sheet.
func (s *ShareService) Items(storeName string) []string {
	return []string{"Check out my book store on Bookworm! " + s.StoreURL(storeName)}
}
