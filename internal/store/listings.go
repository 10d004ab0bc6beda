package store

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"bookworm/internal/domain"
	"bookworm/internal/validate"
)

// snoozeWindow hides a listing from active display for a fixed 48 hours.
const snoozeWindow = 48 * time.Hour

// Draft holds the in-progress sell-flow form, distinct from the immutable
// fields of a committed listing.
type Draft struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	Publisher     string `json:"publisher"`
	DatePublished string `json:"date_published"`
	Genre         string `json:"genre"`
	Attributes    string `json:"attributes"`
	Condition     string `json:"condition"`
	Signature     string `json:"signature"`
	BindingType   string `json:"binding_type"`
	PriceText     string `json:"price_text"`
}

func (s *Store) SetDraft(d Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetPhoto records a capture result for a named slot.
func (s *Store) SetPhoto(slot domain.PhotoSlot, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftPhotos[slot] = data
}

func (s *Store) ClearPhoto(slot domain.PhotoSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.draftPhotos, slot)
}

// Photos returns a copy of the draft captures keyed by slot.
func (s *Store) Photos() map[domain.PhotoSlot][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[domain.PhotoSlot][]byte, len(s.draftPhotos))
	for k, v := range s.draftPhotos {
		out[k] = v
	}
	return out
}

// SubmitListing commits the draft: the price text is read as cents and
// coerced to zero when non-numeric, a listing is appended to the active set,
// the balance grows by the price, a sale row is prepended to the earnings
// ledger, and every draft field and photo is cleared.
func (s *Store) SubmitListing() domain.BookListing {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	price := decimal.New(validate.PriceCents(s.draft.PriceText), -2)

	listing := domain.BookListing{
		ID:            s.ids.NewID(),
		Title:         s.draft.Title,
		Author:        s.draft.Author,
		ISBN:          s.draft.ISBN,
		Publisher:     s.draft.Publisher,
		DatePublished: s.draft.DatePublished,
		Genre:         s.draft.Genre,
		Attributes:    s.draft.Attributes,
		Condition:     s.draft.Condition,
		Signature:     s.draft.Signature,
		BindingType:   s.draft.BindingType,
		Price:         price,
		Photos:        s.draftPhotos,
		CreatedAt:     now,
		OrderNumber:   s.ids.OrderNumber(),
	}
	s.listings = append(s.listings, listing)
	s.balance = s.balance.Add(price)
	s.transactions = append([]domain.EarningsTransaction{{
		ID:          s.ids.NewID(),
		Description: listing.Title,
		Amount:      price,
		Type:        domain.TxSale,
		CreatedAt:   now,
	}}, s.transactions...)

	s.draft = Draft{}
	s.draftPhotos = map[domain.PhotoSlot][]byte{}
	return listing
}

// SnoozeListing hides a listing for the snooze window; renewing restarts the
// window from the new call time. Unknown ids are a silent no-op.
func (s *Store) SnoozeListing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings[i].Snoozed = true
			s.listings[i].SnoozeUntil = s.clock.Now().Add(snoozeWindow)
			return
		}
	}
}

// DeleteListing removes the matching listing; a silent no-op when not found.
func (s *Store) DeleteListing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings = append(s.listings[:i], s.listings[i+1:]...)
			return
		}
	}
}

// MarkListingSold stamps the sold timestamp; a silent no-op when not found.
func (s *Store) MarkListingSold(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.listings {
		if s.listings[i].ID == id {
			s.listings[i].SoldAt = s.clock.Now()
			return
		}
	}
}

func (s *Store) Listings() []domain.BookListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.BookListing, len(s.listings))
	copy(out, s.listings)
	return out
}

// GenreGroups projects the active set into genre buckets. Empty genres land
// in "Other" and groups come back sorted by name.
func (s *Store) GenreGroups() []domain.GenreGroup {
	s.mu.Lock()
	defer s.mu.Unlock()

	byGenre := map[string][]domain.BookListing{}
	for _, l := range s.listings {
		label := l.GenreLabel()
		byGenre[label] = append(byGenre[label], l)
	}
	groups := make([]domain.GenreGroup, 0, len(byGenre))
	for genre, listings := range byGenre {
		groups = append(groups, domain.GenreGroup{Genre: genre, Listings: listings})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Genre < groups[j].Genre })
	return groups
}
