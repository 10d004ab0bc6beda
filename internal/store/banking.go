package store

import (
	"github.com/shopspring/decimal"

	"bookworm/internal/domain"
)

// AddLinkedBank appends a bank unless one with the same name already exists.
// The match is a case-sensitive exact comparison; duplicates are silently
// ignored.
func (s *Store) AddLinkedBank(name, icon string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.banks {
		if b.Name == name {
			return
		}
	}
	s.banks = append(s.banks, domain.LinkedBank{ID: s.ids.NewID(), Name: name, Icon: icon})
}

func (s *Store) Banks() []domain.LinkedBank {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LinkedBank, len(s.banks))
	copy(out, s.banks)
	return out
}

// SelectBank marks the transfer target; unknown ids are a silent no-op.
func (s *Store) SelectBank(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.banks {
		if b.ID == id {
			s.selectedBankID = id
			return
		}
	}
}

func (s *Store) SelectedBankID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedBankID
}

func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

func (s *Store) Transactions() []domain.EarningsTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.EarningsTransaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// SubmitSupportRequest prepends a new active request. Empty text is accepted
// here; the compose screen is the only gate, and that stays true in this port.
func (s *Store) SubmitSupportRequest(text string) domain.SupportRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	req := domain.SupportRequest{
		ID:        s.ids.NewID(),
		Question:  text,
		Status:    domain.SupportActive,
		CreatedAt: s.clock.Now(),
	}
	s.requests = append([]domain.SupportRequest{req}, s.requests...)
	return req
}

func (s *Store) SupportRequests() []domain.SupportRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SupportRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// SeedDemoData installs the demo balance and the simulated cashout, refund and
// credit ledger rows the prototype ships with. Newest entries sit first.
func (s *Store) SeedDemoData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.balance = decimal.New(38098, -2)
	seed := []struct {
		desc   string
		amount decimal.Decimal
		typ    domain.TransactionType
		age    int // days ago
	}{
		{"The Catcher in the Rye", decimal.New(4599, -2), domain.TxSale, 2},
		{"Transfer to Chase ••••4421", decimal.New(-12000, -2), domain.TxCashout, 5},
		{"Refund - A Tale of Two Cities", decimal.New(-1850, -2), domain.TxRefund, 9},
		{"Promotional credit", decimal.New(1000, -2), domain.TxCredit, 14},
		{"Infinite Jest", decimal.New(6250, -2), domain.TxSale, 21},
	}
	s.transactions = s.transactions[:0]
	for _, row := range seed {
		s.transactions = append(s.transactions, domain.EarningsTransaction{
			ID:          s.ids.NewID(),
			Description: row.desc,
			Amount:      row.amount,
			Type:        row.typ,
			CreatedAt:   now.AddDate(0, 0, -row.age),
		})
	}
}
