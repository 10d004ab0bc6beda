package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhotoSlot names one of the fixed capture positions in the sell flow.
type PhotoSlot string

const (
	SlotCover       PhotoSlot = "cover"
	SlotInsideFront PhotoSlot = "inside-front"
	SlotSamplePage  PhotoSlot = "sample-page"
	SlotInsideBack  PhotoSlot = "inside-back"
	SlotBackCover   PhotoSlot = "back-cover"
)

// PhotoSlots lists every slot in camera order.
var PhotoSlots = []PhotoSlot{SlotCover, SlotInsideFront, SlotSamplePage, SlotInsideBack, SlotBackCover}

func (s PhotoSlot) Valid() bool {
	for _, known := range PhotoSlots {
		if s == known {
			return true
		}
	}
	return false
}

// BookListing is a committed listing. Descriptive fields never change after
// creation; only the snooze and sold state mutates.
type BookListing struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	Publisher     string `json:"publisher"`
	DatePublished string `json:"date_published,omitempty"`
	Genre         string `json:"genre,omitempty"`
	Attributes    string `json:"attributes,omitempty"`
	Condition     string `json:"condition,omitempty"`
	Signature     string `json:"signature,omitempty"`
	BindingType   string `json:"binding_type,omitempty"`

	Price  decimal.Decimal      `json:"price"`
	Photos map[PhotoSlot][]byte `json:"-"`

	CreatedAt   time.Time `json:"created_at"`
	OrderNumber string    `json:"order_number"`

	Snoozed     bool      `json:"snoozed"`
	SnoozeUntil time.Time `json:"snooze_until,omitempty"`
	SoldAt      time.Time `json:"sold_at,omitempty"`
}

// GenreLabel normalizes an empty genre to the display bucket "Other".
func (l BookListing) GenreLabel() string {
	if l.Genre == "" {
		return "Other"
	}
	return l.Genre
}

func (l BookListing) FormattedPrice() string {
	return "$" + l.Price.StringFixed(2)
}

// FormattedDateSold renders the sold date, or "Pending" while unsold.
func (l BookListing) FormattedDateSold() string {
	if l.SoldAt.IsZero() {
		return "Pending"
	}
	return l.SoldAt.Format("Jan 2, 2006")
}

// GenreGroup is a derived display grouping; recomputed on demand, never stored.
type GenreGroup struct {
	Genre    string        `json:"genre"`
	Listings []BookListing `json:"listings"`
}

// LinkedBank is a bank account attached through the link flow. Names are
// unique within an account.
type LinkedBank struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// TransactionType classifies a ledger row.
type TransactionType string

const (
	TxSale    TransactionType = "sale"
	TxCashout TransactionType = "cashout"
	TxRefund  TransactionType = "refund"
	TxCredit  TransactionType = "credit"
)

// EarningsTransaction is one signed row in the earnings ledger, newest first.
type EarningsTransaction struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FormattedAmount renders the signed amount, sign first.
func (t EarningsTransaction) FormattedAmount() string {
	if t.Amount.IsNegative() {
		return "-$" + t.Amount.Abs().StringFixed(2)
	}
	return "+$" + t.Amount.StringFixed(2)
}

func (t EarningsTransaction) FormattedDate() string {
	return t.CreatedAt.Format("Jan 2, 2006")
}

// SupportStatus is display-only in the current scope; transitions are not
// exposed to the user.
type SupportStatus string

const (
	SupportActive     SupportStatus = "active"
	SupportInProgress SupportStatus = "in-progress"
	SupportResolved   SupportStatus = "resolved"
)

// SupportRequest is one filed support question, newest first.
type SupportRequest struct {
	ID        string        `json:"id"`
	Question  string        `json:"question"`
	Status    SupportStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
