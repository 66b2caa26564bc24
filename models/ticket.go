package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeVIP      = "VIP"
	TypePremium  = "Premium"
	TypeStandard = "Standard"
)

type Ticket struct {
	ID           int             `json:"id"`
	Title        string          `json:"title"`
	Type         string          `json:"type"` // VIP, Premium, Standard
	Price        decimal.Decimal `json:"price"`
	IsUsed       bool            `json:"is_used"`
	PurchaseDate time.Time       `json:"purchase_date"`
	EventDate    time.Time       `json:"event_date"`
	Venue        string          `json:"venue"`
	Artist       string          `json:"artist"`
	Section      string          `json:"section"`
	Row          string          `json:"row"`
	Seat         string          `json:"seat"`
	Description  string          `json:"description"`
	Features     []string        `json:"features"`
	Notes        []Note          `json:"notes"`
}

type Note struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone returns a deep copy so callers can never reach the seed data
// through a shared slice.
func (t Ticket) Clone() Ticket {
	c := t
	c.Features = append([]string(nil), t.Features...)
	c.Notes = append([]Note(nil), t.Notes...)
	return c
}
