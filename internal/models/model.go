package models

import (
	"time"

	"github.com/shopspring/decimal"

	"auction-ledger/internal/timewindow"
)

// User represents a participant in the marketplace. Identity is
// verified upstream; the ledger only sees the user id.
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// Category classifies a product's condition.
type Category string

const (
	CategoryNew  Category = "new"
	CategoryUsed Category = "used"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryNew || c == CategoryUsed
}

// Image is an opaque reference to an externally hosted product image.
type Image struct {
	ImageID string `json:"image_id"`
	URL     string `json:"url"`
}

// Product is an item listed for auction.
type Product struct {
	ProductID     string          `json:"product_id"`
	SellerID      string          `json:"seller_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Category      Category        `json:"category"`
	StartTime     time.Time       `json:"start_time"`
	EndTime       time.Time       `json:"end_time"`
	Listed        bool            `json:"listed"`
	Sold          bool            `json:"sold"`
	HighestBidID  string          `json:"highest_bid_id,omitempty"`
	Images        []Image         `json:"images"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AuctionWindow returns the product's bidding interval.
func (p Product) AuctionWindow() timewindow.Window {
	return timewindow.Window{Start: p.StartTime, End: p.EndTime}
}

// ActiveAt reports whether the product can receive bids at the given
// instant: it must be listed, unsold, and inside its auction window.
func (p Product) ActiveAt(now time.Time) bool {
	return p.Listed && !p.Sold && p.AuctionWindow().Contains(now)
}

// Status is a product's lifecycle state, derived on read rather than
// stored.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusActive   Status = "active"
	StatusExpired  Status = "expired"
	StatusSold     Status = "sold"
)

// StatusAt derives the lifecycle state from the product's flags and
// timestamps. Sold is terminal and wins over every time-based state.
func (p Product) StatusAt(now time.Time) Status {
	switch {
	case p.Sold:
		return StatusSold
	case now.Before(p.StartTime):
		return StatusUpcoming
	case now.After(p.EndTime):
		return StatusExpired
	default:
		return StatusActive
	}
}

// Bid represents a user's offer on a product, valid only inside the
// bidder-chosen window [WindowStart, WindowEnd].
type Bid struct {
	BidID       string          `json:"bid_id"`
	ProductID   string          `json:"product_id"`
	BidderID    string          `json:"bidder_id"`
	Amount      decimal.Decimal `json:"amount"`
	WindowStart time.Time       `json:"window_start"`
	WindowEnd   time.Time       `json:"window_end"`
	PlacedAt    time.Time       `json:"placed_at"`
}

// ExpiredAt reports whether the bid's validity window has closed.
func (b Bid) ExpiredAt(now time.Time) bool {
	return now.After(b.WindowEnd)
}
