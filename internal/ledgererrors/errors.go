package ledgererrors

import (
	"errors"
	"fmt"
)

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrNoBids          = errors.New("no bids found for product")
	ErrImageNotFound   = errors.New("image not found")
)

// business logic errors
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrBidRejected      = errors.New("bid rejected")
	ErrUnauthorized     = errors.New("caller does not own this bid")
	ErrNotOwner         = errors.New("caller does not own this product")
	ErrAlreadySold      = errors.New("product has already been sold")
	ErrSaleFinalized    = errors.New("sale has already been finalized")
	ErrBidExpired       = errors.New("bid has expired")
	ErrBidNotForProduct = errors.New("bid does not belong to this product")
)

// RejectReason identifies why a candidate bid was refused.
type RejectReason string

const (
	ReasonNotListed               RejectReason = "not_listed"
	ReasonAlreadySold             RejectReason = "already_sold"
	ReasonAuctionNotStarted       RejectReason = "auction_not_started"
	ReasonAuctionEnded            RejectReason = "auction_ended"
	ReasonSelfBid                 RejectReason = "self_bid"
	ReasonBelowStartingPrice      RejectReason = "below_starting_price"
	ReasonNotHigherThanCurrent    RejectReason = "not_higher_than_current"
	ReasonBidWindowInPast         RejectReason = "bid_window_in_past"
	ReasonBidWindowInverted       RejectReason = "bid_window_inverted"
	ReasonBidWindowExceedsAuction RejectReason = "bid_window_exceeds_auction"
)

// Message returns the user-facing explanation for a rejection reason.
func (r RejectReason) Message() string {
	switch r {
	case ReasonNotListed:
		return "product is not listed"
	case ReasonAlreadySold:
		return "product is already sold"
	case ReasonAuctionNotStarted:
		return "auction has not started yet"
	case ReasonAuctionEnded:
		return "auction has already ended"
	case ReasonSelfBid:
		return "you cannot bid on your own product"
	case ReasonBelowStartingPrice:
		return "bid must be at least the starting price"
	case ReasonNotHigherThanCurrent:
		return "bid must be higher than the current highest bid"
	case ReasonBidWindowInPast:
		return "bid start date cannot be in the past"
	case ReasonBidWindowInverted:
		return "bid end date must be after its start date"
	case ReasonBidWindowExceedsAuction:
		return "bid end date cannot be after the auction end date"
	default:
		return "bid rejected"
	}
}

// BidRejectedError carries the precise rejection reason produced by the
// bid validator. It unwraps to ErrBidRejected so callers can match the
// whole class with errors.Is.
type BidRejectedError struct {
	Reason RejectReason
}

func (e *BidRejectedError) Error() string {
	return fmt.Sprintf("bid rejected: %s", e.Reason.Message())
}

func (e *BidRejectedError) Unwrap() error {
	return ErrBidRejected
}
