package validator

import (
	"time"

	"github.com/shopspring/decimal"

	"auction-ledger/internal/ledgererrors"
	"auction-ledger/internal/models"
)

// Candidate is a bid under evaluation. The window bounds are carried as
// raw instants rather than a timewindow.Window so that an inverted
// window can be reported as a rejection instead of a construction
// error.
type Candidate struct {
	BidderID    string
	Amount      decimal.Decimal
	WindowStart time.Time
	WindowEnd   time.Time
}

// Decision is the outcome of evaluating a candidate bid. The zero
// Decision is accepted; a rejection carries exactly one reason.
type Decision struct {
	reason ledgererrors.RejectReason
}

// Accepted returns the accepting decision.
func Accepted() Decision {
	return Decision{}
}

// Rejected returns a rejecting decision with the given reason.
func Rejected(reason ledgererrors.RejectReason) Decision {
	return Decision{reason: reason}
}

// IsAccepted reports whether the candidate passed every check.
func (d Decision) IsAccepted() bool {
	return d.reason == ""
}

// Reason returns the rejection reason, empty when accepted.
func (d Decision) Reason() ledgererrors.RejectReason {
	return d.reason
}

// Err converts the decision into an error: nil when accepted, a
// *ledgererrors.BidRejectedError otherwise.
func (d Decision) Err() error {
	if d.IsAccepted() {
		return nil
	}
	return &ledgererrors.BidRejectedError{Reason: d.reason}
}

// Evaluate decides whether a candidate bid may be accepted against the
// product's current state and its current highest bid. highest is nil
// when the product has no standing highest bid.
//
// Checks run in a fixed order and the first failure wins, so a given
// (product, highest, candidate, now) always yields the same reason:
// listed, sold, auction window start, auction window end, self-bid,
// price floor, highest bid, then the candidate's own window.
func Evaluate(product models.Product, highest *models.Bid, candidate Candidate, now time.Time) Decision {
	auction := product.AuctionWindow()

	if !product.Listed {
		return Rejected(ledgererrors.ReasonNotListed)
	}
	if product.Sold {
		return Rejected(ledgererrors.ReasonAlreadySold)
	}
	if auction.StartsAfter(now) {
		return Rejected(ledgererrors.ReasonAuctionNotStarted)
	}
	if auction.EndsBefore(now) {
		return Rejected(ledgererrors.ReasonAuctionEnded)
	}
	if candidate.BidderID == product.SellerID {
		return Rejected(ledgererrors.ReasonSelfBid)
	}
	if candidate.Amount.LessThan(product.StartingPrice) {
		return Rejected(ledgererrors.ReasonBelowStartingPrice)
	}
	if highest != nil && candidate.Amount.Cmp(highest.Amount) <= 0 {
		return Rejected(ledgererrors.ReasonNotHigherThanCurrent)
	}
	if candidate.WindowStart.Before(now) {
		return Rejected(ledgererrors.ReasonBidWindowInPast)
	}
	if !candidate.WindowEnd.After(candidate.WindowStart) {
		return Rejected(ledgererrors.ReasonBidWindowInverted)
	}
	if candidate.WindowEnd.After(product.EndTime) {
		return Rejected(ledgererrors.ReasonBidWindowExceedsAuction)
	}
	return Accepted()
}
