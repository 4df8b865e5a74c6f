package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"auction-ledger/internal/ledgererrors"
	"auction-ledger/internal/models"
	"auction-ledger/internal/repository"
	"auction-ledger/internal/timewindow"
	"auction-ledger/internal/validator"
	"auction-ledger/utils"
)

// AuctionLedger owns the per-product bid collections and the
// highest-bid pointer. All mutations of those go through PlaceBid,
// WithdrawBid and FinalizeSale, which are mutually exclusive per
// product; operations on different products run in parallel.
type AuctionLedger struct {
	store repository.AuctionStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex // key: productID
}

// NewAuctionLedger creates a new AuctionLedger instance.
func NewAuctionLedger(store repository.AuctionStore) *AuctionLedger {
	return &AuctionLedger{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// lockProduct acquires the mutex for one product, creating it on first
// use. Lock entries are never removed; the set of products is bounded
// by the catalog size.
func (l *AuctionLedger) lockProduct(productID string) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[productID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[productID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}

// ProductInput carries the seller-supplied fields for a new listing.
type ProductInput struct {
	Title         string
	Description   string
	StartingPrice decimal.Decimal
	Category      models.Category
	StartTime     time.Time
	EndTime       time.Time
	ImageURLs     []string
}

// CreateProduct validates and stores a new listing owned by sellerID.
func (l *AuctionLedger) CreateProduct(sellerID string, input ProductInput, now time.Time) (models.Product, error) {
	if sellerID == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - missing seller ID", ledgererrors.ErrInvalidInput)
	}
	if input.Title == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - missing title", ledgererrors.ErrInvalidInput)
	}
	if input.StartingPrice.IsNegative() {
		return models.Product{}, fmt.Errorf("ledger: %w - negative starting price", ledgererrors.ErrInvalidInput)
	}
	if !input.Category.Valid() {
		return models.Product{}, fmt.Errorf("ledger: %w - unknown category %q", ledgererrors.ErrInvalidInput, input.Category)
	}
	if _, err := timewindow.New(input.StartTime, input.EndTime); err != nil {
		return models.Product{}, fmt.Errorf("ledger: %w - %v", ledgererrors.ErrInvalidInput, err)
	}

	images := make([]models.Image, 0, len(input.ImageURLs))
	for _, url := range input.ImageURLs {
		images = append(images, models.Image{ImageID: utils.GenerateID(), URL: url})
	}

	product := models.Product{
		ProductID:     utils.GenerateID(),
		SellerID:      sellerID,
		Title:         input.Title,
		Description:   input.Description,
		StartingPrice: input.StartingPrice,
		Category:      input.Category,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Listed:        true,
		Sold:          false,
		Images:        images,
		CreatedAt:     now,
	}

	if err := l.store.CreateProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to create product: %w", err)
	}
	return product, nil
}

// GetProduct returns a single product by id.
func (l *AuctionLedger) GetProduct(productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - empty product ID", ledgererrors.ErrInvalidInput)
	}
	p, err := l.store.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to get product %s: %w", productID, err)
	}
	return p, nil
}

// ProductFilter narrows a catalog listing. Zero values mean "any";
// nil price bounds leave that side of the range open.
type ProductFilter struct {
	Category   models.Category
	SellerID   string
	SoldOnly   bool
	ActiveOnly bool
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
}

// ListProducts returns the catalog filtered by f. Active-only listings
// are sorted by soonest auction end; everything else by creation time.
func (l *AuctionLedger) ListProducts(f ProductFilter, now time.Time) ([]models.Product, error) {
	products, err := l.store.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list products: %w", err)
	}

	filtered := products[:0]
	for _, p := range products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.SellerID != "" && p.SellerID != f.SellerID {
			continue
		}
		if f.SoldOnly && !p.Sold {
			continue
		}
		if f.ActiveOnly && !p.ActiveAt(now) {
			continue
		}
		if f.MinPrice != nil && p.StartingPrice.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && p.StartingPrice.GreaterThan(*f.MaxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}

	if f.ActiveOnly {
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].EndTime.Before(filtered[j].EndTime) })
	} else {
		sort.Slice(filtered, func(i, j int) bool {
			if !filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
				return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
			}
			return filtered[i].ProductID < filtered[j].ProductID
		})
	}
	return filtered, nil
}

// ListingsBySeller returns every product a seller has listed.
func (l *AuctionLedger) ListingsBySeller(sellerID string) ([]models.Product, error) {
	if sellerID == "" {
		return nil, fmt.Errorf("ledger: %w - empty seller ID", ledgererrors.ErrInvalidInput)
	}
	products, err := l.store.ListProductsBySeller(sellerID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to list products for seller %s: %w", sellerID, err)
	}
	sort.Slice(products, func(i, j int) bool {
		if !products[i].CreatedAt.Equal(products[j].CreatedAt) {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		}
		return products[i].ProductID < products[j].ProductID
	})
	return products, nil
}

// PlaceBid validates and records a bid by bidderID on a product. The
// candidate is evaluated against the product state and the current
// highest bid under the product lock; on acceptance the bid is stored
// and becomes the new highest bid.
func (l *AuctionLedger) PlaceBid(productID, bidderID string, amount decimal.Decimal, windowStart, windowEnd, now time.Time) (models.Bid, error) {
	if productID == "" || bidderID == "" {
		return models.Bid{}, fmt.Errorf("ledger: %w - missing productID or bidderID", ledgererrors.ErrInvalidInput)
	}

	lock := l.lockProduct(productID)
	defer lock.Unlock()

	product, err := l.store.GetProduct(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to load product %s: %w", productID, err)
	}

	highest, err := l.currentHighest(product)
	if err != nil {
		return models.Bid{}, err
	}

	candidate := validator.Candidate{
		BidderID:    bidderID,
		Amount:      amount,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
	}
	if decision := validator.Evaluate(product, highest, candidate, now); !decision.IsAccepted() {
		return models.Bid{}, decision.Err()
	}

	bid := models.Bid{
		BidID:       utils.GenerateID(),
		ProductID:   productID,
		BidderID:    bidderID,
		Amount:      amount,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		PlacedAt:    now,
	}

	if err := l.store.RecordBid(bid); err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to record bid for product %s by user %s: %w", productID, bidderID, err)
	}

	// Acceptance already proved the bid is strictly higher than the
	// current pointer, so no recomputation is needed here.
	product.HighestBidID = bid.BidID
	if err := l.store.SaveProduct(product); err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to update highest bid for product %s: %w", productID, err)
	}

	return bid, nil
}

// WithdrawBid removes a bid. Only the bidder who placed it may
// withdraw, and not after the product has been sold. Withdrawing the
// current highest bid reassigns the pointer to the next-best remaining
// bid, or clears it when none remain.
func (l *AuctionLedger) WithdrawBid(productID, bidID, requesterID string) error {
	if productID == "" || bidID == "" || requesterID == "" {
		return fmt.Errorf("ledger: %w - missing productID, bidID or requesterID", ledgererrors.ErrInvalidInput)
	}

	lock := l.lockProduct(productID)
	defer lock.Unlock()

	product, err := l.store.GetProduct(productID)
	if err != nil {
		return fmt.Errorf("ledger: failed to load product %s: %w", productID, err)
	}
	if product.Sold {
		return fmt.Errorf("ledger: cannot withdraw bid %s: %w", bidID, ledgererrors.ErrSaleFinalized)
	}

	bid, err := l.store.GetBid(productID, bidID)
	if err != nil {
		return fmt.Errorf("ledger: failed to load bid %s: %w", bidID, err)
	}
	if bid.BidderID != requesterID {
		return fmt.Errorf("ledger: user %s cannot withdraw bid %s: %w", requesterID, bidID, ledgererrors.ErrUnauthorized)
	}

	if err := l.store.DeleteBid(productID, bidID); err != nil {
		return fmt.Errorf("ledger: failed to delete bid %s: %w", bidID, err)
	}

	if product.HighestBidID == bidID {
		next, err := l.recomputeHighest(productID)
		if err != nil {
			return err
		}
		product.HighestBidID = next
		if err := l.store.SaveProduct(product); err != nil {
			return fmt.Errorf("ledger: failed to update highest bid for product %s: %w", productID, err)
		}
	}
	return nil
}

// FinalizeSale marks a product sold to the chosen bid. Only the owner
// may finalize, the bid must belong to the product and must still be
// inside its validity window. The chosen bid need not be the current
// highest: sellers may accept any standing bid. Sold is terminal.
func (l *AuctionLedger) FinalizeSale(productID, bidID, ownerID string, now time.Time) (models.Product, error) {
	if productID == "" || bidID == "" || ownerID == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - missing productID, bidID or ownerID", ledgererrors.ErrInvalidInput)
	}

	lock := l.lockProduct(productID)
	defer lock.Unlock()

	product, err := l.store.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to load product %s: %w", productID, err)
	}
	// looked up by id alone so a bid recorded against a different
	// product is reported as a conflict, not as missing
	bid, err := l.store.GetBidByID(bidID)
	if err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to load bid %s: %w", bidID, err)
	}

	if product.SellerID != ownerID {
		return models.Product{}, fmt.Errorf("ledger: user %s cannot sell product %s: %w", ownerID, productID, ledgererrors.ErrNotOwner)
	}
	if product.Sold {
		return models.Product{}, fmt.Errorf("ledger: product %s: %w", productID, ledgererrors.ErrAlreadySold)
	}
	if bid.ProductID != productID {
		return models.Product{}, fmt.Errorf("ledger: bid %s: %w", bidID, ledgererrors.ErrBidNotForProduct)
	}
	if bid.ExpiredAt(now) {
		return models.Product{}, fmt.Errorf("ledger: bid %s: %w", bidID, ledgererrors.ErrBidExpired)
	}

	product.Sold = true
	product.HighestBidID = bid.BidID
	if err := l.store.SaveProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to finalize sale for product %s: %w", productID, err)
	}
	return product, nil
}

// HighestBid returns the bid the product's highest-bid pointer
// currently references.
func (l *AuctionLedger) HighestBid(productID string) (models.Bid, error) {
	if productID == "" {
		return models.Bid{}, fmt.Errorf("ledger: %w - empty product ID", ledgererrors.ErrInvalidInput)
	}

	product, err := l.store.GetProduct(productID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to load product %s: %w", productID, err)
	}
	if product.HighestBidID == "" {
		return models.Bid{}, fmt.Errorf("ledger: product %s: %w", productID, ledgererrors.ErrNoBids)
	}

	bid, err := l.store.GetBid(productID, product.HighestBidID)
	if err != nil {
		return models.Bid{}, fmt.Errorf("ledger: failed to load highest bid for product %s: %w", productID, err)
	}
	return bid, nil
}

// BidsForProduct returns all bids on a product, highest amount first.
func (l *AuctionLedger) BidsForProduct(productID string) ([]models.Bid, error) {
	if productID == "" {
		return nil, fmt.Errorf("ledger: %w - empty product ID", ledgererrors.ErrInvalidInput)
	}

	bids, err := l.store.GetBidsByProduct(productID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for product %s: %w", productID, err)
	}
	sort.Slice(bids, func(i, j int) bool { return bids[i].Amount.Cmp(bids[j].Amount) > 0 })
	return bids, nil
}

// UserBidsForProduct returns the bids one user has standing on one
// product, highest amount first. A user with bids elsewhere but none
// on this product gets an empty slice, not ErrNoBids.
func (l *AuctionLedger) UserBidsForProduct(productID, userID string) ([]models.Bid, error) {
	if productID == "" || userID == "" {
		return nil, fmt.Errorf("ledger: %w - missing productID or userID", ledgererrors.ErrInvalidInput)
	}

	bids, err := l.store.GetBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for user %s: %w", userID, err)
	}

	filtered := bids[:0]
	for _, b := range bids {
		if b.ProductID == productID {
			filtered = append(filtered, b)
		}
	}
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Amount.Cmp(filtered[j].Amount) > 0 })
	return filtered, nil
}

// BidScope selects which of a user's bids to return.
type BidScope string

const (
	ScopeAll     BidScope = "all"
	ScopeActive  BidScope = "active"
	ScopeExpired BidScope = "expired"
)

// BidsByUser returns a user's bids filtered by scope. Active bids are
// sorted by soonest expiry, the rest by latest expiry first.
func (l *AuctionLedger) BidsByUser(userID string, scope BidScope, now time.Time) ([]models.Bid, error) {
	if userID == "" {
		return nil, fmt.Errorf("ledger: %w - empty user ID", ledgererrors.ErrInvalidInput)
	}

	bids, err := l.store.GetBidsByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to get bids for user %s: %w", userID, err)
	}

	filtered := bids[:0]
	for _, b := range bids {
		switch scope {
		case ScopeActive:
			if b.ExpiredAt(now) {
				continue
			}
		case ScopeExpired:
			if !b.ExpiredAt(now) {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	if scope == ScopeActive {
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].WindowEnd.Before(filtered[j].WindowEnd) })
	} else {
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].WindowEnd.After(filtered[j].WindowEnd) })
	}
	return filtered, nil
}

// AddProductImages appends opaque image references to a product.
// Owner-only.
func (l *AuctionLedger) AddProductImages(productID, ownerID string, urls []string) (models.Product, error) {
	if productID == "" || ownerID == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - missing productID or ownerID", ledgererrors.ErrInvalidInput)
	}
	if len(urls) == 0 {
		return models.Product{}, fmt.Errorf("ledger: %w - no images provided", ledgererrors.ErrInvalidInput)
	}

	lock := l.lockProduct(productID)
	defer lock.Unlock()

	product, err := l.store.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to load product %s: %w", productID, err)
	}
	if product.SellerID != ownerID {
		return models.Product{}, fmt.Errorf("ledger: user %s cannot modify product %s: %w", ownerID, productID, ledgererrors.ErrNotOwner)
	}

	for _, url := range urls {
		product.Images = append(product.Images, models.Image{ImageID: utils.GenerateID(), URL: url})
	}
	if err := l.store.SaveProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to save images for product %s: %w", productID, err)
	}
	return product, nil
}

// RemoveProductImage removes one image reference from a product.
// Owner-only.
func (l *AuctionLedger) RemoveProductImage(productID, ownerID, imageID string) (models.Product, error) {
	if productID == "" || ownerID == "" || imageID == "" {
		return models.Product{}, fmt.Errorf("ledger: %w - missing productID, ownerID or imageID", ledgererrors.ErrInvalidInput)
	}

	lock := l.lockProduct(productID)
	defer lock.Unlock()

	product, err := l.store.GetProduct(productID)
	if err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to load product %s: %w", productID, err)
	}
	if product.SellerID != ownerID {
		return models.Product{}, fmt.Errorf("ledger: user %s cannot modify product %s: %w", ownerID, productID, ledgererrors.ErrNotOwner)
	}

	idx := -1
	for i, img := range product.Images {
		if img.ImageID == imageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Product{}, fmt.Errorf("ledger: image %s on product %s: %w", imageID, productID, ledgererrors.ErrImageNotFound)
	}

	product.Images = append(product.Images[:idx], product.Images[idx+1:]...)
	if err := l.store.SaveProduct(product); err != nil {
		return models.Product{}, fmt.Errorf("ledger: failed to save images for product %s: %w", productID, err)
	}
	return product, nil
}

// currentHighest resolves the product's highest-bid pointer, returning
// nil when no bid is pinned.
func (l *AuctionLedger) currentHighest(product models.Product) (*models.Bid, error) {
	if product.HighestBidID == "" {
		return nil, nil
	}
	bid, err := l.store.GetBid(product.ProductID, product.HighestBidID)
	if err != nil {
		return nil, fmt.Errorf("ledger: failed to load highest bid for product %s: %w", product.ProductID, err)
	}
	return &bid, nil
}

// recomputeHighest scans the remaining bids for a product and returns
// the id of the one with the largest amount, ties broken by earliest
// placement. Returns "" when no bids remain.
func (l *AuctionLedger) recomputeHighest(productID string) (string, error) {
	bids, err := l.store.GetBidsByProduct(productID)
	if err != nil {
		if errors.Is(err, ledgererrors.ErrNoBids) {
			return "", nil
		}
		return "", fmt.Errorf("ledger: failed to recompute highest bid for product %s: %w", productID, err)
	}

	best := bids[0]
	for _, b := range bids[1:] {
		cmp := b.Amount.Cmp(best.Amount)
		if cmp > 0 || (cmp == 0 && b.PlacedAt.Before(best.PlacedAt)) {
			best = b
		}
	}
	return best.BidID, nil
}
