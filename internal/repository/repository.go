package repository

import (
	"fmt"
	"sync"

	"auction-ledger/internal/ledgererrors"
	model "auction-ledger/internal/models"
)

// AuctionStore defines the product and bid storage interface for the
// auction ledger. Implementations must provide read-your-writes
// consistency per product; serialization of read-modify-write cycles
// is the ledger's responsibility.
//
// The ledger issues RecordBid and SaveProduct as a pair when a bid is
// accepted. Implementations must commit that pair as one unit, or
// guarantee SaveProduct cannot fail for an existing product once
// RecordBid has succeeded, so a stored bid and the highest-bid pointer
// never diverge.
type AuctionStore interface {
	CreateProduct(p model.Product) error
	GetProduct(productID string) (model.Product, error)
	SaveProduct(p model.Product) error
	ListProducts() ([]model.Product, error)
	ListProductsBySeller(sellerID string) ([]model.Product, error)
	RecordBid(bid model.Bid) error
	GetBid(productID, bidID string) (model.Bid, error)
	GetBidByID(bidID string) (model.Bid, error)
	DeleteBid(productID, bidID string) error
	GetBidsByProduct(productID string) ([]model.Bid, error)
	GetBidsByUser(userID string) ([]model.Bid, error)
}

type bidRef struct {
	productID string
	bidID     string
}

// MemoryRepo is a concurrency-safe in-memory implementation of
// AuctionStore.
type MemoryRepo struct {
	mu       sync.RWMutex
	products map[string]model.Product // key: productID
	bids     map[string][]model.Bid   // key: productID -> bids in placement order
	userBids map[string][]bidRef      // key: bidderID -> refs into bids
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		products: make(map[string]model.Product),
		bids:     make(map[string][]model.Bid),
		userBids: make(map[string][]bidRef),
	}
}

// CreateProduct stores a new product record.
func (r *MemoryRepo) CreateProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ProductID]; ok {
		return fmt.Errorf("create product %s: %w", p.ProductID, ledgererrors.ErrInvalidInput)
	}
	r.products[p.ProductID] = p
	return nil
}

// GetProduct returns the product with the given id.
func (r *MemoryRepo) GetProduct(productID string) (model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("get product %s: %w", productID, ledgererrors.ErrProductNotFound)
	}
	return p, nil
}

// SaveProduct overwrites an existing product record.
func (r *MemoryRepo) SaveProduct(p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ProductID]; !ok {
		return fmt.Errorf("save product %s: %w", p.ProductID, ledgererrors.ErrProductNotFound)
	}
	r.products[p.ProductID] = p
	return nil
}

// ListProducts returns every stored product.
func (r *MemoryRepo) ListProducts() ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		products = append(products, p)
	}
	return products, nil
}

// ListProductsBySeller returns every product listed by the given
// seller.
func (r *MemoryRepo) ListProductsBySeller(sellerID string) ([]model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var products []model.Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			products = append(products, p)
		}
	}
	return products, nil
}

// RecordBid stores a bid against its product.
func (r *MemoryRepo) RecordBid(bid model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[bid.ProductID]; !ok {
		return fmt.Errorf("record bid for product %s: %w", bid.ProductID, ledgererrors.ErrProductNotFound)
	}

	r.bids[bid.ProductID] = append(r.bids[bid.ProductID], bid)
	r.userBids[bid.BidderID] = append(r.userBids[bid.BidderID], bidRef{productID: bid.ProductID, bidID: bid.BidID})
	return nil
}

// GetBid returns the bid with the given id, scoped to its product.
func (r *MemoryRepo) GetBid(productID, bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bids[productID] {
		if b.BidID == bidID {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("get bid %s for product %s: %w", bidID, productID, ledgererrors.ErrBidNotFound)
}

// GetBidByID returns a bid by id regardless of which product it was
// recorded against.
func (r *MemoryRepo) GetBidByID(bidID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, bids := range r.bids {
		for _, b := range bids {
			if b.BidID == bidID {
				return b, nil
			}
		}
	}
	return model.Bid{}, fmt.Errorf("get bid %s: %w", bidID, ledgererrors.ErrBidNotFound)
}

// DeleteBid removes a bid from its product's collection and from the
// bidder's index.
func (r *MemoryRepo) DeleteBid(productID, bidID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bids := r.bids[productID]
	idx := -1
	for i, b := range bids {
		if b.BidID == bidID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("delete bid %s for product %s: %w", bidID, productID, ledgererrors.ErrBidNotFound)
	}

	bidderID := bids[idx].BidderID
	r.bids[productID] = append(bids[:idx], bids[idx+1:]...)

	refs := r.userBids[bidderID]
	for i, ref := range refs {
		if ref.productID == productID && ref.bidID == bidID {
			r.userBids[bidderID] = append(refs[:i], refs[i+1:]...)
			break
		}
	}
	return nil
}

// GetBidsByProduct returns all bids for a product in placement order.
func (r *MemoryRepo) GetBidsByProduct(productID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[productID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for product %s: %w", productID, ledgererrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

// GetBidsByUser returns all bids placed by a user across products.
func (r *MemoryRepo) GetBidsByUser(userID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	refs, ok := r.userBids[userID]
	if !ok || len(refs) == 0 {
		return nil, fmt.Errorf("get bids for user %s: %w", userID, ledgererrors.ErrNoBids)
	}

	bids := make([]model.Bid, 0, len(refs))
	for _, ref := range refs {
		for _, b := range r.bids[ref.productID] {
			if b.BidID == ref.bidID {
				bids = append(bids, b)
				break
			}
		}
	}
	return bids, nil
}

// AddProduct stores a product directly, bypassing create semantics.
// This method is intended for tests only.
func (r *MemoryRepo) AddProduct(p model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ProductID] = p
}
