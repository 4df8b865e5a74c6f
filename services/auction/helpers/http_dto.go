package helpers

import (
	"time"

	"github.com/shopspring/decimal"

	model "auction-ledger/internal/models"
)

// Request/Response DTOs
type CreateProductRequest struct {
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description"`
	StartingPrice decimal.Decimal `json:"starting_price"`
	Category      string          `json:"category" binding:"required,oneof=new used"`
	StartTime     time.Time       `json:"start_time" binding:"required"`
	EndTime       time.Time       `json:"end_time" binding:"required"`
	ImageURLs     []string        `json:"image_urls"`
}

type PlaceBidRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	StartDate time.Time       `json:"start_date" binding:"required"`
	EndDate   time.Time       `json:"end_date" binding:"required"`
}

type UploadImagesRequest struct {
	ImageURLs []string `json:"image_urls" binding:"required,min=1"`
}

type ImageResponse struct {
	ImageID string `json:"image_id"`
	URL     string `json:"url"`
}

type ProductResponse struct {
	ProductID     string          `json:"product_id"`
	SellerID      string          `json:"seller_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	StartingPrice string          `json:"starting_price"`
	Category      string          `json:"category"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	Status        string          `json:"status"`
	Sold          bool            `json:"sold"`
	HighestBidID  string          `json:"highest_bid_id,omitempty"`
	Images        []ImageResponse `json:"images"`
}

type BidResponse struct {
	BidID       string `json:"bid_id"`
	ProductID   string `json:"product_id"`
	BidderID    string `json:"bidder_id"`
	Amount      string `json:"amount"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	PlacedAt    string `json:"placed_at"`
}

// NewProductResponse converts a product model into its API shape,
// deriving the lifecycle status at the given instant.
func NewProductResponse(p model.Product, now time.Time) ProductResponse {
	images := make([]ImageResponse, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, ImageResponse{ImageID: img.ImageID, URL: img.URL})
	}
	return ProductResponse{
		ProductID:     p.ProductID,
		SellerID:      p.SellerID,
		Title:         p.Title,
		Description:   p.Description,
		StartingPrice: p.StartingPrice.String(),
		Category:      string(p.Category),
		StartTime:     p.StartTime.UTC().Format(time.RFC3339),
		EndTime:       p.EndTime.UTC().Format(time.RFC3339),
		Status:        string(p.StatusAt(now)),
		Sold:          p.Sold,
		HighestBidID:  p.HighestBidID,
		Images:        images,
	}
}

// NewProductResponses converts a slice of products.
func NewProductResponses(products []model.Product, now time.Time) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p, now))
	}
	return out
}

// NewBidResponse converts a bid model into its API shape.
func NewBidResponse(b model.Bid) BidResponse {
	return BidResponse{
		BidID:       b.BidID,
		ProductID:   b.ProductID,
		BidderID:    b.BidderID,
		Amount:      b.Amount.String(),
		WindowStart: b.WindowStart.UTC().Format(time.RFC3339),
		WindowEnd:   b.WindowEnd.UTC().Format(time.RFC3339),
		PlacedAt:    b.PlacedAt.UTC().Format(time.RFC3339),
	}
}

// NewBidResponses converts a slice of bids.
func NewBidResponses(bids []model.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, NewBidResponse(b))
	}
	return out
}
