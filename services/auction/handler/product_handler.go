package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-ledger/internal/ledger"
	model "auction-ledger/internal/models"
	"auction-ledger/services/auction/helpers"
	"auction-ledger/utils"
)

type AuctionServiceInterface interface {
	CreateProduct(sellerID string, input ledger.ProductInput, now time.Time) (model.Product, error)
	GetProduct(productID string) (model.Product, error)
	ListProducts(f ledger.ProductFilter, now time.Time) ([]model.Product, error)
	ListingsBySeller(sellerID string) ([]model.Product, error)
	AddProductImages(productID, ownerID string, urls []string) (model.Product, error)
	RemoveProductImage(productID, ownerID, imageID string) (model.Product, error)
	PlaceBid(productID, bidderID string, amount decimal.Decimal, windowStart, windowEnd, now time.Time) (model.Bid, error)
	WithdrawBid(productID, bidID, requesterID string) error
	FinalizeSale(productID, bidID, ownerID string, now time.Time) (model.Product, error)
	HighestBid(productID string) (model.Bid, error)
	BidsForProduct(productID string) ([]model.Bid, error)
	BidsByUser(userID string, scope ledger.BidScope, now time.Time) ([]model.Bid, error)
	UserBidsForProduct(productID, userID string) ([]model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateProductHandler handles POST /products
func (h *AuctionHandler) CreateProductHandler(c *gin.Context) {
	var req helpers.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateProductHandler", err)
		return
	}

	sellerID := helpers.CallerID(c)
	now := time.Now().UTC()

	product, err := h.service.CreateProduct(sellerID, ledger.ProductInput{
		Title:         req.Title,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		Category:      model.Category(req.Category),
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		ImageURLs:     req.ImageURLs,
	}, now)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateProductHandler: failed to create product", map[string]any{
			"handler":   "CreateProductHandler",
			"seller_id": sellerID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProductResponse(product, now), "product created successfully")
	helpers.LogSuccess("CreateProductHandler", "product created successfully", map[string]any{
		"product_id": product.ProductID,
		"seller_id":  sellerID,
		"title":      product.Title,
	})
}

// GetProductHandler handles GET /products/:product_id
func (h *AuctionHandler) GetProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	product, err := h.service.GetProduct(productID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetProductHandler: error retrieving product", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponse(product, time.Now().UTC()), "product retrieved successfully")
}

// ListProductsHandler handles GET /products with optional category,
// seller, sold and active query filters
func (h *AuctionHandler) ListProductsHandler(c *gin.Context) {
	filter := ledger.ProductFilter{
		Category:   model.Category(c.Query("category")),
		SellerID:   c.Query("seller"),
		SoldOnly:   c.Query("sold") == "true",
		ActiveOnly: c.Query("active") == "true",
	}
	now := time.Now().UTC()

	products, err := h.service.ListProducts(filter, now)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListProductsHandler: error listing products", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponses(products, now), "products retrieved successfully")
}

// PriceRangeHandler handles GET /products/price-range with min and max
// query bounds on the starting price; either bound may be omitted
func (h *AuctionHandler) PriceRangeHandler(c *gin.Context) {
	var filter ledger.ProductFilter
	if v := c.Query("min"); v != "" {
		min, err := decimal.NewFromString(v)
		if err != nil {
			helpers.HandleBindError(c, "PriceRangeHandler", err)
			return
		}
		filter.MinPrice = &min
	}
	if v := c.Query("max"); v != "" {
		max, err := decimal.NewFromString(v)
		if err != nil {
			helpers.HandleBindError(c, "PriceRangeHandler", err)
			return
		}
		filter.MaxPrice = &max
	}
	now := time.Now().UTC()

	products, err := h.service.ListProducts(filter, now)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PriceRangeHandler: error listing products", map[string]any{"error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponses(products, now), "products retrieved successfully")
}

// MyListingsHandler handles GET /my-listings
func (h *AuctionHandler) MyListingsHandler(c *gin.Context) {
	sellerID := helpers.CallerID(c)
	products, err := h.service.ListingsBySeller(sellerID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyListingsHandler: error retrieving listings", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponses(products, time.Now().UTC()), "listings retrieved successfully")
	helpers.LogSuccess("MyListingsHandler", "listings retrieved successfully", map[string]any{
		"seller_id": sellerID,
		"count":     len(products),
	})
}

// MySoldHandler handles GET /my-sold
func (h *AuctionHandler) MySoldHandler(c *gin.Context) {
	sellerID := helpers.CallerID(c)
	now := time.Now().UTC()

	products, err := h.service.ListProducts(ledger.ProductFilter{SellerID: sellerID, SoldOnly: true}, now)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MySoldHandler: error retrieving sold products", map[string]any{"seller_id": sellerID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponses(products, now), "sold products retrieved successfully")
}

// UploadImagesHandler handles POST /products/:product_id/images
func (h *AuctionHandler) UploadImagesHandler(c *gin.Context) {
	var req helpers.UploadImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UploadImagesHandler", err)
		return
	}

	productID := c.Param("product_id")
	ownerID := helpers.CallerID(c)

	product, err := h.service.AddProductImages(productID, ownerID, req.ImageURLs)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UploadImagesHandler: error adding images", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewProductResponse(product, time.Now().UTC()), "images added successfully")
	helpers.LogSuccess("UploadImagesHandler", "images added successfully", map[string]any{
		"product_id": productID,
		"count":      len(req.ImageURLs),
	})
}

// DeleteImageHandler handles DELETE /products/:product_id/images/:image_id
func (h *AuctionHandler) DeleteImageHandler(c *gin.Context) {
	productID := c.Param("product_id")
	imageID := c.Param("image_id")
	ownerID := helpers.CallerID(c)

	product, err := h.service.RemoveProductImage(productID, ownerID, imageID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteImageHandler: error removing image", map[string]any{"product_id": productID, "image_id": imageID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponse(product, time.Now().UTC()), "image deleted successfully")
}
