package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-ledger/internal/ledger"
	"auction-ledger/internal/ledgererrors"
	"auction-ledger/services/auction/helpers"
	"auction-ledger/utils"
)

// PlaceBidHandler handles POST /products/:product_id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	productID := c.Param("product_id")
	bidderID := helpers.CallerID(c)

	bid, err := h.service.PlaceBid(productID, bidderID, req.Amount, req.StartDate, req.EndDate, time.Now().UTC())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"product_id": productID,
			"bidder_id":  bidderID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(bid), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"bidder_id":  bidderID,
		"amount":     bid.Amount.String(),
	})
}

// GetBidsByProductHandler handles GET /products/:product_id/bids
func (h *AuctionHandler) GetBidsByProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bids, err := h.service.BidsForProduct(productID)
	if err != nil && !errors.Is(err, ledgererrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByProductHandler: error retrieving bids", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByProductHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"count":      len(bids),
	})
}

// GetHighestBidHandler handles GET /products/:product_id/bids/highest
func (h *AuctionHandler) GetHighestBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bid, err := h.service.HighestBid(productID)
	if err != nil {
		if errors.Is(err, ledgererrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no bids found for this product")
			utils.Info("GetHighestBidHandler: no highest bid found", map[string]any{"product_id": productID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetHighestBidHandler: highest bid error", map[string]any{"product_id": productID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "highest bid retrieved successfully")
	helpers.LogSuccess("GetHighestBidHandler", "highest bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"product_id": bid.ProductID,
		"amount":     bid.Amount.String(),
	})
}

// MyBidsHandler handles GET /my-bids and its /active and /expired
// variants; the scope is fixed per route at registration time.
func (h *AuctionHandler) MyBidsHandler(scope ledger.BidScope) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := helpers.CallerID(c)
		bids, err := h.service.BidsByUser(userID, scope, time.Now().UTC())
		if err != nil && !errors.Is(err, ledgererrors.ErrNoBids) {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("MyBidsHandler: error retrieving bids", map[string]any{"user_id": userID, "scope": string(scope), "error": err.Error()})
			return
		}

		utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
		helpers.LogSuccess("MyBidsHandler", "bids retrieved successfully", map[string]any{
			"user_id": userID,
			"scope":   string(scope),
			"count":   len(bids),
		})
	}
}

// MyProductBidsHandler handles GET /products/:product_id/my-bids
func (h *AuctionHandler) MyProductBidsHandler(c *gin.Context) {
	productID := c.Param("product_id")
	userID := helpers.CallerID(c)

	bids, err := h.service.UserBidsForProduct(productID, userID)
	if err != nil && !errors.Is(err, ledgererrors.ErrNoBids) {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("MyProductBidsHandler: error retrieving bids", map[string]any{"product_id": productID, "user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponses(bids), "bids retrieved successfully")
	helpers.LogSuccess("MyProductBidsHandler", "bids retrieved successfully", map[string]any{
		"product_id": productID,
		"user_id":    userID,
		"count":      len(bids),
	})
}

// WithdrawBidHandler handles DELETE /products/:product_id/bids/:bid_id
func (h *AuctionHandler) WithdrawBidHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bidID := c.Param("bid_id")
	requesterID := helpers.CallerID(c)

	if err := h.service.WithdrawBid(productID, bidID, requesterID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("WithdrawBidHandler: failed to withdraw bid", map[string]any{
			"product_id":   productID,
			"bid_id":       bidID,
			"requester_id": requesterID,
			"error":        err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, nil, "bid withdrawn successfully")
	helpers.LogSuccess("WithdrawBidHandler", "bid withdrawn successfully", map[string]any{
		"product_id": productID,
		"bid_id":     bidID,
	})
}

// SellProductHandler handles POST /products/:product_id/sell/:bid_id
func (h *AuctionHandler) SellProductHandler(c *gin.Context) {
	productID := c.Param("product_id")
	bidID := c.Param("bid_id")
	ownerID := helpers.CallerID(c)
	now := time.Now().UTC()

	product, err := h.service.FinalizeSale(productID, bidID, ownerID, now)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SellProductHandler: failed to finalize sale", map[string]any{
			"handler":    "SellProductHandler",
			"product_id": productID,
			"bid_id":     bidID,
			"owner_id":   ownerID,
			"error":      err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewProductResponse(product, now), "sale finalized successfully")
	helpers.LogSuccess("SellProductHandler", "sale finalized successfully", map[string]any{
		"product_id": product.ProductID,
		"bid_id":     bidID,
		"owner_id":   ownerID,
	})
}
