package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"auction-ledger/internal/ledger"
	handler "auction-ledger/services/auction/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionLedger *ledger.AuctionLedger) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionLedger)

	router.GET("/api/health-check", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "success",
			"message":   "Server is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/auction")

	// public reads
	api.GET("/products", auctionHandler.ListProductsHandler)
	api.GET("/products/price-range", auctionHandler.PriceRangeHandler)
	api.GET("/products/:product_id", auctionHandler.GetProductHandler)
	api.GET("/products/:product_id/bids", auctionHandler.GetBidsByProductHandler)
	api.GET("/products/:product_id/bids/highest", auctionHandler.GetHighestBidHandler)

	// mutations and per-user views require a verified identity
	authed := api.Group("")
	authed.Use(IdentityMiddleware)
	{
		authed.POST("/products", auctionHandler.CreateProductHandler)
		authed.POST("/products/:product_id/images", auctionHandler.UploadImagesHandler)
		authed.DELETE("/products/:product_id/images/:image_id", auctionHandler.DeleteImageHandler)

		authed.POST("/products/:product_id/bids", auctionHandler.PlaceBidHandler)
		authed.DELETE("/products/:product_id/bids/:bid_id", auctionHandler.WithdrawBidHandler)
		authed.POST("/products/:product_id/sell/:bid_id", auctionHandler.SellProductHandler)

		authed.GET("/my-listings", auctionHandler.MyListingsHandler)
		authed.GET("/my-sold", auctionHandler.MySoldHandler)
		authed.GET("/products/:product_id/my-bids", auctionHandler.MyProductBidsHandler)
		authed.GET("/my-bids", auctionHandler.MyBidsHandler(ledger.ScopeAll))
		authed.GET("/my-bids/active", auctionHandler.MyBidsHandler(ledger.ScopeActive))
		authed.GET("/my-bids/expired", auctionHandler.MyBidsHandler(ledger.ScopeExpired))
	}

	return router
}
