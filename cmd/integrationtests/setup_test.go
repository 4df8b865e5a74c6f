package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"auction-ledger/internal/ledger"
	model "auction-ledger/internal/models"
	"auction-ledger/internal/repository"
	"auction-ledger/internal/server"
)

// SetupTestRouter initializes the router with an in-memory repository
// for integration testing; the repo is returned for direct seeding.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	auctionLedger := ledger.NewAuctionLedger(repo)
	router := server.SetupRouter(auctionLedger)
	return router, repo
}

// SeedProduct stores a listed product whose auction started an hour ago
// and runs for another day.
func SeedProduct(repo *repository.MemoryRepo, productID, sellerID string, startingPrice int64) model.Product {
	now := time.Now().UTC()
	p := model.Product{
		ProductID:     productID,
		SellerID:      sellerID,
		Title:         productID + " title",
		Description:   productID + " description",
		StartingPrice: decimal.NewFromInt(startingPrice),
		Category:      model.CategoryUsed,
		StartTime:     now.Add(-time.Hour),
		EndTime:       now.Add(24 * time.Hour),
		Listed:        true,
		CreatedAt:     now.Add(-time.Hour),
	}
	repo.AddProduct(p)
	return p
}

// ExecuteRequestAndParse executes an HTTP request on the given router,
// optionally as a given user, and parses the response envelope.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, asUser string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if asUser != "" {
		req.Header.Set(server.IdentityHeader, asUser)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data extracts the data object from a success envelope.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}

// PlaceBidBody builds a bid payload valid for a product seeded with
// SeedProduct: window opens shortly after now and closes in an hour.
func PlaceBidBody(amount int64) map[string]any {
	now := time.Now().UTC()
	return map[string]any{
		"amount":     decimal.NewFromInt(amount),
		"start_date": now.Add(time.Minute).Format(time.RFC3339),
		"end_date":   now.Add(time.Hour).Format(time.RFC3339),
	}
}
