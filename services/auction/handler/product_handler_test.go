package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"auction-ledger/internal/ledger"
	"auction-ledger/internal/ledgererrors"
	model "auction-ledger/internal/models"
	"auction-ledger/services/auction/helpers"
)

var (
	testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testEnd   = testStart.Add(10 * 24 * time.Hour)
)

// identity stands in for the auth middleware in handler tests.
func identity(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func performRequest(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

func testProduct() model.Product {
	return model.Product{
		ProductID:     "product1",
		SellerID:      "seller1",
		Title:         "vintage camera",
		Description:   "works fine",
		StartingPrice: decimal.NewFromInt(100),
		Category:      model.CategoryUsed,
		StartTime:     testStart,
		EndTime:       testEnd,
		Listed:        true,
		CreatedAt:     testStart,
	}
}

// Test CreateProductHandler
func TestCreateProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products", identity("seller1"), handler.CreateProductHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success_valid_product",
			requestBody: helpers.CreateProductRequest{
				Title:         "vintage camera",
				Description:   "works fine",
				StartingPrice: decimal.NewFromInt(100),
				Category:      "used",
				StartTime:     testStart,
				EndTime:       testEnd,
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateProduct("seller1", gomock.Any(), gomock.Any()).
					Return(testProduct(), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "product created successfully",
		},
		{
			name:           "invalid_json",
			requestBody:    `{not json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "missing_title",
			requestBody: helpers.CreateProductRequest{
				Category:  "used",
				StartTime: testStart,
				EndTime:   testEnd,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "bad_category",
			requestBody: helpers.CreateProductRequest{
				Title:     "vintage camera",
				Category:  "refurbished",
				StartTime: testStart,
				EndTime:   testEnd,
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_rejects_input",
			requestBody: helpers.CreateProductRequest{
				Title:     "vintage camera",
				Category:  "used",
				StartTime: testEnd,
				EndTime:   testEnd.Add(time.Hour),
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateProduct("seller1", gomock.Any(), gomock.Any()).
					Return(model.Product{}, fmt.Errorf("ledger: %w - bad window", ledgererrors.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()
			resp, w := performRequest(t, router, http.MethodPost, "/products", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.expectedStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.Equal(t, "product1", data["product_id"])
				require.Equal(t, "100", data["starting_price"])
				require.Equal(t, "used", data["category"])
			}
		})
	}
}

// Test GetProductHandler
func TestGetProductHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/:product_id", handler.GetProductHandler)

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().GetProduct("product1").Return(testProduct(), nil)

		resp, w := performRequest(t, router, http.MethodGet, "/products/product1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "product1", data["product_id"])
		require.Equal(t, "vintage camera", data["title"])
		require.NotEmpty(t, data["status"])
	})

	t.Run("not_found", func(t *testing.T) {
		mockService.EXPECT().
			GetProduct("missing").
			Return(model.Product{}, fmt.Errorf("ledger: %w", ledgererrors.ErrProductNotFound))

		resp, w := performRequest(t, router, http.MethodGet, "/products/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "product not found", resp["message"])
	})
}

// Test ListProductsHandler
func TestListProductsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products", handler.ListProductsHandler)

	t.Run("query_filters_forwarded", func(t *testing.T) {
		mockService.EXPECT().
			ListProducts(ledger.ProductFilter{Category: model.CategoryUsed, ActiveOnly: true}, gomock.Any()).
			Return([]model.Product{testProduct()}, nil)

		resp, w := performRequest(t, router, http.MethodGet, "/products?category=used&active=true", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"], 1)
	})

	t.Run("empty_catalog", func(t *testing.T) {
		mockService.EXPECT().
			ListProducts(ledger.ProductFilter{}, gomock.Any()).
			Return(nil, nil)

		resp, w := performRequest(t, router, http.MethodGet, "/products", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp["data"])
	})
}

// Test PriceRangeHandler
func TestPriceRangeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/products/price-range", handler.PriceRangeHandler)

	t.Run("both_bounds_forwarded", func(t *testing.T) {
		min := decimal.NewFromInt(50)
		max := decimal.NewFromInt(200)
		mockService.EXPECT().
			ListProducts(ledger.ProductFilter{MinPrice: &min, MaxPrice: &max}, gomock.Any()).
			Return([]model.Product{testProduct()}, nil)

		resp, w := performRequest(t, router, http.MethodGet, "/products/price-range?min=50&max=200", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, resp["data"], 1)
	})

	t.Run("open_lower_bound", func(t *testing.T) {
		max := decimal.NewFromInt(200)
		mockService.EXPECT().
			ListProducts(ledger.ProductFilter{MaxPrice: &max}, gomock.Any()).
			Return(nil, nil)

		resp, w := performRequest(t, router, http.MethodGet, "/products/price-range?max=200", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, resp["data"])
	})

	t.Run("malformed_bound", func(t *testing.T) {
		resp, w := performRequest(t, router, http.MethodGet, "/products/price-range?min=cheap", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "invalid request payload", resp["message"])
	})
}

// Test image handlers
func TestImageHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/products/:product_id/images", identity("seller1"), handler.UploadImagesHandler)
	router.DELETE("/products/:product_id/images/:image_id", identity("seller1"), handler.DeleteImageHandler)

	t.Run("upload_success", func(t *testing.T) {
		p := testProduct()
		p.Images = []model.Image{{ImageID: "img1", URL: "https://img.example/1.jpg"}}
		mockService.EXPECT().
			AddProductImages("product1", "seller1", []string{"https://img.example/1.jpg"}).
			Return(p, nil)

		resp, w := performRequest(t, router, http.MethodPost, "/products/product1/images",
			helpers.UploadImagesRequest{ImageURLs: []string{"https://img.example/1.jpg"}})
		require.Equal(t, http.StatusCreated, w.Code)

		data := resp["data"].(map[string]any)
		require.Len(t, data["images"], 1)
	})

	t.Run("upload_empty_list_rejected_at_bind", func(t *testing.T) {
		_, w := performRequest(t, router, http.MethodPost, "/products/product1/images",
			helpers.UploadImagesRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete_not_owner", func(t *testing.T) {
		mockService.EXPECT().
			RemoveProductImage("product1", "seller1", "img1").
			Return(model.Product{}, fmt.Errorf("ledger: %w", ledgererrors.ErrNotOwner))

		resp, w := performRequest(t, router, http.MethodDelete, "/products/product1/images/img1", nil)
		require.Equal(t, http.StatusForbidden, w.Code)
		require.Equal(t, "you do not own this product", resp["message"])
	})
}
