package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app "github.com/Sir-Wagyu/e-commerce-app/internal/application/transaction"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
)

type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) Place(ctx context.Context, cmd app.PlaceCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionService) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetByCustomer(ctx context.Context, customerID int64) ([]*domain.Transaction, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetAll(ctx context.Context) ([]*domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTransactionService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestRouter(svc *MockTransactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTransactionHandler(svc)
	r.POST("/api/transactions", h.Create)
	r.GET("/api/transactions", h.GetAll)
	r.GET("/api/transactions/:id", h.GetByID)
	r.GET("/api/customers/:id/transactions", h.GetByCustomer)
	r.PUT("/api/transactions/:id/status", h.UpdateStatus)
	r.DELETE("/api/transactions/:id", h.Delete)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate_Returns201WithTransactionID(t *testing.T) {
	svc := new(MockTransactionService)
	router := newTestRouter(svc)

	svc.On("Place", mock.Anything, app.PlaceCommand{
		CustomerID: 1,
		Items:      []app.ItemCommand{{ProductID: 10, Quantity: 3}},
	}).Return(int64(42), nil)

	w := doRequest(router, http.MethodPost, "/api/transactions",
		`{"customerId": 1, "items": [{"productId": 10, "quantity": 3}]}`)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Transaction created successfully", resp["message"])
	assert.Equal(t, float64(42), resp["transactionId"])
}

func TestCreate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing input",
			err:        domain.ErrMissingInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid quantity",
			err:        domain.ErrInvalidQuantity,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "customer not found",
			err:        customer.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "product not found",
			err:        &product.NotFoundError{ID: 9},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "insufficient stock",
			err:        &domain.InsufficientStockError{ProductID: 10, ProductName: "beans", Available: 2, Requested: 5},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "storage failure",
			err:        &domain.StorageError{Op: "commit transaction", Err: errors.New("deadlock detected")},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockTransactionService)
			router := newTestRouter(svc)
			svc.On("Place", mock.Anything, mock.Anything).Return(int64(0), tt.err)

			w := doRequest(router, http.MethodPost, "/api/transactions",
				`{"customerId": 1, "items": [{"productId": 10, "quantity": 5}]}`)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCreate_StorageErrorConfirmsRollback(t *testing.T) {
	svc := new(MockTransactionService)
	router := newTestRouter(svc)
	svc.On("Place", mock.Anything, mock.Anything).
		Return(int64(0), &domain.StorageError{Op: "insert transaction", Err: errors.New("connection reset")})

	w := doRequest(router, http.MethodPost, "/api/transactions",
		`{"customerId": 1, "items": [{"productId": 10, "quantity": 1}]}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "transaction rolled back")
	// Internal error detail must not leak past the message string.
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestCreate_MalformedBody(t *testing.T) {
	svc := new(MockTransactionService)
	router := newTestRouter(svc)

	w := doRequest(router, http.MethodPost, "/api/transactions", `{not json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Place", mock.Anything, mock.Anything)
}

func TestGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockTransactionService)
		router := newTestRouter(svc)
		svc.On("GetByID", mock.Anything, int64(1)).Return(&domain.Transaction{
			ID:         1,
			CustomerID: 7,
			Status:     domain.StatusPending,
			Items:      []domain.Item{{ItemID: 10, ProductID: 100, Quantity: 2, PricePerItem: 5}},
		}, nil)

		w := doRequest(router, http.MethodGet, "/api/transactions/1", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp domain.Transaction
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.ID)
		require.Len(t, resp.Items, 1)
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockTransactionService)
		router := newTestRouter(svc)
		svc.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

		w := doRequest(router, http.MethodGet, "/api/transactions/404", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		svc := new(MockTransactionService)
		router := newTestRouter(svc)

		w := doRequest(router, http.MethodGet, "/api/transactions/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestGetAll_EmptyList(t *testing.T) {
	svc := new(MockTransactionService)
	router := newTestRouter(svc)
	svc.On("GetAll", mock.Anything).Return([]*domain.Transaction{}, nil)

	w := doRequest(router, http.MethodGet, "/api/transactions", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetByCustomer_NotFound(t *testing.T) {
	svc := new(MockTransactionService)
	router := newTestRouter(svc)
	svc.On("GetByCustomer", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

	w := doRequest(router, http.MethodGet, "/api/customers/7/transactions", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No transactions found for this customer")
}

func TestUpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockTransactionService)
		router := newTestRouter(svc)
		svc.On("UpdateStatus", mock.Anything, int64(1), domain.StatusCompleted).Return(nil)

		w := doRequest(router, http.MethodPut, "/api/transactions/1/status", `{"status": "completed"}`)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := new(MockTransactionService)
		router := newTestRouter(svc)
		svc.On("UpdateStatus", mock.Anything, int64(1), "shipped").Return(domain.ErrInvalidStatus)

		w := doRequest(router, http.MethodPut, "/api/transactions/1/status", `{"status": "shipped"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDelete(t *testing.T) {
	svc := new(MockTransactionService)
	router := newTestRouter(svc)
	svc.On("Delete", mock.Anything, int64(9)).Return(domain.ErrNotFound)

	w := doRequest(router, http.MethodDelete, "/api/transactions/9", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
