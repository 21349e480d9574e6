package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Sir-Wagyu/e-commerce-app/internal/application/transaction"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
)

// TransactionService is the application surface the handler depends on.
type TransactionService interface {
	Place(ctx context.Context, cmd app.PlaceCommand) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]*domain.Transaction, error)
	GetAll(ctx context.Context) ([]*domain.Transaction, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type TransactionHandler struct {
	svc TransactionService
}

func NewTransactionHandler(svc TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var cmd app.PlaceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Customer ID and transaction items are required"})
		return
	}

	id, err := h.svc.Place(c.Request.Context(), cmd)
	if err != nil {
		h.placeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Transaction created successfully",
		"transactionId": id,
	})
}

// placeError maps the placement failure taxonomy onto HTTP statuses:
// input and stock problems are the client's to fix, missing references
// are 404, anything else already rolled back and is a 500.
func (h *TransactionHandler) placeError(c *gin.Context, err error) {
	var storageErr *domain.StorageError

	switch {
	case errors.Is(err, domain.ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Customer ID and transaction items are required"})
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Item quantity must be greater than zero"})
	case errors.Is(err, customer.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	case errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.As(err, &storageErr):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating transaction, transaction rolled back"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating transaction, transaction rolled back"})
	}
}

func (h *TransactionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	t, err := h.svc.GetByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting transaction"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// GetByCustomer serves /customers/:id/transactions, so the path param is
// the customer id.
func (h *TransactionHandler) GetByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	transactions, err := h.svc.GetByCustomer(c.Request.Context(), customerID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No transactions found for this customer"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) GetAll(c *gin.Context) {
	transactions, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting all transactions"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status provided"})
		return
	}

	err := h.svc.UpdateStatus(c.Request.Context(), id, body.Status)
	switch {
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status provided"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found or no changes made"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating transaction status"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Transaction status updated successfully"})
	}
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Transaction not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting transaction"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
	}
}

func (h *TransactionHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
