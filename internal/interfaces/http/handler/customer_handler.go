package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "github.com/Sir-Wagyu/e-commerce-app/internal/application/customer"
	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
)

type CustomerService interface {
	Create(ctx context.Context, cmd app.CreateCommand) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, cmd app.UpdateCommand) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]*domain.Customer, error)
}

type CustomerHandler struct {
	svc CustomerService
}

func NewCustomerHandler(svc CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var cmd app.CreateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID, name, email, and address are required"})
		return
	}

	id, err := h.svc.Create(c.Request.Context(), cmd)
	if errors.Is(err, domain.ErrMissingField) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID, name, email, and address are required"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Customer created successfully",
		"customerId": id,
	})
}

func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	cust, err := h.svc.GetByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

func (h *CustomerHandler) GetByUserID(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	cust, err := h.svc.GetByUserID(c.Request.Context(), userID)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found for this user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting customer by user ID"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": cust})
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var cmd app.UpdateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	err := h.svc.Update(c.Request.Context(), id, cmd)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating customer"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Customer updated successfully"})
	}
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting customer"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
	}
}

func (h *CustomerHandler) GetAll(c *gin.Context) {
	customers, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error getting all customers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
