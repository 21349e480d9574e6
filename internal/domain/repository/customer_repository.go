package repository

import (
	"context"

	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
)

type CustomerRepository interface {
	Create(ctx context.Context, c *customer.Customer) (int64, error)
	FindByID(ctx context.Context, id int64) (*customer.Customer, error)
	FindByUserID(ctx context.Context, userID int64) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	FindAll(ctx context.Context) ([]*customer.Customer, error)
}
