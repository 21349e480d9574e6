package repository

import (
	"context"

	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
)

type ProductRepository interface {
	Create(ctx context.Context, p *product.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (*product.Product, error)
	FindAll(ctx context.Context) ([]*product.Product, error)
}
