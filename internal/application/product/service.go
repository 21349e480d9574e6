package product

import (
	"context"
	"fmt"

	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/repository"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

type Service struct {
	repo repository.ProductRepository
	log  logger.Logger
}

type CreateCommand struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

func NewService(repo repository.ProductRepository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (int64, error) {
	p, err := domain.NewProduct(cmd.Name, cmd.Price, cmd.Stock)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("product created", logger.Int64("product_id", id), logger.String("name", p.Name))
	return id, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find product %d: %w", id, err)
	}
	if p == nil {
		return nil, &domain.NotFoundError{ID: id}
	}
	return p, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all products: %w", err)
	}
	return products, nil
}
