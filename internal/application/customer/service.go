package customer

import (
	"context"
	"fmt"

	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/repository"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

type Service struct {
	repo repository.CustomerRepository
	log  logger.Logger
}

type CreateCommand struct {
	UserID  int64  `json:"userId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type UpdateCommand struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func NewService(repo repository.CustomerRepository, log logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (int64, error) {
	c, err := domain.NewCustomer(cmd.UserID, cmd.Name, cmd.Email, cmd.Phone, cmd.Address)
	if err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("customer created", logger.Int64("customer_id", id))
	return id, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find customer %d: %w", id, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	c, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find customer for user %d: %w", userID, err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id int64, cmd UpdateCommand) error {
	affected, err := s.repo.Update(ctx, &domain.Customer{
		ID:      id,
		Name:    cmd.Name,
		Email:   cmd.Email,
		Phone:   cmd.Phone,
		Address: cmd.Address,
	})
	if err != nil {
		return fmt.Errorf("update customer %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all customers: %w", err)
	}
	return customers, nil
}
