package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...logger.Field) {}
func (nopLogger) Info(string, ...logger.Field)  {}
func (nopLogger) Warn(string, ...logger.Field)  {}
func (nopLogger) Error(string, ...logger.Field) {}
func (nopLogger) Fatal(string, ...logger.Field) {}

func (n nopLogger) WithFields(...logger.Field) logger.Logger { return n }

func (nopLogger) Sync() error { return nil }

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepo) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) FindByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepo) Update(ctx context.Context, c *domain.Customer) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepo) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepo) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

func TestCreate_Success(t *testing.T) {
	repo := new(MockCustomerRepo)
	service := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(c *domain.Customer) bool {
		return c.UserID == 5 && c.Name == "Dewi" && c.Email == "dewi@example.com"
	})).Return(int64(3), nil)

	id, err := service.Create(ctx, CreateCommand{
		UserID:  5,
		Name:    "Dewi",
		Email:   "dewi@example.com",
		Phone:   "081234",
		Address: "Jl. Merdeka 1",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
	repo.AssertExpectations(t)
}

func TestCreate_MissingField(t *testing.T) {
	repo := new(MockCustomerRepo)
	service := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := service.Create(ctx, CreateCommand{UserID: 5, Name: "Dewi"})

	assert.ErrorIs(t, err, domain.ErrMissingField)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		service := NewService(repo, nopLogger{})
		repo.On("FindByID", ctx, int64(1)).Return(&domain.Customer{ID: 1, Name: "Dewi"}, nil)

		got, err := service.GetByID(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, "Dewi", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		service := NewService(repo, nopLogger{})
		repo.On("FindByID", ctx, int64(9)).Return(nil, nil)

		_, err := service.GetByID(ctx, 9)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := new(MockCustomerRepo)
		service := NewService(repo, nopLogger{})
		repo.On("FindByID", ctx, int64(1)).Return(nil, errors.New("connection refused"))

		_, err := service.GetByID(ctx, 1)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockCustomerRepo)
	service := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(int64(0), nil)

	err := service.Update(ctx, 9, UpdateCommand{Name: "X"})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	repo := new(MockCustomerRepo)
	service := NewService(repo, nopLogger{})
	ctx := context.Background()

	repo.On("Delete", ctx, int64(1)).Return(int64(1), nil)

	assert.NoError(t, service.Delete(ctx, 1))
}
