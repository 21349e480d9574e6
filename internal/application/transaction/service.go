package transaction

import (
	"context"
	"fmt"

	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/product"
	"github.com/Sir-Wagyu/e-commerce-app/internal/domain/repository"
	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/transaction"
	"github.com/Sir-Wagyu/e-commerce-app/pkg/logger"
)

// Publisher emits the placed-transaction event after a successful commit.
type Publisher interface {
	PublishPlaced(ctx context.Context, t *domain.Transaction) error
}

type Service struct {
	store     repository.TransactionStore
	repo      repository.TransactionRepository
	publisher Publisher
	log       logger.Logger
}

type PlaceCommand struct {
	CustomerID int64         `json:"customerId"`
	Items      []ItemCommand `json:"items"`
}

type ItemCommand struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func NewService(
	store repository.TransactionStore,
	repo repository.TransactionRepository,
	publisher Publisher,
	log logger.Logger,
) *Service {
	return &Service{
		store:     store,
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// itemSnapshot captures what the locked product row held when the line was
// validated. stockAfter already accounts for earlier lines of the same
// request against the same product.
type itemSnapshot struct {
	productID    int64
	productName  string
	quantity     int
	pricePerItem float64
	stockAfter   int
}

// Place runs the all-or-nothing placement workflow: validate the customer,
// lock and validate each product row in request order, snapshot prices,
// write the header, its items and the stock decrements, then commit.
// Every other exit path rolls the whole transaction back.
func (s *Service) Place(ctx context.Context, cmd PlaceCommand) (int64, error) {
	if cmd.CustomerID <= 0 || len(cmd.Items) == 0 {
		return 0, domain.ErrMissingInput
	}
	for _, item := range cmd.Items {
		if item.ProductID <= 0 {
			return 0, domain.ErrMissingInput
		}
		if item.Quantity <= 0 {
			return 0, domain.ErrInvalidQuantity
		}
	}

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return 0, &domain.StorageError{Op: "begin transaction", Err: err}
	}
	// Rollback after Commit is a no-op, so this single defer releases the
	// session on success, failure and panic alike.
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	cust, err := s.store.GetCustomer(ctx, tx, cmd.CustomerID)
	if err != nil {
		return 0, &domain.StorageError{Op: "get customer", Err: err}
	}
	if cust == nil {
		return 0, customer.ErrNotFound
	}

	var totalAmount float64
	snapshots := make([]itemSnapshot, 0, len(cmd.Items))
	// Duplicate product ids within one request are cumulative demand
	// against the same locked row.
	reserved := make(map[int64]int)

	for _, item := range cmd.Items {
		p, err := s.store.GetProductForUpdate(ctx, tx, item.ProductID)
		if err != nil {
			return 0, &domain.StorageError{Op: "lock product", Err: err}
		}
		if p == nil {
			return 0, &product.NotFoundError{ID: item.ProductID}
		}

		available := p.Stock - reserved[p.ID]
		if available < item.Quantity {
			return 0, &domain.InsufficientStockError{
				ProductID:   p.ID,
				ProductName: p.Name,
				Available:   available,
				Requested:   item.Quantity,
			}
		}

		reserved[p.ID] += item.Quantity
		totalAmount += p.Price * float64(item.Quantity)
		snapshots = append(snapshots, itemSnapshot{
			productID:    p.ID,
			productName:  p.Name,
			quantity:     item.Quantity,
			pricePerItem: p.Price,
			stockAfter:   available - item.Quantity,
		})
	}

	transactionID, err := s.store.InsertTransaction(ctx, tx, cmd.CustomerID, totalAmount, domain.StatusPending)
	if err != nil {
		return 0, &domain.StorageError{Op: "insert transaction", Err: err}
	}

	for _, snap := range snapshots {
		item := domain.Item{
			ProductID:    snap.productID,
			ProductName:  snap.productName,
			Quantity:     snap.quantity,
			PricePerItem: snap.pricePerItem,
		}
		if err := s.store.InsertItem(ctx, tx, transactionID, item); err != nil {
			return 0, &domain.StorageError{Op: "insert transaction item", Err: err}
		}
	}

	for _, snap := range snapshots {
		if err := s.store.UpdateProductStock(ctx, tx, snap.productID, snap.stockAfter); err != nil {
			return 0, &domain.StorageError{Op: "update product stock", Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, &domain.StorageError{Op: "commit transaction", Err: err}
	}

	s.log.Info("transaction placed",
		logger.Int64("transaction_id", transactionID),
		logger.Int64("customer_id", cmd.CustomerID),
		logger.Float64("total_amount", totalAmount),
		logger.Int("items", len(snapshots)),
	)

	s.publishPlaced(ctx, transactionID, cmd.CustomerID, totalAmount, snapshots)

	return transactionID, nil
}

// publishPlaced emits the event for a committed placement. The write is
// already durable, so a publish failure is logged and swallowed.
func (s *Service) publishPlaced(ctx context.Context, id, customerID int64, totalAmount float64, snapshots []itemSnapshot) {
	if s.publisher == nil {
		return
	}

	placed := &domain.Transaction{
		ID:          id,
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		Status:      domain.StatusPending,
		Items:       make([]domain.Item, 0, len(snapshots)),
	}
	for _, snap := range snapshots {
		placed.Items = append(placed.Items, domain.Item{
			TransactionID: id,
			ProductID:     snap.productID,
			ProductName:   snap.productName,
			Quantity:      snap.quantity,
			PricePerItem:  snap.pricePerItem,
		})
	}

	if err := s.publisher.PublishPlaced(ctx, placed); err != nil {
		s.log.Warn("publish placed transaction failed",
			logger.Int64("transaction_id", id),
			logger.Error(err),
		)
	}
}

// GetByID returns one transaction with its items nested.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	rows, err := s.repo.FindRowsByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find transaction %d: %w", id, err)
	}

	grouped := domain.Group(rows)
	if len(grouped) == 0 {
		return nil, domain.ErrNotFound
	}
	return grouped[0], nil
}

// GetByCustomer returns every transaction of one customer, items nested.
func (s *Service) GetByCustomer(ctx context.Context, customerID int64) ([]*domain.Transaction, error) {
	rows, err := s.repo.FindRowsByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("find transactions for customer %d: %w", customerID, err)
	}

	grouped := domain.Group(rows)
	if len(grouped) == 0 {
		return nil, domain.ErrNotFound
	}
	return grouped, nil
}

// GetAll returns every transaction; an empty store yields an empty slice,
// not an error.
func (s *Service) GetAll(ctx context.Context) ([]*domain.Transaction, error) {
	rows, err := s.repo.FindAllRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("find all transactions: %w", err)
	}
	return domain.Group(rows), nil
}

// UpdateStatus moves a transaction to another lifecycle status. The status
// is the only mutable field after placement.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !domain.ValidStatus(status) {
		return domain.ErrInvalidStatus
	}

	affected, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update transaction %d status: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}

	s.log.Info("transaction status updated",
		logger.Int64("transaction_id", id),
		logger.String("status", status),
	)
	return nil
}

// Delete removes a transaction; its items go with it via the FK cascade.
func (s *Service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
