package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/Sir-Wagyu/e-commerce-app/internal/domain/customer"
)

type CustomerRepository struct {
	pool *pgxpool.Pool
}

func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (int64, error) {
	const query = `
		INSERT INTO customers (user_id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.pool.QueryRow(ctx, query, c.UserID, c.Name, c.Email, c.Phone, c.Address).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const query = `
		SELECT id, user_id, name, email, phone, address
		FROM customers
		WHERE id = $1;
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *CustomerRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	const query = `
		SELECT id, user_id, name, email, phone, address
		FROM customers
		WHERE user_id = $1;
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, userID))
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) (int64, error) {
	const query = `
		UPDATE customers
		SET name = $1, email = $2, phone = $3, address = $4
		WHERE id = $5;
	`
	tag, err := r.pool.Exec(ctx, query, c.Name, c.Email, c.Phone, c.Address, c.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	const query = `
		SELECT id, user_id, name, email, phone, address
		FROM customers
		ORDER BY id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) scanOne(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
