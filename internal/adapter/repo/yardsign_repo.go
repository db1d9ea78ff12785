package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign/internal/domain"
)

// YardSignRepositoryPG implements YardSignRepository using PostgreSQL.
type YardSignRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewYardSignRepository creates a new yard sign repo.
func NewYardSignRepository(pool *pgxpool.Pool) *YardSignRepositoryPG {
	return &YardSignRepositoryPG{pool: pool}
}

// Create inserts a request; the database assigns id and created_at.
func (r *YardSignRepositoryPG) Create(ctx context.Context, req *domain.YardSignRequest) (*domain.YardSignRequest, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO yard_sign_requests (name, email, phone, address, quantity)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at;
`, req.Name, req.Email, req.Phone, req.Address, req.Quantity)

	created := *req
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns all yard sign requests, newest first.
func (r *YardSignRepositoryPG) List(ctx context.Context) ([]domain.YardSignRequest, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, email, phone, address, quantity, created_at
FROM yard_sign_requests
ORDER BY created_at DESC, id DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.YardSignRequest
	for rows.Next() {
		var req domain.YardSignRequest
		if err := rows.Scan(&req.ID, &req.Name, &req.Email, &req.Phone, &req.Address, &req.Quantity, &req.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites the editable fields of a request.
func (r *YardSignRepositoryPG) Update(ctx context.Context, id int, req *domain.YardSignRequest) (*domain.YardSignRequest, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE yard_sign_requests
SET name = $2, email = $3, phone = $4, address = $5, quantity = $6
WHERE id = $1
RETURNING id, name, email, phone, address, quantity, created_at;
`, id, req.Name, req.Email, req.Phone, req.Address, req.Quantity)

	var updated domain.YardSignRequest
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Phone, &updated.Address, &updated.Quantity, &updated.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a request by id.
func (r *YardSignRepositoryPG) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM yard_sign_requests WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
