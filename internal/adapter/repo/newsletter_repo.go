package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign/internal/domain"
)

const pgUniqueViolation = "23505"

// NewsletterRepositoryPG implements NewsletterRepository using PostgreSQL.
type NewsletterRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewNewsletterRepository creates a new newsletter repo.
func NewNewsletterRepository(pool *pgxpool.Pool) *NewsletterRepositoryPG {
	return &NewsletterRepositoryPG{pool: pool}
}

// Create inserts a subscription. The email column is unique; a duplicate
// surfaces as domain.ErrDuplicateEmail.
func (r *NewsletterRepositoryPG) Create(ctx context.Context, s *domain.NewsletterSubscription) (*domain.NewsletterSubscription, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO newsletter_subscriptions (email)
VALUES ($1)
RETURNING id, created_at;
`, s.Email)

	created := *s
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, err
	}
	return &created, nil
}

// List returns all subscriptions, newest first.
func (r *NewsletterRepositoryPG) List(ctx context.Context) ([]domain.NewsletterSubscription, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, email, created_at
FROM newsletter_subscriptions
ORDER BY created_at DESC, id DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.NewsletterSubscription
	for rows.Next() {
		var s domain.NewsletterSubscription
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes a subscription by id.
func (r *NewsletterRepositoryPG) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM newsletter_subscriptions WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
