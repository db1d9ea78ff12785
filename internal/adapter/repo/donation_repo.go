package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign/internal/domain"
)

// DonationRepositoryPG implements DonationRepository using PostgreSQL.
type DonationRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(pool *pgxpool.Pool) *DonationRepositoryPG {
	return &DonationRepositoryPG{pool: pool}
}

// Create inserts a donation record, pending by default.
func (r *DonationRepositoryPG) Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	status := d.Status
	if status == "" {
		status = domain.DonationPending
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO donations (email, amount_cents, status, payment_ref)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at;
`, d.Email, d.AmountCents, status, d.PaymentRef)

	created := *d
	created.Status = status
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns all donations, newest first.
func (r *DonationRepositoryPG) List(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, email, amount_cents, status, payment_ref, created_at
FROM donations
ORDER BY created_at DESC, id DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.Email, &d.AmountCents, &d.Status, &d.PaymentRef, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus applies a processor outcome. An empty paymentRef keeps the
// stored reference.
func (r *DonationRepositoryPG) UpdateStatus(ctx context.Context, id int, status domain.DonationStatus, paymentRef string) (*domain.Donation, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE donations
SET status = $2, payment_ref = COALESCE(NULLIF($3, ''), payment_ref)
WHERE id = $1
RETURNING id, email, amount_cents, status, payment_ref, created_at;
`, id, status, paymentRef)

	var updated domain.Donation
	if err := row.Scan(&updated.ID, &updated.Email, &updated.AmountCents, &updated.Status, &updated.PaymentRef, &updated.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}
