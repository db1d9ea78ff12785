package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign/internal/domain"
)

// VolunteerRepositoryPG implements VolunteerRepository using PostgreSQL.
type VolunteerRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewVolunteerRepository creates a new volunteer repo.
func NewVolunteerRepository(pool *pgxpool.Pool) *VolunteerRepositoryPG {
	return &VolunteerRepositoryPG{pool: pool}
}

// Create inserts a signup; the database assigns id and created_at.
func (r *VolunteerRepositoryPG) Create(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO volunteers (name, email, phone, interests)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at;
`, v.Name, v.Email, v.Phone, v.Interests)

	created := *v
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, err
	}
	return &created, nil
}

// List returns all volunteers, newest first.
func (r *VolunteerRepositoryPG) List(ctx context.Context) ([]domain.Volunteer, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, email, phone, interests, created_at
FROM volunteers
ORDER BY created_at DESC, id DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Volunteer
	for rows.Next() {
		var v domain.Volunteer
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Interests, &v.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update overwrites the editable fields of a volunteer.
func (r *VolunteerRepositoryPG) Update(ctx context.Context, id int, v *domain.Volunteer) (*domain.Volunteer, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE volunteers
SET name = $2, email = $3, phone = $4, interests = $5
WHERE id = $1
RETURNING id, name, email, phone, interests, created_at;
`, id, v.Name, v.Email, v.Phone, v.Interests)

	var updated domain.Volunteer
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Phone, &updated.Interests, &updated.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes a volunteer by id.
func (r *VolunteerRepositoryPG) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM volunteers WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
