package repo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign/internal/domain"
)

// AnalyticsRepositoryPG implements AnalyticsRepository using PostgreSQL.
type AnalyticsRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository constructs the repository.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepositoryPG {
	return &AnalyticsRepositoryPG{pool: pool}
}

// IncrementCounters upserts signup metrics for the provided day.
func (r *AnalyticsRepositoryPG) IncrementCounters(ctx context.Context, day string, counters map[string]int) error {
	query := `
INSERT INTO analytics_daily (
    day, volunteers, yard_signs, donations, donation_amount_cents, subscriptions
) VALUES (
    $1, $2, $3, $4, $5, $6
) ON CONFLICT (day) DO UPDATE SET
    volunteers = analytics_daily.volunteers + EXCLUDED.volunteers,
    yard_signs = analytics_daily.yard_signs + EXCLUDED.yard_signs,
    donations = analytics_daily.donations + EXCLUDED.donations,
    donation_amount_cents = analytics_daily.donation_amount_cents + EXCLUDED.donation_amount_cents,
    subscriptions = analytics_daily.subscriptions + EXCLUDED.subscriptions;
`
	_, err := r.pool.Exec(ctx, query,
		day,
		counters["volunteers"],
		counters["yard_signs"],
		counters["donations"],
		counters["donation_amount_cents"],
		counters["subscriptions"],
	)
	return err
}

// GetSummary returns aggregated capture totals straight from the entity
// tables, with trailing 7-day deltas.
func (r *AnalyticsRepositoryPG) GetSummary(ctx context.Context) (*domain.SignupSummary, error) {
	row := r.pool.QueryRow(ctx, `
SELECT
    (SELECT count(*) FROM volunteers),
    (SELECT count(*) FROM yard_sign_requests),
    (SELECT count(*) FROM donations),
    (SELECT coalesce(sum(amount_cents), 0) FROM donations WHERE status = 'succeeded'),
    (SELECT count(*) FROM newsletter_subscriptions),
    (SELECT count(*) FROM volunteers WHERE created_at > now() - interval '7 days'),
    (SELECT count(*) FROM yard_sign_requests WHERE created_at > now() - interval '7 days'),
    (SELECT count(*) FROM donations WHERE created_at > now() - interval '7 days'),
    (SELECT count(*) FROM newsletter_subscriptions WHERE created_at > now() - interval '7 days');
`)

	var summary domain.SignupSummary
	if err := row.Scan(
		&summary.Volunteers,
		&summary.YardSignRequests,
		&summary.Donations,
		&summary.DonationAmountCents,
		&summary.Subscriptions,
		&summary.VolunteersLast7d,
		&summary.YardSignsLast7d,
		&summary.DonationsLast7d,
		&summary.SubscriptionsLast7d,
	); err != nil {
		return nil, err
	}
	return &summary, nil
}
