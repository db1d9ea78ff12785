package domain

import "context"

// VolunteerRepository defines persistence for volunteer signups.
type VolunteerRepository interface {
	Create(ctx context.Context, v *Volunteer) (*Volunteer, error)
	List(ctx context.Context) ([]Volunteer, error)
	Update(ctx context.Context, id int, v *Volunteer) (*Volunteer, error)
	Delete(ctx context.Context, id int) error
}

// YardSignRepository defines persistence for yard sign requests.
type YardSignRepository interface {
	Create(ctx context.Context, r *YardSignRequest) (*YardSignRequest, error)
	List(ctx context.Context) ([]YardSignRequest, error)
	Update(ctx context.Context, id int, r *YardSignRequest) (*YardSignRequest, error)
	Delete(ctx context.Context, id int) error
}

// DonationRepository defines persistence for donations. Donations are never
// deleted; failed charges stay on record.
type DonationRepository interface {
	Create(ctx context.Context, d *Donation) (*Donation, error)
	List(ctx context.Context) ([]Donation, error)
	UpdateStatus(ctx context.Context, id int, status DonationStatus, paymentRef string) (*Donation, error)
}

// NewsletterRepository defines persistence for newsletter subscriptions.
type NewsletterRepository interface {
	Create(ctx context.Context, s *NewsletterSubscription) (*NewsletterSubscription, error)
	List(ctx context.Context) ([]NewsletterSubscription, error)
	Delete(ctx context.Context, id int) error
}

// AnalyticsRepository updates and reads daily signup counters.
type AnalyticsRepository interface {
	IncrementCounters(ctx context.Context, day string, counters map[string]int) error
	GetSummary(ctx context.Context) (*SignupSummary, error)
}
