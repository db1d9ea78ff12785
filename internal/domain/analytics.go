package domain

// SignupSummary aggregates capture totals for the admin dashboard.
type SignupSummary struct {
	Volunteers          int64
	YardSignRequests    int64
	Donations           int64
	DonationAmountCents int64
	Subscriptions       int64
	VolunteersLast7d    int64
	YardSignsLast7d     int64
	DonationsLast7d     int64
	SubscriptionsLast7d int64
}
