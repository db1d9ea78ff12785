package domain

import "time"

// NewsletterSubscription is a campaign-updates email subscription.
type NewsletterSubscription struct {
	ID        int
	Email     string
	CreatedAt time.Time
}
