package domain

import "time"

// DonationStatus tracks a one-time donation through the payment processor.
type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationSucceeded DonationStatus = "succeeded"
	DonationFailed    DonationStatus = "failed"
)

// Valid reports whether s is one of the known donation statuses.
func (s DonationStatus) Valid() bool {
	switch s {
	case DonationPending, DonationSucceeded, DonationFailed:
		return true
	}
	return false
}

// Donation represents a one-time supporter contribution. AmountCents is the
// amount in minor currency units. PaymentRef holds the processor's payment
// intent id once a charge has been opened.
type Donation struct {
	ID          int
	Email       string
	AmountCents int64
	Status      DonationStatus
	PaymentRef  string
	CreatedAt   time.Time
}
