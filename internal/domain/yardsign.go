package domain

import "time"

// YardSignRequest is a request for one or more campaign yard signs.
type YardSignRequest struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Address   string
	Quantity  int
	CreatedAt time.Time
}
