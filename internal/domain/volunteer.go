package domain

import "time"

// Volunteer is a supporter who signed up through the get-involved form.
type Volunteer struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	Interests []string
	CreatedAt time.Time
}
