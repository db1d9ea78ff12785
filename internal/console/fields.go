package console

import (
	"campaign/internal/domain"
)

// Per-kind accessor catalogs. These enumerate every field name the admin may
// search, sort, or export on, so an unknown name is a request error instead
// of a silent runtime lookup.

var VolunteerFields = FieldMap[domain.Volunteer]{
	"id":           func(v domain.Volunteer) Value { return Number(float64(v.ID)) },
	"name":         func(v domain.Volunteer) Value { return String(v.Name) },
	"email":        func(v domain.Volunteer) Value { return String(v.Email) },
	"phone":        func(v domain.Volunteer) Value { return String(v.Phone) },
	"interests":    func(v domain.Volunteer) Value { return List(v.Interests) },
	CreatedAtField: func(v domain.Volunteer) Value { return Time(v.CreatedAt) },
}

var YardSignFields = FieldMap[domain.YardSignRequest]{
	"id":           func(r domain.YardSignRequest) Value { return Number(float64(r.ID)) },
	"name":         func(r domain.YardSignRequest) Value { return String(r.Name) },
	"email":        func(r domain.YardSignRequest) Value { return String(r.Email) },
	"phone":        func(r domain.YardSignRequest) Value { return String(r.Phone) },
	"address":      func(r domain.YardSignRequest) Value { return String(r.Address) },
	"quantity":     func(r domain.YardSignRequest) Value { return Number(float64(r.Quantity)) },
	CreatedAtField: func(r domain.YardSignRequest) Value { return Time(r.CreatedAt) },
}

var DonationFields = FieldMap[domain.Donation]{
	"id":           func(d domain.Donation) Value { return Number(float64(d.ID)) },
	"email":        func(d domain.Donation) Value { return String(d.Email) },
	"amount":       func(d domain.Donation) Value { return Number(float64(d.AmountCents)) },
	"status":       func(d domain.Donation) Value { return String(string(d.Status)) },
	"paymentRef":   func(d domain.Donation) Value { return String(d.PaymentRef) },
	CreatedAtField: func(d domain.Donation) Value { return Time(d.CreatedAt) },
}

var NewsletterFields = FieldMap[domain.NewsletterSubscription]{
	"id":           func(s domain.NewsletterSubscription) Value { return Number(float64(s.ID)) },
	"email":        func(s domain.NewsletterSubscription) Value { return String(s.Email) },
	CreatedAtField: func(s domain.NewsletterSubscription) Value { return Time(s.CreatedAt) },
}

// Free-text search scopes per kind, matching what the admin search box covers.
var (
	VolunteerSearchFields  = []string{"name", "email", "phone"}
	YardSignSearchFields   = []string{"name", "email", "address"}
	DonationSearchFields   = []string{"email"}
	NewsletterSearchFields = []string{"email"}
)

// Export column specs per kind.
var VolunteerColumns = []Column[domain.Volunteer]{
	{Header: "Name", Value: VolunteerFields["name"]},
	{Header: "Email", Value: VolunteerFields["email"]},
	{Header: "Phone", Value: VolunteerFields["phone"]},
	{Header: "Interests", Value: VolunteerFields["interests"]},
	{Header: "CreatedAt", Value: VolunteerFields[CreatedAtField]},
}

var YardSignColumns = []Column[domain.YardSignRequest]{
	{Header: "Name", Value: YardSignFields["name"]},
	{Header: "Email", Value: YardSignFields["email"]},
	{Header: "Phone", Value: YardSignFields["phone"]},
	{Header: "Address", Value: YardSignFields["address"]},
	{Header: "Quantity", Value: YardSignFields["quantity"]},
	{Header: "CreatedAt", Value: YardSignFields[CreatedAtField]},
}

var DonationColumns = []Column[domain.Donation]{
	{Header: "Email", Value: DonationFields["email"]},
	{Header: "Amount", Value: DonationFields["amount"]},
	{Header: "Status", Value: DonationFields["status"]},
	{Header: "PaymentRef", Value: DonationFields["paymentRef"]},
	{Header: "CreatedAt", Value: DonationFields[CreatedAtField]},
}

var NewsletterColumns = []Column[domain.NewsletterSubscription]{
	{Header: "Email", Value: NewsletterFields["email"]},
	{Header: "CreatedAt", Value: NewsletterFields[CreatedAtField]},
}
