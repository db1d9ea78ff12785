package handlers_test

import (
	"context"
	"time"

	"campaign/internal/domain"
	"campaign/internal/notify"
	"campaign/internal/providers/payment"
)

// In-memory repositories backing the handler tests.

type fakeVolunteerRepo struct {
	items      []domain.Volunteer
	nextID     int
	now        func() time.Time
	deleteErrs map[int]error
	deleted    []int
}

func newFakeVolunteerRepo() *fakeVolunteerRepo {
	return &fakeVolunteerRepo{nextID: 1, now: time.Now}
}

func (f *fakeVolunteerRepo) Create(_ context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
	created := *v
	created.ID = f.nextID
	created.CreatedAt = f.now()
	f.nextID++
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeVolunteerRepo) List(context.Context) ([]domain.Volunteer, error) {
	out := make([]domain.Volunteer, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeVolunteerRepo) Update(_ context.Context, id int, v *domain.Volunteer) (*domain.Volunteer, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = v.Name
			f.items[i].Email = v.Email
			f.items[i].Phone = v.Phone
			f.items[i].Interests = v.Interests
			updated := f.items[i]
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeVolunteerRepo) Delete(_ context.Context, id int) error {
	if err, ok := f.deleteErrs[id]; ok {
		return err
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeDonationRepo struct {
	items  []domain.Donation
	nextID int
	now    func() time.Time
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{nextID: 1, now: time.Now}
}

func (f *fakeDonationRepo) Create(_ context.Context, d *domain.Donation) (*domain.Donation, error) {
	created := *d
	created.ID = f.nextID
	created.CreatedAt = f.now()
	if created.Status == "" {
		created.Status = domain.DonationPending
	}
	f.nextID++
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeDonationRepo) List(context.Context) ([]domain.Donation, error) {
	out := make([]domain.Donation, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeDonationRepo) UpdateStatus(_ context.Context, id int, status domain.DonationStatus, paymentRef string) (*domain.Donation, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
			if paymentRef != "" {
				f.items[i].PaymentRef = paymentRef
			}
			updated := f.items[i]
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeNewsletterRepo struct {
	items  []domain.NewsletterSubscription
	nextID int
	now    func() time.Time
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{nextID: 1, now: time.Now}
}

func (f *fakeNewsletterRepo) Create(_ context.Context, s *domain.NewsletterSubscription) (*domain.NewsletterSubscription, error) {
	for _, existing := range f.items {
		if existing.Email == s.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}
	created := *s
	created.ID = f.nextID
	created.CreatedAt = f.now()
	f.nextID++
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeNewsletterRepo) List(context.Context) ([]domain.NewsletterSubscription, error) {
	out := make([]domain.NewsletterSubscription, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeNewsletterRepo) Delete(_ context.Context, id int) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeYardSignRepo struct {
	items  []domain.YardSignRequest
	nextID int
	now    func() time.Time
}

func newFakeYardSignRepo() *fakeYardSignRepo {
	return &fakeYardSignRepo{nextID: 1, now: time.Now}
}

func (f *fakeYardSignRepo) Create(_ context.Context, r *domain.YardSignRequest) (*domain.YardSignRequest, error) {
	created := *r
	created.ID = f.nextID
	created.CreatedAt = f.now()
	f.nextID++
	f.items = append(f.items, created)
	return &created, nil
}

func (f *fakeYardSignRepo) List(context.Context) ([]domain.YardSignRequest, error) {
	out := make([]domain.YardSignRequest, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeYardSignRepo) Update(_ context.Context, id int, r *domain.YardSignRequest) (*domain.YardSignRequest, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Name = r.Name
			f.items[i].Email = r.Email
			f.items[i].Phone = r.Phone
			f.items[i].Address = r.Address
			f.items[i].Quantity = r.Quantity
			updated := f.items[i]
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeYardSignRepo) Delete(_ context.Context, id int) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeAnalytics struct {
	counters []map[string]int
	summary  domain.SignupSummary
}

func (f *fakeAnalytics) IncrementCounters(_ context.Context, _ string, counters map[string]int) error {
	f.counters = append(f.counters, counters)
	return nil
}

func (f *fakeAnalytics) GetSummary(context.Context) (*domain.SignupSummary, error) {
	summary := f.summary
	return &summary, nil
}

type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Publish(_ context.Context, event notify.Event) {
	f.events = append(f.events, event)
}

type fakePayments struct {
	intent *payment.Intent
	err    error

	gotAmount   int64
	gotCurrency string
	gotMetadata map[string]string
}

func (f *fakePayments) CreateIntent(_ context.Context, amountCents int64, currency string, metadata map[string]string) (*payment.Intent, error) {
	f.gotAmount = amountCents
	f.gotCurrency = currency
	f.gotMetadata = metadata
	if f.err != nil {
		return nil, f.err
	}
	return f.intent, nil
}
