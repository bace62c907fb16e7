package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"decorly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	updates  []bson.M
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = fmt.Sprintf("bk_%d", len(r.bookings)+1)
	}
	copyItem := *booking
	r.bookings[booking.ID] = &copyItem
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copyItem := *b
	return &copyItem, nil
}

func (r *fakeBookingRepo) GetAll(_ context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByEmail(_ context.Context, email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateSetDocument(_ context.Context, id string, updateDoc bson.M) error {
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	r.updates = append(r.updates, updateDoc)
	return nil
}

func (r *fakeBookingRepo) MarkPaid(ctx context.Context, id, trackingID string, paidAt time.Time) error {
	return r.UpdateSetDocument(ctx, id, bson.M{
		"status":     models.BookingStatusPaid,
		"trackingId": trackingID,
		"paidAt":     paidAt,
	})
}

func (r *fakeBookingRepo) Delete(_ context.Context, id string) error {
	delete(r.bookings, id)
	return nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error { return nil }

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	copyItem := *u
	return &copyItem, nil
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) UpdateRole(_ context.Context, id, role string) error { return nil }

func (r *fakeUserRepo) GetDecorators(_ context.Context) ([]models.User, error) { return nil, nil }
func (r *fakeUserRepo) UpdateDecoratorStatus(_ context.Context, id, status string) error {
	return nil
}
func (r *fakeUserRepo) DeleteDecorator(_ context.Context, id string) error { return nil }

func TestCreateBookingForcesPendingState(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Users: &fakeUserRepo{}}

	now := time.Now()
	created, err := svc.CreateBooking(context.Background(), models.Booking{
		Email:       "a@x.com",
		ServiceName: "Wedding Decor",
		Status:      "Paid",
		TrackingID:  "TRK-SPOOFED",
		PaidAt:      &now,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Empty(t, created.TrackingID)
	assert.Nil(t, created.PaidAt)
}

func TestCreateBookingRequiresEmail(t *testing.T) {
	svc := &DefaultBookingService{Repo: newFakeBookingRepo(), Users: &fakeUserRepo{}}

	_, err := svc.CreateBooking(context.Background(), models.Booking{ServiceName: "Wedding Decor"})
	assert.Error(t, err)
}

func TestListBookingsFiltersByEmail(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Users: &fakeUserRepo{}}

	_, err := svc.CreateBooking(context.Background(), models.Booking{Email: "a@x.com"})
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), models.Booking{Email: "b@x.com"})
	require.NoError(t, err)

	all, err := svc.ListBookings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListBookings(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].Email)
}

func TestUpdateBookingOnlySetsProvidedFields(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Users: &fakeUserRepo{}}

	created, err := svc.CreateBooking(context.Background(), models.Booking{Email: "a@x.com"})
	require.NoError(t, err)

	err = svc.UpdateBooking(context.Background(), created.ID, models.BookingUpdate{Location: "Nairobi"})
	require.NoError(t, err)

	require.Len(t, repo.updates, 1)
	assert.Equal(t, bson.M{"location": "Nairobi"}, repo.updates[0])
}

func TestListAdminBookingsEnrichesNames(t *testing.T) {
	repo := newFakeBookingRepo()
	users := &fakeUserRepo{users: map[string]*models.User{
		"a@x.com":   {Name: "Alice", Email: "a@x.com", Role: models.RoleUser},
		"bob@x.com": {Name: "Bob", Email: "bob@x.com", Role: models.RoleDecorator},
	}}
	svc := &DefaultBookingService{Repo: repo, Users: users}

	created, err := svc.CreateBooking(context.Background(), models.Booking{Email: "a@x.com"})
	require.NoError(t, err)
	repo.bookings[created.ID].AssignedDecorator = "bob@x.com"

	enriched, err := svc.ListAdminBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Equal(t, "Alice", enriched[0].UserName)
	assert.Equal(t, "a@x.com", enriched[0].UserEmail)
	assert.Equal(t, "Bob", enriched[0].DecoratorName)
}

func TestListAdminBookingsToleratesUnknownUsers(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Users: &fakeUserRepo{}}

	_, err := svc.CreateBooking(context.Background(), models.Booking{Email: "ghost@x.com"})
	require.NoError(t, err)

	enriched, err := svc.ListAdminBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, enriched, 1)
	assert.Empty(t, enriched[0].UserName)
	assert.Equal(t, "ghost@x.com", enriched[0].UserEmail)
}

func TestMarkBookingPaidStampsStatusAndTime(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{Repo: repo, Users: &fakeUserRepo{}}

	created, err := svc.CreateBooking(context.Background(), models.Booking{Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, svc.MarkBookingPaid(context.Background(), created.ID))

	require.Len(t, repo.updates, 1)
	assert.Equal(t, models.BookingStatusPaid, repo.updates[0]["status"])
	assert.Contains(t, repo.updates[0], "paidAt")
}
