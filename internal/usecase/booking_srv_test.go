package usecase

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPhone = "9999999999"

func createBooking(t *testing.T, svc *Service, services ...string) *response.BookingResponse {
	t.Helper()

	resp, err := svc.Booking.Create(context.Background(), testPhone, &request.CreateBookingRequest{
		SalonID:      "raj-beauty",
		Date:         "2026-09-15",
		Time:         "10:00 AM",
		Services:     services,
		CustomerName: "Asha",
	})
	require.NoError(t, err)
	return resp
}

func TestCreateBooking(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp := createBooking(t, svc, "Hair Cut", "Facial Treatment")

	assert.Equal(t, 1100, resp.TotalPrice)
	assert.Equal(t, entity.BookingStatusUpcoming, resp.Status)
	assert.Equal(t, "Raj Beauty Parlour", resp.SalonName)
	assert.Equal(t, testPhone, resp.CustomerPhone)
	require.Len(t, resp.Services, 2)

	// snapshots carry the service's position in the salon's list
	assert.Equal(t, 0, resp.Services[0].Index)
	assert.Equal(t, 1, resp.Services[1].Index)
	assert.NotEmpty(t, resp.ID)

	// the creation instant travels as an RFC 3339 string
	created, err := time.Parse(time.RFC3339, resp.BookingDate)
	require.NoError(t, err)
	assert.False(t, created.IsZero())
}

func TestCreateBookingUniqueIDs(t *testing.T) {
	svc, _, _ := newTestService(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		resp := createBooking(t, svc, "Hair Cut")
		assert.False(t, seen[resp.ID], "duplicate booking id %s", resp.ID)
		seen[resp.ID] = true
	}
}

func TestCreateBookingClosedSalon(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Booking.Create(context.Background(), testPhone, &request.CreateBookingRequest{
		SalonID:  "sunset-salon-closed",
		Date:     "2026-09-15",
		Time:     "11:00 AM",
		Services: []string{"Relaxing Spa"},
	})
	assert.ErrorIs(t, err, ErrSalonClosed)
}

func TestCreateBookingUnknownSalonAndService(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Booking.Create(ctx, testPhone, &request.CreateBookingRequest{
		SalonID:  "no-such-salon",
		Date:     "2026-09-15",
		Time:     "11:00 AM",
		Services: []string{"Hair Cut"},
	})
	assert.ErrorIs(t, err, ErrSalonNotFound)

	_, err = svc.Booking.Create(ctx, testPhone, &request.CreateBookingRequest{
		SalonID:  "raj-beauty",
		Date:     "2026-09-15",
		Time:     "11:00 AM",
		Services: []string{"Tattoo"},
	})
	assert.ErrorIs(t, err, ErrServiceUnknown)
}

func TestListBookingsOrderAndFilter(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first := createBooking(t, svc, "Hair Cut")
	time.Sleep(2 * time.Millisecond) // distinct creation instants
	second := createBooking(t, svc, "Manicure")

	all, err := svc.Booking.List(ctx, testPhone, "all")
	require.NoError(t, err)
	require.Len(t, all, 2)

	// newest first
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	// status filter is case-insensitive
	upcoming, err := svc.Booking.List(ctx, testPhone, "Upcoming")
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)

	completed, err := svc.Booking.List(ctx, testPhone, "completed")
	require.NoError(t, err)
	assert.Empty(t, completed)

	// other phones see nothing
	other, err := svc.Booking.List(ctx, "1111111111", "all")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCancelBooking(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	booking := createBooking(t, svc, "Hair Cut")

	cancelled, err := svc.Booking.Cancel(ctx, booking.ID, &request.CancelBookingRequest{Reason: "change of plans"})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	assert.Equal(t, "change of plans", cancelled.CancelReason)

	// a second cancel is rejected, the record keeps its state
	_, err = svc.Booking.Cancel(ctx, booking.ID, &request.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotUpcoming)

	detail, err := svc.Booking.Detail(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "change of plans", detail.CancelReason)
}

func TestCancelMissingBookingLeavesListUnchanged(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	createBooking(t, svc, "Hair Cut")

	_, err := svc.Booking.Cancel(ctx, "BK-00000000-000000-0000", &request.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)

	all, err := svc.Booking.List(ctx, testPhone, "all")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, entity.BookingStatusUpcoming, all[0].Status)
}

func TestCompleteBooking(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	booking := createBooking(t, svc, "Hair Cut")

	done, err := svc.Booking.Complete(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCompleted, done.Status)

	_, err = svc.Booking.Complete(ctx, booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotUpcoming)

	_, err = svc.Booking.Complete(ctx, "BK-00000000-000000-0000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestInlineFeedback(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	booking := createBooking(t, svc, "Hair Cut")

	// not rateable while upcoming
	_, err := svc.Booking.InlineFeedback(ctx, booking.ID, &request.InlineFeedbackRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrBookingNotCompleted)

	_, err = svc.Booking.Complete(ctx, booking.ID)
	require.NoError(t, err)

	// a zero rating never writes anything
	_, err = svc.Booking.InlineFeedback(ctx, booking.ID, &request.InlineFeedbackRequest{Rating: 0})
	assert.ErrorIs(t, err, ErrInvalidRating)

	detail, err := svc.Booking.Detail(ctx, booking.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Feedback)

	rated, err := svc.Booking.InlineFeedback(ctx, booking.ID, &request.InlineFeedbackRequest{Rating: 4})
	require.NoError(t, err)
	require.NotNil(t, rated.Feedback)
	assert.Equal(t, 4, rated.Feedback.Rating)

	// one rating per booking
	_, err = svc.Booking.InlineFeedback(ctx, booking.ID, &request.InlineFeedbackRequest{Rating: 5})
	assert.ErrorIs(t, err, ErrFeedbackExists)
}

func TestRateBooking(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	booking := createBooking(t, svc, "Facial Treatment")
	_, err := svc.Booking.Complete(ctx, booking.ID)
	require.NoError(t, err)

	images := []string{"data:image/png;base64,dGVzdA=="}
	rated, err := svc.Booking.Rate(ctx, booking.ID, 5, "Great service", images)
	require.NoError(t, err)
	require.NotNil(t, rated.Feedback)
	assert.Equal(t, 5, rated.Feedback.Rating)
	assert.Equal(t, "Great service", rated.Feedback.Comment)
	assert.Equal(t, images, rated.Feedback.Images)

	_, err = svc.Booking.Rate(ctx, "BK-00000000-000000-0000", 3, "?", nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCreateBookingUsesProfileFallback(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, repo.Profile.Save(ctx, &entity.Profile{
		Name:  "Asha Rahman",
		Phone: "8888888888",
	}))

	resp, err := svc.Booking.Create(ctx, testPhone, &request.CreateBookingRequest{
		SalonID:  "raj-beauty",
		Date:     "2026-09-15",
		Time:     "10:00 AM",
		Services: []string{"Hair Cut"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha Rahman", resp.CustomerName)
	assert.Equal(t, "8888888888", resp.CustomerPhone)
}
