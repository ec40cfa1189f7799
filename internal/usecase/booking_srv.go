package usecase

import (
	"context"
	"sync"
	"time"

	"salon-booking/internal/data/entity"
	"salon-booking/internal/data/repository"
	"salon-booking/internal/dto/request"
	"salon-booking/internal/dto/response"
	"salon-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// Create books the named services at the salon. Services are snapshotted
	// with their current price and position, so later catalog edits never
	// change an existing booking.
	Create(ctx context.Context, phone string, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	List(ctx context.Context, phone, statusFilter string) ([]response.BookingResponse, error)
	Detail(ctx context.Context, id string) (*response.BookingResponse, error)
	Cancel(ctx context.Context, id string, req *request.CancelBookingRequest) (*response.BookingResponse, error)

	// InlineFeedback is the one-tap star rating on a booking card.
	InlineFeedback(ctx context.Context, id string, req *request.InlineFeedbackRequest) (*response.BookingResponse, error)
	// Rate is the full flow: rating, comment and optional photos.
	Rate(ctx context.Context, id string, rating int, comment string, images []string) (*response.BookingResponse, error)

	// Complete marks an upcoming booking as done. Administrative.
	Complete(ctx context.Context, id string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger

	// one booking submission per phone at a time
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		config:   config,
		log:      log,
		inFlight: make(map[string]struct{}),
	}
}

func (s *bookingService) acquire(phone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, busy := s.inFlight[phone]; busy {
		return false
	}
	s.inFlight[phone] = struct{}{}
	return true
}

func (s *bookingService) release(phone string) {
	s.mu.Lock()
	delete(s.inFlight, phone)
	s.mu.Unlock()
}

func (s *bookingService) Create(ctx context.Context, phone string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if !s.acquire(phone) {
		return nil, ErrOperationInFlight
	}
	defer s.release(phone)

	salon := s.repo.Salon.FindByID(ctx, req.SalonID)
	if salon == nil {
		return nil, ErrSalonNotFound
	}
	if salon.IsClosed() {
		return nil, ErrSalonClosed
	}

	services := make([]entity.BookedService, 0, len(req.Services))
	total := 0
	for _, name := range req.Services {
		svc, idx, ok := salon.FindService(name)
		if !ok {
			s.log.Warn("Unknown service requested",
				zap.String("salon_id", salon.ID),
				zap.String("service", name),
			)
			return nil, ErrServiceUnknown
		}
		services = append(services, entity.BookedService{Service: svc, Index: idx})
		total += svc.Price
	}

	customerName := req.CustomerName
	customerPhone := req.CustomerPhone
	if customerName == "" || customerPhone == "" {
		profile, err := s.repo.Profile.Get(ctx)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			if customerName == "" {
				customerName = profile.Name
			}
			if customerPhone == "" {
				customerPhone = profile.Phone
			}
		}
	}
	if customerPhone == "" {
		customerPhone = phone
	}

	if err := utils.SimulateDelay(ctx, s.config.Auth.SimDelay); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:            utils.GenerateBookingID(),
		SalonID:       salon.ID,
		SalonName:     salon.Name,
		SalonAddress:  salon.Address,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		Date:          req.Date,
		Time:          req.Time,
		Services:      services,
		TotalPrice:    total,
		Status:        entity.BookingStatusUpcoming,
		BookingDate:   time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		return nil, err
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) List(ctx context.Context, phone, statusFilter string) ([]response.BookingResponse, error) {
	bookings := s.repo.Booking.ListByStatus(ctx, phone, statusFilter)
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) Detail(ctx context.Context, id string) (*response.BookingResponse, error) {
	booking := s.repo.Booking.FindByID(ctx, id)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Cancel(ctx context.Context, id string, req *request.CancelBookingRequest) (*response.BookingResponse, error) {
	if !s.repo.Booking.Cancel(ctx, id, req.Reason) {
		booking := s.repo.Booking.FindByID(ctx, id)
		if booking == nil {
			return nil, ErrBookingNotFound
		}
		return nil, ErrBookingNotUpcoming
	}

	return s.Detail(ctx, id)
}

// feedback validates the shared preconditions of both feedback paths.
func (s *bookingService) feedback(ctx context.Context, id string, fb entity.Feedback) (*response.BookingResponse, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return nil, ErrInvalidRating
	}

	booking := s.repo.Booking.FindByID(ctx, id)
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Status != entity.BookingStatusCompleted {
		return nil, ErrBookingNotCompleted
	}
	if booking.Feedback != nil {
		return nil, ErrFeedbackExists
	}

	if !s.repo.Booking.AttachFeedback(ctx, id, fb) {
		// lost a race to a concurrent submission
		return nil, ErrFeedbackExists
	}

	s.log.Info("Booking rated",
		zap.String("booking_id", id),
		zap.Int("rating", fb.Rating),
	)
	return s.Detail(ctx, id)
}

func (s *bookingService) InlineFeedback(ctx context.Context, id string, req *request.InlineFeedbackRequest) (*response.BookingResponse, error) {
	return s.feedback(ctx, id, entity.Feedback{Rating: req.Rating})
}

func (s *bookingService) Rate(ctx context.Context, id string, rating int, comment string, images []string) (*response.BookingResponse, error) {
	return s.feedback(ctx, id, entity.Feedback{
		Rating:  rating,
		Comment: comment,
		Images:  images,
	})
}

func (s *bookingService) Complete(ctx context.Context, id string) (*response.BookingResponse, error) {
	if !s.repo.Booking.Complete(ctx, id) {
		booking := s.repo.Booking.FindByID(ctx, id)
		if booking == nil {
			return nil, ErrBookingNotFound
		}
		return nil, ErrBookingNotUpcoming
	}
	return s.Detail(ctx, id)
}
