package domain

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/repository"
	"github.com/avelkner/innkeeper/internal/service"
)

const dateLayout = "2006-01-02"

type ReservationService interface {
	ValidateDates(checkIn, checkOut string) (time.Time, time.Time, error)
	AddReservation(reservation *model.Reservation) error
	MarkCancelled(id string) error
	GetReservationByID(id string) (*model.Reservation, error)
	GetAllReservations() ([]model.Reservation, error)
}

type reservationService struct {
	repo   repository.ReservationRepo
	logger *zap.Logger
}

var _ ReservationService = (*reservationService)(nil)

func NewReservationService(reservationRepo repository.ReservationRepo, logger *zap.Logger) *reservationService {
	return &reservationService{
		repo:   reservationRepo,
		logger: logger,
	}
}

// ValidateDates parses both dates in the fixed YYYY-MM-DD layout and
// requires check-out to fall strictly after check-in, so a same-day
// stay is rejected along with an inverted range.
func (s *reservationService) ValidateDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"check-in %q is not a valid YYYY-MM-DD date: %w", checkIn, service.ErrValidation)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"check-out %q is not a valid YYYY-MM-DD date: %w", checkOut, service.ErrValidation)
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"check-out %s must be after check-in %s: %w", checkOut, checkIn, service.ErrValidation)
	}
	return in, out, nil
}

func (s *reservationService) AddReservation(reservation *model.Reservation) error {
	return s.repo.Update(func(reservations map[string]model.Reservation) error {
		if _, ok := reservations[reservation.ID]; ok {
			return fmt.Errorf("reservation %q: %w", reservation.ID, service.ErrAlreadyExists)
		}
		reservations[reservation.ID] = *reservation
		return nil
	})
}

// MarkCancelled flips an active reservation to cancelled. Cancelled is
// terminal; the record itself is never deleted.
func (s *reservationService) MarkCancelled(id string) error {
	return s.repo.Update(func(reservations map[string]model.Reservation) error {
		reservation, ok := reservations[id]
		if !ok {
			return fmt.Errorf("reservation %q: %w", id, service.ErrNotFound)
		}
		if reservation.Status == model.StatusCancelled {
			return fmt.Errorf("reservation %q: %w", id, service.ErrAlreadyCancelled)
		}
		reservation.Status = model.StatusCancelled
		reservations[id] = reservation
		return nil
	})
}

func (s *reservationService) GetReservationByID(id string) (*model.Reservation, error) {
	reservations := s.repo.LoadAll()
	reservation, ok := reservations[id]
	if !ok {
		return nil, fmt.Errorf("reservation %q: %w", id, service.ErrNotFound)
	}
	return &reservation, nil
}

func (s *reservationService) GetAllReservations() ([]model.Reservation, error) {
	reservations := s.repo.LoadAll()
	list := make([]model.Reservation, 0, len(reservations))
	for _, reservation := range reservations {
		list = append(list, reservation)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
