package workflow

import (
	"errors"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/repository"
	"github.com/avelkner/innkeeper/internal/service"
	"github.com/avelkner/innkeeper/internal/service/domain"
)

func newTestWorkflow(t *testing.T) *ReservationWorkflow {
	t.Helper()
	dir := t.TempDir()
	logger := zap.NewNop()

	hotelRepo := repository.NewHotelRepoJSON(filepath.Join(dir, "hotels.json"), logger)
	customerRepo := repository.NewCustomerRepoJSON(filepath.Join(dir, "customers.json"), logger)
	reservationRepo := repository.NewReservationRepoJSON(filepath.Join(dir, "reservations.json"), logger)

	return NewReservationWorkflow(
		domain.NewReservationService(reservationRepo, logger),
		domain.NewHotelService(hotelRepo, logger),
		domain.NewCustomerService(customerRepo, logger),
		nil,
		logger,
	)
}

func seedHotelAndCustomer(t *testing.T, w *ReservationWorkflow, totalRooms int) {
	t.Helper()
	if _, err := w.HotelService.CreateHotel("H1", "Grand Plaza", "Lisbon", 4.5, totalRooms); err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	if _, err := w.CustomerService.CreateCustomer("C1", "Ana", "ana@example.com", "+351911111111"); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
}

// requireBalanced checks that every room is either available or held by
// a listed reservation.
func requireBalanced(t *testing.T, w *ReservationWorkflow, hotelID string) {
	t.Helper()
	hotel, err := w.HotelService.GetHotelByID(hotelID)
	if err != nil {
		t.Fatalf("GetHotelByID(%s): %v", hotelID, err)
	}
	if hotel.AvailableRooms+len(hotel.Reservations) != hotel.TotalRooms {
		t.Fatalf("inventory out of balance: available=%d held=%d total=%d",
			hotel.AvailableRooms, len(hotel.Reservations), hotel.TotalRooms)
	}
}

func TestCreateReservation(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	reservation, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03")
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if reservation.Status != model.StatusActive {
		t.Errorf("new reservation should be active, got %q", reservation.Status)
	}

	stored, err := w.ReservationService.GetReservationByID("R1")
	if err != nil {
		t.Fatalf("reservation not persisted: %v", err)
	}
	if stored.HotelID != "H1" || stored.CustomerID != "C1" {
		t.Errorf("reservation persisted wrong: %+v", stored)
	}

	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 1 {
		t.Errorf("room not taken from inventory, available=%d", hotel.AvailableRooms)
	}
	if len(hotel.Reservations) != 1 || hotel.Reservations[0] != "R1" {
		t.Errorf("reservation not listed at hotel: %v", hotel.Reservations)
	}
	requireBalanced(t, w, "H1")
}

func TestCreateReservationGeneratesID(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	reservation, err := w.CreateReservation("", "C1", "H1", "2026-09-01", "2026-09-03")
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if reservation.ID == "" {
		t.Fatal("expected a generated id")
	}
	if _, err := w.ReservationService.GetReservationByID(reservation.ID); err != nil {
		t.Fatalf("generated id not persisted: %v", err)
	}
}

func TestCreateReservationBadDates(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	_, err := w.CreateReservation("R1", "C1", "H1", "2026-09-03", "2026-09-01")
	if !errors.Is(err, service.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 2 {
		t.Errorf("failed create must not touch inventory, available=%d", hotel.AvailableRooms)
	}
	if _, err := w.ReservationService.GetReservationByID("R1"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("failed create must not persist a record, got %v", err)
	}
}

func TestCreateReservationDuplicateID(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	if _, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03"); err != nil {
		t.Fatalf("first CreateReservation failed: %v", err)
	}
	_, err := w.CreateReservation("R1", "C1", "H1", "2026-10-01", "2026-10-03")
	if !errors.Is(err, service.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 1 {
		t.Errorf("duplicate create must not take a second room, available=%d", hotel.AvailableRooms)
	}
	requireBalanced(t, w, "H1")
}

func TestCreateReservationUnknownCustomer(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	_, err := w.CreateReservation("R1", "nope", "H1", "2026-09-01", "2026-09-03")
	if !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 2 {
		t.Errorf("failed create must not touch inventory, available=%d", hotel.AvailableRooms)
	}
}

func TestCreateReservationNoRooms(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 1)

	if _, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03"); err != nil {
		t.Fatalf("first CreateReservation failed: %v", err)
	}
	_, err := w.CreateReservation("R2", "C1", "H1", "2026-09-01", "2026-09-03")
	if !errors.Is(err, service.ErrNoRoomsAvailable) {
		t.Fatalf("expected ErrNoRoomsAvailable, got %v", err)
	}
	if _, err := w.ReservationService.GetReservationByID("R2"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("rejected reservation must not be persisted, got %v", err)
	}

	// cancelling the holder frees the room for the next reservation
	if err := w.CancelReservation("R1"); err != nil {
		t.Fatalf("CancelReservation failed: %v", err)
	}
	if _, err := w.CreateReservation("R3", "C1", "H1", "2026-09-10", "2026-09-12"); err != nil {
		t.Fatalf("create after cancel failed: %v", err)
	}
	requireBalanced(t, w, "H1")
}

func TestCreateReservationReleasesRoomWhenPersistFails(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	real := w.ReservationService
	w.ReservationService = failingReservationService{real}

	_, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03")
	if err == nil {
		t.Fatal("expected the persist failure to surface")
	}

	w.ReservationService = real
	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 2 || len(hotel.Reservations) != 0 {
		t.Errorf("held room not released: available=%d reservations=%v",
			hotel.AvailableRooms, hotel.Reservations)
	}
	if _, err := w.ReservationService.GetReservationByID("R1"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("no record should exist after the failure, got %v", err)
	}
}

func TestCancelReservation(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	if _, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03"); err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if err := w.CancelReservation("R1"); err != nil {
		t.Fatalf("CancelReservation failed: %v", err)
	}

	stored, err := w.ReservationService.GetReservationByID("R1")
	if err != nil {
		t.Fatalf("cancelled record must remain: %v", err)
	}
	if stored.Status != model.StatusCancelled {
		t.Errorf("status not flipped, got %q", stored.Status)
	}

	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 2 || len(hotel.Reservations) != 0 {
		t.Errorf("room not returned: available=%d reservations=%v",
			hotel.AvailableRooms, hotel.Reservations)
	}
	requireBalanced(t, w, "H1")
}

func TestCancelReservationTwice(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	if _, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03"); err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if err := w.CancelReservation("R1"); err != nil {
		t.Fatalf("first CancelReservation failed: %v", err)
	}
	if err := w.CancelReservation("R1"); !errors.Is(err, service.ErrAlreadyCancelled) {
		t.Fatalf("expected ErrAlreadyCancelled, got %v", err)
	}

	// the rejected second cancel must not move inventory
	hotel, err := w.HotelService.GetHotelByID("H1")
	if err != nil {
		t.Fatalf("GetHotelByID failed: %v", err)
	}
	if hotel.AvailableRooms != 2 || len(hotel.Reservations) != 0 {
		t.Errorf("state changed on rejected cancel: available=%d reservations=%v",
			hotel.AvailableRooms, hotel.Reservations)
	}
	requireBalanced(t, w, "H1")
}

func TestCancelReservationMissing(t *testing.T) {
	w := newTestWorkflow(t)

	if err := w.CancelReservation("nope"); !errors.Is(err, service.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCancelReservationSurvivesDeletedHotel(t *testing.T) {
	w := newTestWorkflow(t)
	seedHotelAndCustomer(t, w, 2)

	if _, err := w.CreateReservation("R1", "C1", "H1", "2026-09-01", "2026-09-03"); err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if err := w.HotelService.DeleteHotel("H1"); err != nil {
		t.Fatalf("DeleteHotel failed: %v", err)
	}

	if err := w.CancelReservation("R1"); err != nil {
		t.Fatalf("cancel should tolerate a missing hotel, got %v", err)
	}
	stored, err := w.ReservationService.GetReservationByID("R1")
	if err != nil {
		t.Fatalf("GetReservationByID failed: %v", err)
	}
	if stored.Status != model.StatusCancelled {
		t.Errorf("status not flipped, got %q", stored.Status)
	}
}

type failingReservationService struct {
	domain.ReservationService
}

func (failingReservationService) AddReservation(*model.Reservation) error {
	return errors.New("disk full")
}
