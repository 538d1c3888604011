package workflow

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/mq"
	"github.com/avelkner/innkeeper/internal/service"
	"github.com/avelkner/innkeeper/internal/service/domain"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReservationWorkflow couples reservation lifecycle changes to the
// hotel inventory they occupy: creation takes a room out of inventory
// before the reservation record is written, cancellation puts it back
// before the status flips.
type ReservationWorkflow struct {
	ReservationService domain.ReservationService
	HotelService       domain.HotelService
	CustomerService    domain.CustomerService
	MQConn             *amqp.Connection
	Logger             *zap.Logger
}

func NewReservationWorkflow(
	reservationService domain.ReservationService,
	hotelService domain.HotelService,
	customerService domain.CustomerService,
	mqConn *amqp.Connection,
	logger *zap.Logger,
) *ReservationWorkflow {
	return &ReservationWorkflow{
		ReservationService: reservationService,
		HotelService:       hotelService,
		CustomerService:    customerService,
		MQConn:             mqConn,
		Logger:             logger,
	}
}

// CreateReservation checks, in order: date validity, identifier
// uniqueness, customer existence, room availability. The first failing
// check returns without side effects; only the availability check
// mutates state (the room is held from that point on). An empty id gets
// a generated one.
func (w *ReservationWorkflow) CreateReservation(id, customerID, hotelID, checkIn, checkOut string) (*model.Reservation, error) {
	if id == "" {
		id = uuid.NewString()
	}

	if _, _, err := w.ReservationService.ValidateDates(checkIn, checkOut); err != nil {
		return nil, err
	}
	if _, err := w.ReservationService.GetReservationByID(id); err == nil {
		return nil, fmt.Errorf("reservation %q: %w", id, service.ErrAlreadyExists)
	} else if !errors.Is(err, service.ErrNotFound) {
		return nil, err
	}
	if _, err := w.CustomerService.GetCustomerByID(customerID); err != nil {
		return nil, err
	}
	if err := w.HotelService.ReserveRoom(hotelID, id); err != nil {
		return nil, err
	}

	reservation := &model.Reservation{
		ID:         id,
		CustomerID: customerID,
		HotelID:    hotelID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     model.StatusActive,
	}
	if err := w.ReservationService.AddReservation(reservation); err != nil {
		// release the held room so inventory matches the absent record
		if releaseErr := w.HotelService.CancelReservation(hotelID, id); releaseErr != nil {
			w.Logger.Error("failed to release room after aborted reservation",
				zap.String("reservation_id", id),
				zap.String("hotel_id", hotelID),
				zap.Error(releaseErr))
		}
		return nil, err
	}

	w.publish(mq.ReservationCreatedQueue, mq.ReservationCreatedMessage{
		ReservationID: id,
		CustomerID:    customerID,
		HotelID:       hotelID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
	})
	w.Logger.Info("reservation created",
		zap.String("reservation_id", id),
		zap.String("hotel_id", hotelID))
	return reservation, nil
}

// CancelReservation releases the hotel room and marks the reservation
// cancelled. The room release is best-effort: a hotel deleted in the
// meantime does not block the cancellation.
func (w *ReservationWorkflow) CancelReservation(id string) error {
	reservation, err := w.ReservationService.GetReservationByID(id)
	if err != nil {
		return err
	}
	if reservation.Status == model.StatusCancelled {
		return fmt.Errorf("reservation %q: %w", id, service.ErrAlreadyCancelled)
	}

	if err := w.HotelService.CancelReservation(reservation.HotelID, id); err != nil {
		w.Logger.Warn("could not release room for cancelled reservation",
			zap.String("reservation_id", id),
			zap.String("hotel_id", reservation.HotelID),
			zap.Error(err))
	}

	if err := w.ReservationService.MarkCancelled(id); err != nil {
		return err
	}

	w.publish(mq.ReservationCancelledQueue, mq.ReservationCancelledMessage{
		ReservationID: id,
		HotelID:       reservation.HotelID,
	})
	w.Logger.Info("reservation cancelled", zap.String("reservation_id", id))
	return nil
}

// publish sends a lifecycle event when a broker is configured. Delivery
// problems are logged and otherwise ignored.
func (w *ReservationWorkflow) publish(queueName string, message any) {
	if w.MQConn == nil {
		return
	}
	ch, err := mq.NewChannel(w.MQConn)
	if err != nil {
		w.Logger.Warn("cannot open channel for event",
			zap.String("queue", queueName),
			zap.Error(err))
		return
	}
	defer ch.Close()

	if err := mq.SendImmediateMessage(ch, queueName, message); err != nil {
		w.Logger.Warn("cannot publish event",
			zap.String("queue", queueName),
			zap.Error(err))
	}
}
