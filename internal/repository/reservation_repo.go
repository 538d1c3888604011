package repository

import (
	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/store"
)

type ReservationRepo interface {
	LoadAll() map[string]model.Reservation
	SaveAll(reservations map[string]model.Reservation) error
	Update(fn func(reservations map[string]model.Reservation) error) error
}

type reservationRepoJSON struct {
	store *store.Store[model.Reservation]
}

var _ ReservationRepo = (*reservationRepoJSON)(nil)

func NewReservationRepoJSON(path string, logger *zap.Logger) *reservationRepoJSON {
	return &reservationRepoJSON{
		store: store.New[model.Reservation](path, logger),
	}
}

func (r *reservationRepoJSON) LoadAll() map[string]model.Reservation {
	return r.store.LoadAll()
}

func (r *reservationRepoJSON) SaveAll(reservations map[string]model.Reservation) error {
	return r.store.SaveAll(reservations)
}

func (r *reservationRepoJSON) Update(fn func(reservations map[string]model.Reservation) error) error {
	return r.store.Update(fn)
}
