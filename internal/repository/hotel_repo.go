package repository

import (
	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/store"
)

type HotelRepo interface {
	LoadAll() map[string]model.Hotel
	SaveAll(hotels map[string]model.Hotel) error
	Update(fn func(hotels map[string]model.Hotel) error) error
}

type hotelRepoJSON struct {
	store *store.Store[model.Hotel]
}

var _ HotelRepo = (*hotelRepoJSON)(nil)

func NewHotelRepoJSON(path string, logger *zap.Logger) *hotelRepoJSON {
	return &hotelRepoJSON{
		store: store.New[model.Hotel](path, logger),
	}
}

func (r *hotelRepoJSON) LoadAll() map[string]model.Hotel {
	return r.store.LoadAll()
}

func (r *hotelRepoJSON) SaveAll(hotels map[string]model.Hotel) error {
	return r.store.SaveAll(hotels)
}

func (r *hotelRepoJSON) Update(fn func(hotels map[string]model.Hotel) error) error {
	return r.store.Update(fn)
}
