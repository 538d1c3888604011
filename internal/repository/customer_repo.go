package repository

import (
	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/store"
)

type CustomerRepo interface {
	LoadAll() map[string]model.Customer
	SaveAll(customers map[string]model.Customer) error
	Update(fn func(customers map[string]model.Customer) error) error
}

type customerRepoJSON struct {
	store *store.Store[model.Customer]
}

var _ CustomerRepo = (*customerRepoJSON)(nil)

func NewCustomerRepoJSON(path string, logger *zap.Logger) *customerRepoJSON {
	return &customerRepoJSON{
		store: store.New[model.Customer](path, logger),
	}
}

func (r *customerRepoJSON) LoadAll() map[string]model.Customer {
	return r.store.LoadAll()
}

func (r *customerRepoJSON) SaveAll(customers map[string]model.Customer) error {
	return r.store.SaveAll(customers)
}

func (r *customerRepoJSON) Update(fn func(customers map[string]model.Customer) error) error {
	return r.store.Update(fn)
}
