package domain

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/repository"
	"github.com/avelkner/innkeeper/internal/service"
)

type CustomerService interface {
	CreateCustomer(id, name, email, phone string) (*model.Customer, error)
	DeleteCustomer(id string) error
	GetCustomerByID(id string) (*model.Customer, error)
	GetAllCustomers() ([]model.Customer, error)
	ModifyCustomer(id string, fields map[string]any) error
}

type customerService struct {
	repo   repository.CustomerRepo
	logger *zap.Logger
}

var _ CustomerService = (*customerService)(nil)

func NewCustomerService(customerRepo repository.CustomerRepo, logger *zap.Logger) *customerService {
	return &customerService{
		repo:   customerRepo,
		logger: logger,
	}
}

func (s *customerService) CreateCustomer(id, name, email, phone string) (*model.Customer, error) {
	customer := model.Customer{
		ID:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}
	err := s.repo.Update(func(customers map[string]model.Customer) error {
		if _, ok := customers[id]; ok {
			return fmt.Errorf("customer %q: %w", id, service.ErrAlreadyExists)
		}
		customers[id] = customer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) DeleteCustomer(id string) error {
	return s.repo.Update(func(customers map[string]model.Customer) error {
		if _, ok := customers[id]; !ok {
			return fmt.Errorf("customer %q: %w", id, service.ErrNotFound)
		}
		delete(customers, id)
		return nil
	})
}

func (s *customerService) GetCustomerByID(id string) (*model.Customer, error) {
	customers := s.repo.LoadAll()
	customer, ok := customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %q: %w", id, service.ErrNotFound)
	}
	return &customer, nil
}

func (s *customerService) GetAllCustomers() ([]model.Customer, error) {
	customers := s.repo.LoadAll()
	list := make([]model.Customer, 0, len(customers))
	for _, customer := range customers {
		list = append(list, customer)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *customerService) ModifyCustomer(id string, fields map[string]any) error {
	return s.repo.Update(func(customers map[string]model.Customer) error {
		customer, ok := customers[id]
		if !ok {
			return fmt.Errorf("customer %q: %w", id, service.ErrNotFound)
		}
		for name, value := range fields {
			switch name {
			case "name":
				customer.Name = toString(value)
			case "email":
				customer.Email = toString(value)
			case "phone":
				customer.Phone = toString(value)
			default:
				s.logger.Warn("ignoring unknown customer field", zap.String("field", name))
			}
		}
		customers[id] = customer
		return nil
	})
}
