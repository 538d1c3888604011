package domain

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/avelkner/innkeeper/internal/model"
	"github.com/avelkner/innkeeper/internal/repository"
	"github.com/avelkner/innkeeper/internal/service"
)

type HotelService interface {
	CreateHotel(id, name, location string, rating float64, totalRooms int) (*model.Hotel, error)
	DeleteHotel(id string) error
	GetHotelByID(id string) (*model.Hotel, error)
	GetAllHotels() ([]model.Hotel, error)
	ModifyHotel(id string, fields map[string]any) error
	ReserveRoom(hotelID, reservationID string) error
	CancelReservation(hotelID, reservationID string) error
}

type hotelService struct {
	repo   repository.HotelRepo
	logger *zap.Logger
}

var _ HotelService = (*hotelService)(nil)

func NewHotelService(hotelRepo repository.HotelRepo, logger *zap.Logger) *hotelService {
	return &hotelService{
		repo:   hotelRepo,
		logger: logger,
	}
}

func (s *hotelService) CreateHotel(id, name, location string, rating float64, totalRooms int) (*model.Hotel, error) {
	if totalRooms < 0 {
		return nil, fmt.Errorf("total rooms must not be negative: %w", service.ErrValidation)
	}
	hotel := model.Hotel{
		ID:             id,
		Name:           name,
		Location:       location,
		Rating:         rating,
		TotalRooms:     totalRooms,
		AvailableRooms: totalRooms,
		Reservations:   []string{},
	}
	err := s.repo.Update(func(hotels map[string]model.Hotel) error {
		if _, ok := hotels[id]; ok {
			return fmt.Errorf("hotel %q: %w", id, service.ErrAlreadyExists)
		}
		hotels[id] = hotel
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// DeleteHotel removes the hotel record. Reservations that still
// reference it are left in place.
func (s *hotelService) DeleteHotel(id string) error {
	return s.repo.Update(func(hotels map[string]model.Hotel) error {
		if _, ok := hotels[id]; !ok {
			return fmt.Errorf("hotel %q: %w", id, service.ErrNotFound)
		}
		delete(hotels, id)
		return nil
	})
}

func (s *hotelService) GetHotelByID(id string) (*model.Hotel, error) {
	hotels := s.repo.LoadAll()
	hotel, ok := hotels[id]
	if !ok {
		return nil, fmt.Errorf("hotel %q: %w", id, service.ErrNotFound)
	}
	return &hotel, nil
}

func (s *hotelService) GetAllHotels() ([]model.Hotel, error) {
	hotels := s.repo.LoadAll()
	list := make([]model.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		list = append(list, hotel)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ModifyHotel applies the recognized fields and warns about the rest.
// available_rooms and reservations are owned by ReserveRoom and
// CancelReservation and cannot be set here.
func (s *hotelService) ModifyHotel(id string, fields map[string]any) error {
	return s.repo.Update(func(hotels map[string]model.Hotel) error {
		hotel, ok := hotels[id]
		if !ok {
			return fmt.Errorf("hotel %q: %w", id, service.ErrNotFound)
		}
		for name, value := range fields {
			switch name {
			case "name":
				hotel.Name = toString(value)
			case "location":
				hotel.Location = toString(value)
			case "rating":
				rating, err := toFloat(value)
				if err != nil {
					return fmt.Errorf("rating: %w", service.ErrValidation)
				}
				hotel.Rating = rating
			case "total_rooms":
				rooms, err := toInt(value)
				if err != nil {
					return fmt.Errorf("total_rooms: %w", service.ErrValidation)
				}
				hotel.TotalRooms = rooms
			default:
				s.logger.Warn("ignoring unknown hotel field", zap.String("field", name))
			}
		}
		hotels[id] = hotel
		return nil
	})
}

func (s *hotelService) ReserveRoom(hotelID, reservationID string) error {
	return s.repo.Update(func(hotels map[string]model.Hotel) error {
		hotel, ok := hotels[hotelID]
		if !ok {
			return fmt.Errorf("hotel %q: %w", hotelID, service.ErrNotFound)
		}
		if hotel.AvailableRooms <= 0 {
			return fmt.Errorf("hotel %q: %w", hotelID, service.ErrNoRoomsAvailable)
		}
		hotel.AvailableRooms--
		// duplicates are possible here; uniqueness is enforced where
		// reservations are created
		hotel.Reservations = append(hotel.Reservations, reservationID)
		hotels[hotelID] = hotel
		return nil
	})
}

func (s *hotelService) CancelReservation(hotelID, reservationID string) error {
	return s.repo.Update(func(hotels map[string]model.Hotel) error {
		hotel, ok := hotels[hotelID]
		if !ok {
			return fmt.Errorf("hotel %q: %w", hotelID, service.ErrNotFound)
		}
		idx := slices.Index(hotel.Reservations, reservationID)
		if idx < 0 {
			return fmt.Errorf("reservation %q not held at hotel %q: %w",
				reservationID, hotelID, service.ErrNotFound)
		}
		hotel.Reservations = append(hotel.Reservations[:idx], hotel.Reservations[idx+1:]...)
		// never above total_rooms, even when the snapshot drifted past it
		hotel.AvailableRooms = min(hotel.AvailableRooms+1, hotel.TotalRooms)
		hotels[hotelID] = hotel
		return nil
	})
}

func toString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(v, 64)
	}
	return 0, fmt.Errorf("not a number: %v", value)
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("not an integer: %v", value)
		}
		return int(v), nil
	case string:
		return strconv.Atoi(v)
	}
	return 0, fmt.Errorf("not an integer: %v", value)
}
