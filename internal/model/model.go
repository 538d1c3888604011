package model

import (
	"encoding/json"
	"fmt"
)

type Hotel struct {
	ID             string   `json:"hotel_id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	Rating         float64  `json:"rating"`
	TotalRooms     int      `json:"total_rooms"`
	AvailableRooms int      `json:"available_rooms"`
	Reservations   []string `json:"reservations"`
}

// UnmarshalJSON rejects records missing a required field and fills in
// defaults for the optional ones, so snapshots written before a field
// existed still load.
func (h *Hotel) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             *string  `json:"hotel_id"`
		Name           *string  `json:"name"`
		Location       *string  `json:"location"`
		Rating         *float64 `json:"rating"`
		TotalRooms     *int     `json:"total_rooms"`
		AvailableRooms *int     `json:"available_rooms"`
		Reservations   []string `json:"reservations"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ID == nil:
		return errMissing("hotel_id")
	case raw.Name == nil:
		return errMissing("name")
	case raw.Location == nil:
		return errMissing("location")
	case raw.Rating == nil:
		return errMissing("rating")
	case raw.TotalRooms == nil:
		return errMissing("total_rooms")
	}
	h.ID = *raw.ID
	h.Name = *raw.Name
	h.Location = *raw.Location
	h.Rating = *raw.Rating
	h.TotalRooms = *raw.TotalRooms
	h.AvailableRooms = *raw.TotalRooms
	if raw.AvailableRooms != nil {
		h.AvailableRooms = *raw.AvailableRooms
	}
	h.Reservations = raw.Reservations
	if h.Reservations == nil {
		h.Reservations = []string{}
	}
	return nil
}

type Customer struct {
	ID    string `json:"customer_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c *Customer) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    *string `json:"customer_id"`
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ID == nil:
		return errMissing("customer_id")
	case raw.Name == nil:
		return errMissing("name")
	case raw.Email == nil:
		return errMissing("email")
	case raw.Phone == nil:
		return errMissing("phone")
	}
	c.ID = *raw.ID
	c.Name = *raw.Name
	c.Email = *raw.Email
	c.Phone = *raw.Phone
	return nil
}

type Reservation struct {
	ID         string            `json:"reservation_id"`
	CustomerID string            `json:"customer_id"`
	HotelID    string            `json:"hotel_id"`
	CheckIn    string            `json:"check_in"`
	CheckOut   string            `json:"check_out"`
	Status     ReservationStatus `json:"status"`
}

type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

func (r *Reservation) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         *string            `json:"reservation_id"`
		CustomerID *string            `json:"customer_id"`
		HotelID    *string            `json:"hotel_id"`
		CheckIn    *string            `json:"check_in"`
		CheckOut   *string            `json:"check_out"`
		Status     *ReservationStatus `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.ID == nil:
		return errMissing("reservation_id")
	case raw.CustomerID == nil:
		return errMissing("customer_id")
	case raw.HotelID == nil:
		return errMissing("hotel_id")
	case raw.CheckIn == nil:
		return errMissing("check_in")
	case raw.CheckOut == nil:
		return errMissing("check_out")
	}
	r.ID = *raw.ID
	r.CustomerID = *raw.CustomerID
	r.HotelID = *raw.HotelID
	r.CheckIn = *raw.CheckIn
	r.CheckOut = *raw.CheckOut
	r.Status = StatusActive
	if raw.Status != nil {
		r.Status = *raw.Status
	}
	return nil
}

func errMissing(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
