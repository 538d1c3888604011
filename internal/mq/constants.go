package mq

// Queue names and message definitions

// lifecycle event queues
// one durable queue per reservation event kind, consumed by downstream
// systems (notifications, reporting)
const (
	ReservationCreatedQueue   = "reservation.lifecycle.created"
	ReservationCancelledQueue = "reservation.lifecycle.cancelled"
)

type ReservationCreatedMessage struct {
	ReservationID string `json:"reservation_id"`
	CustomerID    string `json:"customer_id"`
	HotelID       string `json:"hotel_id"`
	CheckIn       string `json:"check_in"`
	CheckOut      string `json:"check_out"`
}

type ReservationCancelledMessage struct {
	ReservationID string `json:"reservation_id"`
	HotelID       string `json:"hotel_id"`
}
