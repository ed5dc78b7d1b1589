package domain

import "time"

type BookingStatus string

// Status wire values are kept from the historical contract.
const (
	BookingStatusConfirmed BookingStatus = "CONFIRME"
	BookingStatusCancelled BookingStatus = "ANNULE"
)

type Booking struct {
	ID        string        `json:"id"`
	SlotID    string        `json:"creneauId"`
	FirstName string        `json:"clientPrenom"`
	LastName  string        `json:"clientNom"`
	Email     string        `json:"clientEmail"`
	Status    BookingStatus `json:"statut"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// BookingWithSlot carries a booking together with its slot row. Slot is nil
// for bookings whose slot was deleted afterwards.
type BookingWithSlot struct {
	Booking Booking
	Slot    *Slot
}

type ClientInfo struct {
	FirstName string
	LastName  string
	Email     string
}
