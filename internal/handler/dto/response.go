package dto

import (
	"fmt"
	"time"

	"github.com/nvrd0/SlotBooker/internal/domain"
)

type SlotResponse struct {
	ID         string `json:"id"`
	Date       string `json:"date"`
	Heure      string `json:"heure"`
	Debut      string `json:"debut"`
	Fin        string `json:"fin"`
	Disponible bool   `json:"disponible"`
}

type BulkCreateSlotsResponse struct {
	Count int            `json:"count"`
	Items []SlotResponse `json:"items"`
}

type BookingResponse struct {
	ID           string        `json:"id"`
	CreneauID    string        `json:"creneauId"`
	ClientPrenom string        `json:"clientPrenom"`
	ClientNom    string        `json:"clientNom"`
	ClientEmail  string        `json:"clientEmail"`
	Statut       string        `json:"statut"`
	CreatedAt    string        `json:"created_at"`
	Creneau      *SlotResponse `json:"creneau,omitempty"`
}

type CancelBookingResponse struct {
	Message string          `json:"message"`
	Rdv     BookingResponse `json:"rdv"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// ToSlotResponse derives the display pair (date, heure) from the slot's
// local wall-clock projection.
func ToSlotResponse(s *domain.Slot) SlotResponse {
	start := s.StartsAt.Local()
	end := s.EndsAt.Local()

	return SlotResponse{
		ID:         s.ID,
		Date:       start.Format("2006-01-02"),
		Heure:      fmt.Sprintf("%s - %s", start.Format("15:04"), end.Format("15:04")),
		Debut:      s.StartsAt.Format(time.RFC3339),
		Fin:        s.EndsAt.Format(time.RFC3339),
		Disponible: s.Available,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CreneauID:    b.SlotID,
		ClientPrenom: b.FirstName,
		ClientNom:    b.LastName,
		ClientEmail:  b.Email,
		Statut:       string(b.Status),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingWithSlotResponse(item *domain.BookingWithSlot) BookingResponse {
	resp := ToBookingResponse(&item.Booking)
	if item.Slot != nil {
		slot := ToSlotResponse(item.Slot)
		resp.Creneau = &slot
	}

	return resp
}
