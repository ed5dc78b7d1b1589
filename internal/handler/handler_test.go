package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nvrd0/SlotBooker/internal/domain"
	"github.com/nvrd0/SlotBooker/internal/handler/dto"
	hmocks "github.com/nvrd0/SlotBooker/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockSlotSvc, *hmocks.MockBookingSvc, http.Handler) {
	t.Helper()
	slotSvc := hmocks.NewMockSlotSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)

	h := NewHandler(slotSvc, bookingSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/slots", h.ListSlots)
		api.POST("/slots", h.CreateSlot)
		api.POST("/slots/bulk", h.BulkCreateSlots)
		api.PATCH("/slots/:id", h.UpdateSlot)
		api.DELETE("/slots/:id", h.DeleteSlot)
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.PATCH("/bookings/:id/cancel", h.CancelBooking)
	}

	return slotSvc, bookingSvc, r
}

func testSlot(id string) *domain.Slot {
	starts := time.Date(2025, 10, 27, 14, 0, 0, 0, time.Local)
	return &domain.Slot{
		ID:        id,
		StartsAt:  starts,
		EndsAt:    starts.Add(30 * time.Minute),
		Available: true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// --- Slots ---

func TestHandler_ListSlots_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slots := []*domain.Slot{testSlot("s1"), testSlot("s2")}
	slotSvc.EXPECT().List(mock.Anything, "").Return(slots, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2025-10-27", resp[0].Date)
	assert.Equal(t, "14:00 - 14:30", resp[0].Heure)
	assert.True(t, resp[0].Disponible)
}

func TestHandler_ListSlots_DateFilter(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().List(mock.Anything, "2025-10-27").Return([]*domain.Slot{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=2025-10-27", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListSlots_BadDateFilter(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().List(mock.Anything, "not-a-date").Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots?date=not-a-date", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slot := testSlot(uuid.New().String())
	slotSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(slot, nil)

	body, _ := json.Marshal(dto.CreateSlotRequest{
		Date:  "2025-10-27",
		Start: "14:00",
		End:   "14:30",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, slot.ID, resp.ID)
	assert.Equal(t, "2025-10-27", resp.Date)
}

func TestHandler_CreateSlot_InvalidWindow(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"date":"2025-10-27","start":"15:00","end":"14:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BulkCreateSlots_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	created := []*domain.Slot{testSlot("s1"), testSlot("s2"), testSlot("s3")}
	slotSvc.EXPECT().CreateBulk(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, input domain.BulkCreateInput) ([]*domain.Slot, error) {
			assert.Equal(t, "2025-10-27", input.Date)
			assert.Equal(t, 30, input.IntervalMinutes)
			require.Len(t, input.Ranges, 1)
			assert.Equal(t, "09:00", input.Ranges[0].Start)
			return created, nil
		})

	body, _ := json.Marshal(dto.BulkCreateSlotsRequest{
		Date:            "2025-10-27",
		Ranges:          []dto.SlotRange{{Start: "09:00", End: "10:30"}},
		IntervalMinutes: 30,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BulkCreateSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Count)
	assert.Len(t, resp.Items, 3)
}

func TestHandler_BulkCreateSlots_BadInterval(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().CreateBulk(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"date":"2025-10-27","ranges":[{"start":"09:00","end":"10:00"}],"intervalMinutes":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/slots/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slot := testSlot(slotID)
	slot.Available = false
	slotSvc.EXPECT().Update(mock.Anything, slotID, mock.Anything).Return(slot, nil)

	body := []byte(`{"disponible":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/slots/"+slotID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Disponible)
}

func TestHandler_UpdateSlot_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"disponible":false}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/slots/not-a-uuid", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSlot_BadDebut(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"debut":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/slots/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSlot_NotFound(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().Update(mock.Anything, slotID, mock.Anything).Return(nil, domain.ErrSlotNotFound)

	body := []byte(`{"disponible":true}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/slots/"+slotID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Créneau introuvable", resp.Message)
}

func TestHandler_DeleteSlot_Success(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().Delete(mock.Anything, slotID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/slots/"+slotID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Créneau supprimé"}`, w.Body.String())
}

func TestHandler_DeleteSlot_NotFound(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotID := uuid.New().String()
	slotSvc.EXPECT().Delete(mock.Anything, slotID).Return(domain.ErrSlotNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/slots/"+slotID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_CreateBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	slotID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SlotID:    slotID,
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.com",
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: time.Now(),
	}

	client := domain.ClientInfo{FirstName: "Jean", LastName: "Dupont", Email: "jean.dupont@example.com"}
	bookingSvc.EXPECT().Reserve(mock.Anything, slotID, client).Return(booking, nil)

	body, _ := json.Marshal(dto.CreateBookingRequest{
		CreneauID:    slotID,
		ClientPrenom: "Jean",
		ClientNom:    "Dupont",
		ClientEmail:  "jean.dupont@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, slotID, resp.CreneauID)
	assert.Equal(t, "CONFIRME", resp.Statut)
}

func TestHandler_CreateBooking_SlotIDAlias(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	slotID := uuid.New().String()
	booking := &domain.Booking{ID: "b1", SlotID: slotID, Status: domain.BookingStatusConfirmed}

	bookingSvc.EXPECT().Reserve(mock.Anything, slotID, mock.Anything).Return(booking, nil)

	body := []byte(`{"slotId":"` + slotID + `","clientPrenom":"Jean","clientNom":"Dupont","clientEmail":"j@d.fr"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateBooking_MissingSlotID(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingSvc.EXPECT().Reserve(mock.Anything, "", mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"clientPrenom":"Jean","clientNom":"Dupont","clientEmail":"j@d.fr"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"creneauId requis"}`, w.Body.String())
}

func TestHandler_CreateBooking_SlotNotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	slotID := uuid.New().String()
	bookingSvc.EXPECT().Reserve(mock.Anything, slotID, mock.Anything).Return(nil, domain.ErrSlotNotFound)

	body := []byte(`{"creneauId":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// The booking endpoint answers 400 for a missing slot, not 404.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Créneau introuvable"}`, w.Body.String())
}

func TestHandler_CreateBooking_SlotUnavailable(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	slotID := uuid.New().String()
	bookingSvc.EXPECT().Reserve(mock.Anything, slotID, mock.Anything).Return(nil, domain.ErrSlotUnavailable)

	body := []byte(`{"creneauId":"` + slotID + `"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Créneau non disponible"}`, w.Body.String())
}

func TestHandler_ListBookings_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	items := []*domain.BookingWithSlot{
		{
			Booking: domain.Booking{ID: "b1", SlotID: "s1", Status: domain.BookingStatusConfirmed, CreatedAt: time.Now()},
			Slot:    testSlot("s1"),
		},
		{
			Booking: domain.Booking{ID: "b2", SlotID: "gone", Status: domain.BookingStatusCancelled, CreatedAt: time.Now()},
			Slot:    nil,
		},
	}
	bookingSvc.EXPECT().List(mock.Anything).Return(items, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.NotNil(t, resp[0].Creneau)
	assert.Equal(t, "s1", resp[0].Creneau.ID)
	assert.Nil(t, resp[1].Creneau)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{
		ID:        bookingID,
		SlotID:    "s1",
		Status:    domain.BookingStatusCancelled,
		CreatedAt: time.Now(),
	}

	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(booking, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CancelBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Rendez-vous annulé", resp.Message)
	assert.Equal(t, bookingID, resp.Rdv.ID)
	assert.Equal(t, "ANNULE", resp.Rdv.Statut)
}

func TestHandler_CancelBooking_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/not-a-uuid/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelBooking_NotFound(t *testing.T) {
	_, bookingSvc, r := setupRouter(t)

	bookingID := uuid.New().String()
	bookingSvc.EXPECT().Cancel(mock.Anything, bookingID).Return(nil, domain.ErrBookingNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Rendez-vous introuvable"}`, w.Body.String())
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	slotSvc, _, r := setupRouter(t)

	slotSvc.EXPECT().List(mock.Anything, "").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/slots", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Erreur serveur"}`, w.Body.String())
}
