package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bookingRepo "bandroom/database/repository/booking"
	"bandroom/models"
	"bandroom/services/booking"
	"bandroom/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingService returns canned results so the handler tests pin
// the HTTP mapping without real stores.
type stubBookingService struct {
	createErr  error
	transition error
	booking    *models.Booking
	artifact   *models.CalendarArtifact
}

func (s *stubBookingService) Create(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b := &models.Booking{ID: "bk-1", Status: models.BookingStatusPending}
	if s.booking != nil {
		b = s.booking
	}
	return b, nil
}

func (s *stubBookingService) Approve(ctx context.Context, id string) (*models.CalendarArtifact, error) {
	if s.transition != nil {
		return nil, s.transition
	}
	return s.artifact, nil
}

func (s *stubBookingService) Reject(ctx context.Context, id string) error {
	return s.transition
}

func (s *stubBookingService) Cancel(ctx context.Context, id, reason string) (*models.CalendarArtifact, error) {
	if s.transition != nil {
		return nil, s.transition
	}
	return s.artifact, nil
}

func (s *stubBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	if s.booking == nil {
		return nil, bookingRepo.ErrNotFound
	}
	return s.booking, nil
}

func (s *stubBookingService) List(ctx context.Context, f bookingRepo.Filter) ([]models.Booking, error) {
	if s.booking == nil {
		return nil, nil
	}
	return []models.Booking{*s.booking}, nil
}

var _ booking.BookingService = (*stubBookingService)(nil)

func newTestRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/admin/bookings", h.ListBookings)
	r.GET("/api/admin/bookings/:id", h.GetBooking)
	r.POST("/api/admin/bookings/:id/approve", h.ApproveBooking)
	r.POST("/api/admin/bookings/:id/reject", h.RejectBooking)
	r.POST("/api/admin/bookings/:id/cancel", h.CancelBooking)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBody() map[string]any {
	return map[string]any{
		"date":           "2026-09-10",
		"start_time":     "14:00",
		"duration_hours": 2,
		"band_name":      "The Testers",
		"email":          "band@example.com",
		"members_count":  4,
	}
}

func TestCreateBookingCreated(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", validBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, models.BookingStatusPending, got.Status)
}

func TestCreateBookingBadPayload(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	body := validBody()
	delete(body, "email")
	w := doJSON(t, r, http.MethodPost, "/api/bookings", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingValidationFailure(t *testing.T) {
	r := newTestRouter(&stubBookingService{
		createErr: scheduling.NewValidationError(scheduling.ReasonConflict, "slot taken"),
	})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", validBody())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, scheduling.ReasonConflict, resp["code"])
	assert.Equal(t, "slot taken", resp["error"])
}

func TestApproveBookingConflict(t *testing.T) {
	r := newTestRouter(&stubBookingService{
		transition: &booking.InvalidTransitionError{BookingID: "bk-1", Status: "cancelled", Op: "approve"},
	})

	w := doJSON(t, r, http.MethodPost, "/api/admin/bookings/bk-1/approve", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetBookingNotFound(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelBookingEmptyBody(t *testing.T) {
	r := newTestRouter(&stubBookingService{
		artifact: &models.CalendarArtifact{Method: models.ArtifactMethodCancel},
	})

	w := doJSON(t, r, http.MethodPost, "/api/admin/bookings/bk-1/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListBookingsEmptyIsArray(t *testing.T) {
	r := newTestRouter(&stubBookingService{})

	w := doJSON(t, r, http.MethodGet, "/api/admin/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
}
