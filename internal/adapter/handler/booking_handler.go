// Package handler is the thin HTTP adapter over the booking core. It
// decodes JSON, calls the service and maps typed errors to statuses;
// rendering, sessions and form validation live outside this repo.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hallgrim/bokat/internal/core/domain"
	"github.com/hallgrim/bokat/internal/core/ports"
	"github.com/hallgrim/bokat/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
}

func NewBookingHandler(svc *services.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /bookings", h.CreateBooking)
	mux.HandleFunc("GET /bookings", h.ListBookings)
	mux.HandleFunc("PATCH /bookings/{id}", h.UpdateBooking)
	mux.HandleFunc("PUT /bookings/{id}/active", h.SetActive)
	mux.HandleFunc("POST /bookings/{id}/occasions", h.AddOccasion)
	mux.HandleFunc("GET /bookings/{id}/occasions", h.ListOccasions)
	mux.HandleFunc("POST /bookings/{id}/respondents", h.RegisterRespondent)
	mux.HandleFunc("GET /bookings/{id}/respondents", h.ListRespondentNames)
	mux.HandleFunc("POST /bookings/{id}/answers", h.AddAnswer)
	mux.HandleFunc("PUT /bookings/{id}/answers", h.UpdateAnswer)
	mux.HandleFunc("POST /bookings/{id}/comments", h.AddComment)
	mux.HandleFunc("GET /bookings/{id}/table", h.GetTable)
}

type createBookingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	id, err := h.svc.CreateBooking(r.Context(), req.Title, req.Description, req.Location)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"booking_id": id})
}

type updateBookingRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	var req updateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	err := h.svc.UpdateBookingFields(r.Context(), r.PathValue("id"), ports.BookingPatch{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h *BookingHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.svc.SetActive(r.Context(), r.PathValue("id"), req.Active); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addOccasionRequest struct {
	Date      string `json:"date"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

func (h *BookingHandler) AddOccasion(w http.ResponseWriter, r *http.Request) {
	var req addOccasionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	seq, err := h.svc.AddOccasion(r.Context(), r.PathValue("id"), req.Date, req.TimeStart, req.TimeEnd)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"occasion": seq})
}

func (h *BookingHandler) ListOccasions(w http.ResponseWriter, r *http.Request) {
	occasions, err := h.svc.ListOccasions(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, occasions)
}

type respondentRequest struct {
	Name string `json:"name"`
}

func (h *BookingHandler) RegisterRespondent(w http.ResponseWriter, r *http.Request) {
	var req respondentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.svc.RegisterRespondent(r.Context(), r.PathValue("id"), req.Name); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *BookingHandler) ListRespondentNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.svc.ListRespondentNames(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, names)
}

type answerRequest struct {
	Occasion int    `json:"occasion"`
	Name     string `json:"name"`
	Answer   int    `json:"answer"`
}

func (h *BookingHandler) AddAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	err := h.svc.AddAnswer(r.Context(), r.PathValue("id"), req.Occasion, req.Name, domain.AnswerValue(req.Answer))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingHandler) UpdateAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	err := h.svc.UpdateAnswer(r.Context(), r.PathValue("id"), req.Occasion, req.Name, domain.AnswerValue(req.Answer))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type commentRequest struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
}

func (h *BookingHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.svc.AddComment(r.Context(), r.PathValue("id"), req.Name, req.Comment); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *BookingHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.svc.GetTable(r.Context(), r.PathValue("id"), r.URL.Query().Get("edit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, table)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	bookings, err := h.svc.ListBookings(r.Context(), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

func writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateRespondent):
		writeError(w, http.StatusConflict, err.Error())
	case errors.As(err, &verr):
		writeError(w, http.StatusUnprocessableEntity, verr.Error())
	default:
		slog.Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
