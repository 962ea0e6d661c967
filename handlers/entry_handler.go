package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"weekupAPI/internal/entry"
	"weekupAPI/internal/profile"
	"weekupAPI/internal/week"
	"weekupAPI/services"
)

type EntryHandler struct {
	entryService   *services.EntryService
	profileService *services.ProfileService
}

func NewEntryHandler(entryService *services.EntryService, profileService *services.ProfileService) *EntryHandler {
	return &EntryHandler{
		entryService:   entryService,
		profileService: profileService,
	}
}

func (h *EntryHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req entry.CreateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == "" || req.Date == "" || req.Text == "" {
		respondWithError(w, http.StatusBadRequest, "user_id, date and text are required")
		return
	}
	if _, err := time.Parse(week.DateLayout, req.Date); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD.")
		return
	}

	created, err := h.entryService.CreateEntry(ctx, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEntry) {
			respondWithError(w, http.StatusBadRequest, "Entry for this date already exists.")
			return
		}
		log.Printf("CreateEntry Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, created)
}

func (h *EntryHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		respondWithError(w, http.StatusBadRequest, "Query parameter 'user_id' is required")
		return
	}
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	entries, err := h.entryService.ListEntries(ctx, userID, startDate, endDate)
	if err != nil {
		log.Printf("ListEntries Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, entries)
}

func (h *EntryHandler) UpdateEntry(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req entry.UpdateEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.EntryID == "" {
		respondWithError(w, http.StatusBadRequest, "entry_id is required")
		return
	}

	updated, err := h.entryService.UpdateEntryText(ctx, req.EntryID, req.Text)
	if err != nil {
		log.Printf("UpdateEntry Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, updated)
}

func (h *EntryHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["user_id"]

	settings, err := h.profileService.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("GetSettings Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, settings)
}

func (h *EntryHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["user_id"]

	var req profile.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Empty() {
		respondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	settings, err := h.profileService.UpdateSettings(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			respondWithError(w, http.StatusNotFound, "User not found or no changes made")
			return
		}
		log.Printf("UpdateSettings Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, settings)
}

// GetWeeklyEntries aggregates one Monday-to-Friday week into the fixed
// five-day view.
func (h *EntryHandler) GetWeeklyEntries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["user_id"]

	weekStart, err := week.ParseMonday(r.URL.Query().Get("week_start"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	view, err := h.entryService.WeeklyEntries(ctx, userID, weekStart)
	if err != nil {
		log.Printf("GetWeeklyEntries Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
