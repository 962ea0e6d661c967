package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"weekupAPI/internal/report"
	"weekupAPI/middleware"
	"weekupAPI/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GenerateSummary turns one week of entries into a summary paragraph and
// stores the report. A failed store write does not fail the request.
func (h *ReportHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	var req report.SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.reportService.GenerateWeekly(ctx, &req)
	if err != nil {
		log.Printf("GenerateSummary Handler: %v", err)
		middleware.RecordSummaryGeneration("error")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}
	middleware.RecordSummaryGeneration("success")

	respondWithJSON(w, http.StatusOK, report.SummaryResponse{Summary: summary})
}

func (h *ReportHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := mux.Vars(r)["user_id"]

	reports, err := h.reportService.ListReports(ctx, userID)
	if err != nil {
		log.Printf("ListReports Handler: %v", err)
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, reports)
}
