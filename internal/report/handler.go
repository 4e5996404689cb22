package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/TheraTrack/practice-service/internal/auth"
	"github.com/TheraTrack/practice-service/internal/client"
	"github.com/TheraTrack/practice-service/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func filterFromQuery(r *http.Request) session.Filter {
	q := r.URL.Query()
	return session.Filter{
		ClientName:  q.Get("client_name"),
		GoalKeyword: q.Get("goal_keyword"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
	}
}

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Missing authentication")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sessions.csv\"")

	if err := h.service.ExportCSV(r.Context(), principal.Username, filterFromQuery(r), w); err != nil {
		// Headers are already out; the truncated body is the best we
		// can do at this point.
		fmt.Fprintf(w, "\nexport error: %v\n", err)
	}
}

func (h *Handler) ClientReportPDF(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Missing authentication")
		return
	}

	clientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_id", "Invalid client id")
		return
	}

	pdfBytes, clientName, err := h.service.ClientReportPDF(r.Context(), principal.Username, clientID)
	if err != nil {
		if errors.Is(err, client.ErrClientNotFound) {
			respondError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "report_failed", err.Error())
		return
	}

	filename := strings.ReplaceAll(clientName, " ", "_") + "_report.pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.Write(pdfBytes)
}

func (h *Handler) GoalFrequency(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Missing authentication")
		return
	}

	counts, err := h.service.GoalFrequency(r.Context(), principal.Username, filterFromQuery(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "aggregation_failed", err.Error())
		return
	}
	if counts == nil {
		counts = []GoalCount{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "Missing authentication")
		return
	}

	dashboard, err := h.service.Overview(r.Context(), principal.Username)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "dashboard_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dashboard)
}

func respondError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}
