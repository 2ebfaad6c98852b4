// Package server is the reference glossary backend: it serves the terms file
// as JSON and stores error reports.
package server

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	msgReadTerms   = "Could not read terms data"
	msgNotJSON     = "Request must be JSON"
	msgSaveReport  = "Could not save report"
	msgReportSaved = "Report submitted successfully"
)

// Config names the files the server reads and appends to.
type Config struct {
	TermsPath   string
	ReportsPath string
}

type Server struct {
	termsPath string
	reports   *ReportLog
	logger    *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		termsPath: cfg.TermsPath,
		reports:   NewReportLog(cfg.ReportsPath),
		logger:    logger,
	}
}

// Handler returns the router with both endpoints mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusNoContent,
	}))

	r.Get("/terms", s.handleTerms)
	r.Post("/report_error", s.handleReport)
	return r
}

func (s *Server) handleTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := ReadTermsFile(s.termsPath)
	if err != nil {
		s.logger.Error("Error reading terms file", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgReadTerms})
		return
	}
	s.logger.Debug("Serving terms", "count", len(terms))
	writeJSON(w, http.StatusOK, terms)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !isJSON(r) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgNotJSON})
		return
	}
	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || fields == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": msgNotJSON})
		return
	}
	report, err := s.reports.Append(fields)
	if err != nil {
		s.logger.Error("Error writing error report", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msgSaveReport})
		return
	}
	s.logger.Info("Report stored", "id", report.ID)
	writeJSON(w, http.StatusOK, map[string]string{"message": msgReportSaved})
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
