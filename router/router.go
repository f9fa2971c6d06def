// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/balance-game/handlers"
	"github.com/danielhkuo/balance-game/metrics"
	"github.com/danielhkuo/balance-game/middleware"
	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/stats"
)

func NewRouter(store *stats.Store, questions []models.Question) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	kioskHandler := handlers.NewKioskHandler(store, questions)
	resultsHandler := handlers.NewResultsHandler(store)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Respondent flow
	mux.HandleFunc("POST /session", middleware.WithLogging(kioskHandler.StartSession))
	mux.HandleFunc("GET /session", middleware.WithLogging(kioskHandler.GetSession))
	mux.HandleFunc("POST /session/choice", middleware.WithLogging(kioskHandler.SubmitChoice))
	mux.HandleFunc("POST /session/grade", middleware.WithLogging(kioskHandler.SubmitGrade))
	mux.HandleFunc("POST /session/gender", middleware.WithLogging(kioskHandler.SubmitGender))
	mux.HandleFunc("POST /session/submit", middleware.WithLogging(kioskHandler.Submit))
	mux.HandleFunc("GET /questions", middleware.WithLogging(kioskHandler.GetQuestions))

	// Results
	mux.HandleFunc("GET /report", middleware.WithLogging(resultsHandler.GetReport))
	mux.HandleFunc("GET /report/count", middleware.WithLogging(resultsHandler.GetRespondentCount))

	// Prometheus
	mux.Handle("GET /metrics", metrics.Handler())

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("balance-game API v1"))
	})

	return mux
}
