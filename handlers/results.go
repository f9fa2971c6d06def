// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/balance-game/middleware"
	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/stats"
)

type ResultsHandler struct {
	store *stats.Store
}

func NewResultsHandler(store *stats.Store) *ResultsHandler {
	return &ResultsHandler{store: store}
}

// GetReport handles GET /report
// Returns cumulative percentages for every bucket. Buckets nobody has been
// credited to carry no question lines.
func (h *ResultsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Verify(); err != nil {
		slog.Error("statistics invariant violated", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Statistics unavailable")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.store.Report())
}

// GetRespondentCount handles GET /report/count
// Returns only the number of respondents so far.
func (h *ResultsHandler) GetRespondentCount(w http.ResponseWriter, r *http.Request) {
	total := 0
	for _, g := range models.Grades {
		total += h.store.Total(models.GradeBucket(g))
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]int{
		"respondent_count": total,
	})
}
