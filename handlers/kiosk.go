// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/balance-game/metrics"
	"github.com/danielhkuo/balance-game/middleware"
	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/stats"
	"github.com/danielhkuo/balance-game/survey"
)

// KioskHandler runs one respondent at a time against the shared store.
type KioskHandler struct {
	store     *stats.Store
	questions []models.Question

	mu        sync.Mutex
	session   *survey.Session
	sessionID string
}

func NewKioskHandler(store *stats.Store, questions []models.Question) *KioskHandler {
	return &KioskHandler{store: store, questions: questions}
}

// StartSession handles POST /session
// Any unfinished session is abandoned and contributes nothing.
func (h *KioskHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		s, err := survey.New(h.questions)
		if err != nil {
			slog.Error("failed to create session", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
			return
		}
		h.session = s
	} else {
		slog.Info("session abandoned", "session_id", h.sessionID, "state", h.session.State().String())
		h.session.StartNewSession()
	}
	h.sessionID = uuid.NewString()
	metrics.SessionsStarted.Inc()

	slog.Info("session started", "session_id", h.sessionID)

	middleware.JSONResponse(w, http.StatusCreated, h.prompt())
}

// GetSession handles GET /session
func (h *KioskHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active session")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, h.prompt())
}

// SubmitChoice handles POST /session/choice
func (h *KioskHandler) SubmitChoice(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	h.apply(w, r, func(s *survey.Session) error {
		return s.SubmitChoice(req.Choice)
	})
}

// SubmitGrade handles POST /session/grade
func (h *KioskHandler) SubmitGrade(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitGradeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "grade must be one of FRESHMAN, SOPHOMORE, JUNIOR, SENIOR")
		return
	}
	h.apply(w, r, func(s *survey.Session) error {
		return s.SubmitGrade(req.Grade)
	})
}

// SubmitGender handles POST /session/gender
func (h *KioskHandler) SubmitGender(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitGenderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "gender must be one of MALE, FEMALE")
		return
	}
	h.apply(w, r, func(s *survey.Session) error {
		return s.SubmitGender(req.Gender)
	})
}

// Submit handles POST /session/submit
// Folds the finished record into the store and discards the session, so a
// record can never be ingested twice.
func (h *KioskHandler) Submit(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.checkSession(w, r) {
		return
	}

	record, err := h.session.Finalize()
	if err != nil {
		h.writeSessionError(w, err)
		return
	}

	if err := h.store.Ingest(record); err != nil {
		// A complete session always carries N answers
		metrics.ObserveError(err)
		slog.Error("failed to ingest record", "error", err, "session_id", h.sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record answers")
		return
	}
	metrics.ObserveIngest(record)

	recordID := h.sessionID
	h.session = nil
	h.sessionID = ""

	slog.Info("respondent ingested",
		"record_id", recordID,
		"grade", record.Grade.String(),
		"gender", record.Gender.String(),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitSessionResponse{
		RecordID: recordID,
		Report:   h.store.Report(),
	})
}

// GetQuestions handles GET /questions
func (h *KioskHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Questions: h.questions,
	})
}

// apply runs one mutating step against the active session.
func (h *KioskHandler) apply(w http.ResponseWriter, r *http.Request, step func(*survey.Session) error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.checkSession(w, r) {
		return
	}
	if err := step(h.session); err != nil {
		h.writeSessionError(w, err)
		return
	}

	slog.Debug("session advanced", "session_id", h.sessionID, "state", h.session.State().String(), "index", h.session.Index())
	middleware.JSONResponse(w, http.StatusOK, h.prompt())
}

// checkSession verifies there is an active session and the caller holds its
// id. Callers must hold h.mu.
func (h *KioskHandler) checkSession(w http.ResponseWriter, r *http.Request) bool {
	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No active session")
		return false
	}

	id := r.Header.Get(middleware.SessionHeader)
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, middleware.SessionHeader+" header required")
		return false
	}
	if id != h.sessionID {
		middleware.ErrorResponse(w, http.StatusConflict, "Session has been replaced")
		return false
	}
	return true
}

func (h *KioskHandler) writeSessionError(w http.ResponseWriter, err error) {
	metrics.ObserveError(err)

	switch {
	case errors.Is(err, survey.ErrInvalidStateTransition):
		slog.Warn("rejected session call", "error", err, "session_id", h.sessionID)
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, survey.ErrInvalidValue):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("session error", "error", err, "session_id", h.sessionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Session error")
	}
}

// prompt converts the current prompt. Callers must hold h.mu.
func (h *KioskHandler) prompt() models.PromptResponse {
	p := h.session.CurrentPrompt()
	resp := models.PromptResponse{
		SessionID: h.sessionID,
		Kind:      string(p.Kind),
		Index:     p.Index,
		Total:     p.Total,
	}

	switch p.Kind {
	case survey.PromptQuestion:
		q := p.Question
		resp.Question = &q
	case survey.PromptGrade:
		for _, g := range models.Grades {
			resp.Options = append(resp.Options, g.String())
		}
	case survey.PromptGender:
		for _, g := range models.Genders {
			resp.Options = append(resp.Options, g.String())
		}
	}
	return resp
}
