// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/stats"
	"github.com/danielhkuo/balance-game/testutil"
)

func newTestKiosk(t *testing.T) (*KioskHandler, *stats.Store) {
	t.Helper()
	store, qs := testutil.NewTestStore(t)
	return NewKioskHandler(store, qs), store
}

// startSession calls POST /session and returns the new session id
func startSession(t *testing.T, h *KioskHandler) string {
	t.Helper()

	w := httptest.NewRecorder()
	h.StartSession(w, testutil.MakeRequest("POST", "/session", nil, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.PromptResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.SessionID == "" {
		t.Fatal("Expected a session id")
	}
	return resp.SessionID
}

func sessionHeaders(id string) map[string]string {
	return map[string]string{"X-Session-ID": id}
}

func postChoice(h *KioskHandler, id string, c models.Choice) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.SubmitChoice(w, testutil.MakeRequest("POST", "/session/choice", models.SubmitChoiceRequest{Choice: c}, sessionHeaders(id)))
	return w
}

func postGrade(h *KioskHandler, id string, g models.Grade) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.SubmitGrade(w, testutil.MakeRequest("POST", "/session/grade", models.SubmitGradeRequest{Grade: g}, sessionHeaders(id)))
	return w
}

func postGender(h *KioskHandler, id string, g models.Gender) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.SubmitGender(w, testutil.MakeRequest("POST", "/session/gender", models.SubmitGenderRequest{Gender: g}, sessionHeaders(id)))
	return w
}

func postSubmit(h *KioskHandler, id string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Submit(w, testutil.MakeRequest("POST", "/session/submit", nil, sessionHeaders(id)))
	return w
}

// runRespondent drives one full respondent and returns the submit response
func runRespondent(t *testing.T, h *KioskHandler, choices []models.Choice, g models.Grade, gd models.Gender) models.SubmitSessionResponse {
	t.Helper()

	id := startSession(t, h)
	for _, c := range choices {
		testutil.AssertStatus(t, postChoice(h, id, c), http.StatusOK)
	}
	testutil.AssertStatus(t, postGrade(h, id, g), http.StatusOK)
	testutil.AssertStatus(t, postGender(h, id, gd), http.StatusOK)

	w := postSubmit(h, id)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.SubmitSessionResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func TestStartSession(t *testing.T) {
	h, _ := newTestKiosk(t)

	w := httptest.NewRecorder()
	h.StartSession(w, testutil.MakeRequest("POST", "/session", nil, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.PromptResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Kind != "question" {
		t.Errorf("Expected kind 'question', got '%s'", resp.Kind)
	}
	if resp.Index != 0 || resp.Total != 6 {
		t.Errorf("Expected question 0 of 6, got %d of %d", resp.Index, resp.Total)
	}
	if resp.Question == nil || resp.Question.OptionA == "" {
		t.Error("Expected first question in prompt")
	}
}

func TestGetSession_NoActiveSession(t *testing.T) {
	h, _ := newTestKiosk(t)

	w := httptest.NewRecorder()
	h.GetSession(w, testutil.MakeRequest("GET", "/session", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestSessionFlow_Prompts(t *testing.T) {
	h, _ := newTestKiosk(t)
	id := startSession(t, h)

	for i := 0; i < 6; i++ {
		w := postChoice(h, id, models.ChoiceOne)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PromptResponse
		testutil.AssertJSON(t, w, &resp)
		if i < 5 {
			if resp.Kind != "question" || resp.Index != i+1 {
				t.Errorf("After answer %d expected question %d, got %s %d", i, i+1, resp.Kind, resp.Index)
			}
		} else if resp.Kind != "grade" {
			t.Errorf("Expected grade prompt after last question, got %s", resp.Kind)
		}
	}

	w := httptest.NewRecorder()
	h.GetSession(w, testutil.MakeRequest("GET", "/session", nil, nil))
	var resp models.PromptResponse
	testutil.AssertJSON(t, w, &resp)
	if strings.Join(resp.Options, ",") != "FRESHMAN,SOPHOMORE,JUNIOR,SENIOR" {
		t.Errorf("Unexpected grade options %v", resp.Options)
	}

	w = postGrade(h, id, models.GradeJunior)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != "gender" || strings.Join(resp.Options, ",") != "MALE,FEMALE" {
		t.Errorf("Expected gender prompt, got %s %v", resp.Kind, resp.Options)
	}

	w = postGender(h, id, models.GenderMale)
	testutil.AssertStatus(t, w, http.StatusOK)
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != "complete" {
		t.Errorf("Expected complete prompt, got %s", resp.Kind)
	}
}

func TestSubmit_IngestsOnceAndDiscardsSession(t *testing.T) {
	h, store := newTestKiosk(t)

	choices := []models.Choice{
		models.ChoiceOne, models.ChoiceOne, models.ChoiceTwo,
		models.ChoiceOne, models.ChoiceTwo, models.ChoiceTwo,
	}
	resp := runRespondent(t, h, choices, models.GradeFreshman, models.GenderMale)

	if resp.RecordID == "" {
		t.Error("Expected record id")
	}
	if resp.Report.GrandTotal != 1 {
		t.Errorf("Expected grand total 1, got %d", resp.Report.GrandTotal)
	}
	if store.Total(models.BucketFreshman) != 1 || store.Total(models.BucketMale) != 1 {
		t.Error("Expected freshman and male totals of 1")
	}

	freshman := resp.Report.Buckets[models.BucketFreshman]
	if freshman.Questions[0].PctOne != 100 || freshman.Questions[2].PctTwo != 100 {
		t.Errorf("Unexpected freshman percentages %+v", freshman.Questions)
	}

	// The session is gone, so the record cannot be submitted again
	w := postSubmit(h, resp.RecordID)
	testutil.AssertStatus(t, w, http.StatusNotFound)
	if store.Total(models.BucketFreshman) != 1 {
		t.Errorf("Expected record to be ingested once, total is %d", store.Total(models.BucketFreshman))
	}
}

func TestSubmit_BeforeComplete(t *testing.T) {
	h, store := newTestKiosk(t)
	id := startSession(t, h)
	postChoice(h, id, models.ChoiceOne)

	w := postSubmit(h, id)
	testutil.AssertStatus(t, w, http.StatusConflict)

	if r := store.Report(); r.GrandTotal != 0 {
		t.Errorf("Expected nothing ingested, got %d", r.GrandTotal)
	}
}

func TestInvalidTransitions(t *testing.T) {
	h, _ := newTestKiosk(t)
	id := startSession(t, h)

	// grade and gender during the question phase
	testutil.AssertStatus(t, postGrade(h, id, models.GradeSenior), http.StatusConflict)
	testutil.AssertStatus(t, postGender(h, id, models.GenderFemale), http.StatusConflict)

	for i := 0; i < 6; i++ {
		postChoice(h, id, models.ChoiceTwo)
	}

	// seventh choice after the question phase ended
	testutil.AssertStatus(t, postChoice(h, id, models.ChoiceTwo), http.StatusConflict)
	testutil.AssertStatus(t, postGender(h, id, models.GenderFemale), http.StatusConflict)
}

func TestInvalidValues(t *testing.T) {
	h, _ := newTestKiosk(t)
	id := startSession(t, h)

	testutil.AssertStatus(t, postChoice(h, id, models.Choice(3)), http.StatusBadRequest)
	testutil.AssertStatus(t, postChoice(h, id, models.Choice(0)), http.StatusBadRequest)

	for i := 0; i < 6; i++ {
		postChoice(h, id, models.ChoiceOne)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/session/grade", strings.NewReader(`{"grade":"fifth"}`))
	req.Header.Set("X-Session-ID", id)
	h.SubmitGrade(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// a lower-case name is accepted
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/session/grade", strings.NewReader(`{"grade":"sophomore"}`))
	req.Header.Set("X-Session-ID", id)
	h.SubmitGrade(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestSessionHeader(t *testing.T) {
	h, _ := newTestKiosk(t)
	old := startSession(t, h)

	// missing header
	w := httptest.NewRecorder()
	h.SubmitChoice(w, testutil.MakeRequest("POST", "/session/choice", models.SubmitChoiceRequest{Choice: models.ChoiceOne}, nil))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// a newer session replaces the old one
	current := startSession(t, h)
	if current == old {
		t.Fatal("Expected a fresh session id")
	}
	testutil.AssertStatus(t, postChoice(h, old, models.ChoiceOne), http.StatusConflict)
	testutil.AssertStatus(t, postChoice(h, current, models.ChoiceOne), http.StatusOK)
}

func TestStartSession_AbandonsUnfinished(t *testing.T) {
	h, store := newTestKiosk(t)

	id := startSession(t, h)
	for i := 0; i < 6; i++ {
		postChoice(h, id, models.ChoiceOne)
	}
	postGrade(h, id, models.GradeSenior)
	postGender(h, id, models.GenderFemale)

	// walk away without submitting
	id = startSession(t, h)

	w := httptest.NewRecorder()
	h.GetSession(w, testutil.MakeRequest("GET", "/session", nil, nil))
	var resp models.PromptResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Kind != "question" || resp.Index != 0 || resp.SessionID != id {
		t.Errorf("Expected fresh session at question 0, got %+v", resp)
	}
	if store.Total(models.BucketSenior) != 0 || store.Total(models.BucketFemale) != 0 {
		t.Error("Abandoned session must not touch the statistics")
	}
}

func TestTwoRespondents(t *testing.T) {
	h, store := newTestKiosk(t)

	runRespondent(t, h, testutil.Repeat(models.ChoiceOne, 6), models.GradeFreshman, models.GenderMale)
	resp := runRespondent(t, h, append([]models.Choice{models.ChoiceOne}, testutil.Repeat(models.ChoiceTwo, 5)...),
		models.GradeFreshman, models.GenderFemale)

	if store.Total(models.BucketFreshman) != 2 {
		t.Errorf("Expected 2 freshmen, got %d", store.Total(models.BucketFreshman))
	}
	if store.Total(models.BucketMale) != 1 || store.Total(models.BucketFemale) != 1 {
		t.Error("Expected one male and one female")
	}

	freshman := resp.Report.Buckets[models.BucketFreshman]
	if freshman.Questions[0].PctOne != 100 || freshman.Questions[0].PctTwo != 0 {
		t.Errorf("Expected question 0 at 100/0, got %+v", freshman.Questions[0])
	}
	if freshman.Questions[1].PctOne != 50 || freshman.Questions[1].PctTwo != 50 {
		t.Errorf("Expected question 1 at 50/50, got %+v", freshman.Questions[1])
	}
	if len(resp.Report.Buckets[models.BucketSophomore].Questions) != 0 {
		t.Error("Expected empty sophomore bucket to have no question lines")
	}
}

func TestConcurrentRequestsAgainstOneSession(t *testing.T) {
	h, store := newTestKiosk(t)
	id := startSession(t, h)

	// Ten racing answers; exactly six fit into the question phase
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if postChoice(h, id, models.ChoiceTwo).Code == http.StatusOK {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if accepted != 6 {
		t.Errorf("Expected 6 accepted answers, got %d", accepted)
	}

	postGrade(h, id, models.GradeJunior)
	postGender(h, id, models.GenderMale)
	testutil.AssertStatus(t, postSubmit(h, id), http.StatusCreated)

	if err := store.Verify(); err != nil {
		t.Errorf("Store invariant broken: %v", err)
	}
}

func TestGetQuestions(t *testing.T) {
	h, _ := newTestKiosk(t)

	w := httptest.NewRecorder()
	h.GetQuestions(w, testutil.MakeRequest("GET", "/questions", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.QuestionsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Questions) != 6 {
		t.Errorf("Expected 6 questions, got %d", len(resp.Questions))
	}
}
