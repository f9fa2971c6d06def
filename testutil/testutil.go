// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/balance-game/models"
	"github.com/danielhkuo/balance-game/questions"
	"github.com/danielhkuo/balance-game/stats"
)

// NewTestStore returns an empty store sized for the built-in question table
func NewTestStore(t *testing.T) (*stats.Store, []models.Question) {
	t.Helper()

	qs := questions.Default()
	return stats.NewStore(len(qs)), qs
}

// Record builds a respondent record without any length check
func Record(grade models.Grade, gender models.Gender, choices ...models.Choice) models.RespondentRecord {
	return models.NewRespondentRecord(grade, gender, choices)
}

// Repeat returns n copies of c
func Repeat(c models.Choice, n int) []models.Choice {
	out := make([]models.Choice, n)
	for i := range out {
		out[i] = c
	}
	return out
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
