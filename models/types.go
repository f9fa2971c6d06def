// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Domain types

// Question is one two-option item of the balance game.
type Question struct {
	OptionA string `json:"option_a" yaml:"option_a"`
	OptionB string `json:"option_b" yaml:"option_b"`
}

// RespondentRecord is the completed output of one survey session.
// It is immutable once constructed.
type RespondentRecord struct {
	Grade   Grade
	Gender  Gender
	choices []Choice
}

// NewRespondentRecord copies choices so later changes to the caller's slice
// do not leak into the record.
func NewRespondentRecord(grade Grade, gender Gender, choices []Choice) RespondentRecord {
	return RespondentRecord{
		Grade:   grade,
		Gender:  gender,
		choices: append([]Choice(nil), choices...),
	}
}

// Choices returns a copy of the ordered answers.
func (r RespondentRecord) Choices() []Choice {
	return append([]Choice(nil), r.choices...)
}

// NumChoices returns the number of answers without copying.
func (r RespondentRecord) NumChoices() int {
	return len(r.choices)
}

// ChoiceAt returns the answer to question i.
func (r RespondentRecord) ChoiceAt(i int) Choice {
	return r.choices[i]
}

// Report types

// QuestionPercent holds both option shares for one question, rounded to
// two decimals.
type QuestionPercent struct {
	Index  int     `json:"index"`
	PctOne float64 `json:"pct_one"`
	PctTwo float64 `json:"pct_two"`
}

// BucketReport is the result block for one demographic bucket.
// Questions is nil when Total is zero.
type BucketReport struct {
	Bucket    string            `json:"bucket"`
	Dimension string            `json:"dimension"`
	Total     int               `json:"total"`
	Questions []QuestionPercent `json:"questions,omitempty"`
}

type Report struct {
	GrandTotal int            `json:"grand_total"`
	Buckets    []BucketReport `json:"buckets"`
}

// Request types

type SubmitChoiceRequest struct {
	Choice Choice `json:"choice"`
}

type SubmitGradeRequest struct {
	Grade Grade `json:"grade"`
}

type SubmitGenderRequest struct {
	Gender Gender `json:"gender"`
}

// Response types

// PromptResponse describes what the kiosk should display next.
// Question is set only for kind "question".
type PromptResponse struct {
	SessionID string    `json:"session_id"`
	Kind      string    `json:"kind"`
	Index     int       `json:"index"`
	Total     int       `json:"total"`
	Question  *Question `json:"question,omitempty"`
	Options   []string  `json:"options,omitempty"`
}

type SubmitSessionResponse struct {
	RecordID string `json:"record_id"`
	Report   Report `json:"report"`
}

type QuestionsResponse struct {
	Questions []Question `json:"questions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
