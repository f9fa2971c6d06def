// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/balance-game/models"
)

var (
	ErrInvalidStateTransition = errors.New("invalid state transition")
	ErrInvalidValue           = errors.New("invalid value")
	ErrNoQuestions            = errors.New("question table is empty")
)

// State is the phase a session is in.
type State int

const (
	StateAsking State = iota
	StateCollectGrade
	StateCollectGender
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAsking:
		return "asking"
	case StateCollectGrade:
		return "collect_grade"
	case StateCollectGender:
		return "collect_gender"
	case StateComplete:
		return "complete"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// PromptKind tells the driver which screen to render.
type PromptKind string

const (
	PromptQuestion PromptKind = "question"
	PromptGrade    PromptKind = "grade"
	PromptGender   PromptKind = "gender"
	PromptComplete PromptKind = "complete"
)

// Prompt is what the driver should show next. Question is only meaningful
// for PromptQuestion; Index is the zero-based question index.
type Prompt struct {
	Kind     PromptKind
	Index    int
	Total    int
	Question models.Question
}

// Session walks one respondent through the question table and the two
// demographic selections. It is not safe for concurrent use.
type Session struct {
	questions []models.Question

	state   State
	answers []models.Choice
	grade   models.Grade
	gender  models.Gender
}

// New creates a session in ASKING(0) over a copy of questions.
func New(questions []models.Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		questions: append([]models.Question(nil), questions...),
	}
	s.StartNewSession()
	return s, nil
}

// StartNewSession resets to ASKING(0) from any state.
func (s *Session) StartNewSession() {
	s.state = StateAsking
	s.answers = make([]models.Choice, 0, len(s.questions))
	s.grade = 0
	s.gender = 0
}

func (s *Session) State() State {
	return s.state
}

// Index is the number of questions answered so far.
func (s *Session) Index() int {
	return len(s.answers)
}

func (s *Session) NumQuestions() int {
	return len(s.questions)
}

// Answers returns a copy of the choices recorded so far.
func (s *Session) Answers() []models.Choice {
	return append([]models.Choice(nil), s.answers...)
}

// CurrentPrompt reports what to show without changing state.
func (s *Session) CurrentPrompt() Prompt {
	p := Prompt{Index: len(s.answers), Total: len(s.questions)}
	switch s.state {
	case StateAsking:
		p.Kind = PromptQuestion
		p.Question = s.questions[p.Index]
	case StateCollectGrade:
		p.Kind = PromptGrade
	case StateCollectGender:
		p.Kind = PromptGender
	default:
		p.Kind = PromptComplete
	}
	return p
}

// SubmitChoice records the answer to the current question.
func (s *Session) SubmitChoice(c models.Choice) error {
	if s.state != StateAsking {
		return transitionError("submit choice", s.state)
	}
	if !c.Valid() {
		return fmt.Errorf("%w: choice %d", ErrInvalidValue, int(c))
	}

	s.answers = append(s.answers, c)
	if len(s.answers) == len(s.questions) {
		s.state = StateCollectGrade
	}
	return nil
}

func (s *Session) SubmitGrade(g models.Grade) error {
	if s.state != StateCollectGrade {
		return transitionError("submit grade", s.state)
	}
	if !g.Valid() {
		return fmt.Errorf("%w: grade %d", ErrInvalidValue, int(g))
	}
	s.grade = g
	s.state = StateCollectGender
	return nil
}

func (s *Session) SubmitGender(g models.Gender) error {
	if s.state != StateCollectGender {
		return transitionError("submit gender", s.state)
	}
	if !g.Valid() {
		return fmt.Errorf("%w: gender %d", ErrInvalidValue, int(g))
	}
	s.gender = g
	s.state = StateComplete
	return nil
}

// Finalize builds the respondent record. It may be called any number of
// times once the session is complete.
func (s *Session) Finalize() (models.RespondentRecord, error) {
	if s.state != StateComplete {
		return models.RespondentRecord{}, transitionError("finalize", s.state)
	}
	return models.NewRespondentRecord(s.grade, s.gender, s.answers), nil
}

func transitionError(op string, state State) error {
	return fmt.Errorf("%w: %s in state %s", ErrInvalidStateTransition, op, state)
}
