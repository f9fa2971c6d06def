// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package survey drives one respondent through the balance game.

# States

A session moves strictly forward:

	ASKING(0) → ASKING(1) → … → ASKING(N-1) → COLLECT_GRADE → COLLECT_GENDER → COMPLETE

Each Submit* call is valid in exactly one state. Calling it anywhere else
returns an error wrapping ErrInvalidStateTransition and leaves the session
untouched.

# Usage

	s, err := survey.New(questions.Default())
	for s.CurrentPrompt().Kind == survey.PromptQuestion {
		s.SubmitChoice(models.ChoiceOne)
	}
	s.SubmitGrade(models.GradeJunior)
	s.SubmitGender(models.GenderFemale)
	record, err := s.Finalize()

StartNewSession resets to ASKING(0) from any state, discarding whatever the
previous respondent entered.
*/
package survey
