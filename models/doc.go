// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, report, request, and response types.

# Enumerations

Demographics and choices are closed enums, so an unknown bucket name can
never reach the statistics table:

  - Choice: ChoiceOne (1), ChoiceTwo (2)
  - Grade: FRESHMAN, SOPHOMORE, JUNIOR, SENIOR
  - Gender: MALE, FEMALE
  - Bucket: one value of Grade ∪ Gender, six in total

Grade and Gender start at 1 so the zero value means "unset". Both marshal
to their upper-case names in JSON and YAML.

# Domain Types

  - Question: option_a, option_b
  - RespondentRecord: grade, gender, ordered choices (immutable)

# Report Types

  - Report: grand_total, buckets
  - BucketReport: bucket, dimension, total, questions
  - QuestionPercent: index, pct_one, pct_two

# Request Types

  - SubmitChoiceRequest: choice
  - SubmitGradeRequest: grade
  - SubmitGenderRequest: gender

# Response Types

  - PromptResponse: session_id, kind, index, total, question, options
  - SubmitSessionResponse: record_id, report
  - QuestionsResponse: questions
  - ErrorResponse: error, message
*/
package models
