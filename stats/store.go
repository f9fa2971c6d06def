// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"errors"
	"fmt"
	"sync"

	"github.com/danielhkuo/balance-game/models"
)

var (
	ErrMalformedRecord = errors.New("malformed respondent record")
	ErrCorrupted       = errors.New("statistics invariant violated")
)

// Store accumulates respondent records into per-bucket counters.
// It is safe for concurrent use.
type Store struct {
	mu           sync.Mutex
	numQuestions int

	total [models.NumBuckets]int
	// counts[bucket][question][0] is ONE, [1] is TWO
	counts [models.NumBuckets][][2]int
}

// NewStore creates an empty store for a table of numQuestions questions.
func NewStore(numQuestions int) *Store {
	s := &Store{numQuestions: numQuestions}
	for b := range s.counts {
		s.counts[b] = make([][2]int, numQuestions)
	}
	return s
}

func (s *Store) NumQuestions() int {
	return s.numQuestions
}

// Ingest credits record to its grade bucket and its gender bucket.
// A record that fails validation changes nothing.
func (s *Store) Ingest(record models.RespondentRecord) error {
	if err := s.validate(record); err != nil {
		return err
	}

	buckets := [2]models.Bucket{
		models.GradeBucket(record.Grade),
		models.GenderBucket(record.Gender),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range buckets {
		s.total[b]++
		for i := 0; i < s.numQuestions; i++ {
			s.counts[b][i][slot(record.ChoiceAt(i))]++
		}
	}
	return nil
}

func (s *Store) validate(record models.RespondentRecord) error {
	if n := record.NumChoices(); n != s.numQuestions {
		return fmt.Errorf("%w: %d choices, want %d", ErrMalformedRecord, n, s.numQuestions)
	}
	if !record.Grade.Valid() {
		return fmt.Errorf("%w: grade %d", ErrMalformedRecord, int(record.Grade))
	}
	if !record.Gender.Valid() {
		return fmt.Errorf("%w: gender %d", ErrMalformedRecord, int(record.Gender))
	}
	for i := 0; i < record.NumChoices(); i++ {
		if c := record.ChoiceAt(i); !c.Valid() {
			return fmt.Errorf("%w: question %d has choice %d", ErrMalformedRecord, i, int(c))
		}
	}
	return nil
}

// Total returns how many respondents were credited to b.
func (s *Store) Total(b models.Bucket) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total[b]
}

// Count returns how many respondents in b picked c for question i.
func (s *Store) Count(b models.Bucket, i int, c models.Choice) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[b][i][slot(c)]
}

// Verify checks that every question tally in every bucket adds up to the
// bucket total.
func (s *Store) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range models.Buckets {
		for i, c := range s.counts[b] {
			if c[0]+c[1] != s.total[b] {
				return fmt.Errorf("%w: bucket %s question %d has %d answers, total %d",
					ErrCorrupted, b, i, c[0]+c[1], s.total[b])
			}
		}
	}
	return nil
}

// Report computes percentages for every bucket. Buckets without
// respondents carry no question lines.
func (s *Store) Report() models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := models.Report{
		Buckets: make([]models.BucketReport, 0, models.NumBuckets),
	}
	for _, g := range models.Grades {
		report.GrandTotal += s.total[models.GradeBucket(g)]
	}

	for _, b := range models.Buckets {
		br := models.BucketReport{
			Bucket:    b.String(),
			Dimension: b.Dimension(),
			Total:     s.total[b],
		}
		if br.Total > 0 {
			br.Questions = make([]models.QuestionPercent, s.numQuestions)
			for i, c := range s.counts[b] {
				br.Questions[i] = models.QuestionPercent{
					Index:  i,
					PctOne: Percent(c[0], br.Total),
					PctTwo: Percent(c[1], br.Total),
				}
			}
		}
		report.Buckets = append(report.Buckets, br)
	}
	return report
}

// Percent returns 100*part/total rounded half-up to two decimals.
// Rounding is done on integers so 12.345 never becomes 12.34.
func Percent(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	// hundredths of a percent: round(10000*part/total)
	hundredths := (20000*part + total) / (2 * total)
	return float64(hundredths) / 100
}

func slot(c models.Choice) int {
	if c == models.ChoiceTwo {
		return 1
	}
	return 0
}
