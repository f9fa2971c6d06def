// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"fmt"
	"strings"
)

// Choice is a respondent's pick for one question.
type Choice int

const (
	ChoiceOne Choice = 1
	ChoiceTwo Choice = 2
)

// Valid reports whether c is ONE or TWO.
func (c Choice) Valid() bool {
	return c == ChoiceOne || c == ChoiceTwo
}

func (c Choice) String() string {
	switch c {
	case ChoiceOne:
		return "ONE"
	case ChoiceTwo:
		return "TWO"
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Grade is the school-year dimension. The zero value means unset.
type Grade int

const (
	GradeFreshman Grade = iota + 1
	GradeSophomore
	GradeJunior
	GradeSenior
)

// Grades lists every grade in report order.
var Grades = []Grade{GradeFreshman, GradeSophomore, GradeJunior, GradeSenior}

var gradeNames = map[Grade]string{
	GradeFreshman:  "FRESHMAN",
	GradeSophomore: "SOPHOMORE",
	GradeJunior:    "JUNIOR",
	GradeSenior:    "SENIOR",
}

func (g Grade) Valid() bool {
	_, ok := gradeNames[g]
	return ok
}

func (g Grade) String() string {
	if name, ok := gradeNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Grade(%d)", int(g))
}

// ParseGrade accepts a grade name in any letter case.
func ParseGrade(s string) (Grade, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for g, n := range gradeNames {
		if n == name {
			return g, nil
		}
	}
	return 0, fmt.Errorf("unknown grade %q", s)
}

func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid grade %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(text []byte) error {
	parsed, err := ParseGrade(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Gender is the second demographic dimension. The zero value means unset.
type Gender int

const (
	GenderMale Gender = iota + 1
	GenderFemale
)

// Genders lists every gender in report order.
var Genders = []Gender{GenderMale, GenderFemale}

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "MALE"
	case GenderFemale:
		return "FEMALE"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender accepts a gender name in any letter case.
func ParseGender(s string) (Gender, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MALE":
		return GenderMale, nil
	case "FEMALE":
		return GenderFemale, nil
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

func (g Gender) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid gender %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	parsed, err := ParseGender(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Dimension names
const (
	DimensionGrade  = "grade"
	DimensionGender = "gender"
)

// Bucket is one value of either demographic dimension, used as an
// aggregation key. Buckets are numbered 0..NumBuckets-1 in report order.
type Bucket int

const (
	BucketFreshman Bucket = iota
	BucketSophomore
	BucketJunior
	BucketSenior
	BucketMale
	BucketFemale

	NumBuckets = 6
)

// Buckets lists all buckets in report order: grades first, then genders.
var Buckets = []Bucket{
	BucketFreshman, BucketSophomore, BucketJunior, BucketSenior,
	BucketMale, BucketFemale,
}

// GradeBucket maps a valid grade to its bucket.
func GradeBucket(g Grade) Bucket {
	return Bucket(g - GradeFreshman)
}

// GenderBucket maps a valid gender to its bucket.
func GenderBucket(g Gender) Bucket {
	return BucketMale + Bucket(g-GenderMale)
}

// Dimension returns "grade" or "gender".
func (b Bucket) Dimension() string {
	if b >= BucketMale {
		return DimensionGender
	}
	return DimensionGrade
}

func (b Bucket) String() string {
	if b < 0 || b >= NumBuckets {
		return fmt.Sprintf("Bucket(%d)", int(b))
	}
	if b >= BucketMale {
		return Genders[b-BucketMale].String()
	}
	return Grades[b].String()
}
