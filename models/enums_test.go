// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoice_Valid(t *testing.T) {
	assert.True(t, ChoiceOne.Valid())
	assert.True(t, ChoiceTwo.Valid())
	assert.False(t, Choice(0).Valid())
	assert.False(t, Choice(3).Valid())
	assert.Equal(t, "Choice(7)", Choice(7).String())
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in   string
		want Grade
	}{
		{"FRESHMAN", GradeFreshman},
		{"sophomore", GradeSophomore},
		{" Junior ", GradeJunior},
		{"senior", GradeSenior},
	}
	for _, tt := range tests {
		got, err := ParseGrade(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseGrade("FIFTH")
	assert.Error(t, err)
	assert.False(t, Grade(0).Valid())
}

func TestParseGender(t *testing.T) {
	g, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, GenderFemale, g)

	_, err = ParseGender("")
	assert.Error(t, err)
}

func TestGradeJSON(t *testing.T) {
	var req SubmitGradeRequest
	require.NoError(t, json.Unmarshal([]byte(`{"grade":"junior"}`), &req))
	assert.Equal(t, GradeJunior, req.Grade)

	assert.Error(t, json.Unmarshal([]byte(`{"grade":"kindergarten"}`), &req))

	out, err := json.Marshal(SubmitGenderRequest{Gender: GenderMale})
	require.NoError(t, err)
	assert.JSONEq(t, `{"gender":"MALE"}`, string(out))

	_, err = json.Marshal(SubmitGradeRequest{})
	assert.Error(t, err)
}

func TestBucketMapping(t *testing.T) {
	assert.Equal(t, BucketFreshman, GradeBucket(GradeFreshman))
	assert.Equal(t, BucketSenior, GradeBucket(GradeSenior))
	assert.Equal(t, BucketMale, GenderBucket(GenderMale))
	assert.Equal(t, BucketFemale, GenderBucket(GenderFemale))

	require.Len(t, Buckets, NumBuckets)
	for i, b := range Buckets {
		assert.Equal(t, Bucket(i), b)
	}
}

func TestBucket_DimensionAndName(t *testing.T) {
	for _, g := range Grades {
		b := GradeBucket(g)
		assert.Equal(t, DimensionGrade, b.Dimension())
		assert.Equal(t, g.String(), b.String())
	}
	for _, g := range Genders {
		b := GenderBucket(g)
		assert.Equal(t, DimensionGender, b.Dimension())
		assert.Equal(t, g.String(), b.String())
	}
	assert.Equal(t, "Bucket(9)", Bucket(9).String())
}

func TestRespondentRecord_CopiesChoices(t *testing.T) {
	in := []Choice{ChoiceOne, ChoiceTwo}
	r := NewRespondentRecord(GradeJunior, GenderMale, in)

	in[0] = ChoiceTwo
	assert.Equal(t, ChoiceOne, r.ChoiceAt(0))

	out := r.Choices()
	out[1] = ChoiceOne
	assert.Equal(t, ChoiceTwo, r.ChoiceAt(1))
	assert.Equal(t, 2, r.NumChoices())
}
