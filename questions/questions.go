// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package questions

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/balance-game/models"
)

var ErrInvalidTable = errors.New("invalid question table")

// Default returns the reference question table of the balance game.
func Default() []models.Question {
	return []models.Question{
		{OptionA: "성적 C+ 7개(재수강 가능)", OptionB: "성적 B0 7개"},
		{OptionA: "학교 70년 다니기", OptionB: "70년대 외대 다니기"},
		{OptionA: "교수님과 70시간 면담", OptionB: "70시간 도서관 공부"},
		{OptionA: "전공 70학점 듣기", OptionB: "교양 70학점 듣기"},
		{OptionA: "시간표 70% 1교시", OptionB: "시간표 70% 9교시"},
		{OptionA: "학식 70번 먹기", OptionB: "70번 연속 굶기"},
	}
}

type file struct {
	Questions []models.Question `yaml:"questions"`
}

// Parse reads a YAML document of the form
//
//	questions:
//	  - option_a: "..."
//	    option_b: "..."
func Parse(data []byte) ([]models.Question, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if len(f.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidTable)
	}
	for i, q := range f.Questions {
		if strings.TrimSpace(q.OptionA) == "" || strings.TrimSpace(q.OptionB) == "" {
			return nil, fmt.Errorf("%w: question %d has a blank option", ErrInvalidTable, i+1)
		}
	}
	return f.Questions, nil
}

// LoadFile reads and parses a question table from disk.
func LoadFile(path string) ([]models.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question table: %w", err)
	}
	return Parse(data)
}

// Load returns the table at path, or Default when path is empty.
func Load(path string) ([]models.Question, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
