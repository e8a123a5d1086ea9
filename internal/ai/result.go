package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Strength — оценка грамматики исходного текста по шкале 1-3.
type Strength int

const (
	StrengthIncomprehensible Strength = 1
	StrengthModerate         Strength = 2
	StrengthMinor            Strength = 3
)

func (s Strength) String() string {
	switch s {
	case StrengthIncomprehensible:
		return "1 (nearly incomprehensible)"
	case StrengthModerate:
		return "2 (moderate issues)"
	case StrengthMinor:
		return "3 (minor issues)"
	}
	return strconv.Itoa(int(s))
}

// UnmarshalJSON принимает и число, и число в кавычках: модели отдают
// значение то так, то эдак даже при включённой JSON-схеме.
func (s *Strength) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(strings.TrimSpace(string(data)), `"`)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("grammar strength %q: %w", raw, err)
	}
	*s = Strength(n)
	return nil
}

// Correction — неизменяемый результат одного запроса коррекции.
type Correction struct {
	Strength      Strength `json:"original_grammar_strength"`
	CorrectedText string   `json:"corrected_text"`
	Summary       string   `json:"summary_of_corrections"`
	Tone          string   `json:"tone"`
}

// ParseCorrection разбирает и валидирует JSON-ответ модели.
// Любое нарушение формы считается ErrInvalidResponse: пустой corrected_text
// или оценка вне шкалы означают, что применять результат нельзя.
func ParseCorrection(raw string) (*Correction, error) {
	var c Correction
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if c.Strength < StrengthIncomprehensible || c.Strength > StrengthMinor {
		return nil, fmt.Errorf("%w: grammar strength %d out of range", ErrInvalidResponse, c.Strength)
	}
	if strings.TrimSpace(c.CorrectedText) == "" {
		return nil, fmt.Errorf("%w: empty corrected text", ErrInvalidResponse)
	}
	return &c, nil
}
