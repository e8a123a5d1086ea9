package ai

import "context"

// StubCorrector заглушка, которая не делает реальных запросов
type StubCorrector struct{}

func NewStubCorrector() *StubCorrector { return &StubCorrector{} }

func (c *StubCorrector) Correct(_ context.Context, text string) (*Correction, error) {
	return &Correction{
		Strength:      StrengthMinor,
		CorrectedText: text,
		Summary:       "No changes made.",
		Tone:          "neutral",
	}, nil
}
