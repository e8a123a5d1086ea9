package ai

import (
	"errors"
	"testing"
)

func TestParseCorrection(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *Correction
		wantErr bool
	}{
		{
			name: "strength as quoted number",
			raw:  `{"original_grammar_strength":"2","corrected_text":"They're going to the store.","summary_of_corrections":"Fixed homophone.","tone":"neutral"}`,
			want: &Correction{
				Strength:      StrengthModerate,
				CorrectedText: "They're going to the store.",
				Summary:       "Fixed homophone.",
				Tone:          "neutral",
			},
		},
		{
			name: "strength as bare number",
			raw:  `{"original_grammar_strength":3,"corrected_text":"ok","summary_of_corrections":"","tone":"casual"}`,
			want: &Correction{Strength: StrengthMinor, CorrectedText: "ok", Tone: "casual"},
		},
		{
			name:    "strength out of range",
			raw:     `{"original_grammar_strength":"5","corrected_text":"ok","summary_of_corrections":"","tone":""}`,
			wantErr: true,
		},
		{
			name:    "empty corrected text",
			raw:     `{"original_grammar_strength":"2","corrected_text":"  ","summary_of_corrections":"","tone":""}`,
			wantErr: true,
		},
		{
			name:    "not json",
			raw:     `sorry, I can't help with that`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCorrection(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCorrection(%q) = %+v, want error", tt.raw, got)
				}
				if !errors.Is(err, ErrInvalidResponse) {
					t.Errorf("error %v is not ErrInvalidResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCorrection: %v", err)
			}
			if *got != *tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStrengthString(t *testing.T) {
	if s := StrengthIncomprehensible.String(); s != "1 (nearly incomprehensible)" {
		t.Errorf("String() = %q", s)
	}
	if s := StrengthMinor.String(); s != "3 (minor issues)" {
		t.Errorf("String() = %q", s)
	}
}
