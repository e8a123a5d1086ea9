package diff

import (
	"reflect"
	"strings"
	"testing"
)

func TestChunks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single sentence",
			text: "Their going to the store.",
			want: []string{"Their going to the store."},
		},
		{
			name: "multiple sentences and terminators",
			text: "Hello there! How are you? I am fine.",
			want: []string{"Hello there!", "How are you?", "I am fine."},
		},
		{
			name: "no terminator",
			text: "just a fragment",
			want: []string{"just a fragment"},
		},
		{
			name: "extra whitespace",
			text: "First.   Second.\n\nThird.",
			want: []string{"First.", "Second.", "Third."},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Chunks(tt.text)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Chunks(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestUnifiedSingleSentencePair(t *testing.T) {
	got, err := Unified("Their going to the store.", "They're going to the store.")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	for _, want := range []string{
		"--- original",
		"+++ corrected",
		"-Their going to the store.",
		"+They're going to the store.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("diff missing %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "\n-Their"); n != 1 {
		t.Errorf("removed line appears %d times", n)
	}
}

func TestUnifiedIdenticalTexts(t *testing.T) {
	got, err := Unified("Same text.", "Same text.")
	if err != nil {
		t.Fatalf("Unified: %v", err)
	}
	if strings.Contains(got, "@@") {
		t.Errorf("diff of identical texts has hunks:\n%s", got)
	}
}
