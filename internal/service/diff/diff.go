// Package diff строит unified diff между текстами, нарезанными на предложения.
package diff

import (
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Граница предложения: терминальный знак, за которым идут пробелы.
var sentenceEnd = regexp.MustCompile(`([.!?])\s+`)

// Chunks режет текст на предложения: разрез после ".", "!" или "?" с
// последующим пробелом. Пустые куски отбрасываются.
func Chunks(text string) []string {
	marked := sentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(marked, "\x00")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Unified возвращает unified diff предложений оригинала и исправленного текста.
func Unified(original, corrected string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        withLineEndings(Chunks(original)),
		B:        withLineEndings(Chunks(corrected)),
		FromFile: "original",
		ToFile:   "corrected",
		Context:  3,
	})
}

// difflib ожидает строки с завершающим переводом строки
func withLineEndings(chunks []string) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c + "\n"
	}
	return out
}
