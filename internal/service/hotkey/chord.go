package hotkey

import (
	"fmt"
	"strings"
)

// Модификаторы в терминах Win32 RegisterHotKey.
const (
	modAlt     = 0x0001
	modControl = 0x0002
	modShift   = 0x0004
	modWin     = 0x0008
)

// Chord — разобранная комбинация клавиш.
type Chord struct {
	Mods uint32
	VK   uint32
	spec string
}

func (c Chord) String() string { return c.spec }

// Именованные клавиши в угловых скобках (синтаксис оригинальной утилиты).
var namedKeys = map[string]uint32{
	"<enter>": 0x0D,
	"<tab>":   0x09,
	"<esc>":   0x1B,
	"<space>": 0x20,
}

// ParseChord разбирает спецификацию вида "<ctrl>+<alt>+a".
// Требуется хотя бы один модификатор и ровно одна обычная клавиша.
func ParseChord(spec string) (Chord, error) {
	c := Chord{spec: spec}
	for _, tok := range strings.Split(spec, "+") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch tok {
		case "":
			return Chord{}, fmt.Errorf("hotkey %q: empty token", spec)
		case "<ctrl>":
			c.Mods |= modControl
		case "<alt>":
			c.Mods |= modAlt
		case "<shift>":
			c.Mods |= modShift
		case "<cmd>", "<win>", "<super>":
			c.Mods |= modWin
		default:
			vk, err := parseKey(tok)
			if err != nil {
				return Chord{}, fmt.Errorf("hotkey %q: %w", spec, err)
			}
			if c.VK != 0 {
				return Chord{}, fmt.Errorf("hotkey %q: more than one non-modifier key", spec)
			}
			c.VK = vk
		}
	}
	if c.VK == 0 {
		return Chord{}, fmt.Errorf("hotkey %q: no non-modifier key", spec)
	}
	if c.Mods == 0 {
		return Chord{}, fmt.Errorf("hotkey %q: at least one modifier required", spec)
	}
	return c, nil
}

func parseKey(tok string) (uint32, error) {
	if vk, ok := namedKeys[tok]; ok {
		return vk, nil
	}
	// <f1>..<f12>
	if strings.HasPrefix(tok, "<f") && strings.HasSuffix(tok, ">") {
		var n int
		if _, err := fmt.Sscanf(tok, "<f%d>", &n); err == nil && n >= 1 && n <= 12 {
			return uint32(0x70 + n - 1), nil
		}
		return 0, fmt.Errorf("unknown function key %q", tok)
	}
	if len(tok) == 1 {
		ch := tok[0]
		switch {
		case ch >= 'a' && ch <= 'z':
			return uint32(ch - 'a' + 'A'), nil
		case ch >= '0' && ch <= '9':
			return uint32(ch), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", tok)
}
