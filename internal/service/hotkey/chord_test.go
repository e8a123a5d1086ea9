package hotkey

import "testing"

func TestParseChord(t *testing.T) {
	tests := []struct {
		spec     string
		wantMods uint32
		wantVK   uint32
		wantErr  bool
	}{
		{spec: "<ctrl>+<alt>+a", wantMods: modControl | modAlt, wantVK: 'A'},
		{spec: "<ctrl>+<cmd>+a", wantMods: modControl | modWin, wantVK: 'A'},
		{spec: "<CTRL>+<Alt>+A", wantMods: modControl | modAlt, wantVK: 'A'},
		{spec: "<shift>+<alt>+9", wantMods: modShift | modAlt, wantVK: '9'},
		{spec: "<ctrl>+<f5>", wantMods: modControl, wantVK: 0x74},
		{spec: "<win>+<enter>", wantMods: modWin, wantVK: 0x0D},
		{spec: "a", wantErr: true},               // без модификатора
		{spec: "<ctrl>", wantErr: true},          // без обычной клавиши
		{spec: "<ctrl>+a+b", wantErr: true},      // две обычные клавиши
		{spec: "<ctrl>+<foo>", wantErr: true},    // неизвестная клавиша
		{spec: "<ctrl>+<f13>", wantErr: true},    // вне диапазона
		{spec: "<ctrl>++a", wantErr: true},       // пустой токен
		{spec: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseChord(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseChord(%q) = %+v, want error", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseChord(%q): %v", tt.spec, err)
			}
			if got.Mods != tt.wantMods || got.VK != tt.wantVK {
				t.Errorf("ParseChord(%q) = mods %#x vk %#x, want mods %#x vk %#x",
					tt.spec, got.Mods, got.VK, tt.wantMods, tt.wantVK)
			}
			if got.String() != tt.spec {
				t.Errorf("String() = %q, want original spec", got.String())
			}
		})
	}
}
